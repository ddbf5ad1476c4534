package meshpack

import (
	"github.com/Faultbox/textmesh/pkg/compress"
)

// BoundsParams derives quantization parameters for meshes inside bounds,
// using the encoder's configured code ranges. Positions share one uniform
// scale (the largest extent) so the decoded mesh keeps its proportions.
// Texcoords map [0, 1] and normals map [-1, 1].
func (e *Encoder) BoundsParams(bounds compress.Bounds) (*compress.BoundsParams, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}

	q := e.cfg.Quantization
	p := &compress.BoundsParams{}

	extent := bounds.Extent()
	scale := max(extent[0], extent[1], extent[2])
	if scale == 0 {
		// Single point: any positive scale quantizes it to 0.
		scale = 1
	}
	for i := 0; i < 3; i++ {
		p.Mins[compress.ChannelPositionX+i] = bounds.Mins[i]
		p.Scales[compress.ChannelPositionX+i] = scale
		p.OutputMaxes[compress.ChannelPositionX+i] = q.PositionMax
	}
	for i := 0; i < 2; i++ {
		p.Mins[compress.ChannelTexcoordU+i] = 0
		p.Scales[compress.ChannelTexcoordU+i] = 1
		p.OutputMaxes[compress.ChannelTexcoordU+i] = q.TexcoordMax
	}
	for i := 0; i < 3; i++ {
		p.Mins[compress.ChannelNormalX+i] = -1
		p.Scales[compress.ChannelNormalX+i] = 2
		p.OutputMaxes[compress.ChannelNormalX+i] = q.NormalMax
	}
	return p, nil
}

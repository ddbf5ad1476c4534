package compress

import "math"

// Quantize maps f from [min, min+scale] onto [0, outMax], rounding to the
// nearest code. Out-of-range values clamp and NaN maps to 0.
func Quantize(f, min, scale float32, outMax uint16) uint16 {
	v := math.Floor(float64(outMax)*float64(f-min)/float64(scale) + 0.5)
	switch {
	case !(v > 0):
		return 0
	case v >= float64(outMax):
		return outMax
	default:
		return uint16(v)
	}
}

// AttribsToQuantizedAttribs quantizes every channel of attribs with params
// and stores the result in out, resizing it to len(attribs).
func AttribsToQuantizedAttribs(attribs AttribList, params *BoundsParams, out *QuantizedAttribList) error {
	const op = "quantize attribs"
	if len(attribs)%AttribStride != 0 {
		return contractErrorf(op, "attribute count %d is not a multiple of %d", len(attribs), AttribStride)
	}
	if err := params.Validate(); err != nil {
		return err
	}

	q := *out
	if cap(q) < len(attribs) {
		q = make(QuantizedAttribList, len(attribs))
	}
	q = q[:len(attribs)]

	for i := 0; i < len(attribs); i += AttribStride {
		for j := 0; j < AttribStride; j++ {
			q[i+j] = Quantize(attribs[i+j], params.Mins[j], params.Scales[j], params.OutputMaxes[j])
		}
	}
	*out = q
	return nil
}

// Package compress quantizes and transform-codes mesh geometry into a
// UTF-8 safe byte stream.
//
// Attributes are interleaved, 8 channels per vertex:
//
//	[0..2] position  [3..4] texcoord  [5..7] normal
//
// The produced stream carries no header or version; a decoder must invert
// quantization, zigzag deltas and high-water-mark indices bit-exactly.
package compress

import (
	"errors"
	"fmt"
	"math"
)

// AttribStride is the number of channels per vertex.
const AttribStride = 8

// Channel layout within a vertex.
const (
	ChannelPositionX = 0
	ChannelTexcoordU = 3
	ChannelNormalX   = 5
)

// AABBMaxCode is the default code range for bounding boxes (14 bits).
const AABBMaxCode = (1 << 14) - 1

// ErrContractViolation marks malformed input from an upstream stage.
var ErrContractViolation = errors.New("contract violation")

// ContractError describes which invariant an input broke.
type ContractError struct {
	Op     string
	Reason string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Op, ErrContractViolation, e.Reason)
}

// Unwrap lets errors.Is match ErrContractViolation.
func (e *ContractError) Unwrap() error {
	return ErrContractViolation
}

func contractErrorf(op, format string, args ...any) error {
	return &ContractError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

// AttribList is an interleaved float attribute stream.
type AttribList []float32

// QuantizedAttribList is an interleaved quantized attribute stream.
type QuantizedAttribList []uint16

// OptimizedIndexList holds indices in vertex-cache order. Each index is at
// most one past the largest index seen before it.
type OptimizedIndexList []int

// VertexCount returns the number of whole vertices in the list.
func (a AttribList) VertexCount() int {
	return len(a) / AttribStride
}

// VertexCount returns the number of whole vertices in the list.
func (q QuantizedAttribList) VertexCount() int {
	return len(q) / AttribStride
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Mins  [3]float32
	Maxes [3]float32
}

// Validate reports an inverted or NaN axis.
func (b Bounds) Validate() error {
	for i := 0; i < 3; i++ {
		if !(b.Mins[i] <= b.Maxes[i]) {
			return contractErrorf("bounds", "axis %d min %v exceeds max %v", i, b.Mins[i], b.Maxes[i])
		}
	}
	return nil
}

// Extent returns Maxes - Mins per axis.
func (b Bounds) Extent() [3]float32 {
	return [3]float32{
		b.Maxes[0] - b.Mins[0],
		b.Maxes[1] - b.Mins[1],
		b.Maxes[2] - b.Mins[2],
	}
}

// BoundsParams holds per-channel quantization parameters. Channel i maps
// [Mins[i], Mins[i]+Scales[i]] onto [0, OutputMaxes[i]].
type BoundsParams struct {
	Mins        [AttribStride]float32
	Scales      [AttribStride]float32
	OutputMaxes [AttribStride]uint16
}

// Validate reports non-positive or infinite scales.
func (p *BoundsParams) Validate() error {
	return p.validateChannels("bounds params", AttribStride)
}

func (p *BoundsParams) validateChannels(op string, n int) error {
	for i := 0; i < n; i++ {
		if !(p.Scales[i] > 0) || math.IsInf(float64(p.Scales[i]), 0) {
			return contractErrorf(op, "channel %d scale %v must be positive and finite", i, p.Scales[i])
		}
	}
	return nil
}

// DecodeOffsets returns, per channel, the value a decoder adds to a code
// before multiplying by DecodeScales to recover the attribute.
func (p *BoundsParams) DecodeOffsets() [AttribStride]float32 {
	var out [AttribStride]float32
	for i := range out {
		out[i] = float32(p.OutputMaxes[i]) * p.Mins[i] / p.Scales[i]
	}
	return out
}

// DecodeScales returns the per-channel size of one quantization step.
func (p *BoundsParams) DecodeScales() [AttribStride]float32 {
	var out [AttribStride]float32
	for i := range out {
		if p.OutputMaxes[i] == 0 {
			continue
		}
		out[i] = p.Scales[i] / float32(p.OutputMaxes[i])
	}
	return out
}

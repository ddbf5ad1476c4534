package compress

import (
	"fmt"
	"math"

	"github.com/Faultbox/textmesh/pkg/utf8enc"
)

// ZigZag maps a signed delta to an unsigned code: non-negative d becomes
// 2d and negative d becomes -2d-1.
func ZigZag(d int16) uint16 {
	return uint16((d >> 15) ^ (d << 1))
}

// CompressAABBToUtf8 writes bounds relative to total using the default
// 14-bit box code range.
func CompressAABBToUtf8(bounds Bounds, total *BoundsParams, sink utf8enc.ByteSink) error {
	return CompressAABBToUtf8Range(bounds, total, AABBMaxCode, sink)
}

// CompressAABBToUtf8Range writes three min codes followed by three extent
// codes. Only the position channels of total are used; maxCode replaces
// their OutputMaxes.
func CompressAABBToUtf8Range(bounds Bounds, total *BoundsParams, maxCode uint16, sink utf8enc.ByteSink) error {
	const op = "compress aabb"
	if err := bounds.Validate(); err != nil {
		return err
	}
	if err := total.validateChannels(op, 3); err != nil {
		return err
	}

	var mins, maxes [3]uint16
	for i := 0; i < 3; i++ {
		mins[i] = Quantize(bounds.Mins[i], total.Mins[i], total.Scales[i], maxCode)
		maxes[i] = Quantize(bounds.Maxes[i], total.Mins[i], total.Scales[i], maxCode)
	}
	for i := 0; i < 3; i++ {
		if err := utf8enc.Uint16ToUtf8(mins[i], sink); err != nil {
			return fmt.Errorf("%s: min %d: %w", op, i, err)
		}
	}
	for i := 0; i < 3; i++ {
		if err := utf8enc.Uint16ToUtf8(maxes[i]-mins[i], sink); err != nil {
			return fmt.Errorf("%s: extent %d: %w", op, i, err)
		}
	}
	return nil
}

// CompressIndicesToUtf8 writes each index as its distance below the
// high-water mark, the next vertex not yet referenced. It returns the final
// water mark, which is the number of distinct vertices introduced.
func CompressIndicesToUtf8(list OptimizedIndexList, sink utf8enc.ByteSink) (int, error) {
	const op = "compress indices"
	waterMark := 0
	for i, index := range list {
		if index < 0 {
			return waterMark, contractErrorf(op, "index %d at position %d is negative", index, i)
		}
		if index > waterMark {
			return waterMark, contractErrorf(op, "index %d at position %d exceeds high-water mark %d", index, i, waterMark)
		}
		delta := waterMark - index
		if delta > math.MaxUint16 {
			return waterMark, contractErrorf(op, "delta %d at position %d exceeds 16 bits", delta, i)
		}
		if err := utf8enc.Uint16ToUtf8(uint16(delta), sink); err != nil {
			return waterMark, fmt.Errorf("%s: position %d: %w", op, i, err)
		}
		if index == waterMark {
			waterMark++
		}
	}
	return waterMark, nil
}

// CompressQuantizedAttribsToUtf8 writes attribs channel by channel, each
// value as the zigzag of its difference from the previous vertex's value
// in the same channel.
func CompressQuantizedAttribsToUtf8(attribs QuantizedAttribList, sink utf8enc.ByteSink) error {
	const op = "compress attribs"
	if len(attribs)%AttribStride != 0 {
		return contractErrorf(op, "attribute count %d is not a multiple of %d", len(attribs), AttribStride)
	}
	for ch := 0; ch < AttribStride; ch++ {
		var prev uint16
		for j := ch; j < len(attribs); j += AttribStride {
			word := attribs[j]
			code := ZigZag(int16(word - prev))
			prev = word
			if err := utf8enc.Uint16ToUtf8(code, sink); err != nil {
				return fmt.Errorf("%s: channel %d vertex %d: %w", op, ch, j/AttribStride, err)
			}
		}
	}
	return nil
}

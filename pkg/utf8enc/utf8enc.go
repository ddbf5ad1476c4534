// Package utf8enc writes 16-bit words as UTF-8 byte sequences.
//
// Every word below 0xF800 maps to exactly one code point outside the
// surrogate block, so any sequence of encoded words is valid UTF-8 text.
package utf8enc

import (
	"errors"
	"fmt"
)

// Emitter errors.
var (
	ErrUnencodable = errors.New("word not encodable as UTF-8")
	ErrSinkFull    = errors.New("byte sink full")
)

// Encoding limits.
const (
	oneByteLimit   = 0x80
	twoByteLimit   = 0x800
	surrogateStart = 0xD800
	surrogateCount = 0x800

	// EncodableEnd is the first word Uint16ToUtf8 rejects.
	EncodableEnd = 0x10000 - surrogateCount
)

const (
	continuationPrefix = 0x80
	twoBytePrefix      = 0xC0
	threeBytePrefix    = 0xE0
	continuationMask   = 0x3F
)

// ByteSink accepts encoded bytes one at a time.
type ByteSink interface {
	Put(b byte) error
}

// Uint16ToUtf8 writes word to sink as a 1-3 byte UTF-8 sequence.
// Words in [0xD800, 0xF800) are shifted past the surrogate block.
func Uint16ToUtf8(word uint16, sink ByteSink) error {
	switch {
	case word < oneByteLimit:
		return put(sink, byte(word))
	case word < twoByteLimit:
		return put(sink,
			twoBytePrefix|byte(word>>6),
			continuationPrefix|byte(word&continuationMask))
	case word < EncodableEnd:
		code := uint32(word)
		if code >= surrogateStart {
			code += surrogateCount
		}
		return put(sink,
			threeBytePrefix|byte(code>>12),
			continuationPrefix|byte((code>>6)&continuationMask),
			continuationPrefix|byte(code&continuationMask))
	default:
		return fmt.Errorf("%w: 0x%04X", ErrUnencodable, word)
	}
}

// EncodedLen returns the number of bytes Uint16ToUtf8 writes for word,
// or 0 if word is not encodable.
func EncodedLen(word uint16) int {
	switch {
	case word < oneByteLimit:
		return 1
	case word < twoByteLimit:
		return 2
	case word < EncodableEnd:
		return 3
	default:
		return 0
	}
}

func put(sink ByteSink, bs ...byte) error {
	for _, b := range bs {
		if err := sink.Put(b); err != nil {
			return err
		}
	}
	return nil
}

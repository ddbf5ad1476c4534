package utf8enc

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// ErrInvalidPayload is returned by Validate for non-UTF-8 input.
var ErrInvalidPayload = errors.New("payload is not valid UTF-8")

// Validate checks that data is a complete, well-formed UTF-8 sequence.
func Validate(data []byte) error {
	if _, _, err := transform.Bytes(encoding.UTF8Validator, data); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	return nil
}

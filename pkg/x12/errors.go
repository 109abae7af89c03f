// Package x12 provides error types for ISA header delimiter extraction.
package x12

import (
	"errors"
	"fmt"
)

// ErrInvalidHeaderLength indicates the supplied ISA header is too short
// to contain all three delimiter bytes.
var ErrInvalidHeaderLength = errors.New("header must be at least 106 bytes to extract delimiters")

// HeaderLengthError reports a header that was too short to extract
// delimiters from. It records how many bytes were actually available.
type HeaderLengthError struct {
	// Length is the number of header bytes available.
	Length int
}

// Error returns a formatted message including the observed length.
func (e *HeaderLengthError) Error() string {
	return fmt.Sprintf("%v (got %d bytes)", ErrInvalidHeaderLength, e.Length)
}

// Unwrap returns ErrInvalidHeaderLength so callers can match the
// failure with errors.Is.
func (e *HeaderLengthError) Unwrap() error {
	return ErrInvalidHeaderLength
}

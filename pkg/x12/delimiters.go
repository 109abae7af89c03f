// Package x12 extracts and validates the control characters that govern
// the syntax of an X12 EDI interchange.
//
// Every X12 interchange opens with a fixed-width ISA header segment. The
// header both uses and declares the interchange's three syntax characters:
//
//   - the element separator follows the segment tag at byte offset 3,
//   - the sub-element separator is the ISA16 value at byte offset 104,
//   - the segment terminator closes the header at byte offset 105.
//
// Downstream segment and element splitting depends entirely on these
// three bytes, so they must be identified before any other parsing can
// proceed. This package stops there: it does not tokenize the remainder
// of the interchange and does not validate segment content.
//
// # Thread Safety
//
// Delimiters values are immutable after construction and hold only plain
// data, so they may be freely shared across goroutines. All functions in
// this package are safe for concurrent use.
//
// # Example usage:
//
//	d, err := x12.DelimitersFromISA(header)
//	if err != nil {
//	    // handle error
//	}
//	if !d.AreValid() {
//	    // duplicate delimiters make downstream tokenization ambiguous
//	}
//	segments := bytes.Split(doc, []byte{d.SegmentTerminator()})
package x12

import (
	"fmt"
	"io"

	"github.com/shapestone/shape-x12/internal/isa"
)

// Conventional delimiter characters used by the vast majority of X12
// interchanges.
const (
	DefaultSegmentTerminator   byte = '~'
	DefaultElementSeparator    byte = '*'
	DefaultSubElementSeparator byte = ':'
)

// ISAMinLength is the minimum number of header bytes required by
// DelimitersFromISA and DelimitersFromReader.
const ISAMinLength = isa.MinLength

// Delimiters holds the three syntax characters of an X12 interchange.
//
// The zero value is a set of three NUL bytes; use NewDelimiters,
// DefaultDelimiters, or one of the extraction functions instead. All
// fields are plain bytes, so values are comparable and equality is
// structural: two sets are equal iff all three characters match.
type Delimiters struct {
	segmentTerminator   byte
	elementSeparator    byte
	subElementSeparator byte
}

// NewDelimiters creates a Delimiters value holding exactly the given
// characters. No validation is performed; a set with duplicate
// characters can be constructed, and AreValid reports whether the
// result is usable by a tokenizer.
func NewDelimiters(segmentTerminator, elementSeparator, subElementSeparator byte) Delimiters {
	return Delimiters{
		segmentTerminator:   segmentTerminator,
		elementSeparator:    elementSeparator,
		subElementSeparator: subElementSeparator,
	}
}

// DefaultDelimiters returns the industry-standard delimiter set:
// segment terminator '~', element separator '*', sub-element
// separator ':'. The default set is always valid.
func DefaultDelimiters() Delimiters {
	return Delimiters{
		segmentTerminator:   DefaultSegmentTerminator,
		elementSeparator:    DefaultElementSeparator,
		subElementSeparator: DefaultSubElementSeparator,
	}
}

// DelimitersFromISA extracts the delimiter set from a raw ISA header.
//
// The input must contain at least the first ISAMinLength bytes of the
// header; shorter input fails with a HeaderLengthError wrapping
// ErrInvalidHeaderLength. Bytes past offset 105 are ignored, so the
// slice may carry a trailing line break or subsequent segments.
//
// The extracted bytes are accepted verbatim. The header tag is not
// checked either; callers that need to confirm the input starts with
// "ISA" do so before calling.
func DelimitersFromISA(header []byte) (Delimiters, error) {
	elem, sub, seg, ok := isa.Extract(header)
	if !ok {
		return Delimiters{}, &HeaderLengthError{Length: len(header)}
	}
	return Delimiters{
		segmentTerminator:   seg,
		elementSeparator:    elem,
		subElementSeparator: sub,
	}, nil
}

// DelimitersFromReader extracts the delimiter set from the first
// ISAMinLength bytes of r.
//
// It reads exactly ISAMinLength bytes and nothing more, so the reader
// can be handed on to a tokenizer afterwards with the rest of the
// interchange intact (position the reader at the start of the ISA
// segment first). A stream that ends early fails with a
// HeaderLengthError recording how many bytes were read; any other read
// error is returned as-is.
func DelimitersFromReader(r io.Reader) (Delimiters, error) {
	header := make([]byte, isa.MinLength)
	n, err := io.ReadFull(r, header)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return Delimiters{}, &HeaderLengthError{Length: n}
	}
	if err != nil {
		return Delimiters{}, err
	}
	return DelimitersFromISA(header)
}

// SegmentTerminator returns the character marking the end of a segment.
func (d Delimiters) SegmentTerminator() byte {
	return d.segmentTerminator
}

// ElementSeparator returns the character separating top-level data
// elements within a segment.
func (d Delimiters) ElementSeparator() byte {
	return d.elementSeparator
}

// SubElementSeparator returns the character separating components
// within a composite data element.
func (d Delimiters) SubElementSeparator() byte {
	return d.subElementSeparator
}

// AreValid reports whether the three characters are pairwise distinct.
// Reusing one character for two roles makes downstream tokenization
// ambiguous, so a set with duplicates must not be handed to a
// tokenizer.
func (d Delimiters) AreValid() bool {
	return d.segmentTerminator != d.elementSeparator &&
		d.segmentTerminator != d.subElementSeparator &&
		d.elementSeparator != d.subElementSeparator
}

// String returns a human-readable rendering of the set for diagnostics.
func (d Delimiters) String() string {
	return fmt.Sprintf("segment=%q element=%q sub-element=%q",
		d.segmentTerminator, d.elementSeparator, d.subElementSeparator)
}

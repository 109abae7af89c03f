// Package isa describes the fixed positional layout of the X12 ISA
// interchange header, as far as delimiter discovery needs it.
//
// The ISA segment is the only fixed-width segment in an X12 interchange.
// Every field has a mandated width, so the three syntax characters always
// land at the same byte offsets and can be read before any tokenization
// takes place.
package isa

// MinLength is the shortest header that still contains all three
// delimiter bytes. The segment terminator sits at offset 105, so at
// least 106 bytes are required.
const MinLength = 106

// Delimiter byte offsets within the ISA segment, zero-indexed from the
// 'I' of the segment tag.
const (
	// ElementSeparatorOffset is the byte immediately following "ISA".
	ElementSeparatorOffset = 3
	// SubElementSeparatorOffset is the value of the ISA16 field.
	SubElementSeparatorOffset = 104
	// SegmentTerminatorOffset is the byte that closes the header segment.
	SegmentTerminatorOffset = 105
)

// Extract reads the three delimiter bytes out of a raw ISA header.
// ok is false when the input is too short to reach the segment
// terminator offset. Bytes past the terminator offset are ignored, and
// no byte values are validated; the header tag itself is not checked.
func Extract(header []byte) (elem, sub, seg byte, ok bool) {
	if len(header) < MinLength {
		return 0, 0, 0, false
	}
	return header[ElementSeparatorOffset],
		header[SubElementSeparatorOffset],
		header[SegmentTerminatorOffset],
		true
}

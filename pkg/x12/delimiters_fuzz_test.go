//go:build go1.18
// +build go1.18

package x12_test

import (
	"errors"
	"testing"

	"github.com/shapestone/shape-x12/pkg/x12"
)

// FuzzDelimitersFromISA checks extraction against arbitrary inputs.
// Run with: go test -fuzz=FuzzDelimitersFromISA -fuzztime=30s ./pkg/x12
func FuzzDelimitersFromISA(f *testing.F) {
	seeds := []string{
		"",
		"I",
		"ISA",
		"ISA*00*",
		sampleISAStandard,
		sampleISAAlternate,
		sampleISAStandard + "\r\nGS*HC~",
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, header []byte) {
		d, err := x12.DelimitersFromISA(header)

		if len(header) < x12.ISAMinLength {
			if !errors.Is(err, x12.ErrInvalidHeaderLength) {
				t.Fatalf("short header (%d bytes): got %v, want ErrInvalidHeaderLength", len(header), err)
			}
			return
		}

		if err != nil {
			t.Fatalf("unexpected error for %d-byte header: %v", len(header), err)
		}
		if got, want := d.ElementSeparator(), header[3]; got != want {
			t.Errorf("element separator = %q, want %q", got, want)
		}
		if got, want := d.SubElementSeparator(), header[104]; got != want {
			t.Errorf("sub-element separator = %q, want %q", got, want)
		}
		if got, want := d.SegmentTerminator(), header[105]; got != want {
			t.Errorf("segment terminator = %q, want %q", got, want)
		}

		// Reconstructing from the accessors is lossless.
		rebuilt := x12.NewDelimiters(d.SegmentTerminator(), d.ElementSeparator(), d.SubElementSeparator())
		if rebuilt != d {
			t.Errorf("round trip changed the set: %v != %v", rebuilt, d)
		}
	})
}

// Package glyph provides 8x8 bitmap glyph tables indexed by byte value.
//
// Row r of a Glyph holds one byte; bit k of that byte is column k, with
// bit 0 as the leftmost column.
package glyph

const (
	// Height is the number of rows in a glyph
	Height = 8
	// Width is the number of columns in a glyph
	Width = 8
)

// Glyph is one character bitmap, one byte per row
type Glyph [Height]byte

// Bit reports whether the pixel at (row, col) is on
// Out-of-range coordinates are off
func (g Glyph) Bit(row, col int) bool {
	if row < 0 || row >= Height || col < 0 || col >= Width {
		return false
	}
	return g[row]&(1<<uint(col)) != 0
}

// Blank reports whether no pixel of the glyph is on
func (g Glyph) Blank() bool {
	for _, b := range g {
		if b != 0 {
			return false
		}
	}
	return true
}

// Table maps a character code to its bitmap
// Implementations must be safe for concurrent reads and never mutate
type Table interface {
	Glyph(c byte) Glyph
}

// Font is a complete 256-entry table
type Font [256]Glyph

// Glyph implements Table
func (f *Font) Glyph(c byte) Glyph {
	return f[c]
}

// Clone returns an independent copy of the font
func (f *Font) Clone() *Font {
	c := *f
	return &c
}

package raster

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/marquee/glyph"
)

var (
	ErrInvalidWidth = errors.New("viewport width must be positive")
	ErrNilTable     = errors.New("glyph table is nil")
)

// Rasterize builds the pixel matrix for msg with cols blank columns on each side
// Every byte of msg occupies glyph.Width columns; the same stride bounds the
// message region and selects the character, so no column is dropped or added
func Rasterize(msg []byte, cols int, table glyph.Table) (*Matrix, error) {
	if cols <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWidth, cols)
	}
	if table == nil {
		return nil, ErrNilTable
	}

	msgCols := len(msg) * glyph.Width
	m := &Matrix{
		width:   2*cols + msgCols,
		padding: cols,
		msgCols: msgCols,
	}
	m.cells = make([]bool, Rows*m.width)

	for i, c := range msg {
		g := table.Glyph(c)
		base := cols + i*glyph.Width
		for row := 0; row < Rows; row++ {
			line := m.cells[row*m.width:]
			for bit := 0; bit < glyph.Width; bit++ {
				line[base+bit] = g.Bit(row, bit)
			}
		}
	}

	return m, nil
}

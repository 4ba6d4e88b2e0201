// Package raster converts a message into an on/off pixel matrix using a glyph table.
package raster

import "github.com/lixenwraith/marquee/glyph"

// Rows is the fixed matrix height
const Rows = glyph.Height

// Matrix is an immutable grid of on/off pixels
// Cells are row-major: cells[row*width + col]
type Matrix struct {
	cells   []bool
	width   int
	padding int
	msgCols int
}

// Width returns the total column count (padding + message + padding)
func (m *Matrix) Width() int { return m.width }

// Height returns the row count, always Rows
func (m *Matrix) Height() int { return Rows }

// Padding returns the blank column count on each side of the message
func (m *Matrix) Padding() int { return m.padding }

// MessageCols returns the column count of the message region
func (m *Matrix) MessageCols() int { return m.msgCols }

// At reports whether the pixel is on; out-of-range cells are off
func (m *Matrix) At(row, col int) bool {
	if row < 0 || row >= Rows || col < 0 || col >= m.width {
		return false
	}
	return m.cells[row*m.width+col]
}

// InMessage reports whether col lies inside the message region
func (m *Matrix) InMessage(col int) bool {
	return col >= m.padding && col < m.padding+m.msgCols
}

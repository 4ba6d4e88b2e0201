package marquee

import "github.com/lixenwraith/marquee/raster"

// Frame is a viewport-wide view of the matrix at one column offset
type Frame struct {
	m      *raster.Matrix
	offset int
	width  int
}

// Offset returns the first matrix column shown by the frame
func (f Frame) Offset() int { return f.offset }

// Width returns the viewport column count
func (f Frame) Width() int { return f.width }

// Height returns the row count
func (f Frame) Height() int { return raster.Rows }

// At reports whether the frame cell is lit; out-of-range cells are off
func (f Frame) At(row, col int) bool {
	if col < 0 || col >= f.width {
		return false
	}
	return f.m.At(row, f.offset+col)
}

// Blank reports whether no cell in the frame is lit
// Padding columns are never lit and are skipped
func (f Frame) Blank() bool {
	for col := f.offset; col < f.offset+f.width; col++ {
		if !f.m.InMessage(col) {
			continue
		}
		for row := 0; row < raster.Rows; row++ {
			if f.m.At(row, col) {
				return false
			}
		}
	}
	return true
}

// AppendTo appends all rows of the frame, each terminated by a newline
func (f Frame) AppendTo(dst []byte, s Style) []byte {
	for row := 0; row < raster.Rows; row++ {
		for col := 0; col < f.width; col++ {
			dst = append(dst, s.cell(f.At(row, col))...)
		}
		dst = append(dst, '\n')
	}
	return dst
}

package marquee

import (
	"errors"
	"fmt"
	"log"

	"github.com/lixenwraith/marquee/raster"
	"github.com/lixenwraith/marquee/terminal"
)

var ErrBufferTooLarge = errors.New("frame buffer exceeds limit")

// FrameBuffer holds every frame of a sequence, rendered, in one allocation
// Each frame chunk starts with the cursor-up sequence that rewinds over the
// previous frame, so a chunk can be written as-is
type FrameBuffer struct {
	data    []byte
	offsets []int // len(frames)+1; frame i is data[offsets[i]:offsets[i+1]]
}

// NewFrameBuffer renders all frames for a viewport of cols columns
// The exact size is computed before allocating; if it exceeds maxBytes,
// ErrBufferTooLarge is returned and nothing is allocated
func NewFrameBuffer(m *raster.Matrix, cols int, s Style, maxBytes int64) (*FrameBuffer, error) {
	seq, err := NewSequencer(m, cols)
	if err != nil {
		return nil, err
	}

	sizes := frameSizes(m, cols, s, seq.Len())
	var total int64
	for _, n := range sizes {
		total += n
	}
	if maxBytes > 0 && total > maxBytes {
		return nil, fmt.Errorf("%w: %d bytes for %d frames (limit %d)", ErrBufferTooLarge, total, len(sizes), maxBytes)
	}

	b := &FrameBuffer{
		data:    make([]byte, 0, total),
		offsets: make([]int, 0, len(sizes)+1),
	}
	for f, ok := seq.Next(); ok; f, ok = seq.Next() {
		b.offsets = append(b.offsets, len(b.data))
		b.data = terminal.AppendCursorUp(b.data, raster.Rows)
		b.data = f.AppendTo(b.data, s)
	}
	b.offsets = append(b.offsets, len(b.data))

	log.Printf("[BUFFER] %d frames, %d bytes", b.Len(), len(b.data))
	return b, nil
}

// frameSizes returns the exact rendered byte length of each of the n frames
// Per-row prefix counts of lit cells give each window's lit count directly
func frameSizes(m *raster.Matrix, cols int, s Style, n int) []int64 {
	width := m.Width()
	prefix := make([][]int, raster.Rows)
	for row := range prefix {
		p := make([]int, width+1)
		for col := 0; col < width; col++ {
			p[col+1] = p[col]
			if m.At(row, col) {
				p[col+1]++
			}
		}
		prefix[row] = p
	}

	header := int64(len(terminal.AppendCursorUp(nil, raster.Rows)))
	cells := int64(raster.Rows * cols)
	onLen, offLen := int64(len(s.on)), int64(len(s.off))

	sizes := make([]int64, n)
	for off := range sizes {
		var lit int64
		for row := 0; row < raster.Rows; row++ {
			lit += int64(prefix[row][off+cols] - prefix[row][off])
		}
		sizes[off] = header + raster.Rows + lit*onLen + (cells-lit)*offLen
	}
	return sizes
}

// Len returns the frame count; zero after Release
func (b *FrameBuffer) Len() int {
	if len(b.offsets) == 0 {
		return 0
	}
	return len(b.offsets) - 1
}

// Size returns the rendered byte count
func (b *FrameBuffer) Size() int {
	return len(b.data)
}

// Frame returns the bytes of frame i, cursor-up prefix included
func (b *FrameBuffer) Frame(i int) []byte {
	return b.data[b.offsets[i]:b.offsets[i+1]]
}

// Release drops the rendered frames; safe to call more than once
func (b *FrameBuffer) Release() {
	b.data = nil
	b.offsets = nil
}

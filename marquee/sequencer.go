package marquee

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/marquee/raster"
)

var ErrViewportTooWide = errors.New("viewport is wider than the matrix")

// Sequencer yields frames at offsets 0..Width-cols, in order, once
type Sequencer struct {
	m    *raster.Matrix
	cols int
	next int
	last int
}

// NewSequencer creates a sequencer for a viewport of cols columns
// An empty message has nothing to scroll and yields a single blank frame
func NewSequencer(m *raster.Matrix, cols int) (*Sequencer, error) {
	if cols <= 0 {
		return nil, fmt.Errorf("%w: %d", raster.ErrInvalidWidth, cols)
	}
	if cols > m.Width() {
		return nil, fmt.Errorf("%w: %d > %d", ErrViewportTooWide, cols, m.Width())
	}
	last := m.Width() - cols
	if m.MessageCols() == 0 {
		last = 0
	}
	return &Sequencer{
		m:    m,
		cols: cols,
		last: last,
	}, nil
}

// Len returns the total frame count
func (s *Sequencer) Len() int {
	return s.last + 1
}

// remaining returns the number of frames not yet yielded
func (s *Sequencer) remaining() int {
	return s.last + 1 - s.next
}

// Next returns the next frame; ok is false once the sequence is exhausted
func (s *Sequencer) Next() (Frame, bool) {
	if s.next > s.last {
		return Frame{}, false
	}
	f := Frame{m: s.m, offset: s.next, width: s.cols}
	s.next++
	return f, true
}

package marquee

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/marquee/terminal"
)

var (
	ErrEmptyPixel = errors.New("pixel glyph is empty")
	ErrPixelWidth = errors.New("pixel glyph has no display width")
)

// DefaultPixel is the full block U+2588
const DefaultPixel = "█"

// Style holds the printable encoding of on and off cells
type Style struct {
	on  []byte
	off []byte
}

// NewStyle builds the cell encoding for a pixel glyph in a highlight color
// The on cell resets color immediately after the glyph; the off cell is
// spaces matching the glyph's display width so columns stay aligned
func NewStyle(pixel string, h terminal.Highlight) (Style, error) {
	if pixel == "" {
		return Style{}, ErrEmptyPixel
	}
	w := runewidth.StringWidth(pixel)
	if w <= 0 {
		return Style{}, fmt.Errorf("%w: %q", ErrPixelWidth, pixel)
	}

	on := make([]byte, 0, len(h.Sequence())+len(pixel)+4)
	on = append(on, h.Sequence()...)
	on = append(on, pixel...)
	on = terminal.AppendReset(on)

	return Style{
		on:  on,
		off: bytes.Repeat([]byte{' '}, w),
	}, nil
}

// On returns the bytes of a lit cell
func (s Style) On() []byte { return s.on }

// Off returns the bytes of a blank cell
func (s Style) Off() []byte { return s.off }

func (s Style) cell(lit bool) []byte {
	if lit {
		return s.on
	}
	return s.off
}

package terminal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

var ErrUnknownColor = errors.New("unknown color")

// Highlight is a resolved foreground color ready to emit
type Highlight struct {
	seq []byte
}

// Sequence returns the SGR bytes that select the color
func (h Highlight) Sequence() []byte {
	return h.seq
}

// ParseHighlight resolves a color name ("green", "orange"), hex value
// ("#ff8800") or palette index ("2") into an SGR sequence
// Palette colors are emitted as 256-palette indices in every mode; RGB colors
// are emitted as 24-bit or downsampled, depending on mode
func ParseHighlight(name string, mode ColorMode) (Highlight, error) {
	name = strings.TrimSpace(name)

	var c tcell.Color
	if n, err := strconv.Atoi(name); err == nil {
		if n < 0 || n > 255 {
			return Highlight{}, fmt.Errorf("%w: palette index %d", ErrUnknownColor, n)
		}
		c = tcell.PaletteColor(n)
	} else {
		c = tcell.GetColor(strings.ToLower(name))
	}

	if !c.Valid() {
		return Highlight{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}

	if !c.IsRGB() {
		if idx := int(c - tcell.ColorValid); idx >= 0 && idx <= 255 {
			return Highlight{seq: appendFg256(nil, uint8(idx))}, nil
		}
	}

	r, g, b := c.RGB()
	rgb := RGB{R: uint8(r), G: uint8(g), B: uint8(b)}
	if mode == ColorModeTrueColor {
		return Highlight{seq: appendFgRGB(nil, rgb)}, nil
	}
	return Highlight{seq: appendFg256(nil, RGBTo256(rgb))}, nil
}

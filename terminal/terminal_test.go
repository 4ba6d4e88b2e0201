package terminal

import (
	"bytes"
	"errors"
	"os"
	"testing"
)

func TestAppendCursorUp(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{8, "\x1b[8A"},
		{1, "\x1b[1A"},
		{120, "\x1b[120A"},
		{0, ""},
		{-3, ""},
	}

	for _, tt := range tests {
		if got := string(AppendCursorUp(nil, tt.n)); got != tt.want {
			t.Errorf("n=%d: expected %q, got %q", tt.n, tt.want, got)
		}
	}
}

func TestParseHighlight(t *testing.T) {
	tests := []struct {
		name  string
		color string
		mode  ColorMode
		want  string
	}{
		{"Named palette color", "green", ColorMode256, "\x1b[38;5;2m"},
		{"Palette ignores truecolor", "green", ColorModeTrueColor, "\x1b[38;5;2m"},
		{"Case and space", "  Red ", ColorMode256, "\x1b[38;5;9m"},
		{"Palette index", "196", ColorMode256, "\x1b[38;5;196m"},
		{"Hex truecolor", "#ff8800", ColorModeTrueColor, "\x1b[38;2;255;136;0m"},
		{"Hex downsampled", "#ff8800", ColorMode256, "\x1b[38;5;208m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := ParseHighlight(tt.color, tt.mode)
			if err != nil {
				t.Fatalf("ParseHighlight(%q) failed: %v", tt.color, err)
			}
			if got := string(h.Sequence()); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParseHighlightUnknown(t *testing.T) {
	for _, name := range []string{"not-a-color", "256", "-1", ""} {
		if _, err := ParseHighlight(name, ColorMode256); !errors.Is(err, ErrUnknownColor) {
			t.Errorf("%q: expected ErrUnknownColor, got %v", name, err)
		}
	}
}

func TestRGBTo256(t *testing.T) {
	tests := []struct {
		name string
		c    RGB
		want uint8
	}{
		{"Black", RGB{0, 0, 0}, 16},
		{"White", RGB{255, 255, 255}, 231},
		{"Mid gray uses ramp", RGB{128, 128, 128}, 244},
		{"Pure red", RGB{255, 0, 0}, 196},
		{"Pure green", RGB{0, 255, 0}, 46},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGBTo256(tt.c); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestParseColorMode(t *testing.T) {
	if m, ok := ParseColorMode("256"); !ok || m != ColorMode256 {
		t.Errorf("Expected 256 mode, got %v (%v)", m, ok)
	}
	if m, ok := ParseColorMode("truecolor"); !ok || m != ColorModeTrueColor {
		t.Errorf("Expected truecolor mode, got %v (%v)", m, ok)
	}
	if _, ok := ParseColorMode("16"); ok {
		t.Error("Expected unknown mode to be rejected")
	}
}

func TestDetectColorMode(t *testing.T) {
	for _, key := range []string{"KITTY_WINDOW_ID", "KONSOLE_VERSION", "ITERM_SESSION_ID",
		"ALACRITTY_WINDOW_ID", "ALACRITTY_LOG", "WEZTERM_PANE"} {
		t.Setenv(key, "")
	}

	t.Setenv("COLORTERM", "truecolor")
	if DetectColorMode() != ColorModeTrueColor {
		t.Error("Expected truecolor from COLORTERM")
	}

	t.Setenv("COLORTERM", "")
	t.Setenv("TERM", "xterm-256color")
	if DetectColorMode() != ColorMode256 {
		t.Error("Expected 256 for plain xterm-256color")
	}
}

func TestWidthWithoutTerminal(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	_, err = Width(int(r.Fd()), int(w.Fd()))
	if !errors.Is(err, ErrNoTerminal) {
		t.Errorf("Expected ErrNoTerminal for pipes, got %v", err)
	}
}

func TestReset(t *testing.T) {
	var buf bytes.Buffer
	Reset(&buf)
	if got := buf.String(); got != "\x1b[0m\x1b[?25h" {
		t.Errorf("Expected SGR reset and cursor show, got %q", got)
	}
}

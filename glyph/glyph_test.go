package glyph

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestGlyphBit(t *testing.T) {
	g := Glyph{0x01, 0x80, 0, 0, 0, 0, 0, 0xFF}

	tests := []struct {
		name     string
		row, col int
		want     bool
	}{
		{"LSB is leftmost", 0, 0, true},
		{"Row 0 col 1 off", 0, 1, false},
		{"MSB is rightmost", 1, 7, true},
		{"Full row", 7, 3, true},
		{"Negative row", -1, 0, false},
		{"Row overflow", 8, 0, false},
		{"Col overflow", 7, 8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Bit(tt.row, tt.col); got != tt.want {
				t.Errorf("Expected Bit(%d,%d)=%v, got %v", tt.row, tt.col, tt.want, got)
			}
		})
	}
}

func TestBasicTable(t *testing.T) {
	f := Basic()

	want := Glyph{0x0C, 0x1E, 0x33, 0x33, 0x3F, 0x33, 0x33, 0x00}
	if got := f.Glyph('A'); got != want {
		t.Errorf("Expected 'A' = %v, got %v", want, got)
	}

	for _, c := range []byte{0x00, 0x1F, ' ', 0x7F, 0x80, 0xFF} {
		if !f.Glyph(c).Blank() {
			t.Errorf("Expected code 0x%02X to be blank", c)
		}
	}

	for c := byte('!'); c <= '~'; c++ {
		if f.Glyph(c).Blank() {
			t.Errorf("Expected printable %q to have pixels", c)
		}
	}
}

func TestBasicReturnsCopy(t *testing.T) {
	a := Basic()
	a['A'] = Glyph{}

	if Basic().Glyph('A').Blank() {
		t.Error("Expected Basic() to be unaffected by mutation of a previous copy")
	}
}

func TestParseOverlay(t *testing.T) {
	raw := []byte(`
glyphs:
  "A": [0xFF, 0x81, 0x81, 0x81, 0x81, 0x81, 0x81, 0xFF]
  "~": [1, 2, 4, 8, 16, 32, 64, 128]
`)
	base := Basic()
	f, err := Parse(raw, base)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got := f.Glyph('A'); got != (Glyph{0xFF, 0x81, 0x81, 0x81, 0x81, 0x81, 0x81, 0xFF}) {
		t.Errorf("Expected overlaid 'A', got %v", got)
	}
	if got := f.Glyph('~'); got != (Glyph{1, 2, 4, 8, 16, 32, 64, 128}) {
		t.Errorf("Expected overlaid '~', got %v", got)
	}
	if f.Glyph('B') != base.Glyph('B') {
		t.Error("Expected untouched glyph to keep base value")
	}
	if base.Glyph('A') != Basic().Glyph('A') {
		t.Error("Expected base font to be left unmodified")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{"Multi-byte key", `glyphs: {"AB": [0,0,0,0,0,0,0,0]}`, ErrGlyphKey},
		{"Short glyph", `glyphs: {"A": [0,0,0]}`, ErrGlyphRows},
		{"Row overflow", `glyphs: {"A": [256,0,0,0,0,0,0,0]}`, ErrGlyphRows},
		{"Negative row", `glyphs: {"A": [-1,0,0,0,0,0,0,0]}`, ErrGlyphRows},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw), nil)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "glyphs.yaml")
	if err := os.WriteFile(path, []byte(`glyphs: {"x": [0,0,0,0,0,0,0,0]}`), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !f.Glyph('x').Blank() {
		t.Error("Expected 'x' to be replaced with a blank glyph")
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml"), nil); err == nil {
		t.Error("Expected error for missing file")
	}
}

package glyph

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

var (
	ErrGlyphKey  = errors.New("glyph key must be a single byte")
	ErrGlyphRows = errors.New("glyph must have 8 rows in [0,255]")
)

// fileFormat is the on-disk glyph overlay layout:
//
//	glyphs:
//	  "A": [0x0C, 0x1E, 0x33, 0x33, 0x3F, 0x33, 0x33, 0x00]
type fileFormat struct {
	Glyphs map[string][]int `yaml:"glyphs"`
}

// Load reads a YAML glyph file and overlays its entries on a copy of base
// A nil base starts from Basic()
func Load(path string, base *Font) (*Font, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(raw, base)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse overlays YAML glyph data on a copy of base
func Parse(raw []byte, base *Font) (*Font, error) {
	var ff fileFormat
	if err := yaml.Unmarshal(raw, &ff); err != nil {
		return nil, err
	}

	var out *Font
	if base == nil {
		out = Basic()
	} else {
		out = base.Clone()
	}

	// Sorted for deterministic error reporting
	keys := make([]string, 0, len(ff.Glyphs))
	for k := range ff.Glyphs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if len(k) != 1 {
			return nil, fmt.Errorf("%w: %q", ErrGlyphKey, k)
		}
		rows := ff.Glyphs[k]
		if len(rows) != Height {
			return nil, fmt.Errorf("%w: %q has %d rows", ErrGlyphRows, k, len(rows))
		}
		var g Glyph
		for i, v := range rows {
			if v < 0 || v > 0xFF {
				return nil, fmt.Errorf("%w: %q row %d = %d", ErrGlyphRows, k, i, v)
			}
			g[i] = byte(v)
		}
		out[k[0]] = g
	}
	return out, nil
}

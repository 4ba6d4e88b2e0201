// Package config resolves marquee settings from defaults, a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/marquee/marquee"
)

// DefaultMessage is shown when no message is given
const DefaultMessage = "hello world"

var ErrInvalid = errors.New("invalid config")

// Config holds every tunable of a run
type Config struct {
	Message        string        `yaml:"message"`
	Delay          time.Duration `yaml:"delay"`
	Color          string        `yaml:"color"`
	ColorMode      string        `yaml:"color_mode"`
	Pixel          string        `yaml:"pixel"`
	Strategy       string        `yaml:"strategy"`
	Repeat         int           `yaml:"repeat"`
	MaxBufferBytes int64         `yaml:"max_buffer_bytes"`
	GlyphFile      string        `yaml:"glyphs"`
	Width          int           `yaml:"width"` // 0 queries the terminal
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Message:        DefaultMessage,
		Delay:          marquee.DefaultDelay,
		Color:          "green",
		ColorMode:      "auto",
		Pixel:          marquee.DefaultPixel,
		Strategy:       marquee.Precomputed.String(),
		Repeat:         1,
		MaxBufferBytes: marquee.DefaultMaxBufferBytes,
	}
}

// Load reads a YAML file over the defaults
// Durations are written as strings, e.g. delay: 25ms
func Load(path string) (Config, error) {
	c := Default()
	raw, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks ranges and enumerations
func (c Config) Validate() error {
	switch {
	case c.Delay < 0:
		return fmt.Errorf("%w: delay %s is negative", ErrInvalid, c.Delay)
	case c.Repeat < 1:
		return fmt.Errorf("%w: repeat %d must be at least 1", ErrInvalid, c.Repeat)
	case c.Pixel == "":
		return fmt.Errorf("%w: pixel is empty", ErrInvalid)
	case c.MaxBufferBytes <= 0:
		return fmt.Errorf("%w: max_buffer_bytes %d must be positive", ErrInvalid, c.MaxBufferBytes)
	case c.Width < 0:
		return fmt.Errorf("%w: width %d is negative", ErrInvalid, c.Width)
	}
	if _, err := marquee.ParseStrategy(c.Strategy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvMessage        = "MARQUEE_MESSAGE"
	EnvDelay          = "MARQUEE_DELAY"
	EnvColor          = "MARQUEE_COLOR"
	EnvColorMode      = "MARQUEE_COLOR_MODE"
	EnvPixel          = "MARQUEE_PIXEL"
	EnvStrategy       = "MARQUEE_STRATEGY"
	EnvRepeat         = "MARQUEE_REPEAT"
	EnvMaxBufferBytes = "MARQUEE_MAX_BUFFER_BYTES"
	EnvGlyphs         = "MARQUEE_GLYPHS"
	EnvWidth          = "MARQUEE_WIDTH"
)

// ApplyEnv loads envFile (if it exists) into the process environment, then
// overrides fields from MARQUEE_* variables
// Variables already set in the environment win over the file
func (c *Config) ApplyEnv(envFile string) error {
	if envFile != "" {
		err := godotenv.Load(envFile)
		switch {
		case err == nil:
			log.Printf("[CONFIG] loaded %s", envFile)
		case errors.Is(err, fs.ErrNotExist):
			log.Printf("[CONFIG] %s not found, skipping", envFile)
		default:
			return fmt.Errorf("%s: %w", envFile, err)
		}
	}

	setString(&c.Message, EnvMessage)
	setString(&c.Color, EnvColor)
	setString(&c.ColorMode, EnvColorMode)
	setString(&c.Pixel, EnvPixel)
	setString(&c.Strategy, EnvStrategy)
	setString(&c.GlyphFile, EnvGlyphs)

	if v, ok := os.LookupEnv(EnvDelay); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDelay, err)
		}
		c.Delay = d
	}
	if err := setInt(&c.Repeat, EnvRepeat); err != nil {
		return err
	}
	if err := setInt(&c.Width, EnvWidth); err != nil {
		return err
	}
	if v, ok := os.LookupEnv(EnvMaxBufferBytes); ok {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxBufferBytes, err)
		}
		c.MaxBufferBytes = n
	}
	return nil
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

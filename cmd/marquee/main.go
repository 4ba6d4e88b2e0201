// Usage examples:
//
// # Scroll the default message across the current terminal
// ./marquee
//
// # Custom message, slower, orange square pixels
// ./marquee -delay 30ms -color orange -pixel '██' "Go gophers"
//
// # Fixed width, streamed, output captured to a file
// ./marquee -w 80 -strategy streaming -delay 0 "build ok" > banner.ans

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"strings"
	"syscall"
	"time"

	"github.com/lixenwraith/marquee/config"
	"github.com/lixenwraith/marquee/glyph"
	"github.com/lixenwraith/marquee/marquee"
	"github.com/lixenwraith/marquee/raster"
	"github.com/lixenwraith/marquee/terminal"
)

// Exit codes
const (
	exitOK          = 0
	exitEnvironment = 1 // no terminal, non-positive width, output failure
	exitUsage       = 2 // bad flags or config
	exitResource    = 3 // frame buffer over limit
	exitInterrupted = 130
)

const (
	logDir      = "logs"
	logFileName = "marquee.log"
	maxLogSize  = 10 * 1024 * 1024 // rotate beyond 10MB
)

// queryWidth is replaced in tests
var queryWidth = func() (int, error) { return terminal.Width() }

func main() {
	// Panic Recovery: leave the cursor visible and colors reset
	defer func() {
		if r := recover(); r != nil {
			terminal.Reset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n\x1b[31mMARQUEE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// setupLogging routes the log package to logs/marquee.log when debug is set,
// rotating an oversized previous log, and discards log output otherwise
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	logPath := filepath.Join(logDir, logFileName)
	rotateLog(logPath)

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}

// rotateLog moves an oversized log aside as marquee_<timestamp>.log
func rotateLog(logPath string) {
	info, err := os.Stat(logPath)
	if err != nil || info.Size() <= maxLogSize {
		return
	}
	stamp := time.Now().Format("20060102_150405")
	rotated := filepath.Join(logDir, strings.TrimSuffix(logFileName, ".log")+"_"+stamp+".log")
	os.Rename(logPath, rotated)
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("marquee", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath = fs.String("config", "", "YAML config file")
		envFile    = fs.String("env", ".env", "dotenv file with MARQUEE_* variables (skipped if absent)")
		width      = fs.Int("w", 0, "Viewport width in columns (0 = query terminal)")
		delay      = fs.Duration("delay", marquee.DefaultDelay, "Delay between frames")
		color      = fs.String("color", "green", "Highlight color: name, #rrggbb or palette index")
		colorMode  = fs.String("color-mode", "auto", "Color mode: auto, truecolor, 256")
		pixel      = fs.String("pixel", marquee.DefaultPixel, "Glyph drawn for a lit pixel")
		strategy   = fs.String("strategy", "precomputed", "Frame strategy: precomputed or streaming")
		repeat     = fs.Int("repeat", 1, "Number of passes")
		maxBuffer  = fs.Int64("max-buffer", marquee.DefaultMaxBufferBytes, "Precomputed frame buffer limit in bytes")
		glyphs     = fs.String("glyphs", "", "YAML glyph overlay file")
		debugLog   = fs.Bool("debug", false, "Write debug log to "+logDir+"/"+logFileName)
	)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: marquee [options] [message]")
		fmt.Fprintln(stderr, "\nOptions:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return exitUsage
	}

	if logFile := setupLogging(*debugLog); logFile != nil {
		defer logFile.Close()
	}

	// Resolve config: defaults < file < env < flags < positional message
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return fail(stderr, exitUsage, err)
		}
	}
	if err := cfg.ApplyEnv(*envFile); err != nil {
		return fail(stderr, exitUsage, err)
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "w":
			cfg.Width = *width
		case "delay":
			cfg.Delay = *delay
		case "color":
			cfg.Color = *color
		case "color-mode":
			cfg.ColorMode = *colorMode
		case "pixel":
			cfg.Pixel = *pixel
		case "strategy":
			cfg.Strategy = *strategy
		case "repeat":
			cfg.Repeat = *repeat
		case "max-buffer":
			cfg.MaxBufferBytes = *maxBuffer
		case "glyphs":
			cfg.GlyphFile = *glyphs
		}
	})
	if fs.NArg() == 1 {
		cfg.Message = fs.Arg(0)
	}
	if err := cfg.Validate(); err != nil {
		return fail(stderr, exitUsage, err)
	}

	player, font, err := prepare(cfg)
	if err != nil {
		return fail(stderr, exitUsage, err)
	}

	// Environment: viewport width
	cols := cfg.Width
	if cols == 0 {
		if cols, err = queryWidth(); err != nil {
			return fail(stderr, exitEnvironment, fmt.Errorf("cannot determine terminal width: %w", err))
		}
	}
	player.Cols = cols

	m, err := raster.Rasterize([]byte(cfg.Message), cols, font)
	if err != nil {
		return fail(stderr, exitEnvironment, err)
	}
	log.Printf("[RUN] message=%q cols=%d matrix=%dx%d", cfg.Message, cols, m.Width(), m.Height())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	err = player.Play(ctx, stdout, m)
	switch {
	case err == nil:
		log.Printf("[RUN] done in %s", time.Since(start))
		return exitOK
	case marquee.IsInterrupted(err):
		log.Printf("[RUN] interrupted after %s", time.Since(start))
		return exitInterrupted
	case errors.Is(err, marquee.ErrBufferTooLarge):
		return fail(stderr, exitResource, err)
	default:
		return fail(stderr, exitEnvironment, err)
	}
}

// prepare builds the player and glyph table from a validated config
func prepare(cfg config.Config) (*marquee.Player, glyph.Table, error) {
	mode, ok := terminal.ParseColorMode(cfg.ColorMode)
	if !ok {
		return nil, nil, fmt.Errorf("unknown color mode: %s (use auto, truecolor or 256)", cfg.ColorMode)
	}
	hl, err := terminal.ParseHighlight(cfg.Color, mode)
	if err != nil {
		return nil, nil, err
	}
	style, err := marquee.NewStyle(cfg.Pixel, hl)
	if err != nil {
		return nil, nil, err
	}
	strategy, err := marquee.ParseStrategy(cfg.Strategy)
	if err != nil {
		return nil, nil, err
	}

	font := glyph.Basic()
	if cfg.GlyphFile != "" {
		if font, err = glyph.Load(cfg.GlyphFile, font); err != nil {
			return nil, nil, err
		}
	}

	return &marquee.Player{
		Style:          style,
		Strategy:       strategy,
		Delay:          cfg.Delay,
		Repeat:         cfg.Repeat,
		MaxBufferBytes: cfg.MaxBufferBytes,
	}, font, nil
}

func fail(stderr io.Writer, code int, err error) int {
	log.Printf("[ERROR] %v", err)
	fmt.Fprintf(stderr, "\x1b[31mmarquee: %v\x1b[0m\n", err)
	return code
}

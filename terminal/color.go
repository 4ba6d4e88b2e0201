package terminal

import (
	"os"
	"strings"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorMode256       ColorMode = iota // xterm-256 palette
	ColorModeTrueColor                  // 24-bit RGB
)

// String returns the flag spelling of the mode
func (m ColorMode) String() string {
	if m == ColorModeTrueColor {
		return "truecolor"
	}
	return "256"
}

// RGB represents a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Color cube values for 6x6x6 palette (indices 16-231)
// Levels: 0, 95, 135, 175, 215, 255
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// nearestCube maps 0-255 to the nearest cube level index 0-5
func nearestCube(v uint8) uint8 {
	best := 0
	bestDist := abs(int(v) - int(cubeValues[0]))
	for j := 1; j < 6; j++ {
		d := abs(int(v) - int(cubeValues[j]))
		if d < bestDist {
			bestDist = d
			best = j
		}
	}
	return uint8(best)
}

// RGBTo256 converts RGB to the nearest 256-color palette index
func RGBTo256(c RGB) uint8 {
	r, g, b := c.R, c.G, c.B

	cubeR, cubeG, cubeB := nearestCube(r), nearestCube(g), nearestCube(b)
	cubeIdx := 16 + 36*cubeR + 6*cubeG + cubeB

	// Grayscale ramp: 232-255 maps to luminance 8, 18, 28, ..., 238
	gray := (int(r) + int(g) + int(b)) / 3
	maxDiff := max(abs(int(r)-gray), abs(int(g)-gray), abs(int(b)-gray))
	if maxDiff >= 10 {
		return cubeIdx
	}
	if gray < 4 {
		return 16
	}
	if gray > 243 {
		return 231
	}

	grayIdx := 232 + (gray-8)/10
	if grayIdx > 255 {
		grayIdx = 255
	}
	if grayIdx < 232 {
		grayIdx = 232
	}
	grayLevel := 8 + (grayIdx-232)*10
	grayDist := abs(int(r)-grayLevel) + abs(int(g)-grayLevel) + abs(int(b)-grayLevel)

	cubeDist := abs(int(r)-int(cubeValues[cubeR])) +
		abs(int(g)-int(cubeValues[cubeG])) +
		abs(int(b)-int(cubeValues[cubeB]))

	if grayDist < cubeDist {
		return uint8(grayIdx)
	}
	return cubeIdx
}

// DetectColorMode determines terminal color capability from environment
func DetectColorMode() ColorMode {
	// 1. COLORTERM (highest priority, set by modern terminals)
	colorterm := os.Getenv("COLORTERM")
	if colorterm == "truecolor" || colorterm == "24bit" {
		return ColorModeTrueColor
	}

	// 2. Terminal-specific env vars
	for _, key := range []string{
		"KITTY_WINDOW_ID",
		"KONSOLE_VERSION",
		"ITERM_SESSION_ID",
		"ALACRITTY_WINDOW_ID",
		"ALACRITTY_LOG",
		"WEZTERM_PANE",
	} {
		if os.Getenv(key) != "" {
			return ColorModeTrueColor
		}
	}

	// 3. TERM for known true color terminals
	termLower := strings.ToLower(os.Getenv("TERM"))
	if strings.Contains(termLower, "truecolor") ||
		strings.Contains(termLower, "24bit") ||
		strings.Contains(termLower, "direct") {
		return ColorModeTrueColor
	}

	return ColorMode256
}

// ParseColorMode resolves "auto", "256" or "truecolor" spellings
func ParseColorMode(s string) (ColorMode, bool) {
	switch strings.ToLower(s) {
	case "", "auto":
		return DetectColorMode(), true
	case "256", "8", "8bit":
		return ColorMode256, true
	case "true", "truecolor", "24", "24bit":
		return ColorModeTrueColor, true
	default:
		return ColorMode256, false
	}
}

package terminal

import (
	"io"
	"os"
	"strconv"
)

// Pre-allocated ANSI sequence fragments
var (
	csi      = []byte("\x1b[")
	csiReset = []byte("\x1b[0m")

	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	csiFg256 = []byte("\x1b[38;5;") // followed by N;m
	csiFgRGB = []byte("\x1b[38;2;") // followed by R;G;B;m
)

// AppendCursorUp appends ESC[<n>A; n <= 0 appends nothing
func AppendCursorUp(dst []byte, n int) []byte {
	if n <= 0 {
		return dst
	}
	dst = append(dst, csi...)
	dst = strconv.AppendInt(dst, int64(n), 10)
	return append(dst, 'A')
}

// AppendReset appends the SGR reset sequence
func AppendReset(dst []byte) []byte {
	return append(dst, csiReset...)
}

// AppendCursorVisible appends the show or hide cursor sequence
func AppendCursorVisible(dst []byte, visible bool) []byte {
	if visible {
		return append(dst, csiCursorShow...)
	}
	return append(dst, csiCursorHide...)
}

// appendFg256 appends a 256-palette foreground sequence
func appendFg256(dst []byte, index uint8) []byte {
	dst = append(dst, csiFg256...)
	dst = strconv.AppendUint(dst, uint64(index), 10)
	return append(dst, 'm')
}

// appendFgRGB appends a 24-bit foreground sequence
func appendFgRGB(dst []byte, c RGB) []byte {
	dst = append(dst, csiFgRGB...)
	dst = strconv.AppendUint(dst, uint64(c.R), 10)
	dst = append(dst, ';')
	dst = strconv.AppendUint(dst, uint64(c.G), 10)
	dst = append(dst, ';')
	dst = strconv.AppendUint(dst, uint64(c.B), 10)
	return append(dst, 'm')
}

// Reset restores color and cursor visibility
// Call this from interrupt or panic recovery when the animation did not finish
func Reset(w io.Writer) {
	var buf []byte
	buf = AppendReset(buf)
	buf = AppendCursorVisible(buf, true)
	w.Write(buf)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}

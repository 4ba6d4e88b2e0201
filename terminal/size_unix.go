//go:build unix

package terminal

import "golang.org/x/sys/unix"

// columns returns the column count of a terminal fd
func columns(fd int) (int, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, err
	}
	return int(ws.Col), nil
}

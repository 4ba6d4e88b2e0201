package terminal

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

var (
	ErrNoTerminal   = errors.New("no terminal attached")
	ErrInvalidWidth = errors.New("terminal width is not positive")
)

// Width returns the column count of the first fd that is a terminal
// With no fds, stdout then stdin are tried
func Width(fds ...int) (int, error) {
	if len(fds) == 0 {
		fds = []int{int(os.Stdout.Fd()), int(os.Stdin.Fd())}
	}

	for _, fd := range fds {
		if !term.IsTerminal(fd) {
			continue
		}
		w, err := columns(fd)
		if err != nil {
			return 0, fmt.Errorf("query size of fd %d: %w", fd, err)
		}
		if w <= 0 {
			return 0, fmt.Errorf("%w: %d", ErrInvalidWidth, w)
		}
		return w, nil
	}
	return 0, ErrNoTerminal
}

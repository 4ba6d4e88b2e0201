//go:build !unix

package terminal

import "golang.org/x/term"

func columns(fd int) (int, error) {
	w, _, err := term.GetSize(fd)
	return w, err
}

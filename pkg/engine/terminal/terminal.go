// Package terminal reports what kind of output the dungeon is being printed to.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// fder is satisfied by *os.File
type fder interface {
	Fd() uintptr
}

// IsTerminal reports whether w writes to an interactive terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(fder)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SizeOf returns the width and height of the terminal behind w.
// ok is false when w is not a terminal or the size cannot be determined.
func SizeOf(w io.Writer) (width, height int, ok bool) {
	f, isFile := w.(fder)
	if !isFile {
		return 0, 0, false
	}
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, false
	}
	return width, height, true
}

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, ok := SizeOf(os.Stdout)
	if !ok {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the current terminal width.
// Falls back to DefaultWidth if the width cannot be determined.
func GetWidth() int {
	width, _ := GetSize()
	return width
}

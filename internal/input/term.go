// Package input owns the terminal: raw-mode acquisition, the stdin
// reader, and the escape-sequence decoder that turns raw bytes into
// discrete key events.
package input

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Terminal is the controlling terminal held in raw mode. Raw mode is a
// scoped resource: acquired once at startup, restored on every exit
// path.
type Terminal struct {
	fd   int
	prev *term.State
}

// OpenTerminal puts stdin into raw (non-canonical, no-echo) mode.
// Fails when stdin is not a terminal or the mode cannot be set; both
// are fatal startup conditions for the caller.
func OpenTerminal() (*Terminal, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("stdin is not a terminal")
	}
	prev, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("set raw mode: %w", err)
	}
	return &Terminal{fd: fd, prev: prev}, nil
}

// Restore puts the terminal back into its original mode. Best-effort:
// callers log a failure and continue exiting.
func (t *Terminal) Restore() error {
	if err := term.Restore(t.fd, t.prev); err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	return nil
}

// Size returns the terminal dimensions, falling back to 80x24 when the
// query fails.
func (t *Terminal) Size() (width, height int) {
	w, h, err := term.GetSize(t.fd)
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

package tui

import (
	"golang.org/x/term"
)

// IsTerminal reports whether fd is attached to an interactive terminal.
// Log output drops color codes when it is not.
func IsTerminal(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

package main

import (
	"fmt"

	terminalapi "github.com/phoenix-tui/phoenix/terminal/api"
)

// describeTerminal reports size and color depth for term, or "" when the
// terminal cannot report a usable size.
func describeTerminal(term terminalapi.Terminal) string {
	w, h, err := term.Size()
	if err != nil || w <= 0 || h <= 0 {
		return ""
	}
	return fmt.Sprintf("detected terminal size %dx%d, color depth %d", w, h, term.ColorDepth())
}

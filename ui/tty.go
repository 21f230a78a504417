package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

func SupportsANSICodes() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

// HasInteractiveInput reports whether prompting the user is possible.
func HasInteractiveInput() bool {
	return isatty.IsTerminal(os.Stdin.Fd())
}

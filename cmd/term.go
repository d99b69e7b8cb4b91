/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

package cmd

import (
	"os"

	"golang.org/x/term"
)

// Terminal returns true if the output writer is an interactive terminal.
// Commands use it to decide on colour and markdown rendering.
func Terminal() bool {
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

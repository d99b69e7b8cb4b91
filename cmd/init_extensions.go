/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go adds extension commands to the root command.
//
// Extensions register during init() in their own packages; main imports
// extension/all so every command group is present before Execute runs.

package cmd

import (
	"sync"

	"github.com/jpl-au/cachedir/extension"
)

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before the root command executes.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, c := range ext.Commands() {
				rootCmd.AddCommand(c)
			}
		}
	})
}

// Package all imports the built-in cachedir extensions.
// Import this package to register all built-in commands.
package all

import (
	// Each registers itself via init()
	_ "github.com/jpl-au/cachedir/extension/check"
	_ "github.com/jpl-au/cachedir/extension/core"
)

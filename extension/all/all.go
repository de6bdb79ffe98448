// Package all imports all core lned extensions.
// Import this package to register all built-in commands.
package all

import (
	// Core extensions - each registers itself via init()
	_ "github.com/jpl-au/lned/extension/core"
	_ "github.com/jpl-au/lned/extension/edit"
)

// Package all imports all built-in irisk extensions.
// Import this package to register all built-in commands.
package all

import (
	// Built-in extensions - each registers itself via init()
	_ "github.com/jpl-au/irisk/extension/check"
	_ "github.com/jpl-au/irisk/extension/core"
	_ "github.com/jpl-au/irisk/extension/qkidney"
	_ "github.com/jpl-au/irisk/extension/strl"
)

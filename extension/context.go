// context.go defines the Context handed to extensions during Init.
//
// Extensions register in init() before any configuration is read, so the
// Context arrives later, once the root command has loaded config. It is an
// interface so tests can supply their own.

package extension

import (
	"github.com/jpl-au/irisk/internal/config"
)

// Context provides extensions controlled access to shared irisk state.
type Context interface {
	// Config returns the loaded user configuration.
	Config() *config.Config
}

type extContext struct {
	cfg *config.Config
}

// NewContext creates a new extension context. A nil cfg is replaced by an
// empty configuration, so every default applies.
func NewContext(cfg *config.Config) Context {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return &extContext{cfg: cfg}
}

// Config returns the loaded user configuration.
func (c *extContext) Config() *config.Config {
	return c.cfg
}

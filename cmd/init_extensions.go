/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Extensions register during init() but aren't initialised until the first
// command runs. By then the config has been loaded and can be handed to
// every Initializable extension through a shared Context.

package cmd

import (
	"fmt"
	"sync"

	"github.com/jpl-au/irisk/extension"
	"github.com/jpl-au/irisk/internal/config"
)

// noConfigCommands lists commands that run without loading config or
// initialising extensions.
var noConfigCommands = map[string]bool{
	"config":  true,
	"guide":   true,
	"version": true,
	"help":    true,
}

var (
	extContext extension.Context
	initOnce   sync.Once
	initErr    error
)

// initExtensions loads config and injects the shared context into all
// Initializable extensions, once per process.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}
		extContext = extension.NewContext(cfg)

		for _, ext := range extension.All() {
			if i, ok := ext.(extension.Initializable); ok {
				if err := i.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

// Context returns the shared extension context, initialising it on first
// use. Commands that skip initialisation get defaults.
func Context() extension.Context {
	if err := initExtensions(); err != nil || extContext == nil {
		return extension.NewContext(nil)
	}
	return extContext
}

var extensionsOnce sync.Once

// registerExtensions adds commands from all registered extensions.
// Called once before Execute runs.
func registerExtensions() {
	extensionsOnce.Do(func() {
		for _, ext := range extension.All() {
			for _, cmd := range ext.Commands() {
				rootCmd.AddCommand(cmd)
			}
		}
	})
}

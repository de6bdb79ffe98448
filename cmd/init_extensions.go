/*
Copyright © 2026 James Lawson (jpl-au) <hello@caelisco.net>
*/

// init_extensions.go handles extension initialisation and command registration.
//
// Extensions register during init() but aren't initialised until first
// command execution. The editing session is created once from config and
// shared across all extensions via the Context.

package cmd

import (
	"fmt"
	"sync"

	"github.com/jpl-au/lned/extension"
	"github.com/jpl-au/lned/internal/config"
	"github.com/jpl-au/lned/internal/service"
	"github.com/jpl-au/lned/internal/session"
)

// noSessionCommands lists commands that bypass session creation.
// Built dynamically from bootstrap commands plus extension-declared ones.
var noSessionCommands map[string]bool

// buildNoSessionCommands creates the set of commands that skip session
// creation: the bootstrap commands (guide, config) that must work before
// anything is set up, plus any command an extension declares through
// extension.Sessionless.
func buildNoSessionCommands() map[string]bool {
	cmds := map[string]bool{
		"guide":  true,
		"config": true,
	}

	for _, ext := range extension.All() {
		if s, ok := ext.(extension.Sessionless); ok {
			for _, name := range s.NoSessionCommands() {
				cmds[name] = true
			}
		}
	}

	return cmds
}

// Global extension context, created during initialisation.
var (
	extContext extension.Context
	initOnce   sync.Once
	initErr    error
)

// initExtensions creates the shared session and injects it into extensions.
func initExtensions() error {
	initOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			initErr = err
			return
		}

		opts := session.Options{
			HistoryLimit:  cfg.HistoryLimit(),
			MaxLineLength: cfg.MaxLineLength(),
		}
		factory := func() service.Service { return session.New(opts) }
		extContext = extension.NewContext(factory(), factory, cfg)

		for _, ext := range extension.All() {
			if init, ok := ext.(extension.Initializable); ok {
				if err := init.Init(extContext); err != nil {
					initErr = fmt.Errorf("init extension %s: %w", ext.Name(), err)
					return
				}
			}
		}
	})
	return initErr
}

// ExtensionContext returns the context handed to extensions, or nil before
// initialisation. The serve command uses it to bind extension MCP tools.
func ExtensionContext() extension.Context {
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

		// Build noSessionCommands after all extensions are registered
		noSessionCommands = buildNoSessionCommands()
	})
}

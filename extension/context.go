// context.go defines the Context interface for extension access to lned internals.
//
// Separated from extension.go to isolate dependency injection concerns.
// Extensions receive Context during Init(), not at construction, because
// they register before the session exists.

package extension

import (
	"github.com/jpl-au/lned/internal/config"
	"github.com/jpl-au/lned/internal/service"
)

// Context provides extensions controlled access to lned internals.
type Context interface {
	// Service returns the shared editing session. The menu and the MCP
	// server operate on this one.
	Service() service.Service

	// NewService returns a fresh session with the same options, for
	// commands that process several files independently.
	NewService() service.Service

	// Config returns user configuration for respecting user preferences.
	Config() *config.Config
}

// extContext implements Context.
type extContext struct {
	svc     service.Service
	factory func() service.Service
	cfg     *config.Config
}

// NewContext creates a new extension context.
func NewContext(svc service.Service, factory func() service.Service, cfg *config.Config) Context {
	return &extContext{
		svc:     svc,
		factory: factory,
		cfg:     cfg,
	}
}

// Service returns the shared editing session.
func (c *extContext) Service() service.Service {
	return c.svc
}

// NewService returns a new, empty session.
func (c *extContext) NewService() service.Service {
	return c.factory()
}

// Config returns the loaded user configuration.
func (c *extContext) Config() *config.Config {
	return c.cfg
}

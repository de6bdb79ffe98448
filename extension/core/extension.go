// Package core provides the core extension for lned.
// It registers commands: config, serve, guide, log, version.
package core

import (
	"github.com/jpl-au/lned/extension"
	"github.com/spf13/cobra"
)

func init() {
	extension.Register(&Extension{})
}

// Extension implements the core extension.
type Extension struct{}

// Compile-time interface compliance.
var (
	_ extension.Extension   = (*Extension)(nil)
	_ extension.Sessionless = (*Extension)(nil)
)

// Name returns "core" - this extension provides fundamental lned commands.
func (e *Extension) Name() string { return "core" }

// Commands returns all core CLI commands.
func (e *Extension) Commands() []*cobra.Command {
	return []*cobra.Command{
		newConfigCmd(),
		newServeCmd(),
		newGuideCmd(),
		newLogCmd(),
		newVersionCmd(),
	}
}

// MCPTools returns nil - the built-in tools are registered by internal/mcp.
func (e *Extension) MCPTools() []extension.MCPTool {
	return nil
}

// NoSessionCommands returns commands that never touch the buffer.
// version: Displays build info only.
// log: Reads the audit database, not the buffer.
func (e *Extension) NoSessionCommands() []string {
	return []string{"log", "version"}
}

// Package extension provides the plugin architecture for lned. Extensions
// encapsulate related functionality (commands, MCP tools) and register at
// init time, so features can be added without touching core code.
package extension

import (
	"github.com/spf13/cobra"
)

// Extension defines the contract for lned extensions.
type Extension interface {
	// Name returns a unique identifier for this extension.
	Name() string

	// Commands returns CLI commands to register with the root command.
	Commands() []*cobra.Command

	// MCPTools returns MCP tools to register with the server.
	MCPTools() []MCPTool
}

// Initializable extensions receive the shared context before their
// commands run.
type Initializable interface {
	Extension
	Init(ctx Context) error
}

// Sessionless is an optional interface for extensions with commands that
// don't need an editing session. Commands returned by NoSessionCommands()
// will not trigger session creation in PersistentPreRunE.
type Sessionless interface {
	NoSessionCommands() []string
}

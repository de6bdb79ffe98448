// Package mcp implements the Model Context Protocol server, exposing one lned
// editing session to LLMs. An assistant can insert, delete, modify, replace,
// undo and redo lines, then save the result, through a standardised protocol.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jpl-au/lned/internal/service"
	"github.com/jpl-au/lned/internal/version"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Serve starts the MCP server over stdio. Extra tools, such as those
// contributed by extensions, are registered alongside the built-in ones.
//
// The session may start empty; clients call lned_load to open a file.
func Serve(svc service.Service, extra ...server.ServerTool) error {
	// Log to stderr; stdout is reserved for MCP JSON-RPC messages
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	s := NewServer(svc, extra...)

	st := svc.Status()
	slog.Info("lned MCP server ready", "version", version.Short(), "transport", "stdio", "path", st.Path, "lines", st.Lines)

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		slog.Info("server stopped")
		return nil
	}
	return err
}

// NewServer builds the MCP server with every tool and resource registered.
func NewServer(svc service.Service, extra ...server.ServerTool) *server.MCPServer {
	h := &handlers{svc: svc}

	s := server.NewMCPServer(
		"lned",
		version.Short(),
		server.WithResourceCapabilities(true, false),
		server.WithToolCapabilities(true),
	)

	registerResources(s, h)
	registerTools(s, h)
	if len(extra) > 0 {
		s.AddTools(extra...)
	}
	return s
}

// handlers provides MCP request handlers with access to the editing session.
type handlers struct {
	svc service.Service
}

// registerResources adds URI-based read access to the session buffer.
func registerResources(s *server.MCPServer, h *handlers) {
	s.AddResource(
		mcp.NewResource(
			BufferURI,
			"Buffer",
			mcp.WithResourceDescription("Current contents of the editing buffer, one line per row"),
			mcp.WithMIMEType("text/plain"),
		),
		h.readBuffer,
	)
}

// registerTools exposes lned operations as MCP tools for LLM invocation.
func registerTools(s *server.MCPServer, h *handlers) {
	// Insert
	s.AddTool(
		mcp.NewTool("lned_insert",
			mcp.WithDescription("Insert a line at the top of the buffer. Lines are prepended, so insert in reverse order to build a file top-down."),
			mcp.WithString("text", mcp.Required(), mcp.Description("Line text (may be empty)")),
		),
		h.insertLine,
	)

	// Delete
	s.AddTool(
		mcp.NewTool("lned_delete",
			mcp.WithDescription("Delete a line by its 1-based number"),
			mcp.WithNumber("line", mcp.Required(), mcp.Description("Line number (1 = first line)")),
		),
		h.deleteLine,
	)

	// Modify
	s.AddTool(
		mcp.NewTool("lned_modify",
			mcp.WithDescription("Replace the text of a line by its 1-based number"),
			mcp.WithNumber("line", mcp.Required(), mcp.Description("Line number (1 = first line)")),
			mcp.WithString("text", mcp.Required(), mcp.Description("New line text")),
		),
		h.modifyLine,
	)

	// Replace
	s.AddTool(
		mcp.NewTool("lned_replace",
			mcp.WithDescription("Replace literal text on every line. Returns the number of replacements."),
			mcp.WithString("search", mcp.Required(), mcp.Description("Text to find (must not be empty)")),
			mcp.WithString("replace", mcp.Description("Replacement text (default: empty)")),
			mcp.WithBoolean("global", mcp.Description("Replace every occurrence on each line (default: true). If false, only the first per line.")),
		),
		h.replaceText,
	)

	// Undo
	s.AddTool(
		mcp.NewTool("lned_undo",
			mcp.WithDescription("Undo the most recent change"),
		),
		h.undo,
	)

	// Redo
	s.AddTool(
		mcp.NewTool("lned_redo",
			mcp.WithDescription("Redo the most recently undone change"),
		),
		h.redo,
	)

	// Show
	s.AddTool(
		mcp.NewTool("lned_show",
			mcp.WithDescription("Show the buffer's lines and status (file, line count, undo/redo depth)"),
		),
		h.show,
	)

	// Load
	s.AddTool(
		mcp.NewTool("lned_load",
			mcp.WithDescription("Replace the buffer with the lines of a file. The file must exist. Undoable."),
			mcp.WithString("path", mcp.Required(), mcp.Description("Filesystem path to load")),
		),
		h.load,
	)

	// Save
	s.AddTool(
		mcp.NewTool("lned_save",
			mcp.WithDescription("Write the buffer to a file, one line per row"),
			mcp.WithString("path", mcp.Description("Filesystem path (default: the file last loaded or saved)")),
		),
		h.save,
	)

	// Guide
	s.AddTool(
		mcp.NewTool("lned_guide",
			mcp.WithDescription("Get help/guide content for lned commands"),
			mcp.WithString("topic", mcp.Description("Guide topic (e.g., 'menu', 'sed', 'config') or empty for index")),
		),
		h.getGuide,
	)

	// Config Get
	s.AddTool(
		mcp.NewTool("lned_config_get",
			mcp.WithDescription("Get a configuration value"),
			mcp.WithString("key", mcp.Description("Config key (e.g. display.prefix, history.limit) or empty for all")),
		),
		h.configGet,
	)

	// Config Set
	s.AddTool(
		mcp.NewTool("lned_config_set",
			mcp.WithDescription("Set a configuration value. Takes effect the next time lned starts."),
			mcp.WithString("key", mcp.Required(), mcp.Description("Config key")),
			mcp.WithString("value", mcp.Required(), mcp.Description("Value to set")),
		),
		h.configSet,
	)
}

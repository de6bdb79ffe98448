// mcp.go defines types for MCP tool registration by extensions.
//
// Separated from extension.go to isolate MCP-specific concerns. Not all
// extensions need MCP tools - some only provide CLI commands.

package extension

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// MCPTool pairs an MCP tool definition with its handler.
type MCPTool struct {
	Tool    mcp.Tool
	Handler MCPHandler
}

// MCPHandler processes MCP tool requests.
// The Context provides access to the shared session and config.
type MCPHandler func(ctx context.Context, extCtx Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)

// ServerTools binds the MCP tools of every registered extension to extCtx,
// ready for server registration.
func ServerTools(extCtx Context) []server.ServerTool {
	var tools []server.ServerTool
	for _, ext := range All() {
		for _, t := range ext.MCPTools() {
			handler := t.Handler
			tools = append(tools, server.ServerTool{
				Tool: t.Tool,
				Handler: func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
					return handler(ctx, extCtx, req)
				},
			})
		}
	}
	return tools
}

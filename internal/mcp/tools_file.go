// tools_file.go implements the MCP tools that move the buffer to and from disk.

package mcp

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/jpl-au/lned/internal/format"
	"github.com/jpl-au/lned/internal/log"
	"github.com/jpl-au/lned/internal/session"
	"github.com/mark3labs/mcp-go/mcp"
)

// load handles lned_load tool calls.
func (h *handlers) load(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil || path == "" {
		return mcp.NewToolResultError("path is required"), nil //nolint:nilerr
	}

	err = h.svc.Load(ctx, path)
	st := h.svc.Status()
	log.Event("mcp:load", "load").Path(path).Count(st.Lines).Write(err)

	if errors.Is(err, fs.ErrNotExist) {
		return mcp.NewToolResultError(fmt.Sprintf("file not found: %s", path)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(st)
}

// save handles lned_save tool calls.
func (h *handlers) save(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path := getString(req, "path", "")

	err := h.svc.Save(ctx, path)
	st := h.svc.Status()
	log.Event("mcp:save", "save").Path(st.Path).Count(st.Lines).Write(err)

	if errors.Is(err, session.ErrNoPath) {
		return mcp.NewToolResultError("path is required: no file has been loaded or saved yet"), nil
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	lines := h.svc.Lines()
	return jsonResult(map[string]any{
		"path":  st.Path,
		"lines": len(lines),
		"bytes": format.ByteSize(lines),
	})
}

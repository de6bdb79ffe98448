// tools_edit.go implements the MCP tools that change or inspect the buffer.
//
// Failures come back as tool error results rather than Go errors so the LLM
// gets a message it can act on (wrong line number, nothing to undo) instead
// of a protocol-level failure.

package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/jpl-au/lned/internal/buffer"
	"github.com/jpl-au/lned/internal/history"
	"github.com/jpl-au/lned/internal/log"
	"github.com/jpl-au/lned/internal/service"
	"github.com/mark3labs/mcp-go/mcp"
)

// insertLine handles lned_insert tool calls.
func (h *handlers) insertLine(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text is required"), nil //nolint:nilerr
	}

	h.svc.Insert(text)
	st := h.svc.Status()
	log.Event("mcp:insert", "insert").Path(st.Path).Write(nil)

	return mcp.NewToolResultText(fmt.Sprintf("inserted line 1 of %d", st.Lines)), nil
}

// deleteLine handles lned_delete tool calls.
func (h *handlers) deleteLine(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n, ok := getInt(req, "line")
	if !ok {
		return mcp.NewToolResultError("line is required and must be a whole number"), nil
	}

	err := h.svc.Delete(n)
	log.Event("mcp:delete", "delete").Path(h.svc.Status().Path).Line(n).Write(err)
	if err != nil {
		return lineError(err, n, h.svc.Status().Lines), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("deleted line %d", n)), nil
}

// modifyLine handles lned_modify tool calls.
func (h *handlers) modifyLine(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	n, ok := getInt(req, "line")
	if !ok {
		return mcp.NewToolResultError("line is required and must be a whole number"), nil
	}
	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text is required"), nil //nolint:nilerr
	}

	err = h.svc.Modify(n, text)
	log.Event("mcp:modify", "modify").Path(h.svc.Status().Path).Line(n).Write(err)
	if err != nil {
		return lineError(err, n, h.svc.Status().Lines), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("modified line %d", n)), nil
}

// lineError explains an out-of-range line number with the valid range.
func lineError(err error, n, total int) *mcp.CallToolResult {
	if errors.Is(err, buffer.ErrLineNotFound) {
		if total == 0 {
			return mcp.NewToolResultError(fmt.Sprintf("line %d not found: buffer is empty", n))
		}
		return mcp.NewToolResultError(fmt.Sprintf("line %d not found: valid lines are 1-%d", n, total))
	}
	return mcp.NewToolResultError(err.Error())
}

// replaceText handles lned_replace tool calls.
func (h *handlers) replaceText(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	search, err := req.RequireString("search")
	if err != nil {
		return mcp.NewToolResultError("search is required"), nil //nolint:nilerr
	}
	repl := getString(req, "replace", "")
	global := getBool(req, "global", true)

	n, err := h.svc.Replace(search, repl, global)
	log.Event("mcp:replace", "replace").
		Path(h.svc.Status().Path).
		Count(n).
		Detail("global", global).
		Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return jsonResult(map[string]int{"replaced": n})
}

// undo handles lned_undo tool calls.
func (h *handlers) undo(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	err := h.svc.Undo()
	log.Event("mcp:undo", "undo").Path(h.svc.Status().Path).Write(err)
	if errors.Is(err, history.ErrEmpty) {
		return mcp.NewToolResultError("nothing to undo"), nil
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return h.showResult()
}

// redo handles lned_redo tool calls.
func (h *handlers) redo(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	err := h.svc.Redo()
	log.Event("mcp:redo", "redo").Path(h.svc.Status().Path).Write(err)
	if errors.Is(err, history.ErrEmpty) {
		return mcp.NewToolResultError("nothing to redo"), nil
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return h.showResult()
}

// show handles lned_show tool calls.
func (h *handlers) show(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log.Event("mcp:show", "show").Path(h.svc.Status().Path).Write(nil)
	return h.showResult()
}

// bufferView is the JSON shape returned by lned_show, lned_undo and lned_redo.
type bufferView struct {
	service.Status
	Content []string `json:"content"`
}

func (h *handlers) showResult() (*mcp.CallToolResult, error) {
	return jsonResult(bufferView{
		Status:  h.svc.Status(),
		Content: h.svc.Lines(),
	})
}

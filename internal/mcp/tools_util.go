// tools_util.go provides helper functions for MCP tool parameter extraction.
//
// Optional parameters are read permissively: a missing or mistyped value
// falls back to the default rather than failing the call.

package mcp

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

// getString extracts a string parameter from the MCP request, returning the
// provided default if the parameter is missing or not a string.
func getString(req mcp.CallToolRequest, name, def string) string {
	if v, err := req.RequireString(name); err == nil {
		return v
	}
	return def
}

// getBool extracts a boolean parameter from the MCP request arguments.
// A string "true" is not a boolean and yields the default.
func getBool(req mcp.CallToolRequest, name string, def bool) bool {
	args, ok := req.Params.Arguments.(map[string]any)
	if !ok {
		return def
	}
	if v, ok := args[name].(bool); ok {
		return v
	}
	return def
}

// getInt extracts an integer parameter from the MCP request arguments.
// JSON numbers decode as float64. ok is false when the parameter is missing
// or not a whole number.
func getInt(req mcp.CallToolRequest, name string) (n int, ok bool) {
	args, isMap := req.Params.Arguments.(map[string]any)
	if !isMap {
		return 0, false
	}
	v, isNum := args[name].(float64)
	if !isNum || v != float64(int(v)) {
		return 0, false
	}
	return int(v), true
}

// jsonResult serialises any value as indented JSON and wraps it in an MCP
// text result. Marshalling failures become tool errors.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

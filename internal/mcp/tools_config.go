// tools_config.go exposes the config command to MCP clients.
//
// A running server keeps the session options it started with. Changes made
// here are written to the config file and picked up by the next lned process.

package mcp

import (
	"context"
	"fmt"

	"github.com/jpl-au/lned/internal/config"
	"github.com/jpl-au/lned/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// configGet handles lned_config_get tool calls. Without a key every setting
// is returned.
func (h *handlers) configGet(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key := getString(req, "key", "")
	action := "get"
	if key == "" {
		action = "list"
	}
	ev := log.Event("mcp:config_get", action).Detail("key", key)

	cfg, err := config.Load()
	if err != nil {
		ev.Write(err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if key == "" {
		ev.Write(nil)
		return jsonResult(cfg.All())
	}

	v, err := cfg.Get(key)
	ev.Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]string{key: v})
}

// configSet handles lned_config_set tool calls.
func (h *handlers) configSet(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key := getString(req, "key", "")
	value, valueErr := req.RequireString("value")
	switch {
	case key == "":
		return mcp.NewToolResultError("key is required"), nil
	case valueErr != nil:
		return mcp.NewToolResultError("value is required"), nil
	}

	err := setConfig(key, value)
	log.Event("mcp:config_set", "set").Detail("key", key).Detail("value", value).Write(err)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("%s = %s (applies on next start)", key, value)), nil
}

func setConfig(key, value string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Set(key, value); err != nil {
		return err
	}
	return cfg.Save()
}

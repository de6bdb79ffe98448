package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/jpl-au/lned/guide"
	"github.com/jpl-au/lned/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// getGuide handles lned_guide tool calls.
func (h *handlers) getGuide(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := getString(req, "topic", "")
	page, err := guide.Get(topic)
	log.Event("mcp:guide", "read").Detail("topic", topic).Write(err)
	if err == nil {
		return mcp.NewToolResultText(page), nil
	}

	topics, listErr := guide.List()
	if listErr != nil {
		return nil, fmt.Errorf("listing guides: %w", listErr)
	}
	return mcp.NewToolResultError(fmt.Sprintf("unknown topic %q; available topics: %s", topic, strings.Join(topics, ", "))), nil
}

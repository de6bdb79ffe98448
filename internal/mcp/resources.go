// resources.go implements the MCP resource for reading the buffer.
//
// Resources give clients read-only access without a tool call, which suits
// context loading: the client needs the text but is not performing an edit.

package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// BufferURI addresses the session buffer.
const BufferURI = "lned://buffer"

// ErrInvalidURI indicates a resource URI this server does not serve.
var ErrInvalidURI = errors.New("invalid URI")

// readBuffer handles lned://buffer resource requests. The text is exactly
// what a save would write.
func (h *handlers) readBuffer(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	if uri != BufferURI {
		return nil, fmt.Errorf("%w: %s", ErrInvalidURI, uri)
	}

	var b strings.Builder
	for _, l := range h.svc.Lines() {
		b.WriteString(l)
		b.WriteByte('\n')
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     b.String(),
		},
	}, nil
}

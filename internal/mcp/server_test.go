package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jpl-au/lned/internal/session"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type toolFunc func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)

func newHandlers(lines ...string) *handlers {
	s := session.New(session.Options{})
	for i := len(lines) - 1; i >= 0; i-- {
		s.Insert(lines[i])
	}
	return &handlers{svc: s}
}

// call invokes a tool handler and returns its result and text content.
func call(t *testing.T, fn toolFunc, args map[string]any) (*mcp.CallToolResult, string) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args

	res, err := fn(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.Len(t, res.Content, 1)
	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "content is %T", res.Content[0])
	return res, tc.Text
}

func decodeView(t *testing.T, text string) bufferView {
	t.Helper()
	var v bufferView
	require.NoError(t, json.Unmarshal([]byte(text), &v))
	return v
}

func TestInsertLine(t *testing.T) {
	h := newHandlers("alpha")

	res, text := call(t, h.insertLine, map[string]any{"text": "beta"})
	assert.False(t, res.IsError)
	assert.Equal(t, "inserted line 1 of 2", text)
	assert.Equal(t, []string{"beta", "alpha"}, h.svc.Lines())

	res, _ = call(t, h.insertLine, map[string]any{})
	assert.True(t, res.IsError)
}

func TestDeleteLine(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]any
		wantErr string
		want    []string
	}{
		{"first", map[string]any{"line": float64(1)}, "", []string{"b", "c"}},
		{"last", map[string]any{"line": float64(3)}, "", []string{"a", "b"}},
		{"out of range", map[string]any{"line": float64(4)}, "line 4 not found: valid lines are 1-3", []string{"a", "b", "c"}},
		{"zero", map[string]any{"line": float64(0)}, "line 0 not found: valid lines are 1-3", []string{"a", "b", "c"}},
		{"fractional", map[string]any{"line": 1.5}, "line is required and must be a whole number", []string{"a", "b", "c"}},
		{"missing", map[string]any{}, "line is required and must be a whole number", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlers("a", "b", "c")
			res, text := call(t, h.deleteLine, tt.args)
			if tt.wantErr != "" {
				assert.True(t, res.IsError)
				assert.Equal(t, tt.wantErr, text)
			} else {
				assert.False(t, res.IsError)
			}
			assert.Equal(t, tt.want, h.svc.Lines())
		})
	}
}

func TestDeleteLine_EmptyBuffer(t *testing.T) {
	h := newHandlers()
	res, text := call(t, h.deleteLine, map[string]any{"line": float64(1)})
	assert.True(t, res.IsError)
	assert.Equal(t, "line 1 not found: buffer is empty", text)
}

func TestModifyLine(t *testing.T) {
	h := newHandlers("a", "b")

	res, text := call(t, h.modifyLine, map[string]any{"line": float64(2), "text": "B"})
	assert.False(t, res.IsError)
	assert.Equal(t, "modified line 2", text)
	assert.Equal(t, []string{"a", "B"}, h.svc.Lines())

	res, _ = call(t, h.modifyLine, map[string]any{"line": float64(2)})
	assert.True(t, res.IsError, "text is required")
}

func TestReplaceText(t *testing.T) {
	tests := []struct {
		name string
		args map[string]any
		want []string
		n    int
	}{
		{
			name: "global by default",
			args: map[string]any{"search": "foo", "replace": "baz"},
			want: []string{"baz baz", "bar baz"},
			n:    3,
		},
		{
			name: "first per line",
			args: map[string]any{"search": "foo", "replace": "baz", "global": false},
			want: []string{"baz foo", "bar baz"},
			n:    2,
		},
		{
			name: "replace defaults to empty",
			args: map[string]any{"search": "foo "},
			want: []string{"foo", "bar foo"},
			n:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlers("foo foo", "bar foo")
			res, text := call(t, h.replaceText, tt.args)
			require.False(t, res.IsError, text)

			var got map[string]int
			require.NoError(t, json.Unmarshal([]byte(text), &got))
			assert.Equal(t, tt.n, got["replaced"])
			assert.Equal(t, tt.want, h.svc.Lines())
		})
	}
}

func TestReplaceText_EmptySearch(t *testing.T) {
	h := newHandlers("abc")
	res, _ := call(t, h.replaceText, map[string]any{"search": "", "replace": "x"})
	assert.True(t, res.IsError)
	assert.Equal(t, []string{"abc"}, h.svc.Lines())
}

func TestUndoRedo(t *testing.T) {
	h := newHandlers()
	call(t, h.insertLine, map[string]any{"text": "alpha"})
	call(t, h.insertLine, map[string]any{"text": "beta"})

	res, text := call(t, h.undo, nil)
	require.False(t, res.IsError, text)
	v := decodeView(t, text)
	assert.Equal(t, []string{"alpha"}, v.Content)
	assert.Equal(t, 1, v.Lines)
	assert.Equal(t, 1, v.RedoDepth)

	res, text = call(t, h.redo, nil)
	require.False(t, res.IsError, text)
	assert.Equal(t, []string{"beta", "alpha"}, decodeView(t, text).Content)

	res, text = call(t, h.redo, nil)
	assert.True(t, res.IsError)
	assert.Equal(t, "nothing to redo", text)
}

func TestUndo_Empty(t *testing.T) {
	h := newHandlers()
	res, text := call(t, h.undo, nil)
	assert.True(t, res.IsError)
	assert.Equal(t, "nothing to undo", text)
}

func TestShow(t *testing.T) {
	h := newHandlers()
	_, text := call(t, h.show, nil)
	v := decodeView(t, text)
	assert.Equal(t, []string{}, v.Content)
	assert.Equal(t, 0, v.Lines)
	assert.Empty(t, v.Path)
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.txt")
	dst := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(src, []byte("one\ntwo\n"), 0644))

	h := newHandlers()
	res, text := call(t, h.load, map[string]any{"path": src})
	require.False(t, res.IsError, text)
	assert.Equal(t, []string{"one", "two"}, h.svc.Lines())
	assert.Contains(t, text, `"lines": 2`)

	call(t, h.modifyLine, map[string]any{"line": float64(1), "text": "ONE"})

	res, text = call(t, h.save, map[string]any{"path": dst})
	require.False(t, res.IsError, text)
	assert.Contains(t, text, `"bytes": 8`)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "ONE\ntwo\n", string(data))

	// Without a path the last saved file is reused
	call(t, h.insertLine, map[string]any{"text": "zero"})
	res, _ = call(t, h.save, map[string]any{})
	require.False(t, res.IsError)
	data, err = os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "zero\nONE\ntwo\n", string(data))
}

func TestLoad_Missing(t *testing.T) {
	h := newHandlers("keep")
	missing := filepath.Join(t.TempDir(), "nope.txt")

	res, text := call(t, h.load, map[string]any{"path": missing})
	assert.True(t, res.IsError)
	assert.Equal(t, "file not found: "+missing, text)
	assert.Equal(t, []string{"keep"}, h.svc.Lines())
}

func TestSave_NoPath(t *testing.T) {
	h := newHandlers("x")
	res, text := call(t, h.save, map[string]any{})
	assert.True(t, res.IsError)
	assert.Contains(t, text, "no file has been loaded or saved yet")
}

func TestReadBuffer(t *testing.T) {
	h := newHandlers("a", "", "c")

	req := mcp.ReadResourceRequest{}
	req.Params.URI = BufferURI
	contents, err := h.readBuffer(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, contents, 1)

	tc, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, "a\n\nc\n", tc.Text)
	assert.Equal(t, "text/plain", tc.MIMEType)

	req.Params.URI = "lned://other"
	_, err = h.readBuffer(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidURI)
}

func TestConfigTools(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Chdir(t.TempDir())

	h := newHandlers()

	res, text := call(t, h.configSet, map[string]any{"key": "display.numbers", "value": "true"})
	require.False(t, res.IsError, text)
	assert.Equal(t, "display.numbers = true (applies on next start)", text)

	res, text = call(t, h.configGet, map[string]any{"key": "display.numbers"})
	require.False(t, res.IsError, text)
	assert.JSONEq(t, `{"display.numbers": "true"}`, text)

	res, _ = call(t, h.configSet, map[string]any{"key": "no.such.key", "value": "1"})
	assert.True(t, res.IsError)
}

func TestGetGuide(t *testing.T) {
	h := newHandlers()

	res, text := call(t, h.getGuide, map[string]any{"topic": "sed"})
	require.False(t, res.IsError)
	assert.Contains(t, text, "lned sed")

	res, text = call(t, h.getGuide, map[string]any{"topic": "no-such-topic"})
	assert.True(t, res.IsError)
	assert.Contains(t, text, "available topics: config, mcp, menu, sed")
}

func TestNewServer_ExtraTools(t *testing.T) {
	h := newHandlers()
	extra := server.ServerTool{
		Tool: mcp.NewTool("lned_extra"),
		Handler: func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("ok"), nil
		},
	}
	assert.NotNil(t, NewServer(h.svc, extra))
}

func TestGetInt(t *testing.T) {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{"n": float64(7), "f": 2.5, "s": "3"}

	n, ok := getInt(req, "n")
	assert.True(t, ok)
	assert.Equal(t, 7, n)

	_, ok = getInt(req, "f")
	assert.False(t, ok)
	_, ok = getInt(req, "s")
	assert.False(t, ok)
	_, ok = getInt(req, "missing")
	assert.False(t, ok)
}

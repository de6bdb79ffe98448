// Package service defines the shared interface for editing operations.
// Front ends (menu, CLI commands, MCP tools) depend on this interface rather
// than on the session implementation, so they can be tested with fakes.
package service

import "context"

// Service defines all operations on one editing session.
//
// Use session.New() to obtain an implementation.
//
// Example:
//
//	svc := session.New(session.Options{})
//	if err := svc.Load(ctx, "notes.txt"); err != nil {
//	    return err
//	}
//	svc.Insert("first line")
//	return svc.Save(ctx, "")
type Service interface {
	// Insert prepends text as the new first line. Always succeeds.
	Insert(text string)

	// Delete removes line n (1-based).
	// Returns buffer.ErrLineNotFound if n is out of range.
	Delete(n int) error

	// Modify replaces the text of line n (1-based).
	// Returns buffer.ErrLineNotFound if n is out of range.
	Modify(n int, text string) error

	// Replace substitutes search with replace on every line and returns the
	// number of replacements. With global false only the first occurrence on
	// each line is replaced. Returns buffer.ErrEmptySearch for empty search.
	Replace(search, replace string, global bool) (int, error)

	// Undo reverts the most recent change.
	// Returns an error wrapping history.ErrEmpty when there is nothing to undo.
	Undo() error

	// Redo reapplies the most recently undone change.
	// Returns an error wrapping history.ErrEmpty when there is nothing to redo.
	Redo() error

	// Lines returns a copy of the buffer's lines in order.
	Lines() []string

	// Status reports size, history depth and the current file.
	Status() Status

	// Load replaces the buffer with the lines of a file. Missing files and
	// directories return session.ErrFileNotFound without touching the buffer.
	Load(ctx context.Context, path string) error

	// Open is Load with the history cleared afterwards. Commands that start
	// a session on a file use it.
	Open(ctx context.Context, path string) error

	// Save writes the buffer to path, or to the current file if path is empty.
	Save(ctx context.Context, path string) error
}

// Status summarises a session.
type Status struct {
	Path      string `json:"path,omitempty"`
	Lines     int    `json:"lines"`
	UndoDepth int    `json:"undo"`
	RedoDepth int    `json:"redo"`
}

// Package buffer implements the line buffer at the heart of lned.
//
// A Buffer is an ordered sequence of lines addressed by 1-based line number.
// Every mutation first captures a full snapshot of the buffer into its
// history.Manager, so any change can be undone and redone.
//
// Mutations that cannot apply (out-of-range line numbers, empty search text)
// return an error and leave both the buffer and its history untouched.
// A Buffer is not safe for concurrent use; see package session for the
// serialised wrapper.
package buffer

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/jpl-au/lned/internal/history"
)

var (
	// ErrLineNotFound is returned when a line number does not reference an existing line.
	ErrLineNotFound = errors.New("line not found")
	// ErrEmptySearch is returned when search-and-replace is given empty search text.
	ErrEmptySearch = errors.New("search text is empty")
)

// DefaultMaxLineLength bounds a single line read by LoadFrom.
const DefaultMaxLineLength = 10 * 1024 * 1024 // 10 MB

// Options configures a Buffer.
type Options struct {
	HistoryLimit  int // Maximum undo depth (0 = unlimited)
	MaxLineLength int // Longest line LoadFrom accepts (0 = DefaultMaxLineLength)
}

// Buffer is an ordered sequence of text lines with undo/redo history.
type Buffer struct {
	lines []string
	hist  *history.Manager
	opt   Options
}

// New creates an empty buffer.
func New(opts Options) *Buffer {
	if opts.MaxLineLength <= 0 {
		opts.MaxLineLength = DefaultMaxLineLength
	}
	return &Buffer{
		lines: []string{},
		hist:  history.New(opts.HistoryLimit),
		opt:   opts,
	}
}

// Len returns the number of lines.
func (b *Buffer) Len() int { return len(b.lines) }

// Line returns line n (1-based).
func (b *Buffer) Line(n int) (string, error) {
	if err := b.check(n); err != nil {
		return "", err
	}
	return b.lines[n-1], nil
}

// Lines returns an iterator over the lines in order. The sequence may be
// ranged over any number of times and always reflects the buffer at the
// time iteration starts. The buffer must not be mutated during iteration.
func (b *Buffer) Lines() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, l := range b.lines {
			if !yield(l) {
				return
			}
		}
	}
}

// Snapshot returns an independent copy of the current lines.
func (b *Buffer) Snapshot() history.Snapshot {
	return history.Take(b.lines)
}

// InsertAtHead prepends text as the new first line.
func (b *Buffer) InsertAtHead(text string) {
	b.capture()
	b.lines = slices.Insert(b.lines, 0, text)
}

// DeleteAt removes line n (1-based).
func (b *Buffer) DeleteAt(n int) error {
	if err := b.check(n); err != nil {
		return err
	}
	b.capture()
	b.lines = slices.Delete(b.lines, n-1, n)
	return nil
}

// ModifyAt replaces the text of line n (1-based).
func (b *Buffer) ModifyAt(n int, text string) error {
	if err := b.check(n); err != nil {
		return err
	}
	b.capture()
	b.lines[n-1] = text
	return nil
}

// SearchAndReplace replaces every non-overlapping occurrence of search with
// replace on every line, returning the number of replacements made.
func (b *Buffer) SearchAndReplace(search, replace string) (int, error) {
	return b.Substitute(search, replace, -1)
}

// Substitute is SearchAndReplace limited to perLine replacements on each
// line. A negative perLine replaces every occurrence.
//
// History is captured once for the whole buffer, even when nothing matches.
func (b *Buffer) Substitute(search, replace string, perLine int) (int, error) {
	if search == "" {
		return 0, ErrEmptySearch
	}
	b.capture()
	total := 0
	for i, l := range b.lines {
		nl, n := replaceLine(l, search, replace, perLine)
		if n > 0 {
			b.lines[i] = nl
			total += n
		}
	}
	return total, nil
}

// Undo restores the buffer to its state before the most recent mutation.
// Returns an error wrapping history.ErrEmpty when there is nothing to undo.
func (b *Buffer) Undo() error {
	prev, err := b.hist.Undo(b.Snapshot())
	if err != nil {
		return err
	}
	b.install(prev)
	return nil
}

// Redo reapplies the most recently undone change.
// Returns an error wrapping history.ErrEmpty when there is nothing to redo.
func (b *Buffer) Redo() error {
	next, err := b.hist.Redo(b.Snapshot())
	if err != nil {
		return err
	}
	b.install(next)
	return nil
}

// CanUndo reports whether Undo would succeed.
func (b *Buffer) CanUndo() bool { return b.hist.CanUndo() }

// CanRedo reports whether Redo would succeed.
func (b *Buffer) CanRedo() bool { return b.hist.CanRedo() }

// UndoDepth returns the number of undoable changes.
func (b *Buffer) UndoDepth() int { return b.hist.UndoDepth() }

// RedoDepth returns the number of redoable changes.
func (b *Buffer) RedoDepth() int { return b.hist.RedoDepth() }

// ResetHistory discards all undo and redo entries.
func (b *Buffer) ResetHistory() { b.hist.Clear() }

func (b *Buffer) capture() {
	b.hist.Capture(b.Snapshot())
}

func (b *Buffer) install(s history.Snapshot) {
	b.lines = s.Lines()
}

func (b *Buffer) check(n int) error {
	if n < 1 || n > len(b.lines) {
		return fmt.Errorf("%w: %d (buffer has %d lines)", ErrLineNotFound, n, len(b.lines))
	}
	return nil
}

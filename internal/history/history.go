// Package history provides whole-buffer undo/redo for the line buffer.
//
// Every mutation pushes a complete copy of the pre-mutation buffer onto the
// undo stack. Undo and redo move snapshots between the two stacks; the caller
// installs whichever snapshot comes back as its live state. Memory cost is
// buffer size times history depth, bounded only by Limit.
package history

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrEmpty is returned when the requested stack has no entries.
	ErrEmpty = errors.New("history empty")
	// ErrNothingToUndo is returned by Undo when the undo stack is empty.
	ErrNothingToUndo = fmt.Errorf("%w: nothing to undo", ErrEmpty)
	// ErrNothingToRedo is returned by Redo when the redo stack is empty.
	ErrNothingToRedo = fmt.Errorf("%w: nothing to redo", ErrEmpty)
)

// Snapshot is an independent copy of a buffer's lines.
// The zero value is an empty buffer.
type Snapshot struct {
	lines []string
}

// Take copies lines into a new Snapshot. Later changes to lines are not
// visible through the snapshot.
func Take(lines []string) Snapshot {
	return Snapshot{lines: slices.Clone(lines)}
}

// Lines returns a copy of the snapshot's lines, safe for the caller to mutate.
func (s Snapshot) Lines() []string {
	if len(s.lines) == 0 {
		return []string{}
	}
	return slices.Clone(s.lines)
}

// Len returns the number of lines in the snapshot.
func (s Snapshot) Len() int { return len(s.lines) }

// Manager holds the undo and redo stacks.
type Manager struct {
	undo []Snapshot
	redo []Snapshot

	// limit caps the undo stack (0 = unlimited).
	limit int
}

// New creates a Manager. A limit of 0 or less keeps every snapshot.
func New(limit int) *Manager {
	if limit < 0 {
		limit = 0
	}
	return &Manager{limit: limit}
}

// Capture records the pre-mutation state and invalidates redo.
// Called once by every mutating buffer operation before it changes anything.
func (m *Manager) Capture(current Snapshot) {
	m.pushUndo(current)
	m.redo = nil
}

// Undo pushes current onto the redo stack and returns the most recent
// pre-mutation snapshot, which the caller must install as its live state.
func (m *Manager) Undo(current Snapshot) (Snapshot, error) {
	if len(m.undo) == 0 {
		return Snapshot{}, ErrNothingToUndo
	}
	i := len(m.undo) - 1
	prev := m.undo[i]
	m.undo[i] = Snapshot{}
	m.undo = m.undo[:i]
	m.redo = append(m.redo, current)
	return prev, nil
}

// Redo pushes current onto the undo stack and returns the most recently
// undone snapshot.
func (m *Manager) Redo(current Snapshot) (Snapshot, error) {
	if len(m.redo) == 0 {
		return Snapshot{}, ErrNothingToRedo
	}
	i := len(m.redo) - 1
	next := m.redo[i]
	m.redo[i] = Snapshot{}
	m.redo = m.redo[:i]
	m.pushUndo(current)
	return next, nil
}

// Clear drops both stacks.
func (m *Manager) Clear() {
	m.undo = nil
	m.redo = nil
}

// CanUndo reports whether Undo would succeed.
func (m *Manager) CanUndo() bool { return len(m.undo) > 0 }

// CanRedo reports whether Redo would succeed.
func (m *Manager) CanRedo() bool { return len(m.redo) > 0 }

// UndoDepth returns the number of snapshots on the undo stack.
func (m *Manager) UndoDepth() int { return len(m.undo) }

// RedoDepth returns the number of snapshots on the redo stack.
func (m *Manager) RedoDepth() int { return len(m.redo) }

func (m *Manager) pushUndo(s Snapshot) {
	m.undo = append(m.undo, s)
	if m.limit > 0 && len(m.undo) > m.limit {
		drop := len(m.undo) - m.limit
		clear(m.undo[:drop])
		m.undo = slices.Clone(m.undo[drop:])
	}
}

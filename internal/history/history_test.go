package history

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTake_Independent(t *testing.T) {
	lines := []string{"a", "b"}
	s := Take(lines)
	lines[0] = "changed"

	assert.Equal(t, []string{"a", "b"}, s.Lines())

	out := s.Lines()
	out[1] = "also changed"
	assert.Equal(t, []string{"a", "b"}, s.Lines(), "Lines must return a copy")
}

func TestSnapshot_Zero(t *testing.T) {
	var s Snapshot
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, []string{}, s.Lines())
	assert.True(t, s.Equal(Take(nil)))
}

func TestManager_EmptyStacks(t *testing.T) {
	m := New(0)

	_, err := m.Undo(Take(nil))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmpty))
	assert.ErrorIs(t, err, ErrNothingToUndo)

	_, err = m.Redo(Take(nil))
	assert.ErrorIs(t, err, ErrEmpty)
	assert.ErrorIs(t, err, ErrNothingToRedo)
}

func TestManager_UndoRedo(t *testing.T) {
	m := New(0)
	s0 := Take(nil)
	s1 := Take([]string{"alpha"})
	s2 := Take([]string{"beta", "alpha"})

	m.Capture(s0)
	m.Capture(s1)
	assert.Equal(t, 2, m.UndoDepth())
	assert.False(t, m.CanRedo())

	got, err := m.Undo(s2)
	require.NoError(t, err)
	assert.True(t, got.Equal(s1))
	assert.Equal(t, 1, m.UndoDepth())
	assert.Equal(t, 1, m.RedoDepth())

	got, err = m.Redo(got)
	require.NoError(t, err)
	assert.True(t, got.Equal(s2))
	assert.Equal(t, 2, m.UndoDepth())
	assert.Equal(t, 0, m.RedoDepth())
}

func TestManager_CaptureClearsRedo(t *testing.T) {
	m := New(0)
	m.Capture(Take([]string{"a"}))

	_, err := m.Undo(Take([]string{"b"}))
	require.NoError(t, err)
	require.True(t, m.CanRedo())

	m.Capture(Take([]string{"a"}))
	assert.False(t, m.CanRedo())

	_, err = m.Redo(Take(nil))
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestManager_Limit(t *testing.T) {
	m := New(2)
	m.Capture(Take([]string{"1"}))
	m.Capture(Take([]string{"2"}))
	m.Capture(Take([]string{"3"}))

	assert.Equal(t, 2, m.UndoDepth())

	top, err := m.Undo(Take(nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, top.Lines())
	got, err := m.Undo(Take(nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, got.Lines(), "oldest snapshot should have been dropped")
}

func TestManager_Clear(t *testing.T) {
	m := New(0)
	m.Capture(Take([]string{"a"}))
	_, _ = m.Undo(Take(nil))
	m.Capture(Take([]string{"b"}))

	m.Clear()
	assert.False(t, m.CanUndo())
	assert.False(t, m.CanRedo())

	_, err := m.Undo(Take(nil))
	assert.ErrorIs(t, err, ErrEmpty)
}

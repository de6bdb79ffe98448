// Package session binds a line buffer to the file it was loaded from.
//
// A Session is what every front end (menu, CLI, MCP) drives. It adds the file
// handling the buffer deliberately knows nothing about: existence checks
// before load, atomic writes on save, and remembering the current path.
// Methods are serialised with a mutex so a server can share one session
// between requests; the buffer underneath stays single-threaded.
package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/jpl-au/lned/internal/buffer"
	"github.com/jpl-au/lned/internal/service"
)

var (
	// ErrFileNotFound is returned when load targets a missing path or a directory.
	ErrFileNotFound = fmt.Errorf("file not found: %w", fs.ErrNotExist)
	// ErrNoPath is returned by Save when neither an explicit nor a current path exists.
	ErrNoPath = errors.New("no file name given and none loaded")
)

// Options configures a Session.
type Options struct {
	HistoryLimit  int // Maximum undo depth (0 = unlimited)
	MaxLineLength int // Longest line accepted on load (0 = default)
}

// Session is one editing session over a single buffer.
type Session struct {
	mu   sync.Mutex
	buf  *buffer.Buffer
	path string
}

var _ service.Service = (*Session)(nil)

// New creates a session with an empty buffer.
func New(opts Options) *Session {
	return &Session{
		buf: buffer.New(buffer.Options{
			HistoryLimit:  opts.HistoryLimit,
			MaxLineLength: opts.MaxLineLength,
		}),
	}
}

// Insert prepends a line.
func (s *Session) Insert(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buf.InsertAtHead(text)
}

// Delete removes line n (1-based).
func (s *Session) Delete(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.DeleteAt(n)
}

// Modify replaces line n (1-based).
func (s *Session) Modify(n int, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.ModifyAt(n, text)
}

// Replace substitutes search with replace across the buffer. When global is
// false only the first occurrence on each line is replaced.
func (s *Session) Replace(search, replace string, global bool) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if global {
		return s.buf.SearchAndReplace(search, replace)
	}
	return s.buf.Substitute(search, replace, 1)
}

// Undo reverts the most recent change.
func (s *Session) Undo() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Undo()
}

// Redo reapplies the most recently undone change.
func (s *Session) Redo() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Redo()
}

// Lines returns a copy of the buffer's lines.
func (s *Session) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf.Snapshot().Lines()
}

// Status reports the session's size, history depth and file.
func (s *Session) Status() service.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return service.Status{
		Path:      s.path,
		Lines:     s.buf.Len(),
		UndoDepth: s.buf.UndoDepth(),
		RedoDepth: s.buf.RedoDepth(),
	}
}

// Path returns the file the session was last loaded from or saved to.
func (s *Session) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// Load replaces the buffer with the contents of path. The path must name an
// existing regular file; otherwise ErrFileNotFound is returned and neither
// the buffer nor its history is touched. The load itself is one undo entry.
func (s *Session) Load(ctx context.Context, path string) error {
	return s.load(ctx, path, false)
}

// Open is Load for a session that is starting on path: history is cleared
// afterwards, so the first undo cannot return to the previous buffer.
func (s *Session) Open(ctx context.Context, path string) error {
	return s.load(ctx, path, true)
}

func (s *Session) load(ctx context.Context, path string, fresh bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !IsRegularFile(path) {
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.buf.LoadFrom(f); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	if fresh {
		s.buf.ResetHistory()
	}
	s.path = path
	return nil
}

// Save writes the buffer to path, or to the current path when path is empty.
// The file is replaced atomically: a failed save leaves any existing file
// intact.
func (s *Session) Save(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if path == "" {
		path = s.path
	}
	if path == "" {
		return ErrNoPath
	}
	if err := writeAtomic(path, s.buf); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	s.path = path
	return nil
}

// IsRegularFile reports whether path exists and is not a directory.
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// writeAtomic saves buf to a temp file beside path and renames it into place.
// An existing file's permissions are kept.
func writeAtomic(path string, buf *buffer.Buffer) (err error) {
	mode := fs.FileMode(0644)
	if info, statErr := os.Stat(path); statErr == nil {
		if info.IsDir() {
			return fmt.Errorf("%s is a directory", path)
		}
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = buf.SaveTo(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmp.Name(), mode); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

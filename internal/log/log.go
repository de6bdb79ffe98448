// Package log provides centralised audit logging for lned operations.
// Logs are stored in ~/.lned/log/lned-log.db and record every command run
// from the menu, the CLI and the MCP server across directories.
//
// Entries describe what was asked for and whether it worked. They never
// contain buffer text, so the log cannot be used to reconstruct a file.
//
// # Fluent API
//
// Use the fluent builder API to construct and write log entries:
//
//	log.Event("menu:delete", "delete").
//		Path(sess.Path()).
//		Line(n).
//		Write(err)
//
//	log.Event("edit:sed", "replace").
//		Path(file).
//		Count(n).
//		Detail("global", expr.Global).
//		Write(err)
//
// The source parameter follows the format "{extension}:{command}" for CLI
// commands, "menu:{option}" for the interactive menu, or "mcp:{tool}" for MCP
// tools. Examples: "edit:cat", "menu:undo", "mcp:replace".
package log

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

var (
	global   *Logger
	mu       sync.Mutex
	disabled bool
)

// Entry represents a single log entry.
type Entry struct {
	Source string // e.g., "menu:insert", "mcp:undo"
	Action string // verb: insert, delete, modify, replace, undo, redo, load, save
	Path   string // input: file the session was working on
	Line   int    // input: 1-based line number requested

	// Output fields - populated after the operation runs
	Count int // output: lines loaded/saved or replacements made

	// Timing
	Start int64 // unix timestamp when Event() called
	End   int64 // unix timestamp when Write() called

	Success bool           // whether operation succeeded
	Error   string         // error message if failed
	Detail  map[string]any // additional operation-specific data
}

// Builder constructs a log entry using a fluent API.
// Create with [Event], chain methods to set fields, then call [Builder.Write]
// to write the entry.
type Builder struct {
	entry Entry
}

// Event creates a new log entry builder for an operation.
//
// The source identifies where the operation originated:
//   - CLI commands: "{extension}:{command}" (e.g., "edit:sed", "core:config")
//   - Menu options: "menu:{option}" (e.g., "menu:undo")
//   - MCP tools: "mcp:{tool}" (e.g., "mcp:insert")
func Event(source, action string) *Builder {
	return &Builder{
		entry: Entry{
			Source: source,
			Action: action,
			Start:  time.Now().Unix(),
		},
	}
}

// Path sets the file this operation affects.
//
// Leave unset for operations on an unnamed buffer or that don't involve
// files at all (e.g., config).
func (b *Builder) Path(path string) *Builder {
	b.entry.Path = path
	return b
}

// Line sets the line number the caller asked for, exactly as entered.
func (b *Builder) Line(n int) *Builder {
	b.entry.Line = n
	return b
}

// Count records how many lines or replacements the operation produced.
func (b *Builder) Count(n int) *Builder {
	b.entry.Count = n
	return b
}

// Detail adds a key-value pair to the log entry's detail map.
//
// Use for operation-specific data that doesn't fit standard fields:
// flags, undo depth, scope names, etc. Can be called multiple times.
func (b *Builder) Detail(key string, value any) *Builder {
	if b.entry.Detail == nil {
		b.entry.Detail = make(map[string]any)
	}
	b.entry.Detail[key] = value
	return b
}

// Write writes the log entry to the database, deriving success/failure from err.
//
// If err is nil, the entry is logged as successful.
// If err is non-nil, the entry is logged as failed with the error message.
//
// Example:
//
//	err := sess.Undo()
//	log.Event("menu:undo", "undo").Path(sess.Path()).Write(err)
func (b *Builder) Write(err error) {
	b.entry.End = time.Now().Unix()
	b.entry.Success = err == nil
	if err != nil {
		b.entry.Error = err.Error()
	}
	Log(b.entry)
}

// Open initialises the global logger. Safe to call multiple times.
// Errors are returned but callers may choose to ignore them (best-effort logging).
func Open() error {
	mu.Lock()
	defer mu.Unlock()

	if global != nil || disabled {
		return nil
	}

	p := dbPath()
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", p)
	if err != nil {
		return err
	}

	if err := migrate(db); err != nil {
		db.Close()
		return err
	}

	global = &Logger{db: db}
	return nil
}

// Disable turns logging off for the rest of the process and closes any open
// logger. Used when the config sets log.enabled to false.
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	disabled = true
	if global != nil {
		global.db.Close()
		global = nil
	}
}

// SetProject sets the project identifier for subsequent log entries.
// The dir should be the absolute working directory of the session.
func SetProject(dir string) {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.project = hash(dir)
	}
}

// Log writes an entry. Safe to call if logger not initialised (no-op).
func Log(e Entry) {
	mu.Lock()
	l := global
	mu.Unlock()

	if l == nil {
		return
	}
	l.log(e)
}

// Close closes the global logger.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if global != nil {
		global.db.Close()
		global = nil
	}
}

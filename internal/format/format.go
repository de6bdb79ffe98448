// Package format provides output formatting utilities for buffer display.
//
// Centralises presentation so the menu, the cat command and the MCP tools
// render lines identically.
package format

import (
	"fmt"
	"io"
	"iter"
	"strconv"

	"github.com/jpl-au/lned/internal/service"
)

// minLineNumWidth is the minimum column width for line numbers.
const minLineNumWidth = 4

// Options configures line rendering.
type Options struct {
	Prefix  string // Printed before every line (e.g., "   > ")
	Numbers bool   // Prefix each line with its 1-based number
}

// Lines writes each line on its own row. total sizes the number column and
// may be 0 when numbers are off.
func Lines(w io.Writer, lines iter.Seq[string], total int, opts Options) error {
	width := len(strconv.Itoa(total))
	if width < minLineNumWidth {
		width = minLineNumWidth
	}

	n := 0
	for l := range lines {
		n++
		var err error
		if opts.Numbers {
			_, err = fmt.Fprintf(w, "%s%*d\t%s\n", opts.Prefix, width, n, l)
		} else {
			_, err = fmt.Fprintf(w, "%s%s\n", opts.Prefix, l)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Slice is Lines for a slice of lines.
func Slice(w io.Writer, lines []string, opts Options) error {
	return Lines(w, func(yield func(string) bool) {
		for _, l := range lines {
			if !yield(l) {
				return
			}
		}
	}, len(lines), opts)
}

// Status prints a one-line summary of a session.
func Status(w io.Writer, st service.Status) {
	name := st.Path
	if name == "" {
		name = "[no file]"
	}
	fmt.Fprintf(w, "%s: %s, undo %d, redo %d\n", name, plural(st.Lines, "line"), st.UndoDepth, st.RedoDepth)
}

// Saved reports a completed save.
func Saved(w io.Writer, path string, lines int, bytes int64) {
	fmt.Fprintf(w, "Saved %s (%s) to %s\n", plural(lines, "line"), humanSize(bytes), path)
}

// ByteSize returns the size lines occupy on disk, one "\n" per line.
func ByteSize(lines []string) int64 {
	var n int64
	for _, l := range lines {
		n += int64(len(l)) + 1
	}
	return n
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// humanSize formats a byte count as human-readable (e.g., "1.2K", "3.4M").
func humanSize(bytes int64) string {
	const (
		_        = iota
		KB int64 = 1 << (10 * iota)
		MB
		GB
	)
	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.1fG", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.1fM", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1fK", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%dB", bytes)
	}
}

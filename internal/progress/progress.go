// Package progress provides CLI progress indicators for multi-file commands.
// Output normally goes to stderr to keep stdout clean for piping, and is
// only drawn when that stream is a terminal.
package progress

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// minItems is the minimum number of items before showing progress.
// For small operations, progress adds noise without benefit.
const minItems = 5

// Progress tracks and displays operation progress.
type Progress struct {
	w       io.Writer
	label   string
	total   int
	current int
	isTTY   bool
	width   int // longest line drawn, for clearing
}

// New creates a progress reporter writing to w. Nothing is drawn unless w is
// a terminal and total is at least minItems.
func New(w io.Writer, label string, total int) *Progress {
	return &Progress{
		w:     w,
		label: label,
		total: total,
		isTTY: IsTerminal(w),
	}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Increment advances the progress counter by one.
func (p *Progress) Increment() {
	p.current++
}

// Print writes the current progress, overwriting the previous line.
func (p *Progress) Print() {
	if !p.visible() {
		return
	}

	pct := 0
	if p.total > 0 {
		pct = (p.current * 100) / p.total
	}

	line := fmt.Sprintf("%s... %d/%d (%d%%)", p.label, p.current, p.total, pct)
	p.width = max(p.width, len(line))
	fmt.Fprintf(p.w, "\r%s", line)
}

// Done clears the progress line to make way for final output.
func (p *Progress) Done() {
	if !p.visible() || p.width == 0 {
		return
	}
	fmt.Fprintf(p.w, "\r%s\r", strings.Repeat(" ", p.width))
}

func (p *Progress) visible() bool {
	return p.isTTY && p.total >= minItems
}

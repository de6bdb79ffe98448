// Package menu implements the interactive numbered menu behind `lned edit`.
//
// The loop reads a choice, then any further input the choice needs, one line
// at a time. Every failure is reported and the loop carries on; only Exit,
// end of input or a cancelled context ends it.
package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jpl-au/lned/internal/buffer"
	"github.com/jpl-au/lned/internal/format"
	"github.com/jpl-au/lned/internal/service"
)

// Options configures how the menu renders the buffer.
type Options struct {
	Format        format.Options
	Diff          bool // Print a diff after undo and redo
	Colour        bool // Colourise diffs
	MaxLineLength int  // Longest input line accepted (0 = default)
}

// Menu drives a Service from line-oriented input.
type Menu struct {
	svc  service.Service
	in   *bufio.Scanner
	out  io.Writer
	opts Options
}

type option struct {
	key   int
	label string
	run   func(m *Menu, ctx context.Context) error
}

// options in the order they are listed. Exit (0) is handled by the loop.
var options = []option{
	{1, "Insert Line", (*Menu).insert},
	{2, "Display Text", (*Menu).display},
	{3, "Undo", (*Menu).undo},
	{4, "Redo", (*Menu).redo},
	{5, "Search and Replace", (*Menu).replace},
	{6, "Save to File", (*Menu).save},
	{7, "Load from File", (*Menu).load},
	{8, "Delete Line", (*Menu).delete},
	{9, "Modify Line", (*Menu).modify},
}

// New creates a menu reading from in and writing to out.
func New(svc service.Service, in io.Reader, out io.Writer, opts Options) *Menu {
	maxLen := opts.MaxLineLength
	if maxLen <= 0 {
		maxLen = buffer.DefaultMaxLineLength
	}
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, min(64*1024, maxLen)), maxLen)
	return &Menu{svc: svc, in: scanner, out: out, opts: opts}
}

// Run shows the menu until the user exits or input ends. It returns an error
// only when input cannot be read or ctx is cancelled.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.printMenu()
		line, ok := m.readLine("\nEnter your choice: ")
		if !ok {
			fmt.Fprintln(m.out, "\nExiting...")
			return m.in.Err()
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
			continue
		}
		if choice == 0 {
			fmt.Fprintln(m.out, "Exiting...")
			return nil
		}

		opt, found := lookup(choice)
		if !found {
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
			continue
		}
		if err := opt.run(m, ctx); err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(m.out, "\nExiting...")
				return m.in.Err()
			}
			fmt.Fprintf(m.out, "Error: %v\n", err)
		}
	}
}

func lookup(key int) (option, bool) {
	for _, o := range options {
		if o.key == key {
			return o, true
		}
	}
	return option{}, false
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out, "\n------ Text Editor Menu ------")
	for _, o := range options {
		fmt.Fprintf(m.out, "%d. %s\n", o.key, o.label)
	}
	fmt.Fprintln(m.out, "0. Exit")
}

// readLine prints prompt and returns the next input line without its line
// ending. ok is false at end of input.
func (m *Menu) readLine(prompt string) (line string, ok bool) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSuffix(m.in.Text(), "\r"), true
}

// prompt is readLine for option handlers, which report end of input as io.EOF.
func (m *Menu) prompt(text string) (string, error) {
	line, ok := m.readLine(text)
	if !ok {
		return "", io.EOF
	}
	return line, nil
}

// promptLine asks for a line number. Input must be an integer; range is
// checked by the buffer.
func (m *Menu) promptLine(text string) (int, error) {
	line, err := m.prompt(text)
	if err != nil {
		return 0, err
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(line))
	if convErr != nil {
		return 0, fmt.Errorf("invalid line number %q", strings.TrimSpace(line))
	}
	return n, nil
}

// show renders the whole buffer.
func (m *Menu) show() {
	lines := m.svc.Lines()
	if len(lines) == 0 {
		fmt.Fprintln(m.out, "(empty)")
		return
	}
	_ = format.Slice(m.out, lines, m.opts.Format)
}

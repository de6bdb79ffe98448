package menu

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/jpl-au/lned/internal/buffer"
	"github.com/jpl-au/lned/internal/diff"
	"github.com/jpl-au/lned/internal/format"
	"github.com/jpl-au/lned/internal/history"
	"github.com/jpl-au/lned/internal/log"
)

func (m *Menu) insert(_ context.Context) error {
	line, err := m.prompt("Enter line to insert: ")
	if err != nil {
		return err
	}
	m.svc.Insert(line)
	log.Event("menu:insert", "insert").Path(m.svc.Status().Path).Write(nil)
	fmt.Fprintf(m.out, "\nThe line: '%s' was added to the Editor.\n", line)
	return nil
}

func (m *Menu) display(_ context.Context) error {
	fmt.Fprintln(m.out, "Displaying Text:")
	m.show()
	return nil
}

func (m *Menu) undo(_ context.Context) error {
	fmt.Fprintln(m.out, "Undoing...")
	before := m.svc.Lines()
	err := m.svc.Undo()
	log.Event("menu:undo", "undo").Path(m.svc.Status().Path).Write(err)
	if errors.Is(err, history.ErrEmpty) {
		fmt.Fprintln(m.out, "Error: Nothing to undo.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Undoing Completed!\nYour editor now looks like:")
	m.show()
	m.showDiff(before)
	return nil
}

func (m *Menu) redo(_ context.Context) error {
	fmt.Fprintln(m.out, "Redoing...")
	before := m.svc.Lines()
	err := m.svc.Redo()
	log.Event("menu:redo", "redo").Path(m.svc.Status().Path).Write(err)
	if errors.Is(err, history.ErrEmpty) {
		fmt.Fprintln(m.out, "Error: Nothing to redo.")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Redoing Completed!\nYour editor now looks like:")
	m.show()
	m.showDiff(before)
	return nil
}

// showDiff prints what the last undo or redo changed when diffs are enabled.
func (m *Menu) showDiff(before []string) {
	if !m.opts.Diff {
		return
	}
	diff.Run(m.out, before, m.svc.Lines(), "before", "after", m.opts.Colour)
}

func (m *Menu) replace(_ context.Context) error {
	search, err := m.prompt("Enter search string: ")
	if err != nil {
		return err
	}
	repl, err := m.prompt("Enter replace string: ")
	if err != nil {
		return err
	}

	n, err := m.svc.Replace(search, repl, true)
	log.Event("menu:replace", "replace").
		Path(m.svc.Status().Path).
		Count(n).
		Detail("global", true).
		Write(err)
	if errors.Is(err, buffer.ErrEmptySearch) {
		fmt.Fprintln(m.out, "Error: search string must not be empty.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(m.out, "Replaced %d occurrence(s) of '%s' with '%s'.\n", n, search, repl)
	fmt.Fprintln(m.out, "Your editor now looks like:")
	m.show()
	return nil
}

func (m *Menu) save(ctx context.Context) error {
	current := m.svc.Status().Path
	text := "Enter file name to save: "
	if current != "" {
		text = fmt.Sprintf("Enter file name to save [%s]: ", current)
	}
	name, err := m.prompt(text)
	if err != nil {
		return err
	}

	err = m.svc.Save(ctx, name)
	st := m.svc.Status()
	log.Event("menu:save", "save").Path(st.Path).Count(st.Lines).Write(err)
	if err != nil {
		return err
	}
	format.Saved(m.out, st.Path, st.Lines, format.ByteSize(m.svc.Lines()))
	return nil
}

func (m *Menu) load(ctx context.Context) error {
	name, err := m.prompt("Enter file name to load: ")
	if err != nil {
		return err
	}

	err = m.svc.Load(ctx, name)
	log.Event("menu:load", "load").Path(name).Count(m.svc.Status().Lines).Write(err)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(m.out, "Error: a file named '%s' does not exist.\n", name)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "The content was loaded successfully!")
	m.show()
	return nil
}

func (m *Menu) delete(_ context.Context) error {
	n, err := m.promptLine("Enter line number to delete: ")
	if err != nil {
		return err
	}

	err = m.svc.Delete(n)
	log.Event("menu:delete", "delete").Path(m.svc.Status().Path).Line(n).Write(err)
	if errors.Is(err, buffer.ErrLineNotFound) {
		fmt.Fprintf(m.out, "Error: line %d does not exist.\n", n)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Line %d was deleted.\n", n)
	return nil
}

func (m *Menu) modify(_ context.Context) error {
	n, err := m.promptLine("Enter line number to modify: ")
	if err != nil {
		return err
	}
	text, err := m.prompt("Enter new text: ")
	if err != nil {
		return err
	}

	err = m.svc.Modify(n, text)
	log.Event("menu:modify", "modify").Path(m.svc.Status().Path).Line(n).Write(err)
	if errors.Is(err, buffer.ErrLineNotFound) {
		fmt.Fprintf(m.out, "Error: line %d does not exist.\n", n)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Line %d was changed to '%s'.\n", n, text)
	return nil
}

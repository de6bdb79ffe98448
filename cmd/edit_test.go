package cmd

import "testing"

func TestEdit(t *testing.T) {
	t.Run("insert and save", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeFile("notes.txt", "world\n")

		out := env.runStdin("1\nhello\n6\n\n0\n", "edit", "notes.txt")

		env.contains(out, "The line: 'hello' was added to the Editor.")
		env.contains(out, "Exiting...")
		env.equals(env.readFile("notes.txt"), "hello\nworld")
	})

	t.Run("undo before save", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeFile("notes.txt", "world\n")

		out := env.runStdin("1\nscratch\n3\n6\n\n0\n", "edit", "notes.txt")

		env.contains(out, "Undoing Completed!")
		env.equals(env.readFile("notes.txt"), "world")
	})

	t.Run("opened file is the first undo state", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeFile("notes.txt", "world\n")

		out := env.runStdin("3\n0\n", "edit", "notes.txt")
		env.contains(out, "Error: Nothing to undo.")
	})

	t.Run("nothing written without save", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeFile("notes.txt", "world\n")

		env.runStdin("8\n1\n0\n", "edit", "notes.txt")

		env.equals(env.readFile("notes.txt"), "world")
	})

	t.Run("save as new file", func(t *testing.T) {
		env := newTestEnv(t)

		env.runStdin("1\nb\n1\na\n6\nout.txt\n0\n", "edit")

		env.equals(env.readFile("out.txt"), "a\nb")
	})

	t.Run("end of input exits", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.runStdin("", "edit")
		env.contains(out, "Exiting...")
	})
}

func TestEdit_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.runErr("edit", "missing.txt")
		if err == nil {
			t.Error("Edit(missing file) = nil, want error")
		}
	})

	t.Run("too many args", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.runErr("edit", "a.txt", "b.txt")
		if err == nil {
			t.Error("Edit(two files) = nil, want error")
		}
	})
}

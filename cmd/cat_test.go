package cmd

import "testing"

func TestCat(t *testing.T) {
	t.Run("default prefix", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeFile("notes.txt", "alpha\nbeta\n")

		out := env.run("cat", "notes.txt")
		env.equals(out, "   > alpha\n   > beta")
	})

	t.Run("numbered", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeFile("notes.txt", "alpha\nbeta\n")

		out := env.run("cat", "-n", "notes.txt")
		env.contains(out, "   1\talpha")
		env.contains(out, "   2\tbeta")
	})

	t.Run("raw", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeFile("notes.txt", "alpha\r\nbeta\r\n")

		out := env.run("cat", "--raw", "notes.txt")
		env.equals(out, "alpha\nbeta")
	})

	t.Run("configured prefix", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeFile("notes.txt", "alpha\n")
		env.run("config", "display.prefix", "# ")

		out := env.run("cat", "notes.txt")
		env.equals(out, "# alpha")
	})

	t.Run("JSON output", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeFile("notes.txt", "alpha\nbeta\n")

		out := env.stdout("cat", "notes.txt", "-o", "json")
		env.contains(out, `"lines":["alpha","beta"]`)
		env.contains(out, `"path":"notes.txt"`)
	})

	t.Run("missing file", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.runErr("cat", "missing.txt")
		if err == nil {
			t.Error("Cat(missing file) = nil, want error")
		}
	})
}

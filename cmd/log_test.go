package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog(t *testing.T) {
	t.Run("records commands", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeFile("notes.txt", "teh\n")
		env.run("sed", "-i", "s/teh/the/", "notes.txt")

		out := env.run("log")
		env.contains(out, "edit:sed")
		env.contains(out, "notes.txt")
	})

	t.Run("failures are recorded", func(t *testing.T) {
		env := newTestEnv(t)
		_, _ = env.runErr("cat", "missing.txt")

		out := env.run("log")
		env.contains(out, "edit:cat")
		env.contains(out, "failed:")
	})

	t.Run("JSON output", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeFile("notes.txt", "a\n")
		env.run("cat", "notes.txt")

		var records []struct {
			Source  string `json:"source"`
			Path    string `json:"path"`
			Success bool   `json:"success"`
		}
		require.NoError(t, json.Unmarshal([]byte(env.stdout("log", "-o", "json")), &records))
		require.NotEmpty(t, records)
		assert.Equal(t, "edit:cat", records[0].Source)
		assert.Equal(t, "notes.txt", records[0].Path)
		assert.True(t, records[0].Success)
	})

	t.Run("scoped to directory", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeFile("notes.txt", "a\n")
		env.run("cat", "notes.txt")

		other := newTestEnv(t)
		other.home = env.home

		env.contains(other.run("log"), "No log entries")
		env.contains(other.run("log", "--all"), "edit:cat")
	})

	t.Run("disabled", func(t *testing.T) {
		env := newTestEnv(t)
		env.run("config", "log.enabled", "false")

		_, err := env.runErr("log")
		assert.Error(t, err)
	})
}

func TestLog_Prune(t *testing.T) {
	t.Run("dry run counts", func(t *testing.T) {
		env := newTestEnv(t)
		env.writeFile("notes.txt", "a\n")
		env.run("cat", "notes.txt")

		out := env.run("log", "prune", "--older-than", "1w", "--dry-run")
		env.contains(out, "Would delete 0 log entries")
		env.contains(env.run("log"), "edit:cat")
	})

	t.Run("force", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("log", "prune", "--older-than", "1w", "--force")
		env.contains(out, "Deleted 0 log entries")
	})

	t.Run("declined", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.runStdin("n\n", "log", "prune", "--older-than", "1w")
		env.contains(out, "Cancelled")
	})

	t.Run("bad duration", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.runErr("log", "prune", "--older-than", "soon")
		assert.Error(t, err)
	})

	t.Run("duration required", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.runErr("log", "prune")
		assert.Error(t, err)
	})
}

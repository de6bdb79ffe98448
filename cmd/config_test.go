package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfig(t *testing.T) {
	t.Run("list shows every key", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("config")
		env.contains(out, "display.prefix")
		env.contains(out, "history.limit")
		env.contains(out, "limits.max_line_length")
		env.contains(out, "log.enabled")
	})

	t.Run("set writes global config", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("config", "display.numbers", "true")
		env.contains(out, "display.numbers = true (global)")

		_, err := os.Stat(filepath.Join(env.home, ".lned", "config.yaml"))
		assert.NoError(t, err)
	})

	t.Run("local flag writes local config", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("config", "--local", "history.limit", "5")
		env.contains(out, "(local)")

		_, err := os.Stat(filepath.Join(env.dir, ".lned", "config.yaml"))
		assert.NoError(t, err)
		env.equals(env.run("config", "history.limit"), "5")
	})
}

func TestConfig_Set(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"prefix", "display.prefix", ">> "},
		{"numbers", "display.numbers", "true"},
		{"colour", "display.colour", "false"},
		{"diff", "display.diff", "true"},
		{"history limit", "history.limit", "100"},
		{"max line length", "limits.max_line_length", "4096"},
		{"log", "log.enabled", "false"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)

			env.run("config", tc.key, tc.value)

			out := env.run("config", tc.key)
			env.contains(out, tc.value)
		})
	}
}

func TestConfig_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown key", []string{"config", "invalid.key", "value"}},
		{"get unknown key", []string{"config", "invalid.key"}},
		{"negative history limit", []string{"config", "history.limit", "-1"}},
		{"not a bool", []string{"config", "display.numbers", "maybe"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)

			_, err := env.runErr(tc.args...)
			assert.Error(t, err)
		})
	}
}

package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuide(t *testing.T) {
	t.Run("main guide", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("guide")
		env.contains(out, "# lned")
		env.contains(out, "lned edit")
	})

	t.Run("topic", func(t *testing.T) {
		env := newTestEnv(t)

		out := env.run("guide", "sed")
		env.contains(out, "lned sed")
	})

	t.Run("unknown topic lists topics", func(t *testing.T) {
		env := newTestEnv(t)

		out, err := env.runErr("guide", "nope")
		assert.Error(t, err)
		env.contains(out, "Available:")
		env.contains(out, "menu")
	})

	t.Run("JSON output", func(t *testing.T) {
		env := newTestEnv(t)

		var got map[string]string
		require.NoError(t, json.Unmarshal([]byte(env.stdout("guide", "menu", "-o", "json")), &got))
		assert.Equal(t, "menu", got["topic"])
		assert.NotEmpty(t, got["content"])
	})
}

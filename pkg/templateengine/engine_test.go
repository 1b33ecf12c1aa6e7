package templateengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	engine := NewGoTemplateEngine()

	t.Run("Success - plain text", func(t *testing.T) {
		assert.NoError(t, engine.Validate("Hello there"))
	})

	t.Run("Success - variables and conditions", func(t *testing.T) {
		assert.NoError(t, engine.Validate("Hello {{.name}}{{if .event}}, see you at {{.event}}{{end}}"))
	})

	t.Run("Error - unclosed action", func(t *testing.T) {
		err := engine.Validate("Hello {{.name")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid syntax")
	})

	t.Run("Error - unknown keyword", func(t *testing.T) {
		assert.Error(t, engine.Validate("{{fi .x}}oops{{end}}"))
	})
}

func TestRender(t *testing.T) {
	engine := NewGoTemplateEngine()

	t.Run("Success - substitutes context values", func(t *testing.T) {
		out, err := engine.Render(
			"Hello {{.name}}, your workshop starts {{.start}}.",
			map[string]any{"name": "Rhea", "start": "2026-10-01"},
		)
		require.NoError(t, err)
		assert.Equal(t, "Hello Rhea, your workshop starts 2026-10-01.", out)
	})

	t.Run("Success - iterates lists", func(t *testing.T) {
		out, err := engine.Render(
			"Instructors:{{range .instructors}} {{.}}{{end}}",
			map[string]any{"instructors": []string{"a@example.org", "b@example.org"}},
		)
		require.NoError(t, err)
		assert.Equal(t, "Instructors: a@example.org b@example.org", out)
	})

	t.Run("Error - syntax error surfaces", func(t *testing.T) {
		_, err := engine.Render("{{.name", nil)
		assert.Error(t, err)
	})
}

package templateengine

import (
	"bytes"
	"fmt"
	"text/template"
)

// Engine parses and renders email template sources. EmailTemplate validation
// and ScheduledEmail rendering both go through this interface, so the
// concrete template language stays swappable.
type Engine interface {
	// Validate checks template syntax without rendering.
	Validate(source string) error
	// Render executes the template against the given context.
	Render(source string, context map[string]any) (string, error)
}

// GoTemplateEngine implements Engine on top of text/template.
type GoTemplateEngine struct {
	funcs template.FuncMap
}

// NewGoTemplateEngine creates a text/template backed engine.
func NewGoTemplateEngine() *GoTemplateEngine {
	return &GoTemplateEngine{
		funcs: template.FuncMap{},
	}
}

// Validate checks that the source parses under text/template.
func (e *GoTemplateEngine) Validate(source string) error {
	if _, err := template.New("email").Funcs(e.funcs).Parse(source); err != nil {
		return fmt.Errorf("invalid syntax: %w", err)
	}
	return nil
}

// Render executes the template against the context. Unknown variables render
// as empty values rather than failing, matching how admins author templates
// incrementally.
func (e *GoTemplateEngine) Render(source string, context map[string]any) (string, error) {
	tpl, err := template.New("email").Funcs(e.funcs).Option("missingkey=zero").Parse(source)
	if err != nil {
		return "", fmt.Errorf("invalid syntax: %w", err)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, context); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}

	return buf.String(), nil
}

package template

import (
	"fmt"
	"slices"
	"strings"
	"text/template"
)

// Engine renders name templates with variable substitution.
type Engine struct {
	funcs template.FuncMap
}

// NewEngine creates a new template engine with default helper functions.
func NewEngine() *Engine {
	return &Engine{
		funcs: defaultFuncs(),
	}
}

// Render executes the template with the given variables.
// Referencing a variable missing from variables is an error.
func (e *Engine) Render(templateStr string, variables map[string]any) (string, error) {
	tmpl, err := e.compile(templateStr)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	if execErr := tmpl.Execute(&buf, variables); execErr != nil {
		return "", fmt.Errorf("%w: %w", ErrExecute, execErr)
	}

	return buf.String(), nil
}

// Parse validates the template and extracts variable names.
// Returns a list of variable names referenced in the template.
func (e *Engine) Parse(templateStr string) ([]string, error) {
	if _, err := e.compile(templateStr); err != nil {
		return nil, err
	}
	return extractVariables(templateStr), nil
}

// AddFunc adds a custom template function.
// The function will be available in templates using the given name.
func (e *Engine) AddFunc(name string, fn any) {
	e.funcs[name] = fn
}

func (e *Engine) compile(templateStr string) (*template.Template, error) {
	if templateStr == "" {
		return nil, ErrEmpty
	}

	tmpl, err := template.New("name").
		Funcs(e.funcs).
		Option("missingkey=error").
		Parse(convertSyntax(templateStr))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return tmpl, nil
}

// ValidateKnown checks that every used variable is in known.
// Returns an error wrapping ErrVariable naming the first unknown variable.
func ValidateKnown(used, known []string) error {
	for _, name := range used {
		if !slices.Contains(known, name) {
			return fmt.Errorf("%w: %s", ErrVariable, name)
		}
	}
	return nil
}

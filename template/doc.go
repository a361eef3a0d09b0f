// Package template renders output file names from short name templates.
//
// Pipelines use it to name the files written between steps. Templates use
// a Handlebars-like syntax that is converted to Go template syntax before
// execution.
//
// # Syntax
//
// Variables use double braces:
//
//	{{stem}}.{{index}}-{{step}}{{ext}}
//
// Helper functions can be called with arguments:
//
//	{{upper step}}
//	{{stem}}_{{pad index 3}}{{ext}}
//	{{replace stem "-" "_"}}
//
// # Built-in Functions
//
//   - upper(s string) string - Convert to uppercase
//   - lower(s string) string - Convert to lowercase
//   - trim(s string) string - Remove leading/trailing whitespace
//   - replace(s, old, new string) string - Replace all occurrences
//   - default(val, defaultVal any) any - Return default if val is nil/empty
//   - pad(n any, width int) string - Zero-pad an integer to width digits
//
// # Missing Variables
//
// Rendering fails with ErrExecute when the template references a variable
// that was not provided. Parse lists the referenced variables so callers
// can reject unknown ones up front:
//
//	vars, err := engine.Parse("{{stem}}_{{index}}{{ext}}")
//	// vars: ["stem", "index", "ext"]
//	err = template.ValidateKnown(vars, []string{"stem", "ext", "index", "step", "input"})
package template

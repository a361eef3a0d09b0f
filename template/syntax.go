package template

import (
	"regexp"
	"slices"
	"strings"
)

var (
	// varPattern matches a bare variable reference: {{name}}.
	varPattern = regexp.MustCompile(`\{\{([a-zA-Z_]\w*)\}\}`)

	// helperPattern matches a helper call with arguments: {{helper a b}}.
	helperPattern = regexp.MustCompile(`\{\{([a-zA-Z_]\w*)\s+([^{}]+)\}\}`)
)

// convertSyntax converts Handlebars-like syntax to Go template syntax.
//
// Conversions:
//   - {{variable}} -> {{.variable}}
//   - {{helper arg1 arg2}} -> {{helper .arg1 .arg2}}
//
// Bare names that are helpers ({{upper}}) are left alone so Go reports
// the missing arguments.
func convertSyntax(input string) string {
	result := varPattern.ReplaceAllStringFunc(input, func(match string) string {
		name := match[2 : len(match)-2]
		if isHelper(name) {
			return match
		}
		return "{{." + name + "}}"
	})

	return helperPattern.ReplaceAllStringFunc(result, func(match string) string {
		sub := helperPattern.FindStringSubmatch(match)
		if !isHelper(sub[1]) {
			return match
		}
		return "{{" + sub[1] + " " + convertArguments(sub[2]) + "}}"
	})
}

// convertArguments converts a space-separated list of arguments.
// Variables become .variable, literals (numbers, quoted strings, booleans) stay as-is.
func convertArguments(args string) string {
	parts := splitArguments(strings.TrimSpace(args))
	for i, part := range parts {
		if isVariable(part) {
			parts[i] = "." + part
		}
	}
	return strings.Join(parts, " ")
}

// splitArguments splits arguments while respecting quoted strings.
func splitArguments(args string) []string {
	var parts []string
	var current strings.Builder
	inQuote := false
	quoteChar := rune(0)

	for _, ch := range args {
		switch {
		case !inQuote && (ch == '"' || ch == '\''):
			inQuote = true
			quoteChar = ch
			current.WriteRune(ch)
		case inQuote && ch == quoteChar:
			inQuote = false
			current.WriteRune(ch)
		case !inQuote && ch == ' ':
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(ch)
		}
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}

	return parts
}

// isVariable reports whether a helper argument names a variable rather
// than a literal or an already-converted expression.
func isVariable(part string) bool {
	if part == "true" || part == "false" {
		return false
	}
	return isValidIdentifier(part)
}

func isHelper(name string) bool {
	_, ok := defaultFuncs()[name]
	return ok
}

// isValidIdentifier checks if a string is a valid variable name.
func isValidIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, ch := range s {
		if i == 0 && ch >= '0' && ch <= '9' {
			return false
		}
		isLower := ch >= 'a' && ch <= 'z'
		isUpper := ch >= 'A' && ch <= 'Z'
		isDigit := ch >= '0' && ch <= '9'
		if !isLower && !isUpper && !isDigit && ch != '_' {
			return false
		}
	}
	return true
}

// extractVariables extracts variable names from a template.
// Returns a deduplicated list in order of first appearance.
func extractVariables(templateStr string) []string {
	seen := make(map[string]bool)
	var result []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			result = append(result, name)
		}
	}

	type ref struct {
		pos  int
		name string
	}
	var refs []ref

	for _, m := range varPattern.FindAllStringSubmatchIndex(templateStr, -1) {
		name := templateStr[m[2]:m[3]]
		if !isHelper(name) {
			refs = append(refs, ref{pos: m[0], name: name})
		}
	}
	for _, m := range helperPattern.FindAllStringSubmatchIndex(templateStr, -1) {
		if !isHelper(templateStr[m[2]:m[3]]) {
			continue
		}
		for _, part := range splitArguments(strings.TrimSpace(templateStr[m[4]:m[5]])) {
			if isVariable(part) {
				refs = append(refs, ref{pos: m[0], name: part})
			}
		}
	}

	// Keep first-appearance order across both patterns.
	slices.SortStableFunc(refs, func(a, b ref) int { return a.pos - b.pos })
	for _, r := range refs {
		add(r.name)
	}

	return result
}

package template

import (
	"fmt"
	"strings"
	"text/template"
)

// defaultFuncs returns the built-in template functions.
func defaultFuncs() template.FuncMap {
	return template.FuncMap{
		"upper":   strings.ToUpper,
		"lower":   strings.ToLower,
		"trim":    strings.TrimSpace,
		"replace": strings.ReplaceAll,
		"default": defaultValue,
		"pad":     pad,
	}
}

// defaultValue returns the default if the value is nil or an empty string.
// For other types (including zero values like 0), the original value is returned.
func defaultValue(val, defaultVal any) any {
	if val == nil {
		return defaultVal
	}
	if s, ok := val.(string); ok && s == "" {
		return defaultVal
	}
	return val
}

// pad formats an integer with leading zeros to at least width digits.
// Non-integer values are formatted with %v and left unpadded.
func pad(n any, width int) string {
	switch v := n.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%0*d", width, v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

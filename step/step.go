package step

import "github.com/randalmurphal/linekit/lineio"

// Config describes one pipeline step.
type Config struct {
	// Op is the registered transform name.
	// Required. Values: "truncate", "sample"
	Op string `json:"op" yaml:"op" toml:"op" jsonschema:"enum=truncate,enum=sample"`

	// Marker is the truncation boundary for "truncate".
	// Empty uses the transform's default.
	Marker string `json:"marker,omitempty" yaml:"marker,omitempty" toml:"marker,omitempty"`

	// Stride keeps every Nth line for "sample". Must be >= 1.
	Stride int `json:"stride,omitempty" yaml:"stride,omitempty" toml:"stride,omitempty" jsonschema:"minimum=1"`

	// Output overrides the generated output path for this step.
	// Optional.
	Output string `json:"output,omitempty" yaml:"output,omitempty" toml:"output,omitempty"`
}

// Transform is a single-pass file transform.
type Transform interface {
	// Name returns the registered op name.
	Name() string

	// File reads inPath and writes the result to outPath, creating or
	// truncating it.
	File(inPath, outPath string) (lineio.Stats, error)
}

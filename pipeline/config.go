package pipeline

import (
	"fmt"
	"os"
	"strconv"

	"github.com/randalmurphal/linekit/step"
)

// DefaultIntermediate names the files written between steps.
const DefaultIntermediate = "{{stem}}.{{index}}-{{step}}{{ext}}"

// Config describes a sequence of transforms applied to one input file.
type Config struct {
	// Input is the file the first step reads.
	// Required.
	Input string `json:"input" yaml:"input" toml:"input"`

	// Output is where the last step writes.
	// Optional. Default: named by Intermediate like every other step.
	Output string `json:"output,omitempty" yaml:"output,omitempty" toml:"output,omitempty"`

	// Intermediate is the name template for step outputs without an
	// explicit path. Variables: stem, ext, index, step, input.
	// Rendered names are placed next to Input.
	Intermediate string `json:"intermediate,omitempty" yaml:"intermediate,omitempty" toml:"intermediate,omitempty"`

	// KeepIntermediate keeps the outputs of all but the last step.
	// Default: true.
	KeepIntermediate bool `json:"keep_intermediate,omitempty" yaml:"keep_intermediate" toml:"keep_intermediate" jsonschema:"default=true"`

	// WorkDir resolves relative paths.
	// Default: the directory of the config file, or the current directory.
	WorkDir string `json:"work_dir,omitempty" yaml:"work_dir,omitempty" toml:"work_dir,omitempty"`

	// Steps run in order; each reads the previous step's output.
	Steps []step.Config `json:"steps" yaml:"steps" toml:"steps" jsonschema:"minItems=1"`
}

// DefaultConfig returns a Config with sensible defaults.
// Input and Steps must still be set before use.
func DefaultConfig() Config {
	return Config{
		Intermediate:     DefaultIntermediate,
		KeepIntermediate: true,
	}
}

// LoadFromEnv populates config fields from environment variables.
// Environment variables use the LINEKIT_ prefix and take precedence over
// existing values.
//
// Supported variables:
//   - LINEKIT_INPUT: Input path
//   - LINEKIT_OUTPUT: Final output path
//   - LINEKIT_INTERMEDIATE: Intermediate name template
//   - LINEKIT_KEEP_INTERMEDIATE: Keep intermediate files (bool)
//   - LINEKIT_WORK_DIR: Base directory for relative paths
//
// Relative paths taken from the environment resolve against WorkDir like
// any other path. After Load that is the config file's directory, not the
// current directory; set LINEKIT_WORK_DIR or use absolute paths to change
// that.
func (c *Config) LoadFromEnv() {
	if v := os.Getenv("LINEKIT_INPUT"); v != "" {
		c.Input = v
	}
	if v := os.Getenv("LINEKIT_OUTPUT"); v != "" {
		c.Output = v
	}
	if v := os.Getenv("LINEKIT_INTERMEDIATE"); v != "" {
		c.Intermediate = v
	}
	if v := os.Getenv("LINEKIT_KEEP_INTERMEDIATE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.KeepIntermediate = b
		}
	}
	if v := os.Getenv("LINEKIT_WORK_DIR"); v != "" {
		c.WorkDir = v
	}
}

// FromEnv creates a Config from environment variables with defaults.
func FromEnv() Config {
	cfg := DefaultConfig()
	cfg.LoadFromEnv()
	return cfg
}

// Validate checks if the configuration is valid. Every step is built
// through the step registry, so op-specific checks such as the sample
// stride are reported here.
func (c *Config) Validate() error {
	_, err := c.Plan()
	return err
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

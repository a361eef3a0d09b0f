package pipeline

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/randalmurphal/linekit/step"
	"github.com/randalmurphal/linekit/template"
)

// nameVariables are the variables available to the Intermediate template.
var nameVariables = []string{"stem", "ext", "index", "step", "input"}

// StepPlan is one step with its paths resolved.
type StepPlan struct {
	Index        int    // 1-based step number
	Op           string // Registered op name
	Input        string // File the step reads
	Output       string // File the step writes
	Intermediate bool   // True for every step but the last

	transform step.Transform
}

// Plan validates the config and resolves the input and output path of
// every step without touching the filesystem.
//
// A step writes to its own Output if set, the last step to Config.Output
// if set, and otherwise to the rendered Intermediate template placed next
// to the pipeline input. No step may write to its own input, to the
// pipeline input, or to a path another step writes.
func (c *Config) Plan() ([]StepPlan, error) {
	if c.Input == "" {
		return nil, invalid("input is required")
	}
	if len(c.Steps) == 0 {
		return nil, invalid("at least one step is required")
	}

	nameTemplate := c.Intermediate
	if nameTemplate == "" {
		nameTemplate = DefaultIntermediate
	}
	engine := template.NewEngine()
	used, err := engine.Parse(nameTemplate)
	if err != nil {
		return nil, fmt.Errorf("%w: intermediate: %w", ErrInvalidConfig, err)
	}
	if err := template.ValidateKnown(used, nameVariables); err != nil {
		return nil, fmt.Errorf("%w: intermediate: %w", ErrInvalidConfig, err)
	}

	input := filepath.Clean(c.resolve(c.Input))
	base := filepath.Base(input)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	plans := make([]StepPlan, 0, len(c.Steps))
	writers := make(map[string]int, len(c.Steps))
	prev := input

	for i, sc := range c.Steps {
		index := i + 1
		last := i == len(c.Steps)-1

		t, err := step.New(sc)
		if err != nil {
			return nil, fmt.Errorf("%w: step %d (%s): %w", ErrInvalidConfig, index, sc.Op, err)
		}

		var out string
		switch {
		case sc.Output != "":
			out = c.resolve(sc.Output)
		case last && c.Output != "":
			out = c.resolve(c.Output)
		default:
			name, err := engine.Render(nameTemplate, map[string]any{
				"stem":  stem,
				"ext":   ext,
				"index": index,
				"step":  sc.Op,
				"input": base,
			})
			if err != nil {
				return nil, fmt.Errorf("%w: step %d (%s): %w", ErrInvalidConfig, index, sc.Op, err)
			}
			if strings.TrimSpace(name) == "" {
				return nil, invalid("step %d (%s): intermediate name is empty", index, sc.Op)
			}
			if !filepath.IsAbs(name) {
				name = filepath.Join(filepath.Dir(input), name)
			}
			out = name
		}
		out = filepath.Clean(out)

		key := pathKey(out)
		switch {
		case key == pathKey(prev):
			return nil, invalid("step %d (%s) would overwrite its own input %s", index, sc.Op, prev)
		case key == pathKey(input):
			return nil, invalid("step %d (%s) would overwrite the pipeline input %s", index, sc.Op, input)
		}
		if other, ok := writers[key]; ok {
			return nil, invalid("step %d (%s) writes %s, already written by step %d", index, sc.Op, out, other)
		}
		writers[key] = index

		plans = append(plans, StepPlan{
			Index:        index,
			Op:           sc.Op,
			Input:        prev,
			Output:       out,
			Intermediate: !last,
			transform:    t,
		})
		prev = out
	}

	return plans, nil
}

// resolve joins relative paths onto WorkDir.
func (c *Config) resolve(path string) string {
	if c.WorkDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.WorkDir, path)
}

// pathKey returns a comparable form of path.
func pathKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

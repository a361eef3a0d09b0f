package pipeline

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/randalmurphal/linekit/lineio"
	_ "github.com/randalmurphal/linekit/transforms"
)

// StepReport describes one completed (or failed) step.
type StepReport struct {
	Index    int
	Op       string
	Input    string
	Output   string
	Stats    lineio.Stats
	Duration time.Duration
}

// Report describes one pipeline run.
type Report struct {
	Input    string
	Output   string
	Steps    []StepReport
	Removed  []string // Intermediate files deleted after the run
	Duration time.Duration
}

// Run validates cfg and applies its steps in order, each reading the file
// the previous one wrote. Steps never overlap: a step's output is closed
// before the next step opens it.
//
// The first failing step stops the run; the returned *StepError keeps the
// error kind of the failure. Files written by earlier steps are left in
// place. The context is checked between steps.
//
// The returned report covers the steps that ran, even on error.
func Run(ctx context.Context, cfg Config) (*Report, error) {
	plans, err := cfg.Plan()
	if err != nil {
		return nil, err
	}
	return execute(ctx, plans, cfg.KeepIntermediate)
}

func execute(ctx context.Context, plans []StepPlan, keepIntermediate bool) (*Report, error) {
	start := time.Now()
	report := &Report{
		Input:  plans[0].Input,
		Output: plans[len(plans)-1].Output,
	}
	defer func() { report.Duration = time.Since(start) }()

	for _, p := range plans {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		stepStart := time.Now()
		stats, err := p.transform.File(p.Input, p.Output)
		report.Steps = append(report.Steps, StepReport{
			Index:    p.Index,
			Op:       p.Op,
			Input:    p.Input,
			Output:   p.Output,
			Stats:    stats,
			Duration: time.Since(stepStart),
		})
		if err != nil {
			return report, &StepError{Index: p.Index, Op: p.Op, Err: err}
		}

		slog.Debug("pipeline step complete",
			slog.Int("step", p.Index),
			slog.String("op", p.Op),
			slog.String("output", p.Output),
			slog.Int("lines_read", stats.LinesRead),
			slog.Int("lines_written", stats.LinesWritten))
	}

	if !keepIntermediate {
		report.Removed = removeIntermediates(plans)
	}
	return report, nil
}

// removeIntermediates deletes the outputs of all but the last step.
// Failures are logged; the run already succeeded.
func removeIntermediates(plans []StepPlan) []string {
	var removed []string
	for _, p := range plans {
		if !p.Intermediate {
			continue
		}
		if err := os.Remove(p.Output); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				slog.Warn("failed to remove intermediate file",
					slog.String("path", p.Output),
					slog.Any("error", err))
			}
			continue
		}
		removed = append(removed, p.Output)
	}
	return removed
}

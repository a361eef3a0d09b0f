package main

import (
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/linekit/pipeline"
)

// loadConfig loads a pipeline file and applies LINEKIT_* overrides.
func loadConfig(path string) (pipeline.Config, error) {
	cfg, err := pipeline.Load(path)
	if err != nil {
		return cfg, err
	}
	cfg.LoadFromEnv()
	return cfg, nil
}

func newRunCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run CONFIG",
		Short: "Run a pipeline file",
		Long: `Run the steps of a pipeline file (.yaml, .yml, .toml or .json) in order.

Example fixup.yaml:

  input: ramakarl_master.txt
  output: ramakarl_new2.txt
  steps:
    - op: truncate
      marker: Mozilla
      output: ramakarl_new.txt
    - op: sample
      stride: 4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(args[0])
			if err != nil {
				return err
			}

			if dryRun {
				plans, err := cfg.Plan()
				if err != nil {
					return err
				}
				printPlan(cmd.OutOrStdout(), plans)
				return nil
			}

			report, err := pipeline.Run(cmd.Context(), cfg)
			if report != nil {
				printReport(cmd.OutOrStdout(), report)
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the resolved steps without running them")
	return cmd
}

func newWatchCmd() *cobra.Command {
	var (
		debounce time.Duration
		poll     time.Duration
		polling  bool
	)

	cmd := &cobra.Command{
		Use:   "watch CONFIG",
		Short: "Re-run a pipeline whenever its input changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(args[0])
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			opts := []pipeline.WatchOption{
				pipeline.WithDebounce(debounce),
				pipeline.WithPollInterval(poll),
			}
			if polling {
				opts = append(opts, pipeline.WithPolling())
			}

			out := cmd.OutOrStdout()
			slog.Info("watching", slog.String("input", cfg.Input))
			return pipeline.Watch(ctx, cfg, func(report *pipeline.Report, err error) {
				if report != nil {
					printReport(out, report)
				}
				if err != nil {
					slog.Error("pipeline run failed", slog.Any("error", err))
				}
			}, opts...)
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", 200*time.Millisecond, "quiet period before a re-run")
	cmd.Flags().DurationVar(&poll, "poll-interval", time.Second, "polling period when file events are unavailable")
	cmd.Flags().BoolVar(&polling, "poll", false, "poll the input instead of using file events")
	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of pipeline files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := pipeline.Schema()
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}

func printPlan(out io.Writer, plans []pipeline.StepPlan) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tOP\tINPUT\tOUTPUT")
	fmt.Fprintln(w, "----\t--\t-----\t------")
	for _, p := range plans {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", p.Index, p.Op, p.Input, p.Output)
	}
	w.Flush()
}

func printReport(out io.Writer, report *pipeline.Report) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STEP\tOP\tOUTPUT\tREAD\tWRITTEN\tTIME")
	fmt.Fprintln(w, "----\t--\t------\t----\t-------\t----")
	for _, s := range report.Steps {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\t%s\n",
			s.Index, s.Op, s.Output, s.Stats.LinesRead, s.Stats.LinesWritten, s.Duration.Round(time.Millisecond))
	}
	w.Flush()

	for _, path := range report.Removed {
		fmt.Fprintf(out, "removed %s\n", path)
	}
}

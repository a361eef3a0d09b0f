package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/linekit/sample"
	"github.com/randalmurphal/linekit/truncate"
)

func newTruncateCmd() *cobra.Command {
	var marker string

	cmd := &cobra.Command{
		Use:   "truncate INPUT OUTPUT",
		Short: "Cut every line at the first occurrence of a marker",
		Long: `Cut every line of INPUT before the first occurrence of the marker,
strip trailing whitespace, and write the lines to OUTPUT with '\n'
terminators. Lines without the marker are kept whole.

Examples:
  linekit truncate ramakarl_master.txt ramakarl_new.txt
  linekit truncate access.log requests.log --marker ' HTTP/'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := truncate.New(marker).File(args[0], args[1])
			if err != nil {
				return err
			}
			slog.Info("truncated",
				slog.String("output", args[1]),
				slog.Int("lines", stats.LinesWritten))
			return nil
		},
	}

	cmd.Flags().StringVarP(&marker, "marker", "m", truncate.DefaultMarker, "literal, case-sensitive marker")
	return cmd
}

func newSampleCmd() *cobra.Command {
	var every int

	cmd := &cobra.Command{
		Use:   "sample INPUT OUTPUT",
		Short: "Keep every Nth line",
		Long: `Copy the lines of INPUT whose zero-based index is a multiple of N to
OUTPUT, unchanged. The first line is always kept.

Examples:
  linekit sample ramakarl_new.txt ramakarl_new2.txt --every 4`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sample.New(every)
			if err != nil {
				return err
			}
			stats, err := s.File(args[0], args[1])
			if err != nil {
				return err
			}
			slog.Info("sampled",
				slog.String("output", args[1]),
				slog.Int("lines_read", stats.LinesRead),
				slog.Int("lines_kept", stats.LinesWritten))
			return nil
		},
	}

	cmd.Flags().IntVarP(&every, "every", "n", 0, "stride N (>= 1)")
	_ = cmd.MarkFlagRequired("every")
	return cmd
}

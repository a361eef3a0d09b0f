package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "linekit",
		Short: "Line-oriented text file transforms",
		Long: `linekit cuts lines at a marker, keeps every Nth line, and chains
such transforms into pipelines described by YAML, TOML or JSON files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(cmd.ErrOrStderr(), logLevel)
		},
	}

	defaultLevel := os.Getenv("LINEKIT_LOG_LEVEL")
	if defaultLevel == "" {
		defaultLevel = "info"
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", defaultLevel, "log level: debug, info, warn, error (env LINEKIT_LOG_LEVEL)")

	root.AddCommand(
		newTruncateCmd(),
		newSampleCmd(),
		newRunCmd(),
		newWatchCmd(),
		newSchemaCmd(),
	)
	return root
}

// setupLogging installs the default slog logger writing text to w.
func setupLogging(w io.Writer, level string) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, opts)))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	verbose   bool
	quiet     bool
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "gridsearch",
	Short: "gridsearch - exact 2D pattern search",
	Long: `gridsearch finds every exact occurrence of a rectangular pattern inside a
larger rectangular grid. Grids are text files (one row per line) or images.

Matching uses a two-dimensional Rabin-Karp rolling hash; every hash hit is
verified cell by cell, so results never contain false positives.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (debug logs with search statistics)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode (errors only)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text, json")

	// Add subcommands
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newLogger builds the structured logger selected by the persistent flags.
// Logs go to w (stderr in normal use), never to the result stream.
func newLogger(w io.Writer) (*slog.Logger, error) {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	switch logFormat {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unknown log format: %s", logFormat)
	}
}

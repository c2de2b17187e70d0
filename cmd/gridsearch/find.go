package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/imagegrid"
	"github.com/katalvlaran/gridsearch/rabinkarp"
	"github.com/spf13/cobra"
)

var (
	findTextPath    string
	findPatternPath string
	findImage       bool
	findConfigPath  string
	findBaseCol     uint64
	findBaseRow     uint64
	findModulus     uint64
	findWorkers     int
	findRandomize   bool
	findSeed        uint64
	findFormat      string
	findColor       string
	findGrayscale   bool
)

var findCmd = newFindCmd()

// newFindCmd builds the find command and binds its flags, resetting every
// flag variable to its default.
func newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Find every occurrence of a pattern grid in a text grid",
		Long: `Find every occurrence of a pattern grid in a text grid.

Text grids are read one row per line; all rows must have the same length.
With --image both inputs are decoded as images and compared pixel by pixel.`,
		Args: cobra.NoArgs,
		RunE: runFind,
	}

	flags := cmd.Flags()
	flags.StringVar(&findTextPath, "text", "", "Path to the text grid (required)")
	flags.StringVar(&findPatternPath, "pattern", "", "Path to the pattern grid (required)")
	flags.BoolVar(&findImage, "image", false, "Treat both inputs as images (PNG, JPEG, GIF, TIFF, BMP)")
	flags.StringVar(&findConfigPath, "config", "", "Path to a YAML config file")
	flags.Uint64Var(&findBaseCol, "base-col", rabinkarp.DefaultBaseCol, "Horizontal hash base")
	flags.Uint64Var(&findBaseRow, "base-row", rabinkarp.DefaultBaseRow, "Vertical hash base")
	flags.Uint64Var(&findModulus, "modulus", rabinkarp.DefaultModulus, "Hash modulus")
	flags.IntVar(&findWorkers, "workers", rabinkarp.DefaultWorkers, "Number of concurrent column-scan workers")
	flags.BoolVar(&findRandomize, "randomize", false, "Draw random hash bases for this search")
	flags.Uint64Var(&findSeed, "seed", 0, "Seed for reproducible random bases; non-zero implies --randomize")
	flags.StringVar(&findFormat, "format", "human", "Output format: human, json, yaml")
	flags.StringVar(&findColor, "color", "auto", "Color output: auto, always, never")
	flags.BoolVar(&findGrayscale, "grayscale", false, "Compare image pixels by luminance only (with --image)")
	_ = cmd.MarkFlagRequired("text")
	_ = cmd.MarkFlagRequired("pattern")

	return cmd
}

func runFind(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(findConfigPath)
	if err != nil {
		return err
	}
	overrideFromFlags(cmd, &cfg)

	logger, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	opts := append(cfg.Options(), rabinkarp.WithLogger(logger))
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if findImage {
		return findImages(ctx, cmd, cfg, opts, logger)
	}

	return findText(ctx, cmd, cfg, opts, logger)
}

// findText searches text grids and prints matched windows in human mode.
func findText(ctx context.Context, cmd *cobra.Command, cfg Config, opts []rabinkarp.Option, logger *slog.Logger) error {
	text, err := loadTextGrid(findTextPath)
	if err != nil {
		return err
	}
	pattern, err := loadTextGrid(findPatternPath)
	if err != nil {
		return err
	}
	logger.Info("grids loaded",
		"text", findTextPath, "text_rows", text.Rows, "text_cols", text.Cols,
		"pattern", findPatternPath, "pattern_rows", pattern.Rows, "pattern_cols", pattern.Cols,
	)

	res, err := runSearch(ctx, rabinkarp.RuneMapper, text, pattern, opts)
	if err != nil {
		return err
	}

	return writeReport(cmd, cfg, res, func(m rabinkarp.Match) []string {
		w, err := text.Window(m.Row, m.Col, pattern.Rows, pattern.Cols)
		if err != nil {
			return nil
		}
		rows := make([]string, w.Rows)
		for i, row := range w.Cells {
			rows[i] = string(row)
		}

		return rows
	})
}

// findImages searches image grids; human mode prints coordinates only.
func findImages(ctx context.Context, cmd *cobra.Command, cfg Config, opts []rabinkarp.Option, logger *slog.Logger) error {
	iopts := imagegrid.DefaultOptions()
	iopts.Grayscale = cfg.Grayscale

	text, err := imagegrid.Load(findTextPath, iopts)
	if err != nil {
		return err
	}
	pattern, err := imagegrid.Load(findPatternPath, iopts)
	if err != nil {
		return err
	}
	logger.Info("images loaded",
		"text", findTextPath, "width", text.Cols, "height", text.Rows,
		"pattern", findPatternPath, "pattern_width", pattern.Cols, "pattern_height", pattern.Rows,
	)

	res, err := runSearch(ctx, rabinkarp.Uint32Mapper, text, pattern, opts)
	if err != nil {
		return err
	}

	return writeReport(cmd, cfg, res, nil)
}

// runSearch builds a searcher for S and runs one search.
func runSearch[S comparable](ctx context.Context, mapper rabinkarp.SymbolMapper[S], text, pattern *grid.Grid[S], opts []rabinkarp.Option) (rabinkarp.Result, error) {
	s, err := rabinkarp.New(mapper, opts...)
	if err != nil {
		return rabinkarp.Result{}, fmt.Errorf("creating searcher: %w", err)
	}
	res, err := s.Search(ctx, text, pattern)
	if err != nil {
		return rabinkarp.Result{}, fmt.Errorf("searching: %w", err)
	}

	return res, nil
}

// loadTextGrid parses the text grid stored at path.
func loadTextGrid(path string) (*grid.Grid[rune], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening grid: %w", err)
	}
	defer f.Close()

	g, err := grid.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/katalvlaran/gridsearch/rabinkarp"
	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// styles holds color formatters for human output.
type styles struct {
	heading *color.Color
	coord   *color.Color
	window  *color.Color
	stats   *color.Color
}

// newStyles creates color formatters; enabled=false strips all escapes.
func newStyles(enabled bool) *styles {
	s := &styles{
		heading: color.New(color.Bold),
		coord:   color.New(color.FgHiGreen),
		window:  color.New(color.FgYellow),
		stats:   color.New(color.FgHiBlue),
	}
	for _, c := range []*color.Color{s.heading, s.coord, s.window, s.stats} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return s
}

// colorEnabled resolves --color against the output stream.
func colorEnabled(mode string, out io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto", "":
		f, ok := out.(*os.File)
		if !ok || os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		return term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("unknown color mode: %s", mode)
	}
}

// report is the machine-readable output of find.
type report struct {
	Text    string               `json:"text" yaml:"text"`
	Pattern string               `json:"pattern" yaml:"pattern"`
	Matches []rabinkarp.Match    `json:"matches" yaml:"matches"`
	Stats   rabinkarp.Stats      `json:"stats" yaml:"stats"`
	Params  rabinkarp.HashParams `json:"params" yaml:"params"`
}

// writeReport prints res in cfg.Format. window, when non-nil, renders the
// matched region for human output.
func writeReport(cmd *cobra.Command, cfg Config, res rabinkarp.Result, window func(rabinkarp.Match) []string) error {
	out := cmd.OutOrStdout()
	rep := report{
		Text:    findTextPath,
		Pattern: findPatternPath,
		Matches: res.Matches,
		Stats:   res.Stats,
		Params:  res.Params,
	}

	switch cfg.Format {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(rep)
	case "yaml":
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(rep); err != nil {
			return err
		}
		return encoder.Close()
	case "human":
		enabled, err := colorEnabled(cfg.Color, out)
		if err != nil {
			return err
		}
		return writeHuman(out, newStyles(enabled), res, window)
	default:
		return fmt.Errorf("unknown output format: %s", cfg.Format)
	}
}

// writeHuman prints one block per match.
func writeHuman(out io.Writer, s *styles, res rabinkarp.Result, window func(rabinkarp.Match) []string) error {
	if len(res.Matches) == 0 {
		fmt.Fprintln(out, s.heading.Sprint("No match found"))
	} else {
		noun := "matches"
		if len(res.Matches) == 1 {
			noun = "match"
		}
		fmt.Fprintln(out, s.heading.Sprintf("%d %s found", len(res.Matches), noun))
	}
	for _, m := range res.Matches {
		fmt.Fprintf(out, "Match at top-left = %s", s.coord.Sprint(m.String()))
		if window == nil {
			fmt.Fprintln(out)
			continue
		}
		fmt.Fprintln(out, ":")
		for _, row := range window(m) {
			fmt.Fprintf(out, "  %s\n", s.window.Sprint(row))
		}
	}
	_, err := fmt.Fprintln(out, s.stats.Sprintf("windows=%d candidates=%d collisions=%d",
		res.Stats.Windows, res.Stats.Candidates, res.Stats.Collisions))

	return err
}

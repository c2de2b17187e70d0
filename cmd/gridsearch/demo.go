package main

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridsearch/rabinkarp"
	"github.com/spf13/cobra"
)

// Demonstration grids.
var (
	demoText = []string{
		"abcdabc",
		"bcpikbc",
		"cduuucd",
		"daapika",
		"aabuuub",
	}
	demoPattern = []string{
		"pik",
		"uuu",
	}
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Search the built-in example grid",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	matches, err := rabinkarp.MatchStrings(demoText, demoPattern, rabinkarp.WithLogger(logger))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	coords := make([]string, len(matches))
	for i, m := range matches {
		coords[i] = m.String()
	}
	fmt.Fprintf(out, "Matches found at: [%s]\n", strings.Join(coords, ", "))

	if len(matches) == 0 {
		fmt.Fprintln(out, "No match found")
		return nil
	}
	c := len([]rune(demoPattern[0]))
	for _, m := range matches {
		fmt.Fprintf(out, "Match at top-left = %s:\n", m)
		for di := range demoPattern {
			row := []rune(demoText[m.Row+di])
			fmt.Fprintln(out, string(row[m.Col:m.Col+c]))
		}
	}

	return nil
}

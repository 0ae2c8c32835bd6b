package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"seqbench/internal/benchmark"
	"seqbench/internal/config"
	apperrors "seqbench/internal/errors"
	"seqbench/internal/search"
	"seqbench/internal/session"
	"seqbench/internal/ui"
)

// askOne allows mocking prompts in tests.
var askOne = survey.AskOne

type searchOptions struct {
	brands []string
	repeat int
	width  int
	chart  bool
	report bool
	json   bool
}

func newSearchCmd() *cobra.Command {
	var opts searchOptions
	cmd := &cobra.Command{
		Use:   "search [brand]",
		Short: "Time both search strategies for one brand",
		Long: `Fetches the brand list, searches it for the given brand with the recursive
and the iterative strategy, and prints the mean time per call of each.
Without an argument the brand is asked for interactively.`,
		Example: `  seqbench search Nissin
  seqbench search Maruchan --repeat 5 --x-axis position
  seqbench search Mama --brands Nissin,Mama,Paldo --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, args, opts)
		},
	}

	cmd.Flags().StringSliceVar(&opts.brands, "brands", nil, "Search this list instead of the database")
	cmd.Flags().IntVar(&opts.repeat, "repeat", 1, "Number of searches to record")
	cmd.Flags().IntVar(&opts.width, "width", 60, "Chart plot width in columns")
	cmd.Flags().BoolVar(&opts.chart, "chart", true, "Draw the session chart")
	cmd.Flags().BoolVar(&opts.report, "report", false, "Print a markdown summary of the session")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the session log as JSON")
	return cmd
}

func runSearch(cmd *cobra.Command, args []string, opts searchOptions) error {
	if opts.repeat < 1 {
		return apperrors.NewInputError("--repeat must be at least 1")
	}

	var target string
	if len(args) > 0 {
		target = args[0]
	} else {
		prompt := &survey.Input{Message: "Brand name:"}
		if err := askOne(prompt, &target); err != nil {
			return fmt.Errorf("failed to read brand name: %w", err)
		}
	}

	cfg := config.FromViper()
	sess, _, err := newSession(cfg, opts.brands)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i := 0; i < opts.repeat; i++ {
		rec, err := sess.Search(cmd.Context(), target)
		if err != nil {
			return err
		}
		if !opts.json {
			for _, line := range session.CompletionMessages(rec) {
				fmt.Fprintln(out, line)
			}
		}
	}

	if opts.json {
		return sess.Log().WriteJSON(out)
	}

	last, _ := sess.Log().Last()
	fmt.Fprintf(out, "Running Time: %s\n", sess.Output())
	fmt.Fprintf(out, "Position: %s\n", search.FormatPosition(last.Position))

	if opts.chart {
		chart := ui.ChartFromRecords(sess.Records(), cfg.ChartXAxis, opts.width, cfg.ChartHeight)
		fmt.Fprintln(out, strings.TrimRight(chart.Render(), "\n"))
	}
	if opts.report {
		renderMarkdown(out, benchmark.Markdown(sess.Records()))
	}
	return nil
}

func renderMarkdown(w io.Writer, md string) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err == nil {
		if out, err := renderer.Render(md); err == nil {
			fmt.Fprint(w, out)
			return
		}
	}
	// Fallback to plain text
	fmt.Fprint(w, md)
}

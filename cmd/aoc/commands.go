package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/aoc"
	"github.com/npillmayer/aoc/config"
	"github.com/npillmayer/aoc/day18"
	"github.com/npillmayer/aoc/input"
	"github.com/npillmayer/aoc/report"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// puzzles maps a day to the puzzle for it.
var puzzles = map[int]func() *aoc.Puzzle{
	day18.Day: day18.Puzzle,
}

var (
	traceLevel string
	year       int

	rootCmd = &cobra.Command{
		Use:          "aoc",
		Short:        "Check and solve daily programming puzzles",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupTracing(traceLevel)
		},
	}

	runCmd = &cobra.Command{
		Use:   "run <day>",
		Short: "Check the examples of a puzzle, then solve it for the real input",
		Args:  cobra.ExactArgs(1),
		RunE:  runPuzzle,
	}

	examplesCmd = &cobra.Command{
		Use:   "examples <day>",
		Short: "Print the example blocks of a puzzle description",
		Args:  cobra.ExactArgs(1),
		RunE:  printExamples,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "Error",
		"trace level (Error, Info or Debug)")
	examplesCmd.Flags().IntVar(&year, "year", 0, "puzzle year (default from configuration)")
	rootCmd.AddCommand(runCmd, examplesCmd)
}

// setupTracing installs a Go logger as tracer for all keys.
func setupTracing(level string) {
	t := gologadapter.New()
	t.SetTraceLevel(tracing.TraceLevelFromString(level))
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace { return t }))
}

func runPuzzle(cmd *cobra.Command, args []string) error {
	day, err := parseDay(args[0])
	if err != nil {
		return err
	}
	puzzle, err := lookup(day)
	if err != nil {
		return err
	}
	loader, err := newLoader()
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	_, err = puzzle.Run(ctx, loader, report.NewConsole(cmd.OutOrStdout()))
	return err
}

func printExamples(cmd *cobra.Command, args []string) error {
	day, err := parseDay(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if year != 0 {
		cfg.Year = year
	}
	loader := input.NewLoader(cfg)
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	page, err := loader.Description(ctx, cfg.Year, day)
	if err != nil {
		return err
	}
	blocks, err := input.ExampleBlocks(strings.NewReader(page))
	if err != nil {
		return err
	}
	return writeBlocks(cmd.OutOrStdout(), blocks)
}

func writeBlocks(w io.Writer, blocks []string) error {
	for i, b := range blocks {
		if _, err := fmt.Fprintf(w, "--- example block %d ---\n%s\n", i+1, strings.TrimRight(b, "\n")); err != nil {
			return err
		}
	}
	return nil
}

func parseDay(arg string) (int, error) {
	day, err := strconv.Atoi(strings.TrimPrefix(strings.ToLower(arg), "day"))
	if err != nil || day < 1 || day > 25 {
		return 0, fmt.Errorf("not a puzzle day: %q (expected 1…25)", arg)
	}
	return day, nil
}

func lookup(day int) (*aoc.Puzzle, error) {
	mk, ok := puzzles[day]
	if !ok {
		return nil, fmt.Errorf("no solver for day %d; solvers exist for days %v", day, knownDays())
	}
	return mk(), nil
}

func knownDays() []int {
	days := make([]int, 0, len(puzzles))
	for d := range puzzles {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}

func loadConfig() (*config.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return config.Load(wd)
}

func newLoader() (*input.Loader, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return input.NewLoader(cfg), nil
}

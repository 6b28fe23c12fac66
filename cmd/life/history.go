package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/life"
	"github.com/vovakirdan/tui-life/internal/platform/tui"
	"github.com/vovakirdan/tui-life/internal/registry"
	"github.com/vovakirdan/tui-life/internal/storage"
)

var (
	flagPlain     bool
	flagLimit     int
	flagHistRule  string
	flagClearRuns bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse saved runs",
	Long: `Show saved runs. In a terminal this opens a browser with recent and
longest runs per rule; --plain prints a table instead.

Examples:
  life history
  life history --plain --limit 5
  life history --plain --rule highlife
  life history --clear`,
	Run: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Rows to print with --plain")
	historyCmd.Flags().StringVar(&flagHistRule, "rule", "", "Only longest runs of this preset ID or B/S rule (with --plain)")
	historyCmd.Flags().BoolVar(&flagClearRuns, "clear", false, "Delete all saved runs")
}

func runHistory(_ *cobra.Command, _ []string) {
	logger, closeLog := newLogger(io.Discard)
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearRuns {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Run history cleared.")
		return
	}

	if !flagPlain && isTerminal() {
		width, height := terminalSize()
		if err := tui.RunHistory(store, width, height); err != nil {
			logger.Error("history browser failed", "err", err)
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runs, err := plainRuns(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	printRuns(runs)
}

// plainRuns returns recent runs, or the longest runs of --rule.
func plainRuns(store *storage.Store) ([]storage.Run, error) {
	if flagHistRule == "" {
		return store.RecentRuns(flagLimit)
	}
	rule := flagHistRule
	if p, err := registry.Get(rule); err == nil {
		rule = p.Notation()
	} else if rules, err := life.ParseRule(rule); err == nil {
		rule = rules.String()
	} else {
		return nil, fmt.Errorf("unknown rule or preset %q", flagHistRule)
	}
	return store.LongestRuns(rule, flagLimit)
}

func printRuns(runs []storage.Run) {
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return
	}

	fmt.Printf("  %-4s  %-18s  %-8s  %-9s  %8s  %7s  %7s  %9s  %s\n",
		"#", "Rule", "Host", "Grid", "Gens", "Peak", "Final", "Time", "Date")
	fmt.Printf("  %-4s  %-18s  %-8s  %-9s  %8s  %7s  %7s  %9s  %s\n",
		"-", "----", "----", "----", "----", "----", "-----", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-18s  %-8s  %-9s  %8d  %7d  %7d  %9s  %s\n",
			i+1, r.Rule, r.Host, fmt.Sprintf("%dx%d", r.Columns, r.Rows),
			r.Generations, r.PeakPopulation, r.FinalPopulation,
			r.Duration.Round(time.Second), r.CreatedAt.Format("2006-01-02 15:04"))
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridlab/internal/platform/tui"
	"github.com/vovakirdan/gridlab/internal/storage"
)

var (
	flagPlain bool
	flagClear bool
	flagLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history [pattern]",
	Short: "Browse recorded runs",
	Long: `Show recorded runs, newest first, for one pattern or for all of them.

In a terminal this opens an interactive table; press enter on a run to see
its final board. Use --plain for text output.

Examples:
  gridlab history
  gridlab history glider --plain
  gridlab history glider --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text table")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded runs instead of showing them")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 20, "Runs to print in plain mode")
}

func runHistory(_ *cobra.Command, args []string) error {
	pattern := ""
	if len(args) == 1 {
		pattern = args[0]
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(pattern); err != nil {
			return err
		}
		logger.Info("runs cleared", "pattern", pattern)
		return nil
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		return tui.RunHistory(store, pattern, width, height)
	}

	var runs []storage.Run
	if pattern == "" {
		runs, err = store.RecentRuns(flagLimit)
	} else {
		runs, err = store.RunsForPattern(pattern, flagLimit)
	}
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-5s  %-20s  %-16s  %-6s  %-5s  %-7s  %s\n", "ID", "Pattern", "Rule", "Steps", "Live", "Settled", "Date")
	fmt.Printf("  %-5s  %-20s  %-16s  %-6s  %-5s  %-7s  %s\n", "--", "-------", "----", "-----", "----", "-------", "----")
	for _, r := range runs {
		fmt.Printf("  %-5d  %-20s  %-16s  %-6d  %-5d  %-7v  %s\n",
			r.ID, r.PatternID, r.RuleID, r.Steps, r.Live, r.Converged,
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}
	if pattern != "" {
		if st, ok := stats[pattern]; ok {
			fmt.Println()
			fmt.Printf("%s: %d runs, longest %d steps, %.1f live on average\n", pattern, st.Runs, st.MaxSteps, st.AvgLive)
		}
	}
	return nil
}

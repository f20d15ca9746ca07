package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridlab/internal/patterns"
	"github.com/vovakirdan/gridlab/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List rules and patterns",
	Long:  `Shows every registered rule and every pattern (built-in and from the pattern directory).`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(_ *cobra.Command, _ []string) error {
	rules := registry.List()

	fmt.Println("Rules:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, r := range rules {
		maxIDLen = max(maxIDLen, len(r.ID))
	}
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, r := range rules {
		fmt.Printf("  %-*s  %s\n", maxIDLen, r.ID, r.Title)
	}

	all, err := patterns.Catalog(cfg.Patterns.Dir)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Patterns:")
	fmt.Println()

	maxIDLen = 2
	for _, p := range all {
		maxIDLen = max(maxIDLen, len(p.ID))
	}
	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "ID", "Rule", "Name")
	fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, "--", "----", "----")
	for _, p := range all {
		fmt.Printf("  %-*s  %-16s  %s\n", maxIDLen, p.ID, p.Rule, p.Name)
	}

	fmt.Println()
	fmt.Println("Run 'gridlab watch <pattern>' to animate a pattern.")
	return nil
}

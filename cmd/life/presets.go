package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-life/internal/registry"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List rule presets",
	Long:  `Shows every registered rule preset with its B/S notation.`,
	Run:   runPresets,
}

func runPresets(_ *cobra.Command, _ []string) {
	presets := registry.List()

	if len(presets) == 0 {
		fmt.Println("No presets available.")
		return
	}

	fmt.Println("Available presets:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, p := range presets {
		maxIDLen = max(maxIDLen, len(p.ID))
		maxTitleLen = max(maxTitleLen, len(p.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Rule")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "----")
	for _, p := range presets {
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, p.ID, maxTitleLen, p.Title, p.Notation())
	}

	fmt.Println()
	fmt.Println("Run 'life run --preset <id>' to use a preset.")
}

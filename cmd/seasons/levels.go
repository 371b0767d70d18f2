package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/stickman-seasons/internal/platform/tui"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all levels",
	Long:  `Shows every level with its weather and tier.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	rows := tui.LevelRows()

	fmt.Println("Levels:")
	fmt.Println()

	// Width counts runes, matching fmt padding
	nameLen := len("Level")
	for _, r := range rows {
		nameLen = max(nameLen, len([]rune(r[1])))
	}

	// Print header
	fmt.Printf("  %-3s  %-*s  %-8s  %s\n", "#", nameLen, "Level", "Weather", "Tier")
	fmt.Printf("  %-3s  %-*s  %-8s  %s\n", "-", nameLen, "-----", "-------", "----")

	for _, r := range rows {
		fmt.Printf("  %-3s  %-*s  %-8s  %s\n", r[0], nameLen, r[1], r[2], r[3])
	}

	fmt.Println()
	fmt.Println("Run 'seasons play --level <#>' to start at a level.")
}

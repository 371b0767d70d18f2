package main

import (
	"github.com/spf13/cobra"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the main menu",
	Long: `Start the game in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  M            - Sound on/off
  Q            - Quit

Examples:
  seasons menu
  seasons menu --fps 30
  seasons menu --mute`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	return runSession(-1)
}

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "sudoku-generator",
	Short: "Generate sudoku-family puzzles from board templates",
	Long: `sudoku-generator builds puzzles of the sudoku family from textual board
templates. A template describes the board shape and its regions; the
generator solves it, then drills out as many fields as possible while the
puzzle keeps exactly one solution.`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

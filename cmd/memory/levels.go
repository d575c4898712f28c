package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/memory-arcade/internal/config"
)

var flagLevelCount int

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Print the level table",
	Long: `Print board size, start bonus and shape for the first N levels,
after --config and --difficulty are applied. Levels past the table keep
growing by one row.

Examples:
  memory levels
  memory levels -n 20 --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func init() {
	levelsCmd.Flags().IntVarP(&flagLevelCount, "count", "n", 12, "Number of levels to print")
}

func runLevels(_ *cobra.Command, _ []string) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rules, err := loadRules(preset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	table := rules.Levels

	fmt.Printf("  %-5s  %-7s  %-5s  %-6s  %s\n", "Level", "Board", "Tiles", "Bonus", "Shape")
	fmt.Printf("  %-5s  %-7s  %-5s  %-6s  %s\n", "-----", "-----", "-----", "-----", "-----")
	for n := range flagLevelCount {
		spec := table.Level(n)
		shape := spec.Shape.String()
		if shape == "" {
			shape = "mixed"
		}
		tiles := spec.Cells() - spec.Cells()%2
		fmt.Printf("  %-5d  %-7s  %-5d  +%-5d  %s\n",
			n, fmt.Sprintf("%dx%d", spec.Rows, spec.Cols), tiles, spec.Bonus, shape)
	}
}

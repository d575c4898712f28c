package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/memory-arcade/internal/games/memory"
	"github.com/vovakirdan/memory-arcade/internal/storage"
)

var (
	flagRecent bool
	flagLimit  int
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best and recent runs",
	Long: `Display recorded runs, best first (most pairs, then highest level).

Examples:
  memory scores
  memory scores --recent
  memory scores -n 25`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "Order by date instead of score")
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	order, title := storage.RunsBest, "Best runs"
	if flagRecent {
		order, title = storage.RunsRecent, "Recent runs"
	}

	runs, err := store.Runs(order, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s - Memory\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'memory play' to set the first record!")
		return
	}

	fmt.Printf("  %-4s  %-12s  %-6s  %-6s  %-5s  %-8s  %-7s  %s\n",
		"Rank", "Player", "Level", "Pairs", "Acc", "Time", "Mode", "When")
	fmt.Printf("  %-4s  %-12s  %-6s  %-6s  %-5s  %-8s  %-7s  %s\n",
		"----", "------", "-----", "-----", "---", "----", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-6d  %-6s  %-5s  %-8s  %-7s  %s\n",
			i+1,
			r.Player,
			r.Level,
			humanize.Comma(int64(r.Pairs)),
			fmt.Sprintf("%.0f%%", r.Accuracy()*100),
			r.Duration.Round(time.Second),
			r.Difficulty,
			humanize.Time(r.CreatedAt),
		)
	}

	stats, err := store.GetGameStats(memory.ID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Games: %s  Best: %d pairs  Best level: %d  Average: %.1f pairs  Played: %s\n",
			humanize.Comma(int64(stats.GamesCount)),
			stats.HighScore,
			stats.BestLevel,
			stats.AvgScore,
			stats.TotalPlayed.Round(time.Second),
		)
	}
}

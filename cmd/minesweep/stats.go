package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minesweep/internal/config"
	"github.com/vovakirdan/minesweep/internal/storage"
)

var (
	flagStatsPreset string
	flagStatsRecent int
	flagStatsClear  bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recorded simulation statistics",
	Long: `Show aggregated statistics for recorded solver simulations.

Examples:
  minesweep stats --preset beginner
  minesweep stats --preset expert --recent 10
  minesweep stats --preset beginner --clear`,
	Run: runStats,
}

func init() {
	statsCmd.Flags().StringVar(&flagStatsPreset, "preset", string(config.PresetBeginner), "Board preset")
	statsCmd.Flags().IntVar(&flagStatsRecent, "recent", 0, "Also list the N most recent games")
	statsCmd.Flags().BoolVar(&flagStatsClear, "clear", false, "Delete recorded results for the preset")
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open results database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagStatsClear {
		if err := store.ClearResults(flagStatsPreset); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared recorded results for %s\n", flagStatsPreset)
		return
	}

	stats, err := store.Stats(flagStatsPreset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Statistics for %s:\n\n", stats.Preset)
	if stats.Games == 0 {
		fmt.Println("  No recorded games. Run 'minesweep simulate --record' first.")
		return
	}

	fmt.Printf("  Games:       %d\n", stats.Games)
	fmt.Printf("  Wins:        %d\n", stats.Wins)
	fmt.Printf("  Win rate:    %.1f%%\n", stats.WinRate*100)
	fmt.Printf("  Avg moves:   %.1f\n", stats.AvgMoves)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("  Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04:05"))
	}

	if flagStatsRecent > 0 {
		results, err := store.RecentResults(flagStatsPreset, flagStatsRecent)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println()
		fmt.Printf("  %-12s  %-6s  %-6s  %-8s  %s\n", "Seed", "Won", "Moves", "Guesses", "Revealed")
		for _, r := range results {
			won := "no"
			if r.Won {
				won = "yes"
			}
			fmt.Printf("  %-12d  %-6s  %-6d  %-8d  %d\n", r.Seed, won, r.Moves, r.Guesses, r.Revealed)
		}
	}
}

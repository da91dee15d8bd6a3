package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/minesweep/internal/config"
	"github.com/vovakirdan/minesweep/internal/solver"
	"github.com/vovakirdan/minesweep/internal/storage"
)

var (
	flagSimPreset string
	flagSimGames  int
	flagSimRecord bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run solver games and report win rates",
	Long: `Play a batch of solver games against freshly generated boards and
report the aggregate win rate. Each game uses its own derived seed, so a run
is reproducible with --seed.

With --record, per-game results are saved to the results database and can be
inspected later with 'minesweep stats'.

Examples:
  minesweep simulate --preset beginner --games 100
  minesweep simulate --preset expert --games 1000 --record
  minesweep simulate --config ./board.yaml --games 50 --seed 7`,
	Run: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagSimPreset, "preset", string(config.PresetBeginner), "Board preset")
	simulateCmd.Flags().IntVar(&flagSimGames, "games", 100, "Number of games to play")
	simulateCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save per-game results to the database")
}

func runSimulate(cmd *cobra.Command, args []string) {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "minesweep",
	})

	cfg, err := resolveBoard(flagSimPreset)
	if err != nil {
		logger.Fatal("Invalid board", "error", err)
	}
	if flagSimGames <= 0 {
		logger.Fatal("Invalid game count", "games", flagSimGames)
	}

	var store *storage.Store
	if flagSimRecord {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			logger.Warn("Results database unavailable, continuing without recording", "error", err)
		} else {
			defer store.Close()
		}
	}

	baseSeed := resolveSeed()
	logger.Info("Starting simulation", "board", cfg.String(), "games", flagSimGames, "seed", baseSeed)

	runner := solver.NewRunner(cfg)
	wins, guesses, moves := 0, 0, 0
	for i := 0; i < flagSimGames; i++ {
		gameSeed := baseSeed + int64(i)
		result, err := runner.PlayGame(gameSeed)
		if err != nil {
			logger.Error("Game failed", "seed", gameSeed, "error", err)
			continue
		}
		if result.Won {
			wins++
		}
		guesses += result.Guesses
		moves += result.Moves

		if store != nil {
			_, err := store.SaveResult(storage.SimulationResult{
				Preset:   flagSimPreset,
				Cols:     cfg.Cols,
				Rows:     cfg.Rows,
				Mines:    cfg.Mines,
				Seed:     gameSeed,
				Won:      result.Won,
				Moves:    result.Moves,
				Guesses:  result.Guesses,
				Revealed: result.Revealed,
			})
			if err != nil {
				logger.Warn("Failed to record game", "seed", gameSeed, "error", err)
			}
		}
	}

	winRate := float64(wins) / float64(flagSimGames)
	logger.Info("Simulation finished",
		"games", flagSimGames,
		"wins", wins,
		"win_rate", fmt.Sprintf("%.1f%%", winRate*100),
		"avg_moves", fmt.Sprintf("%.1f", float64(moves)/float64(flagSimGames)),
		"avg_guesses", fmt.Sprintf("%.2f", float64(guesses)/float64(flagSimGames)),
	)
}

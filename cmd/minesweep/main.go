// minesweep is a headless Minesweeper engine toolkit: board generation,
// solver simulation and result statistics.
//
// Usage:
//
//	minesweep presets            - List built-in board presets
//	minesweep deal               - Generate a board and show the first reveal
//	minesweep simulate           - Run solver games and report win rates
//	minesweep stats              - Show recorded simulation statistics
//
// Global flags:
//
//	--seed <value>   - RNG seed for reproducible runs (0 = time-based)
//	--db <path>      - Results database path (default: ~/.minesweep/results.db)
//	--config <path>  - Custom board config YAML (overrides --preset)
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minesweep/internal/config"
)

var (
	// Global flags
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minesweep",
	Short: "Minesweeper engine toolkit",
	Long: `minesweep is a headless toolkit around a Minesweeper rules engine.

Available commands:
  presets  - Show built-in board presets
  deal     - Generate a board from a first click and print its layout
  simulate - Play solver games in batch and report win rates
  stats    - View recorded simulation statistics

Examples:
  minesweep presets
  minesweep deal --preset beginner --click 4,4
  minesweep simulate --preset expert --games 1000 --record
  minesweep stats --preset expert`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.minesweep/results.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom board config YAML")

	// Add subcommands
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(dealCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(statsCmd)
}

// resolveSeed turns the --seed flag into a concrete seed.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// resolveBoard picks the board shape: --config wins over --preset.
func resolveBoard(preset string) (config.BoardConfig, error) {
	if flagConfig != "" {
		return config.Load(flagConfig)
	}
	cfg, ok := config.PresetBoard(config.Preset(preset))
	if !ok {
		return config.BoardConfig{}, fmt.Errorf("unknown preset %q (run 'minesweep presets')", preset)
	}
	return cfg, nil
}

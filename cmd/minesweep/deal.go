package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/minesweep/internal/board"
	"github.com/vovakirdan/minesweep/internal/config"
)

var (
	flagDealPreset string
	flagDealClick  string
)

var dealCmd = &cobra.Command{
	Use:   "deal",
	Short: "Generate a board and show the first reveal",
	Long: `Construct a board, perform the first reveal at the given click
position and print the resulting layout. The clicked cell and its neighbors
are guaranteed mine-free.

Layout legend:
  *  mine
  .  revealed, no adjacent mines
  1-8  revealed, adjacent mine count
  -  hidden

Examples:
  minesweep deal --preset beginner
  minesweep deal --preset expert --click 0,0 --seed 42
  minesweep deal --config ./board.yaml --click 2,3`,
	Run: runDeal,
}

func init() {
	dealCmd.Flags().StringVar(&flagDealPreset, "preset", string(config.PresetBeginner), "Board preset")
	dealCmd.Flags().StringVar(&flagDealClick, "click", "", "First click as col,row (default: board center)")
}

func runDeal(cmd *cobra.Command, args []string) {
	cfg, err := resolveBoard(flagDealPreset)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	col, row := cfg.Cols/2, cfg.Rows/2
	if flagDealClick != "" {
		col, row, err = parseClick(flagDealClick)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	seed := resolveSeed()
	b, err := board.NewWithSampler(cfg.Cols, cfg.Rows, cfg.Mines, board.NewRandSampler(seed))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !b.InBounds(col, row) {
		fmt.Fprintf(os.Stderr, "Error: click %d,%d is outside the %s board\n", col, row, cfg)
		os.Exit(1)
	}
	if err := b.Reveal(col, row); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Board %s, seed %d, first click (%d,%d)\n\n", cfg, seed, col, row)
	printBoard(b)
	fmt.Printf("\nRevealed %d of %d safe cells\n", b.RevealedCount(), cfg.Cols*cfg.Rows-cfg.Mines)
}

// parseClick parses "col,row".
func parseClick(s string) (int, int, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid click %q, expected col,row", s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid click column %q", parts[0])
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid click row %q", parts[1])
	}
	return col, row, nil
}

// printBoard dumps the full layout, mines included, to stdout.
func printBoard(b *board.Board) {
	for row := 0; row < b.Rows(); row++ {
		var line strings.Builder
		for col := 0; col < b.Cols(); col++ {
			cell, _ := b.Cell(col, row)
			switch {
			case cell.State.Mine:
				line.WriteString("* ")
			case !cell.State.Revealed:
				line.WriteString("- ")
			case cell.State.Adjacent == 0:
				line.WriteString(". ")
			default:
				line.WriteString(fmt.Sprintf("%d ", cell.State.Adjacent))
			}
		}
		fmt.Println(line.String())
	}
}

package solver

import (
	"fmt"

	"github.com/vovakirdan/minesweep/internal/board"
	"github.com/vovakirdan/minesweep/internal/config"
)

// Result is the outcome of one solver-played game.
type Result struct {
	Won      bool
	Moves    int // Total moves including the opening reveal
	Guesses  int // Moves made without a certain deduction
	Revealed int
	Flags    int
}

// Runner plays full games of a fixed board shape.
type Runner struct {
	cfg config.BoardConfig
}

// NewRunner creates a runner for the given board shape.
func NewRunner(cfg config.BoardConfig) *Runner {
	return &Runner{cfg: cfg}
}

// PlayGame plays a single game to completion: construct a board seeded with
// gameSeed, open at the center, then follow the solver until the game ends.
// Deterministic for a fixed shape and seed.
func (r *Runner) PlayGame(gameSeed int64) (Result, error) {
	b, err := board.NewWithSampler(r.cfg.Cols, r.cfg.Rows, r.cfg.Mines, board.NewRandSampler(gameSeed))
	if err != nil {
		return Result{}, err
	}
	s := New(b, gameSeed)

	if err := b.Reveal(r.cfg.Cols/2, r.cfg.Rows/2); err != nil {
		return Result{}, fmt.Errorf("solver: opening reveal failed: %w", err)
	}
	moves, guesses := 1, 0

	// Every move either reveals or flags a hidden cell, so the game ends well
	// within cells*2 moves; the cap only guards against a stalled solver.
	maxMoves := r.cfg.Cols * r.cfg.Rows * 2
	for !b.GameOver() && !b.Win() && moves < maxMoves {
		move := s.NextMove()
		if move == nil {
			break
		}
		switch move.Type {
		case MoveReveal:
			if err := b.Reveal(move.Col, move.Row); err != nil {
				return Result{}, err
			}
		case MoveFlag:
			b.ToggleFlag(move.Col, move.Row)
		}
		if move.Guess {
			guesses++
		}
		moves++
	}

	return Result{
		Won:      b.Win(),
		Moves:    moves,
		Guesses:  guesses,
		Revealed: b.RevealedCount(),
		Flags:    b.FlaggedCount(),
	}, nil
}

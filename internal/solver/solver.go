// Package solver implements a single-point Minesweeper solver. It consumes
// the board engine the same way a presentation layer would: reading cell
// state and issuing reveal/flag operations. Deductions use only one numbered
// cell at a time (forced-safe and forced-mine); when no deduction applies it
// falls back to a uniform random guess.
package solver

import (
	"math/rand"

	"github.com/vovakirdan/minesweep/internal/board"
)

// MoveType distinguishes reveals from flag placements.
type MoveType int

const (
	MoveReveal MoveType = iota
	MoveFlag
)

// String returns a human-readable move type.
func (t MoveType) String() string {
	switch t {
	case MoveReveal:
		return "reveal"
	case MoveFlag:
		return "flag"
	default:
		return "unknown"
	}
}

// Move strategies.
const (
	StrategyLogic = "logic"
	StrategyGuess = "guess"
)

// Move is a single solver decision.
type Move struct {
	Col      int
	Row      int
	Type     MoveType
	Guess    bool   // True when the move is not a certain deduction
	Strategy string // StrategyLogic or StrategyGuess
}

// Solver plays a board using single-point logic plus random guessing.
type Solver struct {
	b   *board.Board
	rng *rand.Rand
}

// New creates a solver for the given board. The seed drives guess selection
// only; identical seeds over identical boards produce identical play.
func New(b *board.Board, seed int64) *Solver {
	return &Solver{
		b:   b,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// NextMove returns the solver's next move, or nil when no hidden unflagged
// cell remains. Certain deductions are preferred over guesses.
func (s *Solver) NextMove() *Move {
	if move := s.forcedSafe(); move != nil {
		move.Strategy = StrategyLogic
		return move
	}
	if move := s.forcedFlag(); move != nil {
		move.Strategy = StrategyLogic
		return move
	}
	return s.randomGuess()
}

// forcedSafe finds a numbered cell whose flags already account for all of its
// mines; any other hidden neighbor is then certainly safe to reveal.
func (s *Solver) forcedSafe() *Move {
	for row := 0; row < s.b.Rows(); row++ {
		for col := 0; col < s.b.Cols(); col++ {
			cell, _ := s.b.Cell(col, row)
			if !cell.State.Revealed || cell.State.Adjacent == 0 {
				continue
			}
			_, flags, hidden := s.neighborInfo(col, row)
			if flags == cell.State.Adjacent && len(hidden) > 0 {
				target := hidden[0]
				return &Move{Col: target.Col, Row: target.Row, Type: MoveReveal}
			}
		}
	}
	return nil
}

// forcedFlag finds a numbered cell whose hidden neighbors all must be mines
// (their count equals the cell's number) and flags the first unflagged one.
func (s *Solver) forcedFlag() *Move {
	for row := 0; row < s.b.Rows(); row++ {
		for col := 0; col < s.b.Cols(); col++ {
			cell, _ := s.b.Cell(col, row)
			if !cell.State.Revealed || cell.State.Adjacent == 0 {
				continue
			}
			totalHidden, flags, hidden := s.neighborInfo(col, row)
			if totalHidden == cell.State.Adjacent && totalHidden-flags > 0 {
				target := hidden[0]
				return &Move{Col: target.Col, Row: target.Row, Type: MoveFlag}
			}
		}
	}
	return nil
}

// randomGuess reveals a uniformly random hidden unflagged cell.
func (s *Solver) randomGuess() *Move {
	var candidates []board.Coord
	for row := 0; row < s.b.Rows(); row++ {
		for col := 0; col < s.b.Cols(); col++ {
			cell, _ := s.b.Cell(col, row)
			if !cell.State.Revealed && !cell.State.Flagged {
				candidates = append(candidates, board.C(col, row))
			}
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	choice := candidates[s.rng.Intn(len(candidates))]
	return &Move{
		Col:      choice.Col,
		Row:      choice.Row,
		Type:     MoveReveal,
		Guess:    true,
		Strategy: StrategyGuess,
	}
}

// neighborInfo summarizes the hidden neighborhood of (col,row): how many
// neighbors are hidden, how many of those carry flags, and the hidden
// unflagged ones in stable neighbor order.
func (s *Solver) neighborInfo(col, row int) (totalHidden, flags int, hidden []board.Coord) {
	for _, n := range s.b.Neighbors(col, row) {
		cell, _ := s.b.Cell(n.Col, n.Row)
		if cell.State.Revealed {
			continue
		}
		totalHidden++
		if cell.State.Flagged {
			flags++
		} else {
			hidden = append(hidden, n)
		}
	}
	return totalHidden, flags, hidden
}

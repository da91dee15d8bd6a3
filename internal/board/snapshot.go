package board

// Snapshot captures the complete board state for determinism testing and
// replay. Cell states are listed in row-major order.
type Snapshot struct {
	Cols          int
	Rows          int
	Mines         int
	Phase         Phase
	RevealedCount int
	FlaggedCount  int
	GameOver      bool
	Win           bool
	Cells         []CellState
}

// Snapshot returns the current board snapshot.
func (b *Board) Snapshot() Snapshot {
	cells := make([]CellState, len(b.cells))
	for i := range b.cells {
		cells[i] = b.cells[i].State
	}
	return Snapshot{
		Cols:          b.cols,
		Rows:          b.rows,
		Mines:         b.mines,
		Phase:         b.phase,
		RevealedCount: b.revealedCount,
		FlaggedCount:  b.FlaggedCount(),
		GameOver:      b.gameOver,
		Win:           b.win,
		Cells:         cells,
	}
}

// Equal returns true if two snapshots describe identical board states.
func (s Snapshot) Equal(other Snapshot) bool {
	if s.Cols != other.Cols || s.Rows != other.Rows || s.Mines != other.Mines {
		return false
	}
	if s.Phase != other.Phase || s.RevealedCount != other.RevealedCount ||
		s.FlaggedCount != other.FlaggedCount || s.GameOver != other.GameOver || s.Win != other.Win {
		return false
	}
	for i := range s.Cells {
		if s.Cells[i] != other.Cells[i] {
			return false
		}
	}
	return true
}

// Package board implements the Minesweeper rules engine: lazy mine placement
// with first-click safety, adjacency counting, cascading reveal, flagging and
// win/loss detection. It contains no rendering, timing or input concerns;
// presentation layers consume it through Reveal/ToggleFlag and the read-only
// accessors.
package board

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfiguration is returned when the mine count cannot be satisfied,
// either for any click position (caught at construction) or for the actual
// first-click safe zone (caught at placement).
var ErrInvalidConfiguration = errors.New("board: invalid configuration")

// Phase tracks the board's two-phase lifecycle. Mines are placed lazily on
// the first reveal, so a freshly constructed board is PhaseUninitialized.
type Phase int

const (
	// PhaseUninitialized means no mines have been placed yet.
	PhaseUninitialized Phase = iota
	// PhaseActive means mines are placed and the layout is immutable.
	PhaseActive
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseActive:
		return "active"
	default:
		return "unknown"
	}
}

// CellState holds the mutable state of a single cell.
type CellState struct {
	Mine     bool // Fixed once mines are placed
	Revealed bool // Monotonic: never reverts to false
	Flagged  bool // Toggles only while Revealed is false
	Adjacent int  // Mines among the up to 8 neighbors; 0 for mine cells
}

// Cell is a cell positioned on the board by column and row.
type Cell struct {
	Col   int
	Row   int
	State CellState
}

// Board owns the grid of cells, the mine layout and the game-phase state.
// Cells are stored in row-major order: index = row*cols + col.
// All operations are synchronous and single-threaded.
type Board struct {
	cols  int
	rows  int
	mines int

	cells   []Cell
	phase   Phase
	sampler Sampler

	revealedCount int
	gameOver      bool
	win           bool
}

// New creates an empty board with a time-seeded mine sampler. No mines are
// placed until the first Reveal call.
func New(cols, rows, mines int) (*Board, error) {
	return NewWithSampler(cols, rows, mines, NewRandSampler(time.Now().UnixNano()))
}

// NewWithSampler creates an empty board using the given Sampler for mine
// placement. Tests and the simulate command use this with seeded samplers for
// reproducible layouts.
//
// Construction rejects only configurations that are impossible regardless of
// where the first click lands; the authoritative safe-zone check happens at
// placement time against the actual candidate pool.
func NewWithSampler(cols, rows, mines int, sampler Sampler) (*Board, error) {
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("%w: board size %dx%d", ErrInvalidConfiguration, cols, rows)
	}
	if mines < 0 || mines >= cols*rows {
		return nil, fmt.Errorf("%w: %d mines on a %dx%d board", ErrInvalidConfiguration, mines, cols, rows)
	}
	if sampler == nil {
		return nil, fmt.Errorf("%w: nil sampler", ErrInvalidConfiguration)
	}

	cells := make([]Cell, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cells[row*cols+col] = Cell{Col: col, Row: row}
		}
	}

	return &Board{
		cols:    cols,
		rows:    rows,
		mines:   mines,
		cells:   cells,
		phase:   PhaseUninitialized,
		sampler: sampler,
	}, nil
}

// Cols returns the board width.
func (b *Board) Cols() int { return b.cols }

// Rows returns the board height.
func (b *Board) Rows() int { return b.rows }

// Mines returns the target mine count.
func (b *Board) Mines() int { return b.mines }

// Phase returns the current lifecycle phase.
func (b *Board) Phase() Phase { return b.phase }

// RevealedCount returns the number of revealed cells.
func (b *Board) RevealedCount() int { return b.revealedCount }

// GameOver reports whether a mine has been revealed. Terminal once true.
func (b *Board) GameOver() bool { return b.gameOver }

// Win reports whether every non-mine cell has been revealed without hitting a
// mine. Terminal once true; never true together with GameOver.
func (b *Board) Win() bool { return b.win }

// Cell returns a copy of the cell at (col,row). The second return value is
// false for out-of-range coordinates.
func (b *Board) Cell(col, row int) (Cell, bool) {
	if !b.InBounds(col, row) {
		return Cell{}, false
	}
	return b.cells[b.index(col, row)], true
}

// Cells returns a copy of all cells in row-major order, for presentation
// layers that render the whole grid.
func (b *Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// FlaggedCount returns the number of currently flagged cells.
func (b *Board) FlaggedCount() int {
	count := 0
	for i := range b.cells {
		if b.cells[i].State.Flagged {
			count++
		}
	}
	return count
}

// placeMines generates the mine layout, keeping (safeCol,safeRow) and its
// in-bounds neighbors mine-free. Called exactly once, by the first Reveal.
// Selection happens before any cell is mutated, so a failure leaves the board
// untouched.
func (b *Board) placeMines(safeCol, safeRow int) error {
	forbidden := make(map[Coord]bool, 9)
	forbidden[C(safeCol, safeRow)] = true
	for _, n := range b.Neighbors(safeCol, safeRow) {
		forbidden[n] = true
	}

	pool := make([]Coord, 0, b.cols*b.rows-len(forbidden))
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			if !forbidden[C(col, row)] {
				pool = append(pool, C(col, row))
			}
		}
	}

	if b.mines > len(pool) {
		return fmt.Errorf("%w: %d mines but only %d cells outside the safe zone around %s",
			ErrInvalidConfiguration, b.mines, len(pool), C(safeCol, safeRow))
	}

	for _, p := range b.sampler.Sample(pool, b.mines) {
		b.cells[b.index(p.Col, p.Row)].State.Mine = true
	}

	// Adjacency is a second full pass; it must not run before every mine is set.
	for i := range b.cells {
		c := &b.cells[i]
		if c.State.Mine {
			continue
		}
		count := 0
		for _, n := range b.Neighbors(c.Col, c.Row) {
			if b.cells[b.index(n.Col, n.Row)].State.Mine {
				count++
			}
		}
		c.State.Adjacent = count
	}

	b.phase = PhaseActive
	return nil
}

// Reveal opens the cell at (col,row). The first reveal of a game triggers
// mine placement with (col,row) as the safe click, so it can never detonate.
// Revealing a zero-adjacency cell cascades over the connected zero region and
// its numbered border. Out-of-range, already revealed and flagged cells are
// silent no-ops.
//
// The only error is ErrInvalidConfiguration from first-click placement; the
// game must not proceed after it.
func (b *Board) Reveal(col, row int) error {
	if !b.InBounds(col, row) {
		return nil
	}
	// Terminal states are sticky: no reveal may follow a win or a loss, which
	// also keeps win and game over mutually exclusive.
	if b.gameOver || b.win {
		return nil
	}

	if b.phase == PhaseUninitialized {
		if err := b.placeMines(col, row); err != nil {
			return err
		}
	}

	cell := &b.cells[b.index(col, row)]
	if cell.State.Revealed || cell.State.Flagged {
		return nil
	}

	cell.State.Revealed = true
	b.revealedCount++

	if cell.State.Mine {
		b.gameOver = true
		b.revealAllMines()
		return nil
	}

	if cell.State.Adjacent == 0 {
		b.flood(col, row)
	}

	b.checkWin()
	return nil
}

// flood expands the zero-adjacency region around an already revealed cell
// using an explicit worklist instead of recursion. Each neighbor is revealed
// at most once; cells with a nonzero count form the border and are not
// expanded further. Mines never enter the region: any cell next to a mine has
// a nonzero count and so is never pushed.
func (b *Board) flood(col, row int) {
	work := []Coord{C(col, row)}
	for len(work) > 0 {
		cur := work[len(work)-1]
		work = work[:len(work)-1]

		for _, n := range b.Neighbors(cur.Col, cur.Row) {
			cell := &b.cells[b.index(n.Col, n.Row)]
			if cell.State.Revealed || cell.State.Flagged {
				continue
			}
			cell.State.Revealed = true
			b.revealedCount++
			if cell.State.Adjacent == 0 {
				work = append(work, n)
			}
		}
	}
}

// revealAllMines uncovers every mine after a loss. This is a cosmetic
// end-state: it does not touch revealedCount. Flags on mines are cleared so a
// flagged cell is never simultaneously revealed.
func (b *Board) revealAllMines() {
	for i := range b.cells {
		c := &b.cells[i]
		if c.State.Mine {
			c.State.Flagged = false
			c.State.Revealed = true
		}
	}
}

// checkWin flips the board into the win state once every non-mine cell is
// revealed. Runs after each successful non-mine reveal, including cascades.
func (b *Board) checkWin() {
	if b.gameOver || b.win {
		return
	}
	if b.revealedCount == b.cols*b.rows-b.mines {
		b.win = true
		for i := range b.cells {
			c := &b.cells[i]
			if !c.State.Mine && !c.State.Revealed {
				c.State.Revealed = true
			}
		}
	}
}

// ToggleFlag inverts the flag on a hidden cell. Revealed cells cannot be
// flagged; out-of-range coordinates are a silent no-op.
func (b *Board) ToggleFlag(col, row int) {
	if !b.InBounds(col, row) {
		return
	}
	cell := &b.cells[b.index(col, row)]
	if cell.State.Revealed {
		return
	}
	cell.State.Flagged = !cell.State.Flagged
}

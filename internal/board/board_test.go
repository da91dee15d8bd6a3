package board

import (
	"errors"
	"testing"
)

// fixedSampler places mines at predetermined coordinates, skipping any that
// fall outside the candidate pool. Used to craft exact layouts in tests.
type fixedSampler struct {
	mines []Coord
}

func (s fixedSampler) Sample(pool []Coord, k int) []Coord {
	inPool := make(map[Coord]bool, len(pool))
	for _, c := range pool {
		inPool[c] = true
	}
	out := make([]Coord, 0, k)
	for _, c := range s.mines {
		if len(out) == k {
			break
		}
		if inPool[c] {
			out = append(out, c)
		}
	}
	return out
}

func mustBoard(t *testing.T, cols, rows, mines int, s Sampler) *Board {
	t.Helper()
	b, err := NewWithSampler(cols, rows, mines, s)
	if err != nil {
		t.Fatalf("NewWithSampler(%d,%d,%d) failed: %v", cols, rows, mines, err)
	}
	return b
}

func TestNewRejectsImpossibleConfigurations(t *testing.T) {
	cases := []struct {
		cols, rows, mines int
	}{
		{0, 5, 0},
		{5, 0, 0},
		{-1, 5, 0},
		{5, 5, -1},
		{1, 1, 1},  // No free cell can survive the first click
		{3, 3, 9},  // Mines would fill the whole board
		{3, 3, 10}, // More mines than cells
	}

	for _, c := range cases {
		_, err := New(c.cols, c.rows, c.mines)
		if !errors.Is(err, ErrInvalidConfiguration) {
			t.Errorf("New(%d,%d,%d): expected ErrInvalidConfiguration, got %v", c.cols, c.rows, c.mines, err)
		}
	}
}

func TestLifecyclePhases(t *testing.T) {
	b := mustBoard(t, 5, 5, 3, NewRandSampler(1))

	if b.Phase() != PhaseUninitialized {
		t.Fatalf("Fresh board should be uninitialized, got %s", b.Phase())
	}
	if b.RevealedCount() != 0 {
		t.Errorf("Fresh board should have 0 revealed cells, got %d", b.RevealedCount())
	}

	if err := b.Reveal(2, 2); err != nil {
		t.Fatalf("Reveal() failed: %v", err)
	}
	if b.Phase() != PhaseActive {
		t.Errorf("Board should be active after first reveal, got %s", b.Phase())
	}
}

func TestFirstClickSafety(t *testing.T) {
	clicks := []Coord{C(0, 0), C(8, 8), C(4, 4), C(0, 4), C(8, 0)}

	for seed := int64(1); seed <= 50; seed++ {
		for _, click := range clicks {
			b := mustBoard(t, 9, 9, 10, NewRandSampler(seed))
			if err := b.Reveal(click.Col, click.Row); err != nil {
				t.Fatalf("Reveal(%s) with seed %d failed: %v", click, seed, err)
			}

			cell, _ := b.Cell(click.Col, click.Row)
			if cell.State.Mine {
				t.Fatalf("First click at %s detonated with seed %d", click, seed)
			}
			for _, n := range b.Neighbors(click.Col, click.Row) {
				nc, _ := b.Cell(n.Col, n.Row)
				if nc.State.Mine {
					t.Errorf("Neighbor %s of first click %s is a mine with seed %d", n, click, seed)
				}
			}
		}
	}
}

func TestMineCountExactness(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		b := mustBoard(t, 9, 9, 10, NewRandSampler(seed))
		if err := b.Reveal(4, 4); err != nil {
			t.Fatalf("Reveal() failed: %v", err)
		}

		mines := 0
		for _, c := range b.Cells() {
			if c.State.Mine {
				mines++
			}
		}
		if mines != 10 {
			t.Errorf("Seed %d: expected exactly 10 mines, got %d", seed, mines)
		}
	}
}

func TestAdjacencyCorrectness(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		b := mustBoard(t, 12, 8, 15, NewRandSampler(seed))
		if err := b.Reveal(6, 4); err != nil {
			t.Fatalf("Reveal() failed: %v", err)
		}

		for _, c := range b.Cells() {
			if c.State.Mine {
				if c.State.Adjacent != 0 {
					t.Errorf("Seed %d: mine at (%d,%d) has nonzero adjacency %d", seed, c.Col, c.Row, c.State.Adjacent)
				}
				continue
			}
			// Brute-force recomputation must match the stored count
			want := 0
			for _, n := range b.Neighbors(c.Col, c.Row) {
				nc, _ := b.Cell(n.Col, n.Row)
				if nc.State.Mine {
					want++
				}
			}
			if c.State.Adjacent != want {
				t.Errorf("Seed %d: cell (%d,%d) adjacency %d, want %d", seed, c.Col, c.Row, c.State.Adjacent, want)
			}
		}
	}
}

func TestPlacementFailsWhenPoolEmpty(t *testing.T) {
	// 3x3 with 1 mine: a center click forbids all 9 cells, leaving no pool.
	b := mustBoard(t, 3, 3, 1, NewRandSampler(7))

	err := b.Reveal(1, 1)
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("Expected ErrInvalidConfiguration for center click on 3x3/1, got %v", err)
	}

	// Placement is all-or-nothing: the board must be left untouched.
	if b.Phase() != PhaseUninitialized {
		t.Errorf("Failed placement should leave the board uninitialized, got %s", b.Phase())
	}
	if b.RevealedCount() != 0 {
		t.Errorf("Failed placement should reveal nothing, got %d revealed", b.RevealedCount())
	}
	for _, c := range b.Cells() {
		if c.State.Mine || c.State.Revealed {
			t.Errorf("Cell (%d,%d) mutated by failed placement", c.Col, c.Row)
		}
	}
}

func TestPlacementSucceedsOffCenter(t *testing.T) {
	// The same 3x3/1 board works when the click leaves cells outside the
	// safe zone: a corner click forbids only 4 cells.
	for seed := int64(1); seed <= 10; seed++ {
		b := mustBoard(t, 3, 3, 1, NewRandSampler(seed))
		if err := b.Reveal(0, 0); err != nil {
			t.Fatalf("Corner click on 3x3/1 failed with seed %d: %v", seed, err)
		}
		cell, _ := b.Cell(0, 0)
		if cell.State.Mine {
			t.Errorf("Corner click detonated with seed %d", seed)
		}
	}
}

func TestCornerClickFiveByFive(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		b := mustBoard(t, 5, 5, 1, NewRandSampler(seed))
		if err := b.Reveal(0, 0); err != nil {
			t.Fatalf("Reveal(0,0) failed with seed %d: %v", seed, err)
		}
		if b.GameOver() {
			t.Errorf("First corner click lost the game with seed %d", seed)
		}
	}
}

func TestZeroMinesFullCascadeWin(t *testing.T) {
	b := mustBoard(t, 4, 4, 0, NewRandSampler(3))

	if err := b.Reveal(2, 1); err != nil {
		t.Fatalf("Reveal() failed: %v", err)
	}

	if b.RevealedCount() != 16 {
		t.Errorf("Expected all 16 cells revealed, got %d", b.RevealedCount())
	}
	if !b.Win() {
		t.Error("Zero-mine board should be won after the first reveal")
	}
	if b.GameOver() {
		t.Error("Win and game over must never both be true")
	}
	for _, c := range b.Cells() {
		if !c.State.Revealed {
			t.Errorf("Cell (%d,%d) left hidden on zero-mine board", c.Col, c.Row)
		}
	}
}

func TestCascadeStopsAtNumberedBorder(t *testing.T) {
	// A vertical wall of mines in column 2 splits a 5x5 board. Flooding from
	// the left side must reveal columns 0-1 (zeros plus their numbered
	// border) and nothing to the right of the wall.
	wall := []Coord{C(2, 0), C(2, 1), C(2, 2), C(2, 3), C(2, 4)}
	b := mustBoard(t, 5, 5, 5, fixedSampler{mines: wall})

	if err := b.Reveal(0, 2); err != nil {
		t.Fatalf("Reveal() failed: %v", err)
	}

	for _, c := range b.Cells() {
		switch {
		case c.Col <= 1:
			if !c.State.Revealed {
				t.Errorf("Left-side cell (%d,%d) should be revealed by the cascade", c.Col, c.Row)
			}
		default:
			if c.State.Revealed {
				t.Errorf("Cell (%d,%d) beyond the numbered border should stay hidden", c.Col, c.Row)
			}
		}
	}
	if b.RevealedCount() != 10 {
		t.Errorf("Expected 10 revealed cells, got %d", b.RevealedCount())
	}
	if b.Win() || b.GameOver() {
		t.Error("Partial cascade should not end the game")
	}
}

func TestCascadeSkipsFlaggedCells(t *testing.T) {
	b := mustBoard(t, 5, 5, 1, fixedSampler{mines: []Coord{C(4, 4)}})

	// Flags work before placement, so flag a cell the first cascade would
	// otherwise sweep over.
	b.ToggleFlag(2, 0)
	if err := b.Reveal(0, 0); err != nil {
		t.Fatalf("Reveal() failed: %v", err)
	}

	cell, _ := b.Cell(2, 0)
	if cell.State.Revealed {
		t.Error("Cascade must not reveal a flagged cell")
	}
	if !cell.State.Flagged {
		t.Error("Flag should survive the cascade")
	}
	if b.Win() {
		t.Error("Board must not be won while a safe cell is still hidden behind a flag")
	}
}

func TestRevealMineLoses(t *testing.T) {
	wall := []Coord{C(2, 0), C(2, 1), C(2, 2), C(2, 3), C(2, 4)}
	b := mustBoard(t, 5, 5, 5, fixedSampler{mines: wall})

	if err := b.Reveal(0, 2); err != nil {
		t.Fatalf("Reveal() failed: %v", err)
	}
	revealedBefore := b.RevealedCount()

	// Flag one mine, then step on another.
	b.ToggleFlag(2, 0)
	if err := b.Reveal(2, 4); err != nil {
		t.Fatalf("Reveal() failed: %v", err)
	}

	if !b.GameOver() {
		t.Fatal("Revealing a mine must set game over")
	}
	if b.Win() {
		t.Error("Win must stay false after a loss")
	}
	if b.RevealedCount() != revealedBefore+1 {
		t.Errorf("Loss should count only the stepped-on cell: got %d, want %d", b.RevealedCount(), revealedBefore+1)
	}

	for _, m := range wall {
		c, _ := b.Cell(m.Col, m.Row)
		if !c.State.Revealed {
			t.Errorf("Mine at %s should be revealed after loss", m)
		}
		if c.State.Flagged {
			t.Errorf("Mine at %s should not be both flagged and revealed", m)
		}
	}
}

func TestTerminalStatesAreSticky(t *testing.T) {
	wall := []Coord{C(2, 0), C(2, 1), C(2, 2), C(2, 3), C(2, 4)}
	b := mustBoard(t, 5, 5, 5, fixedSampler{mines: wall})

	if err := b.Reveal(0, 2); err != nil {
		t.Fatalf("Reveal() failed: %v", err)
	}
	if err := b.Reveal(2, 2); err != nil {
		t.Fatalf("Reveal() failed: %v", err)
	}
	if !b.GameOver() {
		t.Fatal("Expected loss")
	}
	revealedAfterLoss := b.RevealedCount()

	// Further operations must not resurrect or advance the game.
	if err := b.Reveal(4, 4); err != nil {
		t.Fatalf("Reveal() failed: %v", err)
	}
	if !b.GameOver() || b.Win() {
		t.Error("Game over must remain terminal")
	}
	if b.RevealedCount() != revealedAfterLoss {
		t.Errorf("Reveals after game over must be no-ops: count went %d -> %d",
			revealedAfterLoss, b.RevealedCount())
	}
}

func TestWinDetection(t *testing.T) {
	b := mustBoard(t, 4, 4, 2, fixedSampler{mines: []Coord{C(3, 0), C(3, 1)}})

	if err := b.Reveal(0, 3); err != nil {
		t.Fatalf("Reveal() failed: %v", err)
	}

	// Reveal any remaining hidden non-mine cells one by one.
	for _, c := range b.Cells() {
		if !c.State.Mine && !c.State.Revealed {
			if err := b.Reveal(c.Col, c.Row); err != nil {
				t.Fatalf("Reveal(%d,%d) failed: %v", c.Col, c.Row, err)
			}
		}
	}

	if !b.Win() {
		t.Fatal("Board should be won once all non-mine cells are revealed")
	}
	if b.GameOver() {
		t.Error("Win and game over must never both be true")
	}
	if b.RevealedCount() != 4*4-2 {
		t.Errorf("Expected revealed count %d, got %d", 4*4-2, b.RevealedCount())
	}
	for _, c := range b.Cells() {
		if !c.State.Mine && !c.State.Revealed {
			t.Errorf("Non-mine cell (%d,%d) hidden after win", c.Col, c.Row)
		}
	}
}

func TestRevealMonotonicity(t *testing.T) {
	b := mustBoard(t, 6, 6, 4, NewRandSampler(11))

	if err := b.Reveal(3, 3); err != nil {
		t.Fatalf("Reveal() failed: %v", err)
	}

	revealed := make(map[Coord]bool)
	for _, c := range b.Cells() {
		if c.State.Revealed {
			revealed[C(c.Col, c.Row)] = true
		}
	}

	// Re-revealing, flag toggles and further reveals must never hide a cell.
	for _, c := range b.Cells() {
		b.ToggleFlag(c.Col, c.Row)
		b.ToggleFlag(c.Col, c.Row)
		if err := b.Reveal(c.Col, c.Row); err != nil {
			t.Fatalf("Reveal(%d,%d) failed: %v", c.Col, c.Row, err)
		}
	}
	for coord := range revealed {
		c, _ := b.Cell(coord.Col, coord.Row)
		if !c.State.Revealed {
			t.Errorf("Cell %s transitioned revealed -> hidden", coord)
		}
	}
}

func TestFlagRevealExclusion(t *testing.T) {
	b := mustBoard(t, 8, 8, 10, NewRandSampler(21))

	b.ToggleFlag(1, 1)
	if err := b.Reveal(1, 1); err != nil {
		t.Fatalf("Reveal() failed: %v", err)
	}
	c, _ := b.Cell(1, 1)
	if c.State.Revealed {
		t.Error("Flagged cell must not be revealed")
	}
	// Placement precedes the flag check, so even a blocked first reveal
	// activates the board with (1,1) as the safe click.
	if b.Phase() != PhaseActive {
		t.Error("First reveal should place mines even when the target is flagged")
	}

	// Un-flag, reveal, then try to flag the revealed cell.
	b.ToggleFlag(1, 1)
	if err := b.Reveal(1, 1); err != nil {
		t.Fatalf("Reveal() failed: %v", err)
	}
	b.ToggleFlag(1, 1)
	c, _ = b.Cell(1, 1)
	if c.State.Flagged {
		t.Error("Revealed cell must not accept a flag")
	}

	for _, cell := range b.Cells() {
		if cell.State.Flagged && cell.State.Revealed {
			t.Errorf("Cell (%d,%d) is both flagged and revealed", cell.Col, cell.Row)
		}
	}
}

func TestFlaggedCount(t *testing.T) {
	b := mustBoard(t, 5, 5, 3, NewRandSampler(5))

	if b.FlaggedCount() != 0 {
		t.Errorf("Fresh board should have 0 flags, got %d", b.FlaggedCount())
	}

	b.ToggleFlag(0, 0)
	b.ToggleFlag(1, 1)
	b.ToggleFlag(2, 2)
	if b.FlaggedCount() != 3 {
		t.Errorf("Expected 3 flags, got %d", b.FlaggedCount())
	}

	b.ToggleFlag(1, 1)
	if b.FlaggedCount() != 2 {
		t.Errorf("Expected 2 flags after toggle off, got %d", b.FlaggedCount())
	}
}

func TestOutOfRangeIsNoOp(t *testing.T) {
	b := mustBoard(t, 4, 4, 2, NewRandSampler(9))

	if err := b.Reveal(-1, 0); err != nil {
		t.Errorf("Out-of-range reveal should be a silent no-op, got %v", err)
	}
	if err := b.Reveal(4, 4); err != nil {
		t.Errorf("Out-of-range reveal should be a silent no-op, got %v", err)
	}
	b.ToggleFlag(-3, 7)
	b.ToggleFlag(0, 99)

	if b.Phase() != PhaseUninitialized {
		t.Error("Out-of-range reveal must not trigger mine placement")
	}
	if b.RevealedCount() != 0 || b.FlaggedCount() != 0 {
		t.Errorf("Out-of-range operations mutated the board: %d revealed, %d flagged",
			b.RevealedCount(), b.FlaggedCount())
	}
}

func TestRevealedCountMatchesCells(t *testing.T) {
	b := mustBoard(t, 9, 9, 10, NewRandSampler(33))

	if err := b.Reveal(4, 4); err != nil {
		t.Fatalf("Reveal() failed: %v", err)
	}
	if err := b.Reveal(0, 0); err != nil {
		t.Fatalf("Reveal() failed: %v", err)
	}

	count := 0
	for _, c := range b.Cells() {
		if c.State.Revealed {
			count++
		}
	}
	if !b.GameOver() && count != b.RevealedCount() {
		t.Errorf("RevealedCount() = %d, but %d cells are revealed", b.RevealedCount(), count)
	}
}

func TestDeterministicLayouts(t *testing.T) {
	// Identical seeds and identical operations must produce identical boards.
	run := func(seed int64) Snapshot {
		b := mustBoard(t, 9, 9, 10, NewRandSampler(seed))
		if err := b.Reveal(4, 4); err != nil {
			t.Fatalf("Reveal() failed: %v", err)
		}
		b.ToggleFlag(0, 0)
		if err := b.Reveal(8, 8); err != nil {
			t.Fatalf("Reveal() failed: %v", err)
		}
		return b.Snapshot()
	}

	if !run(1234).Equal(run(1234)) {
		t.Error("Same seed produced different board states")
	}
	if run(1234).Equal(run(1235)) {
		t.Error("Different seeds should (almost always) produce different states")
	}
}

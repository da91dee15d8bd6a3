package board

import "fmt"

// Coord addresses a cell on the board by column and row.
// Col increases to the right, Row increases downward.
type Coord struct {
	Col int
	Row int
}

// C is a convenience constructor for Coord.
func C(col, row int) Coord {
	return Coord{Col: col, Row: row}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// neighborDeltas enumerates the 8-neighborhood around a cell in a fixed
// row-major order. The order is stable so cascades visit cells reproducibly.
var neighborDeltas = [8]Coord{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// index converts a coordinate to a flat array index (row*cols + col).
func (b *Board) index(col, row int) int {
	return row*b.cols + col
}

// InBounds returns true if (col,row) is inside the board.
func (b *Board) InBounds(col, row int) bool {
	return col >= 0 && col < b.cols && row >= 0 && row < b.rows
}

// Neighbors returns the in-bounds coordinates adjacent to (col,row), up to 8.
func (b *Board) Neighbors(col, row int) []Coord {
	result := make([]Coord, 0, len(neighborDeltas))
	for _, d := range neighborDeltas {
		nc, nr := col+d.Col, row+d.Row
		if b.InBounds(nc, nr) {
			result = append(result, Coord{Col: nc, Row: nr})
		}
	}
	return result
}

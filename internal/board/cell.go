// Package board implements the minesweeper board model.
package board

import "slices"

// Point is a (row, column) position on the board.
type Point struct {
	Row, Col int
}

// Cell is a single board position stored in the board's arena.
// Neighbor relationships are kept as arena indices rather than references.
type Cell struct {
	row, col  int
	neighbors []int
	mine      bool
	revealed  bool
	flagged   bool
}

func newCell(row, col int) Cell {
	return Cell{row: row, col: col}
}

// Row returns the cell's row.
func (c Cell) Row() int {
	return c.row
}

// Column returns the cell's column.
func (c Cell) Column() int {
	return c.col
}

// Point returns the cell's coordinates.
func (c Cell) Point() Point {
	return Point{Row: c.row, Col: c.col}
}

// IsMine reports whether the cell hides a mine.
func (c Cell) IsMine() bool {
	return c.mine
}

// IsRevealed reports whether the cell has been opened.
func (c Cell) IsRevealed() bool {
	return c.revealed
}

// IsFlagged reports whether the player has flagged the cell.
func (c Cell) IsFlagged() bool {
	return c.flagged
}

// Neighbors returns the arena indices of the adjacent cells.
func (c Cell) Neighbors() []int {
	return slices.Clone(c.neighbors)
}

// markMine is only called while the board is being set up.
func (c *Cell) markMine() {
	c.mine = true
}

func (c *Cell) reveal() {
	c.revealed = true
}

func (c *Cell) toggleFlag() {
	c.flagged = !c.flagged
}

// addNeighbor links idx unless it is the cell itself or already linked.
func (c *Cell) addNeighbor(self, idx int) {
	if idx == self || slices.Contains(c.neighbors, idx) {
		return
	}
	c.neighbors = append(c.neighbors, idx)
}

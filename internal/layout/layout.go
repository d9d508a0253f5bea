// Package layout computes screen geometry for the board view.
package layout

import "image"

// Window chrome sizes in logical pixels.
const (
	Padding     = 16
	StatusBarH  = 48
	ControlBarH = 56
	MaxBoardW   = 960
	MaxBoardH   = 640
	MaxCellSize = 32
	MinCellSize = 18
	MinWindowW  = 420
	MenuWindowW = 480
	MenuWindowH = 420
)

// Grid maps board cells to screen rectangles.
type Grid struct {
	Columns, Rows    int
	CellSize         int
	OriginX, OriginY int
}

// Width returns the pixel width of the grid.
func (g Grid) Width() int {
	return g.Columns * g.CellSize
}

// Height returns the pixel height of the grid.
func (g Grid) Height() int {
	return g.Rows * g.CellSize
}

// Bounds returns the grid rectangle.
func (g Grid) Bounds() image.Rectangle {
	return image.Rect(g.OriginX, g.OriginY, g.OriginX+g.Width(), g.OriginY+g.Height())
}

// CellAt converts a screen position to board coordinates.
func (g Grid) CellAt(x, y int) (row, col int, ok bool) {
	if !image.Pt(x, y).In(g.Bounds()) {
		return 0, 0, false
	}
	return (y - g.OriginY) / g.CellSize, (x - g.OriginX) / g.CellSize, true
}

// CellRect returns the screen rectangle of a cell.
func (g Grid) CellRect(row, col int) image.Rectangle {
	x := g.OriginX + col*g.CellSize
	y := g.OriginY + row*g.CellSize
	return image.Rect(x, y, x+g.CellSize, y+g.CellSize)
}

// Screen is the full play-screen layout for one board size.
type Screen struct {
	Grid      Grid
	Width     int
	Height    int
	StatusBar image.Rectangle
	Controls  image.Rectangle
}

// ForBoard lays out a board of the given size. Cells shrink from
// MaxCellSize to fit within MaxBoardW x MaxBoardH but never go below
// MinCellSize.
func ForBoard(columns, rows int) Screen {
	columns = max(columns, 1)
	rows = max(rows, 1)

	size := min(MaxCellSize, MaxBoardW/columns, MaxBoardH/rows)
	size = max(size, MinCellSize)

	g := Grid{
		Columns:  columns,
		Rows:     rows,
		CellSize: size,
		OriginY:  Padding + StatusBarH,
	}

	w := max(g.Width()+Padding*2, MinWindowW)
	g.OriginX = (w - g.Width()) / 2
	h := g.OriginY + g.Height() + Padding + ControlBarH

	return Screen{
		Grid:      g,
		Width:     w,
		Height:    h,
		StatusBar: image.Rect(Padding, Padding, w-Padding, Padding+StatusBarH-8),
		Controls:  image.Rect(Padding, h-ControlBarH, w-Padding, h-Padding/2),
	}
}

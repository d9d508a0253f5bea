package board

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countMines(b *Board) int {
	n := 0
	for r := range b.Rows() {
		for c := range b.Columns() {
			if cell, _ := b.Cell(r, c); cell.IsMine() {
				n++
			}
		}
	}
	return n
}

func TestNewBoardClampsMineCount(t *testing.T) {
	tests := []struct {
		name                 string
		columns, rows, mines int
		want                 int
	}{
		{"easy", 9, 9, 10, 10},
		{"too many", 2, 2, 5, 3},
		{"full", 4, 4, 16, 15},
		{"negative", 3, 3, -4, 0},
		{"single cell", 1, 1, 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBoard(tc.columns, tc.rows, tc.mines, WithSeed(7))
			assert.Equal(t, tc.want, b.MineCount())
			assert.Equal(t, tc.want, countMines(b))
		})
	}
}

func TestNewBoardWithMinesIgnoresInvalidPoints(t *testing.T) {
	b := NewBoardWithMines(2, 2, []Point{{0, 0}, {0, 0}, {5, 5}, {-1, 0}, {0, 1}, {1, 0}, {1, 1}})

	assert.Equal(t, 3, b.MineCount())
	assert.Equal(t, 3, countMines(b))
	cell, ok := b.Cell(1, 1)
	require.True(t, ok)
	assert.False(t, cell.IsMine(), "last cell must stay safe")
}

func TestSeededPlacementIsDeterministic(t *testing.T) {
	a := Hard.NewBoard(WithSeed(1234))
	b := Hard.NewBoard(WithSeed(1234))

	for r := range a.Rows() {
		for c := range a.Columns() {
			ca, _ := a.Cell(r, c)
			cb, _ := b.Cell(r, c)
			require.Equal(t, ca.IsMine(), cb.IsMine(), "cell (%d,%d)", r, c)
		}
	}
}

func TestNeighborGraph(t *testing.T) {
	b := NewBoard(9, 7, 0)

	for i := range b.cells {
		cell := b.cells[i]
		seen := map[int]bool{}
		for _, j := range cell.Neighbors() {
			assert.NotEqual(t, i, j, "cell %d lists itself", i)
			assert.False(t, seen[j], "cell %d lists %d twice", i, j)
			seen[j] = true
			assert.Contains(t, b.cells[j].Neighbors(), i, "link %d->%d is not symmetric", i, j)

			p, q := b.Point(i), b.Point(j)
			assert.LessOrEqual(t, abs(p.Row-q.Row), 1)
			assert.LessOrEqual(t, abs(p.Col-q.Col), 1)
		}
	}

	tests := []struct {
		row, col int
		want     int
	}{
		{0, 0, 3},
		{0, 8, 3},
		{6, 0, 3},
		{6, 8, 3},
		{0, 4, 5},
		{3, 0, 5},
		{6, 4, 5},
		{3, 8, 5},
		{3, 4, 8},
	}
	for _, tc := range tests {
		cell, ok := b.Cell(tc.row, tc.col)
		require.True(t, ok)
		assert.Len(t, cell.Neighbors(), tc.want, "cell (%d,%d)", tc.row, tc.col)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestAdjacentMines(t *testing.T) {
	b := NewBoardWithMines(3, 3, []Point{{0, 0}, {0, 2}, {2, 1}})

	assert.Equal(t, 3, b.AdjacentMines(1, 1))
	assert.Equal(t, 2, b.AdjacentMines(0, 1))
	assert.Equal(t, 2, b.AdjacentMines(1, 0))
	assert.Equal(t, 1, b.AdjacentMines(2, 0))
	assert.Equal(t, 0, b.AdjacentMines(-1, 0))

	v, ok := b.CellView(1, 1)
	require.True(t, ok)
	assert.False(t, v.Revealed)
	assert.Zero(t, v.AdjacentMines, "hidden cells do not report their count")
}

func TestNewBoardClampsDimensions(t *testing.T) {
	tests := []struct {
		name          string
		columns, rows int
		wantColumns   int
		wantRows      int
	}{
		{"huge", 100000, 100000, MaxDimension, MaxDimension},
		{"product overflows", math.MaxInt, math.MaxInt, MaxDimension, MaxDimension},
		{"one side", 10, math.MaxInt32, 10, MaxDimension},
		{"at limit", MaxDimension, MaxDimension, MaxDimension, MaxDimension},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewBoard(tc.columns, tc.rows, 1, WithSeed(3))
			assert.Equal(t, tc.wantColumns, b.Columns())
			assert.Equal(t, tc.wantRows, b.Rows())
			assert.Equal(t, 1, countMines(b))
			assert.Empty(t, b.Reveal(tc.wantRows, 0))
		})
	}

	b := NewBoardWithMines(math.MaxInt, 2, []Point{{0, 0}})
	assert.Equal(t, MaxDimension, b.Columns())
	assert.Equal(t, 1, b.MineCount())
}

func TestRevealMineLoses(t *testing.T) {
	b := NewBoardWithMines(3, 3, []Point{{0, 0}, {2, 2}})
	require.True(t, b.ToggleFlag(1, 1))

	opened := b.Reveal(0, 0)

	assert.Equal(t, []Point{{0, 0}}, opened)
	assert.Equal(t, Lost, b.Outcome())
	assert.True(t, b.IsGameOver())

	v, _ := b.CellView(0, 0)
	assert.True(t, v.Exploded)
	assert.True(t, v.MineVisible)
	assert.Equal(t, MarkMine, v.Mark)

	v, _ = b.CellView(2, 2)
	assert.True(t, v.MineVisible, "every mine is shown once the game is lost")
	assert.False(t, v.Revealed)
	assert.Equal(t, MarkMine, v.Mark)

	v, _ = b.CellView(1, 1)
	assert.Equal(t, MarkFlag, v.Mark)

	v, _ = b.CellView(0, 2)
	assert.Equal(t, MarkBlank, v.Mark)

	revealed, flags := b.RevealedCount(), b.FlagCount()
	assert.Nil(t, b.Reveal(0, 1))
	assert.False(t, b.ToggleFlag(0, 1))
	assert.False(t, b.ToggleFlag(1, 1))
	assert.Equal(t, revealed, b.RevealedCount())
	assert.Equal(t, flags, b.FlagCount())
	assert.Equal(t, Lost, b.Outcome())
}

func TestRevealFloodFillStopsAtNumbers(t *testing.T) {
	// A wall of mines down column 2 splits the board in two.
	b := NewBoardWithMines(5, 3, []Point{{0, 2}, {1, 2}, {2, 2}})

	opened := b.Reveal(1, 0)

	assert.Len(t, opened, 6)
	assert.Equal(t, 6, b.RevealedCount())
	for r := range 3 {
		for c := range 5 {
			v, _ := b.CellView(r, c)
			assert.Equal(t, c < 2, v.Revealed, "cell (%d,%d)", r, c)
		}
	}
	v, _ := b.CellView(0, 1)
	assert.Equal(t, 2, v.AdjacentMines)
	assert.Equal(t, Undetermined, b.Outcome())
}

func TestRevealAllZeroBoardTerminates(t *testing.T) {
	b := NewBoard(60, 60, 0)

	opened := b.Reveal(30, 30)

	assert.Len(t, opened, 3600)
	assert.Equal(t, Won, b.Outcome())

	seen := make(map[Point]bool, len(opened))
	for _, p := range opened {
		require.False(t, seen[p], "point %v opened twice", p)
		seen[p] = true
	}
}

func TestFlagBlocksFloodFill(t *testing.T) {
	b := NewBoard(3, 3, 0)
	require.True(t, b.ToggleFlag(2, 2))

	b.Reveal(0, 0)

	assert.Equal(t, 8, b.RevealedCount())
	v, _ := b.CellView(2, 2)
	assert.True(t, v.Flagged)
	assert.False(t, v.Revealed)
	assert.Equal(t, Undetermined, b.Outcome())

	assert.Nil(t, b.Reveal(2, 2), "flagged cells cannot be revealed")

	require.True(t, b.ToggleFlag(2, 2))
	assert.Equal(t, []Point{{2, 2}}, b.Reveal(2, 2))
	assert.Equal(t, Won, b.Outcome())
}

func TestWinIgnoresFlags(t *testing.T) {
	b := Hard.NewBoard(WithSeed(99))

	var mines []Point
	for i := range b.cells {
		if b.cells[i].IsMine() {
			mines = append(mines, b.Point(i))
		}
	}
	require.Len(t, mines, Hard.Mines)

	// Flag only half of the mines.
	for _, p := range mines[:len(mines)/2] {
		require.True(t, b.ToggleFlag(p.Row, p.Col))
	}

	for r := range b.Rows() {
		for c := range b.Columns() {
			if cell, _ := b.Cell(r, c); !cell.IsMine() {
				b.Reveal(r, c)
			}
		}
	}

	assert.Equal(t, Won, b.Outcome())
	assert.Equal(t, b.Rows()*b.Columns()-Hard.Mines, b.RevealedCount())
	for _, p := range mines {
		v, _ := b.CellView(p.Row, p.Col)
		assert.Equal(t, MarkMine, v.Mark)
		assert.False(t, v.Exploded)
	}
}

func TestToggleFlag(t *testing.T) {
	b := NewBoardWithMines(3, 3, []Point{{2, 2}})

	assert.True(t, b.ToggleFlag(0, 0))
	assert.Equal(t, 1, b.FlagCount())
	assert.Equal(t, 0, b.RemainingMines())

	assert.True(t, b.ToggleFlag(0, 0))
	assert.Equal(t, 0, b.FlagCount())
	v, _ := b.CellView(0, 0)
	assert.False(t, v.Flagged)

	b.Reveal(1, 1)
	assert.False(t, b.ToggleFlag(1, 1), "revealed cells cannot be flagged")
	assert.Equal(t, 0, b.FlagCount())

	assert.True(t, b.ToggleFlag(0, 1))
	assert.True(t, b.ToggleFlag(1, 0))
	assert.Equal(t, -1, b.RemainingMines())
}

func TestOutOfBoundsIsNoop(t *testing.T) {
	b := Easy.NewBoard(WithSeed(3))

	assert.Nil(t, b.Reveal(-1, 0))
	assert.Nil(t, b.Reveal(0, 9))
	assert.False(t, b.ToggleFlag(9, 0))
	assert.False(t, b.ToggleFlag(0, -1))

	_, ok := b.CellView(-1, 0)
	assert.False(t, ok)
	assert.Equal(t, 0, b.RevealedCount())
	assert.Equal(t, 0, b.FlagCount())
	assert.Equal(t, Undetermined, b.Outcome())
}

func TestEasyPresetStartState(t *testing.T) {
	b := Easy.NewBoard()

	assert.Equal(t, 9, b.Columns())
	assert.Equal(t, 9, b.Rows())
	assert.Equal(t, 10, countMines(b))
	assert.Equal(t, 10, b.RemainingMines())

	for r := range 9 {
		for c := range 9 {
			v, _ := b.CellView(r, c)
			assert.False(t, v.MineVisible)
			assert.False(t, v.Revealed)
			assert.Equal(t, MarkNone, v.Mark)
		}
	}
}

func TestRevealTwiceIsNoop(t *testing.T) {
	b := NewBoardWithMines(3, 1, []Point{{0, 1}})

	assert.Equal(t, []Point{{0, 0}}, b.Reveal(0, 0))
	assert.Nil(t, b.Reveal(0, 0))
	assert.Equal(t, 1, b.RevealedCount())
}

func TestString(t *testing.T) {
	b := NewBoardWithMines(3, 2, []Point{{0, 2}})
	b.ToggleFlag(1, 2)
	b.Reveal(0, 0)

	assert.Equal(t, ". 1 -\n. 1 F\n", b.String())

	b.Reveal(0, 2)
	assert.Equal(t, ". 1 X\n. 1 F\n", b.String())
}

func TestPresetByName(t *testing.T) {
	tests := []struct {
		name string
		want Preset
		ok   bool
	}{
		{"easy", Easy, true},
		{"  Medium ", Medium, true},
		{"EXPERT", Hard, true},
		{"beginner", Easy, true},
		{"insane", Preset{}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := PresetByName(tc.name)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}

	assert.False(t, Hard.Custom())
	assert.Equal(t, "hard", Hard.Key())
	custom := Preset{Name: "Custom", Columns: 5, Rows: 5, Mines: 3}
	assert.True(t, custom.Custom())
	assert.Equal(t, "custom", custom.Key())
}

package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForBoardCellSize(t *testing.T) {
	tests := []struct {
		name          string
		columns, rows int
		want          int
	}{
		{"easy", 9, 9, 32},
		{"medium", 16, 16, 32},
		{"hard", 30, 16, 32},
		{"wide", 60, 10, 18},
		{"huge", 200, 200, MinCellSize},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := ForBoard(tc.columns, tc.rows)
			assert.Equal(t, tc.want, s.Grid.CellSize)
			assert.GreaterOrEqual(t, s.Width, MinWindowW)
			assert.GreaterOrEqual(t, s.Width, s.Grid.Width())
			assert.Greater(t, s.Height, s.Grid.Height()+StatusBarH)
		})
	}
}

func TestGridIsCentered(t *testing.T) {
	s := ForBoard(9, 9)

	left := s.Grid.OriginX
	right := s.Width - s.Grid.OriginX - s.Grid.Width()
	assert.InDelta(t, left, right, 1)
}

func TestCellAtInvertsCellRect(t *testing.T) {
	s := ForBoard(30, 16)
	g := s.Grid

	for r := range g.Rows {
		for c := range g.Columns {
			rect := g.CellRect(r, c)
			for _, p := range [][2]int{
				{rect.Min.X, rect.Min.Y},
				{rect.Max.X - 1, rect.Max.Y - 1},
				{(rect.Min.X + rect.Max.X) / 2, (rect.Min.Y + rect.Max.Y) / 2},
			} {
				row, col, ok := g.CellAt(p[0], p[1])
				require.True(t, ok)
				require.Equal(t, r, row)
				require.Equal(t, c, col)
			}
		}
	}
}

func TestCellAtOutsideGrid(t *testing.T) {
	g := ForBoard(9, 9).Grid

	for _, p := range [][2]int{
		{g.OriginX - 1, g.OriginY},
		{g.OriginX, g.OriginY - 1},
		{g.OriginX + g.Width(), g.OriginY},
		{g.OriginX, g.OriginY + g.Height()},
	} {
		_, _, ok := g.CellAt(p[0], p[1])
		assert.False(t, ok, "point %v", p)
	}
}

package ui

import (
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hailam/minesweeper/internal/board"
	"github.com/hailam/minesweeper/internal/icons"
	"github.com/hailam/minesweeper/internal/layout"
)

// Theme defines the color scheme for the board.
type Theme struct {
	HiddenCell    color.RGBA
	HiddenHover   color.RGBA
	HiddenBevel   color.RGBA
	HiddenShadow  color.RGBA
	RevealedCell  color.RGBA
	GridLine      color.RGBA
	ExplodedCell  color.RGBA
	WrongFlag     color.RGBA
	Background    color.RGBA
	NumberColors  [9]color.RGBA
	BoardBorder   color.RGBA
	HiddenPressed color.RGBA
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		HiddenCell:    color.RGBA{92, 99, 112, 255},
		HiddenHover:   color.RGBA{112, 120, 135, 255},
		HiddenBevel:   color.RGBA{130, 138, 152, 255},
		HiddenShadow:  color.RGBA{62, 67, 77, 255},
		HiddenPressed: color.RGBA{200, 204, 210, 255},
		RevealedCell:  color.RGBA{214, 217, 222, 255},
		GridLine:      color.RGBA{170, 174, 182, 255},
		ExplodedCell:  color.RGBA{224, 72, 72, 255},
		WrongFlag:     color.RGBA{200, 30, 30, 255},
		Background:    color.RGBA{40, 44, 52, 255},
		BoardBorder:   color.RGBA{30, 33, 39, 255},
		NumberColors: [9]color.RGBA{
			{},
			{25, 90, 210, 255},  // 1
			{30, 130, 50, 255},  // 2
			{205, 40, 40, 255},  // 3
			{30, 30, 130, 255},  // 4
			{130, 30, 30, 255},  // 5
			{20, 130, 130, 255}, // 6
			{20, 20, 20, 255},   // 7
			{110, 110, 110, 255},
		},
	}
}

// Renderer draws the board grid.
type Renderer struct {
	sprites *SpriteManager
	theme   *Theme
	grid    layout.Grid
}

// NewRenderer creates a renderer for the given grid.
func NewRenderer(grid layout.Grid) *Renderer {
	return &Renderer{
		sprites: NewSpriteManager(iconSize(grid.CellSize)),
		theme:   DefaultTheme(),
		grid:    grid,
	}
}

func iconSize(cellSize int) int {
	return max(cellSize-cellSize/4, 8)
}

// SetGrid switches to a new grid, re-rasterizing icons if the cell size changed.
func (r *Renderer) SetGrid(grid layout.Grid) {
	r.grid = grid
	r.sprites.Resize(iconSize(grid.CellSize))
}

// Grid returns the current grid.
func (r *Renderer) Grid() layout.Grid {
	return r.grid
}

// Theme returns the current theme.
func (r *Renderer) Theme() *Theme {
	return r.theme
}

// Sprites returns the sprite manager.
func (r *Renderer) Sprites() *SpriteManager {
	return r.sprites
}

// CellHighlight describes the cell under the mouse.
type CellHighlight struct {
	Point   board.Point
	Valid   bool
	Pressed bool // left button held
}

// DrawBoard draws every cell of b.
func (r *Renderer) DrawBoard(screen *ebiten.Image, b *board.Board, hl CellHighlight) {
	bounds := r.grid.Bounds()
	vector.StrokeRect(screen, float32(bounds.Min.X)-1, float32(bounds.Min.Y)-1,
		float32(bounds.Dx())+2, float32(bounds.Dy())+2, 2, r.theme.BoardBorder, false)

	over := b.IsGameOver()
	for row := range b.Rows() {
		for col := range b.Columns() {
			v, _ := b.CellView(row, col)
			rect := r.grid.CellRect(row, col)
			active := !over && hl.Valid && hl.Point == board.Point{Row: row, Col: col}

			if over {
				r.drawFinishedCell(screen, rect, v)
			} else {
				r.drawLiveCell(screen, rect, v, active, active && hl.Pressed)
			}
		}
	}
}

func (r *Renderer) drawLiveCell(screen *ebiten.Image, rect image.Rectangle, v board.View, hovered, pressed bool) {
	switch {
	case v.Revealed:
		r.drawRevealed(screen, rect, r.theme.RevealedCell)
		r.drawNumber(screen, rect, v.AdjacentMines)
	case v.Flagged:
		r.drawHidden(screen, rect, hovered)
		r.drawIcon(screen, rect, icons.Flag)
	case pressed:
		r.drawRevealed(screen, rect, r.theme.HiddenPressed)
	default:
		r.drawHidden(screen, rect, hovered)
	}
}

// drawFinishedCell renders a cell of a terminal board from its Mark.
func (r *Renderer) drawFinishedCell(screen *ebiten.Image, rect image.Rectangle, v board.View) {
	switch v.Mark {
	case board.MarkMine:
		bg := r.theme.RevealedCell
		if v.Exploded {
			bg = r.theme.ExplodedCell
		}
		if v.Flagged {
			r.drawHidden(screen, rect, false)
			r.drawIcon(screen, rect, icons.Flag)
			return
		}
		r.drawRevealed(screen, rect, bg)
		r.drawIcon(screen, rect, icons.Mine)
	case board.MarkFlag:
		r.drawHidden(screen, rect, false)
		r.drawIcon(screen, rect, icons.Flag)
		r.drawCross(screen, rect)
	default:
		if v.Revealed {
			r.drawRevealed(screen, rect, r.theme.RevealedCell)
			r.drawNumber(screen, rect, v.AdjacentMines)
			return
		}
		r.drawHidden(screen, rect, false)
	}
}

func (r *Renderer) drawHidden(screen *ebiten.Image, rect image.Rectangle, hovered bool) {
	x, y := float32(rect.Min.X), float32(rect.Min.Y)
	w, h := float32(rect.Dx()), float32(rect.Dy())
	bevel := max(float32(2), w/12)

	fill := r.theme.HiddenCell
	if hovered {
		fill = r.theme.HiddenHover
	}
	vector.DrawFilledRect(screen, x, y, w, h, r.theme.HiddenShadow, false)
	vector.DrawFilledRect(screen, x, y, w-bevel, h-bevel, r.theme.HiddenBevel, false)
	vector.DrawFilledRect(screen, x+bevel, y+bevel, w-bevel*2, h-bevel*2, fill, false)
}

func (r *Renderer) drawRevealed(screen *ebiten.Image, rect image.Rectangle, fill color.RGBA) {
	x, y := float32(rect.Min.X), float32(rect.Min.Y)
	w, h := float32(rect.Dx()), float32(rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, fill, false)
	vector.StrokeRect(screen, x, y, w, h, 1, r.theme.GridLine, false)
}

func (r *Renderer) drawNumber(screen *ebiten.Image, rect image.Rectangle, n int) {
	if n <= 0 || n >= len(r.theme.NumberColors) {
		return
	}
	face := GetBoldFaceWithSize(float64(rect.Dy()) * 0.6)
	c := rect.Min.Add(rect.Size().Div(2))
	drawTextCentered(screen, strconv.Itoa(n), face, float64(c.X), float64(c.Y), r.theme.NumberColors[n])
}

func (r *Renderer) drawIcon(screen *ebiten.Image, rect image.Rectangle, name icons.Name) {
	size := r.sprites.Size()
	x := float64(rect.Min.X) + float64(rect.Dx()-size)/2
	y := float64(rect.Min.Y) + float64(rect.Dy()-size)/2
	r.sprites.DrawAt(screen, name, x, y, size)
}

// drawCross marks a flag that was placed on a safe cell.
func (r *Renderer) drawCross(screen *ebiten.Image, rect image.Rectangle) {
	inset := float32(rect.Dx()) / 5
	x0, y0 := float32(rect.Min.X)+inset, float32(rect.Min.Y)+inset
	x1, y1 := float32(rect.Max.X)-inset, float32(rect.Max.Y)-inset
	vector.StrokeLine(screen, x0, y0, x1, y1, 2, r.theme.WrongFlag, true)
	vector.StrokeLine(screen, x1, y0, x0, y1, 2, r.theme.WrongFlag, true)
}

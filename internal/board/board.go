package board

import (
	"hash/maphash"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Outcome is the result of a game.
// A board is playable while its outcome is Undetermined; Won and Lost are terminal.
type Outcome int

const (
	Undetermined Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "playing"
	}
}

// Mark is the final classification of a cell once the game is over.
type Mark int

const (
	MarkNone Mark = iota // game still running
	MarkBlank
	MarkFlag
	MarkMine
)

// View is the externally visible state of one cell.
type View struct {
	Revealed      bool
	Flagged       bool
	MineVisible   bool
	Exploded      bool
	AdjacentMines int // only meaningful when Revealed
	Mark          Mark
}

// Board owns the cell arena, the mine layout and the reveal/flag protocol.
type Board struct {
	columns  int
	rows     int
	mines    int
	cells    []Cell
	outcome  Outcome
	flags    int
	revealed int
	exploded int // arena index of the mine that ended the game, -1 if none
}

// Option configures board construction.
type Option func(*options)

type options struct {
	rng *rand.Rand
}

// WithRand uses r for mine placement.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rng = r
	}
}

// WithSeed makes mine placement deterministic.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// NewBoard creates a board with randomly placed mines.
// The mine count is clamped so that at least one safe cell exists.
func NewBoard(columns, rows, mines int, opts ...Option) *Board {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = newRand()
	}

	b := newEmptyBoard(columns, rows, mines)
	b.placeMines(o.rng)
	return b
}

// NewBoardWithMines creates a board with mines at the given points.
// Out-of-range and duplicate points are ignored; points past the
// columns*rows-1 limit are dropped.
func NewBoardWithMines(columns, rows int, mines []Point) *Board {
	b := newEmptyBoard(columns, rows, len(mines))
	placed := 0
	for _, p := range mines {
		if placed == b.mines {
			break
		}
		if !b.InBounds(p.Row, p.Col) {
			continue
		}
		c := &b.cells[b.Index(p.Row, p.Col)]
		if c.mine {
			continue
		}
		c.markMine()
		placed++
	}
	b.mines = placed
	return b
}

// MaxDimension is the largest number of columns or rows a board can have.
// Larger requests are clamped to it.
const MaxDimension = 256

func newEmptyBoard(columns, rows, mines int) *Board {
	columns = min(max(columns, 1), MaxDimension)
	rows = min(max(rows, 1), MaxDimension)
	mines = min(max(mines, 0), columns*rows-1)

	b := &Board{
		columns:  columns,
		rows:     rows,
		mines:    mines,
		cells:    make([]Cell, columns*rows),
		exploded: -1,
	}
	for r := range rows {
		for c := range columns {
			b.cells[b.Index(r, c)] = newCell(r, c)
		}
	}
	b.linkNeighbors()
	return b
}

// linkNeighbors connects every pair of cells at Chebyshev distance 1.
// Each link is added to both ends at once so the relation stays symmetric.
func (b *Board) linkNeighbors() {
	for r := range b.rows {
		for c := range b.columns {
			i := b.Index(r, c)
			for _, d := range [...]Point{{0, 1}, {1, -1}, {1, 0}, {1, 1}} {
				nr, nc := r+d.Row, c+d.Col
				if !b.InBounds(nr, nc) {
					continue
				}
				j := b.Index(nr, nc)
				b.cells[i].addNeighbor(i, j)
				b.cells[j].addNeighbor(j, i)
			}
		}
	}
}

// placeMines runs a partial Fisher-Yates shuffle over the arena indices.
func (b *Board) placeMines(r *rand.Rand) {
	order := make([]int, len(b.cells))
	for i := range order {
		order[i] = i
	}
	for i := range b.mines {
		j := i + r.IntN(len(order)-i)
		order[i], order[j] = order[j], order[i]
		b.cells[order[i]].markMine()
	}
}

// Columns returns the board width.
func (b *Board) Columns() int {
	return b.columns
}

// Rows returns the board height.
func (b *Board) Rows() int {
	return b.rows
}

// MineCount returns the number of mines on the board.
func (b *Board) MineCount() int {
	return b.mines
}

// FlagCount returns the number of flags currently placed.
func (b *Board) FlagCount() int {
	return b.flags
}

// RemainingMines is the mine counter shown to the player. It goes
// negative when more flags than mines are placed.
func (b *Board) RemainingMines() int {
	return b.mines - b.flags
}

// RevealedCount returns the number of opened cells.
func (b *Board) RevealedCount() int {
	return b.revealed
}

// Outcome returns the game outcome.
func (b *Board) Outcome() Outcome {
	return b.outcome
}

// IsGameOver reports whether the board reached a terminal state.
func (b *Board) IsGameOver() bool {
	return b.outcome != Undetermined
}

// InBounds reports whether (row, col) is on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.columns
}

// Index converts coordinates to an arena index.
func (b *Board) Index(row, col int) int {
	return row*b.columns + col
}

// Point converts an arena index to coordinates.
func (b *Board) Point(index int) Point {
	return Point{Row: index / b.columns, Col: index % b.columns}
}

// Cell returns a copy of the cell at (row, col).
func (b *Board) Cell(row, col int) (Cell, bool) {
	if !b.InBounds(row, col) {
		return Cell{}, false
	}
	return b.cells[b.Index(row, col)], true
}

// AdjacentMines counts the mines around (row, col) whether or not the cell
// has been revealed. Views built for a player should use CellView, which
// only reports counts of revealed cells.
func (b *Board) AdjacentMines(row, col int) int {
	if !b.InBounds(row, col) {
		return 0
	}
	return b.adjacentMines(b.Index(row, col))
}

func (b *Board) adjacentMines(i int) int {
	n := 0
	for _, j := range b.cells[i].neighbors {
		if b.cells[j].mine {
			n++
		}
	}
	return n
}

// Reveal opens the cell at (row, col) and returns every point opened by the
// call. Out-of-range, revealed and flagged cells are ignored, as is any
// request once the game is over. Opening a cell with no adjacent mines opens
// its neighbors too.
func (b *Board) Reveal(row, col int) []Point {
	if !b.InBounds(row, col) || b.IsGameOver() {
		return nil
	}
	start := b.Index(row, col)
	if c := &b.cells[start]; c.revealed || c.flagged {
		return nil
	} else if c.mine {
		c.reveal()
		b.revealed++
		b.exploded = start
		b.endGame(false)
		return []Point{c.Point()}
	}

	var opened []Point
	stack := []int{start}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		c := &b.cells[i]
		if c.revealed || c.flagged {
			continue
		}
		c.reveal()
		b.revealed++
		opened = append(opened, c.Point())

		if b.adjacentMines(i) > 0 {
			continue
		}
		for _, j := range c.neighbors {
			if n := b.cells[j]; !n.revealed && !n.flagged {
				stack = append(stack, j)
			}
		}
	}

	if b.checkWin() {
		b.endGame(true)
	}
	return opened
}

// ToggleFlag flips the flag on an unrevealed cell and reports whether
// anything changed.
func (b *Board) ToggleFlag(row, col int) bool {
	if !b.InBounds(row, col) || b.IsGameOver() {
		return false
	}
	c := &b.cells[b.Index(row, col)]
	if c.revealed {
		return false
	}
	c.toggleFlag()
	if c.flagged {
		b.flags++
	} else {
		b.flags--
	}
	return true
}

// checkWin is true once every safe cell is revealed. Flags do not matter.
func (b *Board) checkWin() bool {
	for i := range b.cells {
		if c := &b.cells[i]; !c.mine && !c.revealed {
			return false
		}
	}
	return true
}

func (b *Board) endGame(won bool) {
	if b.IsGameOver() {
		return
	}
	if won {
		b.outcome = Won
	} else {
		b.outcome = Lost
	}
}

// CellView returns what the player may see of (row, col).
func (b *Board) CellView(row, col int) (View, bool) {
	if !b.InBounds(row, col) {
		return View{}, false
	}
	i := b.Index(row, col)
	c := b.cells[i]
	v := View{
		Revealed:    c.revealed,
		Flagged:     c.flagged,
		MineVisible: c.mine && (c.revealed || b.IsGameOver()),
		Exploded:    i == b.exploded,
	}
	if c.revealed && !c.mine {
		v.AdjacentMines = b.adjacentMines(i)
	}
	if b.IsGameOver() {
		switch {
		case c.mine:
			v.Mark = MarkMine
		case c.flagged:
			v.Mark = MarkFlag
		default:
			v.Mark = MarkBlank
		}
	}
	return v, true
}

// String renders the board one row per line:
// '-' hidden, 'F' flag, '*' mine, 'X' exploded mine, '.' empty, '1'-'8' counts.
func (b *Board) String() string {
	var sb strings.Builder
	for r := range b.rows {
		for c := range b.columns {
			if c > 0 {
				sb.WriteByte(' ')
			}
			v, _ := b.CellView(r, c)
			sb.WriteByte(v.Symbol())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Symbol returns the single-character rendering used by Board.String.
func (v View) Symbol() byte {
	switch {
	case v.Exploded:
		return 'X'
	case v.MineVisible:
		return '*'
	case v.Flagged:
		return 'F'
	case !v.Revealed:
		return '-'
	case v.AdjacentMines == 0:
		return '.'
	default:
		return strconv.Itoa(v.AdjacentMines)[0]
	}
}

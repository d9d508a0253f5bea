// Package console implements a line-oriented text protocol for playing
// minesweeper from a terminal or a script.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/schema"
	"github.com/hailam/minesweeper/internal/board"
	"github.com/hailam/minesweeper/internal/storage"
	"github.com/sirupsen/logrus"
)

// Log is the package logger; main replaces it with the configured one.
var Log = logrus.New()

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArguments   = errors.New("bad arguments")
)

var decoder = schema.NewDecoder()

// boardParams are the key=value arguments of a custom "new" command.
type boardParams struct {
	Cols  int `schema:"cols,required"`
	Rows  int `schema:"rows,required"`
	Mines int `schema:"mines,required"`
}

// Recorder receives finished games.
type Recorder interface {
	RecordGame(result storage.GameResult) (*storage.GameStats, error)
}

// Console drives one board at a time from text commands.
type Console struct {
	in       io.Reader
	out      io.Writer
	rng      *rand.Rand
	recorder Recorder

	preset board.Preset
	board  *board.Board
}

// Option configures a Console.
type Option func(*Console)

// WithSeed makes every board generated by the console reproducible.
func WithSeed(seed uint64) Option {
	return func(c *Console) {
		c.rng = rand.New(rand.NewPCG(seed, ^seed))
	}
}

// WithPreset selects the board created on startup.
func WithPreset(p board.Preset) Option {
	return func(c *Console) {
		c.preset = p
	}
}

// WithRecorder stores the result of every finished board.
func WithRecorder(r Recorder) Option {
	return func(c *Console) {
		c.recorder = r
	}
}

// New creates a console reading commands from in and writing to out.
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		in:     in,
		out:    out,
		preset: board.Easy,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.newBoard(c.preset)
	return c
}

// Board returns the current board.
func (c *Console) Board() *board.Board {
	return c.board
}

// Run processes commands until "quit" or end of input.
func (c *Console) Run() error {
	scanner := bufio.NewScanner(c.in)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		if cmd == "quit" || cmd == "exit" {
			return nil
		}
		if err := c.dispatch(cmd, args); err != nil {
			Log.WithError(err).WithField("line", line).Debug("command failed")
			fmt.Fprintf(c.out, "error: %v\n", err)
		}
	}
	return scanner.Err()
}

func (c *Console) dispatch(cmd string, args []string) error {
	switch cmd {
	case "new":
		return c.handleNew(args)
	case "restart":
		c.newBoard(c.preset)
	case "reveal", "r":
		return c.handleReveal(args)
	case "flag", "f":
		return c.handleFlag(args)
	case "show", "d":
		c.printBoard()
		c.printStatus()
	case "status":
		c.printStatus()
	case "presets":
		for _, p := range board.Presets() {
			fmt.Fprintf(c.out, "%s %dx%d mines=%d\n", strings.ToLower(p.Name), p.Columns, p.Rows, p.Mines)
		}
	case "help":
		fmt.Fprintln(c.out, "commands: new <preset>|new cols=C rows=R mines=M, reveal R C, flag R C, restart, show, status, presets, quit")
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
	return nil
}

// handleNew accepts "new easy" or "new cols=30 rows=16 mines=99".
func (c *Console) handleNew(args []string) error {
	if len(args) == 0 {
		c.newBoard(c.preset)
		return nil
	}

	if len(args) == 1 && !strings.Contains(args[0], "=") {
		p, ok := board.PresetByName(args[0])
		if !ok {
			return fmt.Errorf("%w: unknown preset %q", ErrBadArguments, args[0])
		}
		c.newBoard(p)
		return nil
	}

	values, err := url.ParseQuery(strings.Join(args, "&"))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadArguments, err)
	}
	var params boardParams
	if err := decoder.Decode(&params, values); err != nil {
		return fmt.Errorf("%w: %v", ErrBadArguments, err)
	}
	if params.Cols < 1 || params.Rows < 1 {
		return fmt.Errorf("%w: board must be at least 1x1", ErrBadArguments)
	}
	if params.Cols > board.MaxDimension || params.Rows > board.MaxDimension {
		return fmt.Errorf("%w: board must be at most %dx%d", ErrBadArguments, board.MaxDimension, board.MaxDimension)
	}

	c.newBoard(board.Preset{
		Name:    "Custom",
		Columns: params.Cols,
		Rows:    params.Rows,
		Mines:   params.Mines,
	})
	return nil
}

func (c *Console) handleReveal(args []string) error {
	row, col, err := parsePoint(args)
	if err != nil {
		return err
	}

	wasOver := c.board.IsGameOver()
	opened := c.board.Reveal(row, col)
	fmt.Fprintf(c.out, "opened %d\n", len(opened))
	if !wasOver {
		c.checkGameEnd()
	}
	return nil
}

func (c *Console) handleFlag(args []string) error {
	row, col, err := parsePoint(args)
	if err != nil {
		return err
	}

	if !c.board.ToggleFlag(row, col) {
		fmt.Fprintln(c.out, "ignored")
		return nil
	}
	if v, _ := c.board.CellView(row, col); v.Flagged {
		fmt.Fprintf(c.out, "flagged %d %d\n", row, col)
	} else {
		fmt.Fprintf(c.out, "unflagged %d %d\n", row, col)
	}
	return nil
}

func parsePoint(args []string) (row, col int, err error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("%w: want ROW COL", ErrBadArguments)
	}
	row, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: row %q", ErrBadArguments, args[0])
	}
	col, err = strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: column %q", ErrBadArguments, args[1])
	}
	return row, col, nil
}

func (c *Console) newBoard(p board.Preset) {
	c.preset = p
	var opts []board.Option
	if c.rng != nil {
		opts = append(opts, board.WithRand(c.rng))
	}
	c.board = p.NewBoard(opts...)

	Log.WithFields(logrus.Fields{
		"preset":  p.Key(),
		"columns": c.board.Columns(),
		"rows":    c.board.Rows(),
		"mines":   c.board.MineCount(),
	}).Info("new board")

	fmt.Fprintf(c.out, "new game: %s %dx%d mines=%d\n",
		strings.ToLower(p.Name), c.board.Columns(), c.board.Rows(), c.board.MineCount())
}

// checkGameEnd reports and records a board that has just finished.
func (c *Console) checkGameEnd() {
	if !c.board.IsGameOver() {
		return
	}

	outcome := c.board.Outcome()
	fmt.Fprintln(c.out, outcome)
	c.printBoard()

	if c.recorder == nil {
		return
	}
	if _, err := c.recorder.RecordGame(storage.GameResult{
		Preset: c.preset.Key(),
		Won:    outcome == board.Won,
	}); err != nil {
		Log.WithError(err).Warn("failed to record game")
		fmt.Fprintf(c.out, "error: record game: %v\n", err)
	}
}

func (c *Console) printBoard() {
	fmt.Fprint(c.out, c.board.String())
}

func (c *Console) printStatus() {
	b := c.board
	fmt.Fprintf(c.out, "state=%s mines=%d flags=%d revealed=%d\n",
		b.Outcome(), b.MineCount(), b.FlagCount(), b.RevealedCount())
}

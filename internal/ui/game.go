package ui

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hailam/minesweeper/internal/board"
	"github.com/hailam/minesweeper/internal/layout"
	"github.com/hailam/minesweeper/internal/storage"
	"github.com/sirupsen/logrus"
)

const firstLaunchHint = "Left click reveals a cell - right click places a flag"

// Options configures a Game.
type Options struct {
	// Seed makes mine placement reproducible when HasSeed is set.
	Seed    uint64
	HasSeed bool
	// Storage is used instead of opening the platform database.
	Storage *storage.Storage
}

// Game implements ebiten.Game.
type Game struct {
	board    *board.Board
	preset   board.Preset
	rng      *rand.Rand
	recorded bool // result of the current board has been stored

	screen layout.Screen

	// pressed cell while the left button is held on the grid
	pressed      board.Point
	pressedValid bool

	storage *storage.Storage
	prefs   *storage.UserPreferences
	stats   *storage.GameStats

	renderer      *Renderer
	input         *InputHandler
	panel         *Panel
	feedback      *FeedbackManager
	menu          *DifficultyMenu
	settingsModal *SettingsModal
}

// NewGame creates the game and shows the difficulty menu.
func NewGame(opts Options) *Game {
	g := &Game{
		preset:  board.Easy,
		input:   NewInputHandler(),
		storage: opts.Storage,
	}
	if opts.HasSeed {
		g.rng = rand.New(rand.NewPCG(opts.Seed, ^opts.Seed))
	}

	if g.storage == nil {
		var err error
		g.storage, err = storage.NewStorage()
		if err != nil {
			Log.WithError(err).Warn("failed to initialize storage")
		}
	}
	g.loadPreferences()
	g.loadStats()

	if p, ok := board.PresetByName(g.prefs.Preset); ok {
		g.preset = p
	}
	g.screen = layout.ForBoard(g.preset.Columns, g.preset.Rows)

	g.renderer = NewRenderer(g.screen.Grid)
	g.panel = NewPanel(g)
	g.feedback = NewFeedbackManager()
	g.menu = NewDifficultyMenu()
	g.settingsModal = NewSettingsModal()

	g.feedback.Audio().SetEnabled(g.prefs.SoundEnabled)
	g.feedback.Audio().SetVolume(g.prefs.Volume)

	g.checkFirstLaunch()
	g.ShowDifficultyMenu()

	return g
}

// loadPreferences loads user preferences from storage.
func (g *Game) loadPreferences() {
	if g.storage == nil {
		g.prefs = storage.DefaultPreferences()
		return
	}

	var err error
	g.prefs, err = g.storage.LoadPreferences()
	if err != nil {
		Log.WithError(err).Warn("failed to load preferences")
		g.prefs = storage.DefaultPreferences()
	}
}

// savePreferences saves current preferences to storage.
func (g *Game) savePreferences() {
	if g.storage == nil {
		return
	}
	if err := g.storage.SavePreferences(g.prefs); err != nil {
		Log.WithError(err).Warn("failed to save preferences")
	}
}

func (g *Game) loadStats() {
	g.stats = storage.NewGameStats()
	if g.storage == nil {
		return
	}
	stats, err := g.storage.LoadStats()
	if err != nil {
		Log.WithError(err).Warn("failed to load statistics")
		return
	}
	g.stats = stats
}

// checkFirstLaunch explains the controls on the very first run.
func (g *Game) checkFirstLaunch() {
	if g.storage == nil {
		return
	}

	isFirst, err := g.storage.IsFirstLaunch()
	if err != nil {
		Log.WithError(err).Warn("failed to check first launch")
		return
	}
	if !isFirst {
		return
	}

	g.menu.SetHint(firstLaunchHint)
	if err := g.storage.MarkFirstLaunchComplete(); err != nil {
		Log.WithError(err).Warn("failed to mark first launch complete")
	}
}

// Update handles game logic updates.
func (g *Game) Update() error {
	g.input.Update()
	g.feedback.Update()

	if g.settingsModal.IsVisible() {
		g.settingsModal.Update(g.input)
		g.updateCursor()
		return nil
	}

	if g.handleShortcuts() {
		g.updateCursor()
		return nil
	}

	if g.menu.IsVisible() {
		g.menu.Update(g.input)
		g.updateCursor()
		return nil
	}

	if g.panel.HandleInput(g.input) {
		g.updateCursor()
		return nil
	}

	g.handleBoardInput()
	g.updateCursor()
	return nil
}

// handleShortcuts processes keys that work on both screens.
func (g *Game) handleShortcuts() bool {
	presetKeys := []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3}
	for i, key := range presetKeys {
		if IsKeyJustPressed(key) {
			g.menu.Hide()
			g.startBoard(board.Presets()[i])
			return true
		}
	}

	switch {
	case IsKeyJustPressed(ebiten.KeyEscape):
		if g.menu.IsVisible() {
			if g.board != nil {
				g.menu.Hide()
				g.resizeWindow()
			}
		} else {
			g.ShowDifficultyMenu()
		}
		return true
	case IsKeyJustPressed(ebiten.KeyR) && !g.menu.IsVisible():
		g.RestartAction()
		return true
	}
	return false
}

// updateCursor sets the cursor shape based on what's being hovered.
func (g *Game) updateCursor() {
	var anyHovered bool
	switch {
	case g.settingsModal.IsVisible():
		anyHovered = g.settingsModal.AnyButtonHovered()
	case g.menu.IsVisible():
		anyHovered = g.menu.AnyButtonHovered()
	default:
		anyHovered = g.panel.AnyButtonHovered()
	}

	if anyHovered {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
	} else {
		ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	}
}

// hoveredCell returns the cell under the mouse, if any.
func (g *Game) hoveredCell() (board.Point, bool) {
	mx, my := g.input.MousePosition()
	row, col, ok := g.screen.Grid.CellAt(mx, my)
	return board.Point{Row: row, Col: col}, ok
}

// handleBoardInput reveals on left release and flags on right click.
func (g *Game) handleBoardInput() {
	if g.board == nil || g.board.IsGameOver() {
		g.pressedValid = false
		return
	}

	p, ok := g.hoveredCell()

	if g.input.IsFlagJustPressed() && ok {
		g.toggleFlag(p)
		return
	}

	if g.input.IsLeftJustPressed() {
		g.pressed, g.pressedValid = p, ok
	}
	if g.input.IsLeftJustReleased() {
		if g.pressedValid && ok && p == g.pressed {
			g.reveal(p)
		}
		g.pressedValid = false
	}
}

func (g *Game) reveal(p board.Point) {
	opened := g.board.Reveal(p.Row, p.Col)
	if g.board.Outcome() == board.Lost {
		g.feedback.OnLost(p)
	} else {
		g.feedback.OnReveal(len(opened))
	}
	g.checkGameEnd()
}

func (g *Game) toggleFlag(p board.Point) {
	if !g.board.ToggleFlag(p.Row, p.Col) {
		return
	}
	v, _ := g.board.CellView(p.Row, p.Col)
	g.feedback.OnFlag(v.Flagged)
}

// checkGameEnd records a board that has just finished.
func (g *Game) checkGameEnd() {
	if !g.board.IsGameOver() || g.recorded {
		return
	}
	g.recorded = true

	won := g.board.Outcome() == board.Won
	if won {
		g.feedback.OnWon()
	}

	Log.WithFields(logrus.Fields{
		"preset":   g.preset.Key(),
		"outcome":  g.board.Outcome().String(),
		"revealed": g.board.RevealedCount(),
		"flags":    g.board.FlagCount(),
	}).Info("game finished")

	result := storage.GameResult{Preset: g.preset.Key(), Won: won}
	if g.storage == nil {
		g.stats.Record(result)
		return
	}
	stats, err := g.storage.RecordGame(result)
	if err != nil {
		Log.WithError(err).Warn("failed to record game")
		g.feedback.OnStorageError()
		g.stats.Record(result)
		return
	}
	g.stats = stats
}

// startBoard replaces the current board with a fresh one for p.
func (g *Game) startBoard(p board.Preset) {
	var opts []board.Option
	if g.rng != nil {
		opts = append(opts, board.WithRand(g.rng))
	}

	g.preset = p
	g.board = p.NewBoard(opts...)
	g.recorded = false
	g.pressedValid = false

	g.screen = layout.ForBoard(g.board.Columns(), g.board.Rows())
	g.renderer.SetGrid(g.screen.Grid)
	g.panel.SetScreen(g.screen)
	g.feedback.Reset()
	g.resizeWindow()

	g.prefs.Preset = p.Key()
	g.prefs.LastPlayed = time.Now()
	g.savePreferences()

	Log.WithFields(logrus.Fields{
		"preset":  p.Key(),
		"columns": p.Columns,
		"rows":    p.Rows,
		"mines":   g.board.MineCount(),
	}).Info("new board")
}

func (g *Game) resizeWindow() {
	if g.menu.IsVisible() {
		ebiten.SetWindowSize(layout.MenuWindowW, layout.MenuWindowH)
		return
	}
	ebiten.SetWindowSize(g.screen.Width, g.screen.Height)
}

// RestartAction starts a new board with the current preset.
func (g *Game) RestartAction() {
	g.startBoard(g.preset)
}

// ShowDifficultyMenu returns to the preset chooser.
func (g *Game) ShowDifficultyMenu() {
	g.menu.SetFooter(statsLine(g.stats))
	g.menu.Show(g.prefs.Preset, g.startBoard)
	g.resizeWindow()
}

func statsLine(s *storage.GameStats) string {
	if s == nil || s.GamesPlayed == 0 {
		return "No games played yet"
	}
	return fmt.Sprintf("Played %d - Won %d (%.0f%%)", s.GamesPlayed, s.Wins, s.GetWinRate())
}

// ToggleSound switches sound effects on or off.
func (g *Game) ToggleSound() {
	g.prefs.SoundEnabled = !g.prefs.SoundEnabled
	g.feedback.Audio().SetEnabled(g.prefs.SoundEnabled)
	g.savePreferences()
}

// SoundEnabled reports whether sound effects are on.
func (g *Game) SoundEnabled() bool {
	return g.prefs.SoundEnabled
}

// ShowSettings opens the settings modal.
func (g *Game) ShowSettings() {
	g.settingsModal.Show(g.screen.Width, g.screen.Height, g.prefs, g.stats, func(prefs *storage.UserPreferences) {
		g.prefs.SoundEnabled = prefs.SoundEnabled
		g.prefs.Volume = prefs.Volume
		g.feedback.Audio().SetEnabled(prefs.SoundEnabled)
		g.feedback.Audio().SetVolume(prefs.Volume)
		g.savePreferences()
	}, nil)
}

// Board returns the board being played, or nil before the first choice.
func (g *Game) Board() *board.Board {
	return g.board
}

// Draw renders the game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.renderer.Theme().Background)

	if g.menu.IsVisible() {
		g.menu.Draw(screen, g.renderer.Sprites())
		return
	}
	if g.board == nil {
		return
	}

	hl := CellHighlight{}
	if !g.settingsModal.IsVisible() {
		hl.Point, hl.Valid = g.hoveredCell()
		hl.Pressed = g.input.IsLeftPressed() && g.pressedValid && hl.Point == g.pressed
	}
	g.renderer.DrawBoard(screen, g.board, hl)

	g.panel.Draw(screen, g.board, g.renderer.Sprites())
	g.feedback.Draw(screen, g.screen)

	g.settingsModal.Draw(screen)
}

// Layout returns the logical screen size; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.menu.IsVisible() {
		return layout.MenuWindowW, layout.MenuWindowH
	}
	return g.screen.Width, g.screen.Height
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.storage != nil {
		if err := g.storage.Close(); err != nil {
			Log.WithError(err).Warn("failed to close storage")
		}
	}
}

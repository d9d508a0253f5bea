package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hailam/minesweeper/internal/board"
	"github.com/hailam/minesweeper/internal/icons"
	"github.com/hailam/minesweeper/internal/layout"
)

// Panel colors
var (
	panelBg         = color.RGBA{38, 40, 45, 255}
	tabActiveBg     = color.RGBA{76, 132, 96, 255}
	tabInactiveBg   = color.RGBA{50, 54, 60, 255}
	tabHoverBg      = color.RGBA{65, 70, 78, 255}
	buttonBg        = color.RGBA{50, 54, 60, 255}
	buttonHoverBg   = color.RGBA{65, 70, 78, 255}
	buttonPressedBg = color.RGBA{40, 44, 50, 255}
	buttonBorder    = color.RGBA{70, 75, 82, 255}
	accentColor     = color.RGBA{76, 175, 120, 255}
	accentHover     = color.RGBA{96, 195, 140, 255}
	accentPressed   = color.RGBA{56, 155, 100, 255}
	textPrimary     = color.RGBA{240, 240, 245, 255}
	textSecondary   = color.RGBA{160, 165, 175, 255}
	textMuted       = color.RGBA{120, 125, 135, 255}
	dividerColor    = color.RGBA{60, 65, 72, 255}
	statusWon       = color.RGBA{120, 220, 150, 255}
	statusLost      = color.RGBA{255, 120, 110, 255}
	bannerBg        = color.RGBA{20, 22, 26, 210}
)

const (
	controlButtonH   = 34
	controlButtonGap = 8
	faceSize         = 32
)

// Outcome banners.
const (
	wonBanner  = "You cleared the board! Congratulations!"
	lostBanner = "Boom! You hit a mine."
)

// Button represents a clickable UI element.
type Button struct {
	X, Y, W, H int
	Label      string
	OnClick    func()
	hovered    bool
	pressed    bool
}

func (b *Button) rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.W, b.Y+b.H)
}

// Panel draws the status bar above the board and the control bar below it.
type Panel struct {
	game   *Game
	screen layout.Screen

	faceBtn       *Button
	restartBtn    *Button
	difficultyBtn *Button
	soundBtn      *Button
	settingsBtn   *Button
}

// NewPanel creates a panel for the given game.
func NewPanel(g *Game) *Panel {
	return &Panel{game: g}
}

// SetScreen lays the panel out for a new play screen.
func (p *Panel) SetScreen(s layout.Screen) {
	p.screen = s

	sb := s.StatusBar
	p.faceBtn = &Button{
		X: sb.Min.X + (sb.Dx()-faceSize)/2, Y: sb.Min.Y + (sb.Dy()-faceSize)/2,
		W: faceSize, H: faceSize,
		OnClick: p.game.RestartAction,
	}

	cb := s.Controls
	w := (cb.Dx() - controlButtonGap*3) / 4
	y := cb.Min.Y + (cb.Dy()-controlButtonH)/2
	x := cb.Min.X
	next := func(label string, onClick func()) *Button {
		b := &Button{X: x, Y: y, W: w, H: controlButtonH, Label: label, OnClick: onClick}
		x += w + controlButtonGap
		return b
	}
	p.restartBtn = next("Restart", p.game.RestartAction)
	p.difficultyBtn = next("Difficulty", p.game.ShowDifficultyMenu)
	p.soundBtn = next("", p.game.ToggleSound)
	p.settingsBtn = next("Settings", p.game.ShowSettings)
}

func (p *Panel) buttons() []*Button {
	return []*Button{p.faceBtn, p.restartBtn, p.difficultyBtn, p.soundBtn, p.settingsBtn}
}

// HandleInput processes input for the panel. Returns true if input was handled.
func (p *Panel) HandleInput(input *InputHandler) bool {
	if p.faceBtn == nil {
		return false
	}

	for _, btn := range p.buttons() {
		btn.hovered = input.IsInRect(btn.rect())
		btn.pressed = btn.hovered && input.IsLeftPressed()
	}

	if !input.IsLeftJustPressed() {
		return false
	}
	for _, btn := range p.buttons() {
		if btn.hovered {
			btn.OnClick()
			return true
		}
	}
	return false
}

// AnyButtonHovered returns true if any button in the panel is hovered.
func (p *Panel) AnyButtonHovered() bool {
	if p.faceBtn == nil {
		return false
	}
	for _, btn := range p.buttons() {
		if btn.hovered {
			return true
		}
	}
	return false
}

// Draw renders the status and control bars for b.
func (p *Panel) Draw(screen *ebiten.Image, b *board.Board, sprites *SpriteManager) {
	if p.faceBtn == nil || b == nil {
		return
	}
	p.drawStatusBar(screen, b, sprites)
	p.drawControls(screen)
	if b.IsGameOver() {
		p.drawBanner(screen, b.Outcome())
	}
}

// StatusText is the counter line shown in the status bar.
func StatusText(b *board.Board) string {
	return fmt.Sprintf("Mines: %d - Flags: %d", b.MineCount(), b.FlagCount())
}

func (p *Panel) drawStatusBar(screen *ebiten.Image, b *board.Board, sprites *SpriteManager) {
	sb := p.screen.StatusBar
	vector.DrawFilledRect(screen, float32(sb.Min.X), float32(sb.Min.Y), float32(sb.Dx()), float32(sb.Dy()), panelBg, false)

	face := GetRegularFace()
	cy := float64(sb.Min.Y) + float64(sb.Dy())/2
	_, h := MeasureText("M", face)
	drawText(screen, StatusText(b), face, float64(sb.Min.X+12), cy-h/2, textPrimary)

	remaining := fmt.Sprintf("Left: %d", b.RemainingMines())
	w, _ := MeasureText(remaining, face)
	c := textSecondary
	if b.RemainingMines() < 0 {
		c = statusLost
	}
	drawText(screen, remaining, face, float64(sb.Max.X-12)-w, cy-h/2, c)

	icon := icons.FaceSmile
	switch b.Outcome() {
	case board.Won:
		icon = icons.FaceCool
	case board.Lost:
		icon = icons.FaceDead
	}
	fb := p.faceBtn
	if fb.hovered {
		vector.DrawFilledRect(screen, float32(fb.X-2), float32(fb.Y-2), float32(fb.W+4), float32(fb.H+4), buttonHoverBg, false)
	}
	sprites.DrawAt(screen, icon, float64(fb.X), float64(fb.Y), fb.W)
}

func (p *Panel) drawControls(screen *ebiten.Image) {
	p.soundBtn.Label = "Sound: Off"
	if p.game.SoundEnabled() {
		p.soundBtn.Label = "Sound: On"
	}

	p.drawPrimaryButton(screen, p.restartBtn)
	p.drawSecondaryButton(screen, p.difficultyBtn)
	p.drawSecondaryButton(screen, p.soundBtn)
	p.drawSecondaryButton(screen, p.settingsBtn)
}

// drawBanner draws the outcome across the top of the grid.
func (p *Panel) drawBanner(screen *ebiten.Image, outcome board.Outcome) {
	msg, c := lostBanner, statusLost
	if outcome == board.Won {
		msg, c = wonBanner, statusWon
	}

	g := p.screen.Grid.Bounds()
	face := GetBoldFace()
	_, h := MeasureText(msg, face)
	bannerH := h + 16
	y := float64(g.Min.Y) + float64(g.Dy())/2 - bannerH/2

	vector.DrawFilledRect(screen, float32(g.Min.X), float32(y), float32(g.Dx()), float32(bannerH), bannerBg, false)
	drawTextCentered(screen, msg, face, float64(g.Min.X)+float64(g.Dx())/2, y+bannerH/2, c)
}

func (p *Panel) drawPrimaryButton(screen *ebiten.Image, btn *Button) {
	bgColor := accentColor
	if btn.pressed {
		bgColor = accentPressed
	} else if btn.hovered {
		bgColor = accentHover
	}
	vector.DrawFilledRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), bgColor, false)

	borderC := accentPressed
	if btn.hovered {
		borderC = color.RGBA{116, 215, 160, 255}
	}
	vector.StrokeRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), 1, borderC, false)

	p.drawLabel(screen, btn, textPrimary)
}

func (p *Panel) drawSecondaryButton(screen *ebiten.Image, btn *Button) {
	bgColor := buttonBg
	if btn.pressed {
		bgColor = buttonPressedBg
	} else if btn.hovered {
		bgColor = buttonHoverBg
	}
	vector.DrawFilledRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), bgColor, false)

	borderC := buttonBorder
	if btn.hovered {
		borderC = accentColor
	}
	vector.StrokeRect(screen, float32(btn.X), float32(btn.Y), float32(btn.W), float32(btn.H), 1, borderC, false)

	p.drawLabel(screen, btn, textSecondary)
}

func (p *Panel) drawLabel(screen *ebiten.Image, btn *Button, c color.Color) {
	drawTextCentered(screen, btn.Label, GetRegularFace(),
		float64(btn.X)+float64(btn.W)/2, float64(btn.Y)+float64(btn.H)/2, c)
}

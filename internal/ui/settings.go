package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hailam/minesweeper/internal/storage"
)

// Settings modal dimensions
const (
	SettingsWidth  = 360
	SettingsHeight = 360
	SettingsPadX   = 24
	SettingsPadY   = 20
)

// Settings modal colors
var (
	modalOverlay = color.RGBA{0, 0, 0, 180}
	modalBg      = color.RGBA{38, 40, 45, 255}
	modalHeader  = color.RGBA{48, 52, 58, 255}
	modalBorder  = color.RGBA{58, 62, 68, 255}
)

// volumeSteps are the choices offered by the volume buttons.
var volumeSteps = []float64{0.25, 0.5, 0.75, 1.0}

// SettingsModal edits sound preferences and shows the win/loss record.
type SettingsModal struct {
	visible bool

	x, y          int
	width, height int // window size the modal is centered in

	soundCheckbox *Checkbox
	volumeBtns    *ButtonGroup
	saveBtn       *ModalButton
	cancelBtn     *ModalButton

	stats *storage.GameStats

	onSave   func(prefs *storage.UserPreferences)
	onCancel func()

	original *storage.UserPreferences
}

// NewSettingsModal creates a new settings modal.
func NewSettingsModal() *SettingsModal {
	return &SettingsModal{}
}

func (sm *SettingsModal) createWidgets() {
	sm.x = (sm.width - SettingsWidth) / 2
	sm.y = max((sm.height-SettingsHeight)/2, 0)

	contentX := sm.x + SettingsPadX
	contentW := SettingsWidth - SettingsPadX*2

	sm.soundCheckbox = NewCheckbox(contentX, sm.y+80, "Sound Effects", true)

	labels := make([]string, len(volumeSteps))
	for i, v := range volumeSteps {
		labels[i] = fmt.Sprintf("%d%%", int(v*100))
	}
	sm.volumeBtns = NewButtonGroup(contentX, sm.y+140, labels, 1, contentW/len(labels), 32)

	btnW := 100
	btnH := 38
	btnY := sm.y + SettingsHeight - SettingsPadY - btnH
	btnSpacing := 12
	sm.cancelBtn = NewModalButton(sm.x+SettingsWidth-SettingsPadX-btnW*2-btnSpacing, btnY, btnW, btnH, "Cancel", false, nil)
	sm.saveBtn = NewModalButton(sm.x+SettingsWidth-SettingsPadX-btnW, btnY, btnW, btnH, "Save", true, nil)
}

// nearestVolumeStep returns the index of the step closest to v.
func nearestVolumeStep(v float64) int {
	best := 0
	for i, s := range volumeSteps {
		if math.Abs(s-v) < math.Abs(volumeSteps[best]-v) {
			best = i
		}
	}
	return best
}

// Show displays the modal centered in a width x height window.
func (sm *SettingsModal) Show(width, height int, prefs *storage.UserPreferences, stats *storage.GameStats,
	onSave func(*storage.UserPreferences), onCancel func()) {
	sm.width, sm.height = width, height
	sm.createWidgets()

	sm.visible = true
	sm.onSave = onSave
	sm.onCancel = onCancel
	sm.stats = stats

	p := *prefs
	sm.original = &p

	sm.soundCheckbox.Checked = prefs.SoundEnabled
	sm.volumeBtns.Selected = nearestVolumeStep(prefs.Volume)

	sm.saveBtn.OnClick = sm.handleSave
	sm.cancelBtn.OnClick = sm.handleCancel
}

// Hide closes the settings modal.
func (sm *SettingsModal) Hide() {
	sm.visible = false
}

// IsVisible returns true if the modal is visible.
func (sm *SettingsModal) IsVisible() bool {
	return sm.visible
}

func (sm *SettingsModal) handleSave() {
	prefs := *sm.original
	prefs.SoundEnabled = sm.soundCheckbox.Checked
	prefs.Volume = volumeSteps[sm.volumeBtns.Selected]

	if sm.onSave != nil {
		sm.onSave(&prefs)
	}
	sm.Hide()
}

func (sm *SettingsModal) handleCancel() {
	if sm.onCancel != nil {
		sm.onCancel()
	}
	sm.Hide()
}

// Update handles input for the settings modal.
func (sm *SettingsModal) Update(input *InputHandler) bool {
	if !sm.visible {
		return false
	}

	if IsKeyJustPressed(ebiten.KeyEscape) {
		sm.handleCancel()
		return true
	}
	if IsKeyJustPressed(ebiten.KeyEnter) {
		sm.handleSave()
		return true
	}

	sm.soundCheckbox.Update(input)
	sm.volumeBtns.Update(input)
	sm.saveBtn.Update(input)
	sm.cancelBtn.Update(input)

	// Modal consumes all input
	return true
}

// AnyButtonHovered returns true if any button in the modal is hovered.
func (sm *SettingsModal) AnyButtonHovered() bool {
	if !sm.visible {
		return false
	}
	return sm.saveBtn.IsHovered() || sm.cancelBtn.IsHovered() ||
		sm.volumeBtns.hovered >= 0 || sm.soundCheckbox.hovered
}

// Draw renders the settings modal.
func (sm *SettingsModal) Draw(screen *ebiten.Image) {
	if !sm.visible {
		return
	}

	vector.DrawFilledRect(screen, 0, 0, float32(sm.width), float32(sm.height), modalOverlay, false)

	x, y := float32(sm.x), float32(sm.y)
	vector.DrawFilledRect(screen, x, y, SettingsWidth, SettingsHeight, modalBg, false)
	vector.StrokeRect(screen, x, y, SettingsWidth, SettingsHeight, 2, modalBorder, false)
	vector.DrawFilledRect(screen, x, y, SettingsWidth, 44, modalHeader, false)

	drawTextCentered(screen, "Settings", GetBoldFace(), float64(sm.x)+SettingsWidth/2, float64(sm.y)+22, textPrimary)

	contentX := sm.x + SettingsPadX
	DrawSectionHeader(screen, "Audio", contentX, sm.y+62)
	DrawSectionHeader(screen, "Volume", contentX, sm.volumeBtns.Y-14)
	DrawSectionHeader(screen, "Statistics", contentX, sm.volumeBtns.Y+sm.volumeBtns.ButtonH+24)

	sm.soundCheckbox.Draw(screen)
	sm.volumeBtns.Draw(screen)
	sm.drawStats(screen, sm.volumeBtns.Y+sm.volumeBtns.ButtonH+40)

	sm.saveBtn.Draw(screen)
	sm.cancelBtn.Draw(screen)
}

func (sm *SettingsModal) drawStats(screen *ebiten.Image, y int) {
	face := GetRegularFace()
	x := float64(sm.x + SettingsPadX)

	if sm.stats == nil {
		drawText(screen, "Statistics unavailable", face, x, float64(y), textMuted)
		return
	}
	s := sm.stats
	lines := []string{
		fmt.Sprintf("Played %d - Won %d - Lost %d", s.GamesPlayed, s.Wins, s.Losses),
		fmt.Sprintf("Win rate %.0f%% - Streak %d (best %d)", s.GetWinRate(), s.CurrentStreak, s.LongestStreak),
	}
	for i, line := range lines {
		drawText(screen, line, face, x, float64(y+i*22), textSecondary)
	}
}

package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hailam/minesweeper/internal/board"
	"github.com/hailam/minesweeper/internal/icons"
	"github.com/hailam/minesweeper/internal/layout"
)

// Difficulty menu geometry
const (
	MenuButtonW   = 260
	MenuButtonH   = 56
	MenuButtonGap = 14
	MenuTopY      = 132
)

// DifficultyMenu is the preset chooser shown at launch and on demand.
type DifficultyMenu struct {
	visible  bool
	presets  []board.Preset
	selected int
	buttons  []*ModalButton
	hint     string // shown on first launch
	footer   string

	onChoose func(board.Preset)
}

// NewDifficultyMenu creates the menu for the built-in presets.
func NewDifficultyMenu() *DifficultyMenu {
	dm := &DifficultyMenu{presets: board.Presets()}
	dm.createWidgets()
	return dm
}

func (dm *DifficultyMenu) createWidgets() {
	x := (layout.MenuWindowW - MenuButtonW) / 2
	dm.buttons = make([]*ModalButton, len(dm.presets))
	for i, p := range dm.presets {
		y := MenuTopY + i*(MenuButtonH+MenuButtonGap)
		btn := NewModalButton(x, y, MenuButtonW, MenuButtonH, p.Name, false, nil)
		btn.Subtitle = fmt.Sprintf("%d x %d - %d mines", p.Columns, p.Rows, p.Mines)
		dm.buttons[i] = btn
	}
}

// Show displays the menu with the preset named key pre-selected.
func (dm *DifficultyMenu) Show(key string, onChoose func(board.Preset)) {
	dm.visible = true
	dm.onChoose = onChoose
	dm.selected = 0
	if p, ok := board.PresetByName(key); ok {
		for i, q := range dm.presets {
			if p == q {
				dm.selected = i
			}
		}
	}
	for i, btn := range dm.buttons {
		btn.OnClick = func() { dm.choose(i) }
	}
	dm.syncPrimary()
}

// SetHint sets a line shown under the buttons, such as first-launch controls.
func (dm *DifficultyMenu) SetHint(hint string) {
	dm.hint = hint
}

// SetFooter sets the statistics line at the bottom of the menu.
func (dm *DifficultyMenu) SetFooter(footer string) {
	dm.footer = footer
}

// Hide closes the menu.
func (dm *DifficultyMenu) Hide() {
	dm.visible = false
}

// IsVisible returns true if the menu is visible.
func (dm *DifficultyMenu) IsVisible() bool {
	return dm.visible
}

func (dm *DifficultyMenu) syncPrimary() {
	for i, btn := range dm.buttons {
		btn.Primary = i == dm.selected
	}
}

func (dm *DifficultyMenu) choose(i int) {
	if i < 0 || i >= len(dm.presets) {
		return
	}
	dm.selected = i
	dm.Hide()
	if dm.onChoose != nil {
		dm.onChoose(dm.presets[i])
	}
}

// Update handles input for the menu.
func (dm *DifficultyMenu) Update(input *InputHandler) bool {
	if !dm.visible {
		return false
	}

	switch {
	case IsKeyJustPressed(ebiten.KeyEnter):
		dm.choose(dm.selected)
		return true
	case IsKeyJustPressed(ebiten.KeyUp):
		dm.selected = (dm.selected + len(dm.presets) - 1) % len(dm.presets)
		dm.syncPrimary()
	case IsKeyJustPressed(ebiten.KeyDown):
		dm.selected = (dm.selected + 1) % len(dm.presets)
		dm.syncPrimary()
	}

	for _, btn := range dm.buttons {
		if btn.Update(input) {
			break
		}
	}
	return true
}

// AnyButtonHovered returns true if any button in the menu is hovered.
func (dm *DifficultyMenu) AnyButtonHovered() bool {
	if !dm.visible {
		return false
	}
	for _, btn := range dm.buttons {
		if btn.IsHovered() {
			return true
		}
	}
	return false
}

// Draw renders the menu over the whole window.
func (dm *DifficultyMenu) Draw(screen *ebiten.Image, sprites *SpriteManager) {
	if !dm.visible {
		return
	}

	w, h := float32(layout.MenuWindowW), float32(layout.MenuWindowH)
	vector.DrawFilledRect(screen, 0, 0, w, h, panelBg, false)

	sprites.DrawAt(screen, icons.Mine, float64(layout.MenuWindowW-40)/2, 18, 40)

	cx := float64(layout.MenuWindowW) / 2
	drawTextCentered(screen, "MINESWEEPER", GetBoldFaceWithSize(24), cx, 82, textPrimary)
	drawTextCentered(screen, "Choose difficulty", GetRegularFace(), cx, 112, textSecondary)

	for _, btn := range dm.buttons {
		btn.Draw(screen)
	}

	last := dm.buttons[len(dm.buttons)-1]
	y := float64(last.Y + last.H + 24)
	if dm.hint != "" {
		drawTextCentered(screen, dm.hint, GetRegularFace(), cx, y, textMuted)
	}
	if dm.footer != "" {
		DrawDivider(screen, layout.Padding, layout.MenuWindowH-44, layout.MenuWindowW-layout.Padding*2)
		drawTextCentered(screen, dm.footer, GetRegularFace(), cx, float64(layout.MenuWindowH-24), textSecondary)
	}
}

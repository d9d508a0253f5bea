package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/hailam/minesweeper/internal/board"
	"github.com/hailam/minesweeper/internal/layout"
)

// ToastType represents the type of toast notification.
type ToastType int

const (
	ToastInfo ToastType = iota
	ToastWarning
	ToastError
	ToastSuccess
)

// Toast represents a notification message.
type Toast struct {
	Message   string
	Type      ToastType
	StartTime time.Time
	Duration  time.Duration
}

// ToastManager manages toast notifications.
type ToastManager struct {
	toasts   []*Toast
	maxStack int
}

// NewToastManager creates a new toast manager.
func NewToastManager() *ToastManager {
	return &ToastManager{
		maxStack: 3,
	}
}

// Show displays a new toast notification.
func (tm *ToastManager) Show(message string, toastType ToastType, duration time.Duration) {
	tm.toasts = append(tm.toasts, &Toast{
		Message:   message,
		Type:      toastType,
		StartTime: time.Now(),
		Duration:  duration,
	})
	if len(tm.toasts) > tm.maxStack {
		tm.toasts = tm.toasts[1:]
	}
}

// Clear removes all toasts.
func (tm *ToastManager) Clear() {
	tm.toasts = nil
}

// Update removes expired toasts.
func (tm *ToastManager) Update() {
	now := time.Now()
	active := tm.toasts[:0]
	for _, t := range tm.toasts {
		if now.Sub(t.StartTime) < t.Duration {
			active = append(active, t)
		}
	}
	tm.toasts = active
}

// Draw renders all active toasts centered on centerX, stacking down from y.
func (tm *ToastManager) Draw(screen *ebiten.Image, centerX, y float64) {
	face := GetRegularFace()
	if face == nil {
		return
	}

	for _, t := range tm.toasts {
		elapsed := time.Since(t.StartTime).Seconds()
		duration := t.Duration.Seconds()

		alpha := 1.0
		fadeTime := 0.2
		if elapsed < fadeTime {
			alpha = elapsed / fadeTime
		} else if elapsed > duration-fadeTime {
			alpha = (duration - elapsed) / fadeTime
		}
		alpha = max(0, min(1, alpha))

		var bgColor, textColor color.RGBA
		switch t.Type {
		case ToastWarning:
			bgColor = color.RGBA{180, 140, 20, uint8(220 * alpha)}
			textColor = color.RGBA{40, 30, 0, uint8(255 * alpha)}
		case ToastError:
			bgColor = color.RGBA{180, 50, 50, uint8(220 * alpha)}
			textColor = color.RGBA{255, 255, 255, uint8(255 * alpha)}
		case ToastSuccess:
			bgColor = color.RGBA{50, 150, 50, uint8(220 * alpha)}
			textColor = color.RGBA{255, 255, 255, uint8(255 * alpha)}
		default:
			bgColor = color.RGBA{50, 100, 150, uint8(220 * alpha)}
			textColor = color.RGBA{255, 255, 255, uint8(255 * alpha)}
		}

		w, h := MeasureText(t.Message, face)
		padding := 12.0
		boxW := w + padding*2
		boxH := h + padding*2
		x := centerX - boxW/2

		vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxW), float32(boxH), bgColor, false)
		drawText(screen, t.Message, face, x+padding, y+padding, textColor)

		y += boxH + 8
	}
}

// FlashAnimation is a fading overlay on one cell.
type FlashAnimation struct {
	Cell      board.Point
	StartTime time.Time
	Duration  time.Duration
	Color     color.RGBA
}

// AnimationManager manages cell flashes.
type AnimationManager struct {
	flashes []*FlashAnimation
}

// NewAnimationManager creates a new animation manager.
func NewAnimationManager() *AnimationManager {
	return &AnimationManager{}
}

// StartFlash begins a flash animation on a cell.
func (am *AnimationManager) StartFlash(p board.Point, c color.RGBA, d time.Duration) {
	am.flashes = append(am.flashes, &FlashAnimation{
		Cell:      p,
		StartTime: time.Now(),
		Duration:  d,
		Color:     c,
	})
}

// Clear stops every animation.
func (am *AnimationManager) Clear() {
	am.flashes = nil
}

// Update removes expired animations.
func (am *AnimationManager) Update() {
	now := time.Now()
	active := am.flashes[:0]
	for _, f := range am.flashes {
		if now.Sub(f.StartTime) < f.Duration {
			active = append(active, f)
		}
	}
	am.flashes = active
}

// Draw renders all active flash overlays.
func (am *AnimationManager) Draw(screen *ebiten.Image, grid layout.Grid) {
	for _, f := range am.flashes {
		progress := time.Since(f.StartTime).Seconds() / f.Duration.Seconds()
		if progress >= 1.0 {
			continue
		}

		alpha := 1.0 - progress
		c := color.RGBA{f.Color.R, f.Color.G, f.Color.B, uint8(float64(f.Color.A) * alpha)}

		r := grid.CellRect(f.Cell.Row, f.Cell.Col)
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
	}
}

// FeedbackManager coordinates toasts, animations and sound.
type FeedbackManager struct {
	toasts     *ToastManager
	animations *AnimationManager
	audio      *AudioManager
}

// NewFeedbackManager creates a new feedback manager.
func NewFeedbackManager() *FeedbackManager {
	return &FeedbackManager{
		toasts:     NewToastManager(),
		animations: NewAnimationManager(),
		audio:      NewAudioManager(),
	}
}

// Update updates all feedback systems.
func (fm *FeedbackManager) Update() {
	fm.toasts.Update()
	fm.animations.Update()
}

// Draw renders all feedback overlays for the given play screen.
func (fm *FeedbackManager) Draw(screen *ebiten.Image, s layout.Screen) {
	fm.animations.Draw(screen, s.Grid)
	fm.toasts.Draw(screen, float64(s.Width)/2, float64(s.Grid.OriginY+12))
}

// Reset clears overlays left from the previous board.
func (fm *FeedbackManager) Reset() {
	fm.toasts.Clear()
	fm.animations.Clear()
}

// OnReveal handles a reveal that opened n cells.
func (fm *FeedbackManager) OnReveal(n int) {
	switch {
	case n == 0:
	case n > 1:
		fm.audio.Play(SoundCascade)
	default:
		fm.audio.Play(SoundReveal)
	}
}

// OnFlag handles a flag being placed or removed.
func (fm *FeedbackManager) OnFlag(placed bool) {
	if placed {
		fm.audio.Play(SoundFlag)
	} else {
		fm.audio.Play(SoundUnflag)
	}
}

// OnLost handles stepping on the mine at p.
func (fm *FeedbackManager) OnLost(p board.Point) {
	fm.toasts.Show("Boom! You hit a mine.", ToastError, 3*time.Second)
	fm.animations.StartFlash(p, color.RGBA{255, 220, 80, 220}, 700*time.Millisecond)
	fm.audio.Play(SoundExplosion)
}

// OnWon handles a cleared board.
func (fm *FeedbackManager) OnWon() {
	fm.toasts.Show("You cleared the board! Congratulations!", ToastSuccess, 4*time.Second)
	fm.audio.Play(SoundWin)
}

// OnStorageError tells the player that results could not be saved.
func (fm *FeedbackManager) OnStorageError() {
	fm.toasts.Show("Could not save statistics", ToastWarning, 2*time.Second)
}

// Audio returns the audio manager for settings access.
func (fm *FeedbackManager) Audio() *AudioManager {
	return fm.audio
}

package ui

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hailam/minesweeper/internal/icons"
)

// SpriteManager holds the icon images for the current cell size.
type SpriteManager struct {
	images      map[icons.Name]*ebiten.Image
	size        int     // display size
	renderScale float64 // icons are rasterized larger and scaled down
}

// NewSpriteManager creates a sprite manager with icons of the given size.
func NewSpriteManager(size int) *SpriteManager {
	sm := &SpriteManager{
		images:      make(map[icons.Name]*ebiten.Image),
		renderScale: 3.0,
	}
	sm.Resize(size)
	return sm
}

// Resize re-rasterizes every icon when the display size changes.
func (sm *SpriteManager) Resize(size int) {
	if size == sm.size && len(sm.images) > 0 {
		return
	}
	sm.size = size

	renderSize := int(float64(size) * sm.renderScale)
	rasters, err := icons.RasterizeAll(context.Background(), renderSize)
	if err != nil {
		Log.WithError(err).WithField("size", size).Error("failed to rasterize icons")
		return
	}

	for _, img := range sm.images {
		img.Deallocate()
	}
	sm.images = make(map[icons.Name]*ebiten.Image, len(rasters))
	for name, rgba := range rasters {
		sm.images[name] = ebiten.NewImageFromImage(rgba)
	}
	Log.WithField("size", size).Debug("icons rasterized")
}

// DrawAt draws an icon scaled to size with its top-left corner at (x, y).
func (sm *SpriteManager) DrawAt(screen *ebiten.Image, name icons.Name, x, y float64, size int) {
	sprite := sm.images[name]
	if sprite == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	scale := float64(size) / float64(sprite.Bounds().Dx())
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(sprite, op)
}

// Size returns the display size of the icons.
func (sm *SpriteManager) Size() int {
	return sm.size
}

// Package icons rasterizes the embedded SVG artwork used by the board view.
package icons

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/sync/errgroup"
)

//go:embed assets/*.svg
var assets embed.FS

// Name identifies one icon.
type Name string

const (
	Mine      Name = "mine"
	Flag      Name = "flag"
	FaceSmile Name = "face-smile"
	FaceCool  Name = "face-cool"
	FaceDead  Name = "face-dead"
)

// ErrInvalidSize is returned for non-positive render sizes.
var ErrInvalidSize = errors.New("icons: size must be positive")

// All returns every icon name.
func All() []Name {
	return []Name{Mine, Flag, FaceSmile, FaceCool, FaceDead}
}

func (n Name) path() string {
	return "assets/" + string(n) + ".svg"
}

// Rasterize renders one icon into a size x size RGBA image.
func Rasterize(name Name, size int) (*image.RGBA, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	data, err := assets.ReadFile(name.path())
	if err != nil {
		return nil, fmt.Errorf("read icon %s: %w", name, err)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse icon %s: %w", name, err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	return rgba, nil
}

// RasterizeAll renders every icon at the given size concurrently.
func RasterizeAll(ctx context.Context, size int) (map[Name]*image.RGBA, error) {
	names := All()
	images := make([]*image.RGBA, len(names))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := Rasterize(name, size)
			if err != nil {
				return err
			}
			images[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[Name]*image.RGBA, len(names))
	for i, name := range names {
		out[name] = images[i]
	}
	return out, nil
}

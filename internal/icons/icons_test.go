package icons

import (
	"context"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func opaquePixels(img *image.RGBA) int {
	n := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 {
			n++
		}
	}
	return n
}

func TestRasterizeEveryIcon(t *testing.T) {
	for _, name := range All() {
		t.Run(string(name), func(t *testing.T) {
			img, err := Rasterize(name, 48)
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 48, 48), img.Bounds())
			assert.Positive(t, opaquePixels(img))
		})
	}
}

func TestMineBodyIsFilled(t *testing.T) {
	img, err := Rasterize(Mine, 64)
	require.NoError(t, err)

	c := img.RGBAAt(40, 40)
	assert.Equal(t, uint8(255), c.A)
	assert.Less(t, c.R, uint8(64))
}

func TestCornersStayTransparent(t *testing.T) {
	img, err := Rasterize(Flag, 64)
	require.NoError(t, err)
	assert.Zero(t, img.RGBAAt(1, 1).A)
	assert.Zero(t, img.RGBAAt(62, 1).A)
}

func TestRasterizeErrors(t *testing.T) {
	_, err := Rasterize(Mine, 0)
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = Rasterize(Name("missing"), 16)
	assert.ErrorContains(t, err, "missing")
}

func TestRasterizeAll(t *testing.T) {
	images, err := RasterizeAll(context.Background(), 24)
	require.NoError(t, err)
	require.Len(t, images, len(All()))
	for _, name := range All() {
		require.NotNil(t, images[name], name)
		assert.Equal(t, 24, images[name].Bounds().Dx())
	}
}

func TestRasterizeAllCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RasterizeAll(ctx, 24)
	assert.ErrorIs(t, err, context.Canceled)
}

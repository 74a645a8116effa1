package gostamp

import (
	"image"
	"image/color"
	"image/draw"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestImage returns a w x h image filled with c.
func newTestImage(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{c}, image.Point{}, draw.Src)
	return img
}

// writeTestImage encodes a solid gray image to path in the format implied by
// its extension.
func writeTestImage(t *testing.T, path string, w, h int) {
	t.Helper()

	img := newTestImage(w, h, color.RGBA{R: 128, G: 128, B: 128, A: 255})
	require.NoError(t, EncodeFile(img, path, 90))
}

// writeGarbage writes bytes that no image decoder accepts.
func writeGarbage(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte("this is not an image"), 0o644))
}

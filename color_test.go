package gostamp

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseColor_Named(t *testing.T) {
	for name, want := range namedColors {
		c, ok := ParseColor(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, c)
	}

	c, ok := ParseColor("WHITE")
	assert.True(t, ok)
	assert.Equal(t, ColorWhite, c)
}

func TestParseColor_Hex(t *testing.T) {
	c, ok := ParseColor("FF8800")
	assert.True(t, ok)
	assert.Equal(t, "FFFF8800", c.ARGB)

	c, ok = ParseColor("#00ff00")
	assert.True(t, ok)
	assert.Equal(t, ColorGreen, c)

	c, ok = ParseColor("80FFFFFF")
	assert.True(t, ok)
	assert.Equal(t, "80FFFFFF", c.ARGB)
}

func TestParseColor_Invalid(t *testing.T) {
	for _, bad := range []string{"", "mauve", "GGGGGG", "12345"} {
		_, ok := ParseColor(bad)
		assert.False(t, ok, bad)
	}
}

func TestNewColor_FallsBackToBlack(t *testing.T) {
	assert.Equal(t, ColorBlack, NewColor("nope"))
	assert.Equal(t, "FFAABBCC", NewColor("#aabbcc").ARGB)
}

func TestToRGBA(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 255, A: 255}, ColorRed.ToRGBA())
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 128}, NewColor("80FFFFFF").ToRGBA())
}

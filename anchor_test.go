package gostamp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlacement(t *testing.T) {
	tests := []struct {
		name         string
		canvasW      int
		canvasH      int
		textW        int
		textH        int
		anchor       Anchor
		wantX, wantY int
	}{
		{"top-left", 1000, 800, 120, 30, AnchorTopLeft, 20, 20},
		{"top-right", 1000, 800, 120, 30, AnchorTopRight, 860, 20},
		{"bottom-left", 1000, 800, 120, 30, AnchorBottomLeft, 20, 750},
		{"bottom-right", 1000, 800, 120, 30, AnchorBottomRight, 860, 750},
		{"center even", 1000, 800, 120, 30, AnchorCenter, 440, 385},
		{"center floors odd remainder", 101, 51, 10, 10, AnchorCenter, 45, 20},
		{"unknown anchor uses bottom-left", 1000, 800, 120, 30, Anchor("upside-down"), 20, 750},
		{"text wider than canvas goes negative", 100, 100, 200, 30, AnchorBottomRight, -120, 50},
		{"center floors toward negative infinity", 100, 100, 105, 30, AnchorCenter, -3, 35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := Placement(tt.canvasW, tt.canvasH, tt.textW, tt.textH, tt.anchor)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

func TestParseAnchor(t *testing.T) {
	for _, valid := range []string{"top-left", "TOP-RIGHT", "bottom-left", "Bottom-Right", " center "} {
		a, ok := ParseAnchor(valid)
		assert.True(t, ok, valid)
		assert.NotEmpty(t, a)
	}

	a, ok := ParseAnchor("middle")
	assert.False(t, ok)
	assert.Equal(t, AnchorBottomLeft, a)
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 2, floorDiv(5, 2))
	assert.Equal(t, -3, floorDiv(-5, 2))
	assert.Equal(t, -2, floorDiv(-4, 2))
	assert.Equal(t, 0, floorDiv(0, 2))
}

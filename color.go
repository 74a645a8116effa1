package gostamp

import (
	"image/color"
	"strings"
)

// Color represents an ARGB color as an 8-character hex string.
type Color struct {
	ARGB string // e.g. "FFFFFFFF" for opaque white
}

// Predefined colors, the palette the CLI exposes by name.
var (
	ColorWhite  = Color{ARGB: "FFFFFFFF"}
	ColorBlack  = Color{ARGB: "FF000000"}
	ColorRed    = Color{ARGB: "FFFF0000"}
	ColorBlue   = Color{ARGB: "FF0000FF"}
	ColorGreen  = Color{ARGB: "FF00FF00"}
	ColorYellow = Color{ARGB: "FFFFFF00"}
)

var namedColors = map[string]Color{
	"white":  ColorWhite,
	"black":  ColorBlack,
	"red":    ColorRed,
	"blue":   ColorBlue,
	"green":  ColorGreen,
	"yellow": ColorYellow,
}

// NewColor creates a Color from an ARGB hex string.
// Accepts 6-char RGB (e.g. "FF0000") or 8-char ARGB (e.g. "FFFF0000").
// A leading "#" is stripped automatically. Invalid input yields opaque black.
func NewColor(argb string) Color {
	argb = strings.TrimPrefix(argb, "#")
	if len(argb) == 6 {
		argb = "FF" + argb
	}
	argb = strings.ToUpper(argb)
	if !isValidARGB(argb) {
		return ColorBlack
	}
	return Color{ARGB: argb}
}

// ParseColor resolves a palette name ("white", "red", ...) or a hex string
// into a Color. ok is false when the input is neither.
func ParseColor(s string) (c Color, ok bool) {
	if c, ok := namedColors[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, true
	}
	hex := strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if len(hex) == 6 {
		hex = "FF" + hex
	}
	if !isValidARGB(hex) {
		return ColorBlack, false
	}
	return Color{ARGB: hex}, true
}

// ToRGBA converts the color for use with image/draw.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{
		A: parseHexByte(c.ARGB, 0),
		R: parseHexByte(c.ARGB, 2),
		G: parseHexByte(c.ARGB, 4),
		B: parseHexByte(c.ARGB, 6),
	}
}

// isValidARGB checks that s is exactly 8 hex characters.
func isValidARGB(s string) bool {
	if len(s) != 8 {
		return false
	}
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}

// parseHexByte parses two hex characters at offset into a uint8.
// Returns 0 on any error (out of range, invalid chars).
func parseHexByte(s string, offset int) uint8 {
	if offset+2 > len(s) {
		return 0
	}
	h := hexVal(s[offset])
	l := hexVal(s[offset+1])
	if h < 0 || l < 0 {
		return 0
	}
	return uint8(h<<4 | l)
}

func hexVal(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	}
	return -1
}

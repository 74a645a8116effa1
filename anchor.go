package gostamp

import "strings"

// Anchor names a placement zone for the watermark text on the image canvas.
type Anchor string

// Supported anchors.
const (
	AnchorTopLeft     Anchor = "top-left"
	AnchorTopRight    Anchor = "top-right"
	AnchorBottomLeft  Anchor = "bottom-left"
	AnchorBottomRight Anchor = "bottom-right"
	AnchorCenter      Anchor = "center"
)

// Margin is the fixed pixel inset from the canvas edge used by all corner
// anchors.
const Margin = 20

// ParseAnchor parses an anchor name, case-insensitively. When the name is
// not recognized it returns AnchorBottomLeft and false, matching the
// placement default.
func ParseAnchor(s string) (Anchor, bool) {
	a := Anchor(strings.ToLower(strings.TrimSpace(s)))
	switch a {
	case AnchorTopLeft, AnchorTopRight, AnchorBottomLeft, AnchorBottomRight, AnchorCenter:
		return a, true
	}
	return AnchorBottomLeft, false
}

// Placement returns the top-left pixel coordinate at which a text box of
// textW x textH should be drawn on a canvasW x canvasH canvas so that it
// appears at the requested anchor. Unrecognized anchors place at bottom-left.
//
// Coordinates are not clamped: when the text box plus margins exceeds the
// canvas the result can be negative, and the draw step simply renders the
// overflow off-canvas.
func Placement(canvasW, canvasH, textW, textH int, anchor Anchor) (x, y int) {
	switch anchor {
	case AnchorTopLeft:
		return Margin, Margin
	case AnchorTopRight:
		return canvasW - textW - Margin, Margin
	case AnchorBottomRight:
		return canvasW - textW - Margin, canvasH - textH - Margin
	case AnchorCenter:
		return floorDiv(canvasW-textW, 2), floorDiv(canvasH-textH, 2)
	default:
		return Margin, canvasH - textH - Margin
	}
}

// floorDiv divides rounding toward negative infinity. Go's integer division
// truncates toward zero, which differs when the text box is wider or taller
// than the canvas and the centered offset goes negative.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

package gostamp

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// backingPadding is the inset around the text box covered by the translucent
// backing rectangle.
const backingPadding = 5

// backingColor is the translucent black drawn behind the text so light text
// stays readable on light photos.
var backingColor = color.RGBA{A: 100}

// Stamp draws text onto a copy of src and returns it. The source image is
// never modified. The text is placed according to opts.Anchor with the fixed
// margin; when the rendered text is wider or taller than the image it is
// drawn anyway and the overflow falls outside the canvas.
func Stamp(src image.Image, text string, opts *Options) *image.RGBA {
	if opts == nil {
		opts = DefaultOptions()
	}

	bounds := src.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(img, img.Bounds(), src, bounds.Min, draw.Src)
	if text == "" {
		return img
	}

	face := resolveFace(opts)
	metrics := face.Metrics()
	textW := font.MeasureString(face, text).Ceil()
	textH := metrics.Height.Ceil()

	x, y := Placement(img.Bounds().Dx(), img.Bounds().Dy(), textW, textH, opts.Anchor)

	if !opts.NoBacking {
		backing := image.Rect(x-backingPadding, y-backingPadding, x+textW+backingPadding, y+textH+backingPadding)
		draw.Draw(img, backing, &image.Uniform{backingColor}, image.Point{}, draw.Over)
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{opts.Color.ToRGBA()},
		Face: face,
		Dot:  fixed.P(x, y+metrics.Ascent.Ceil()),
	}
	d.DrawString(text)

	return img
}

// MeasureText returns the pixel dimensions of text as it would be stamped
// with the given options.
func MeasureText(text string, opts *Options) (w, h int) {
	if opts == nil {
		opts = DefaultOptions()
	}
	face := resolveFace(opts)
	return font.MeasureString(face, text).Ceil(), face.Metrics().Height.Ceil()
}

// resolveFace picks the font face for the options: the requested family if
// it can be found, then a few common families, then the embedded Go Regular
// face, and as a last resort the fixed-size basicfont.
func resolveFace(opts *Options) font.Face {
	fc := opts.fontCache()
	size := opts.FontSize
	if size <= 0 {
		size = defaultFontSize
	}

	if opts.FontName != "" {
		if face := fc.GetFace(opts.FontName, size); face != nil {
			return face
		}
		for _, fallback := range []string{"arial", "helvetica", "dejavu sans", "liberation sans", "noto sans"} {
			if face := fc.GetFace(fallback, size); face != nil {
				return face
			}
		}
	}

	if face := fc.EmbeddedFace(size); face != nil {
		return face
	}
	return basicfont.Face7x13
}

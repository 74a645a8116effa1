package gostamp

import (
	"fmt"
	"strings"
)

// Font size bounds accepted by Validate.
const (
	MinFontSize = 10
	MaxFontSize = 200
)

// defaultFontSize is used when Options.FontSize is unset or non-positive.
const defaultFontSize = 36

// Options configures watermark rendering and batch processing. The zero
// value is not usable; start from DefaultOptions.
type Options struct {
	// FontSize is the text size in points (MinFontSize-MaxFontSize).
	FontSize float64
	// FontName selects a system font family. Empty means the embedded
	// Go Regular face, which needs no system fonts at all.
	FontName string
	// FontDirs specifies additional directories to search for
	// TrueType/OpenType fonts. System font directories are always searched.
	FontDirs []string
	// Color is the watermark text color.
	Color Color
	// Anchor is the placement zone for the text.
	Anchor Anchor
	// JPEGQuality is the JPEG output quality (1-100).
	JPEGQuality int
	// MaxWidth, when positive, downscales images wider than this before
	// stamping. Zero keeps the original size.
	MaxWidth int
	// NoBacking disables the translucent backing rectangle drawn behind
	// the text.
	NoBacking bool
	// FontCache allows sharing a pre-configured FontCache across runs.
	// If nil, one is created from FontDirs.
	FontCache *FontCache
}

// DefaultOptions returns the default watermark options: white text at the
// bottom-right corner, JPEG quality 95.
func DefaultOptions() *Options {
	return &Options{
		FontSize:    defaultFontSize,
		Color:       ColorWhite,
		Anchor:      AnchorBottomRight,
		JPEGQuality: 95,
	}
}

// Validate checks the options and returns an error describing all problems
// found, or nil if the options are usable.
func (o *Options) Validate() error {
	var errs []string

	if o.FontSize < MinFontSize || o.FontSize > MaxFontSize {
		errs = append(errs, fmt.Sprintf("font size %g out of range (%d-%d)", o.FontSize, MinFontSize, MaxFontSize))
	}
	if o.JPEGQuality < 1 || o.JPEGQuality > 100 {
		errs = append(errs, fmt.Sprintf("JPEG quality %d out of range (1-100)", o.JPEGQuality))
	}
	if _, ok := ParseAnchor(string(o.Anchor)); !ok {
		errs = append(errs, fmt.Sprintf("unknown anchor %q", o.Anchor))
	}
	if o.MaxWidth < 0 {
		errs = append(errs, fmt.Sprintf("max width %d must not be negative", o.MaxWidth))
	}
	if !isValidARGB(o.Color.ARGB) {
		errs = append(errs, fmt.Sprintf("invalid color %q", o.Color.ARGB))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("invalid options:\n  %s", strings.Join(errs, "\n  "))
}

// fontCache returns the configured cache, creating one from FontDirs when
// unset.
func (o *Options) fontCache() *FontCache {
	if o.FontCache != nil {
		return o.FontCache
	}
	return NewFontCache(o.FontDirs...)
}

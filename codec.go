package gostamp

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format identifies an image container format by file extension.
type Format int

// Supported formats.
const (
	FormatJPEG Format = iota
	FormatPNG
	FormatTIFF
	FormatBMP
)

// FormatFor returns the format implied by a filename's extension and whether
// that extension is supported. Matching is case-insensitive.
func FormatFor(name string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg":
		return FormatJPEG, true
	case ".png":
		return FormatPNG, true
	case ".tiff", ".tif":
		return FormatTIFF, true
	case ".bmp":
		return FormatBMP, true
	}
	return FormatJPEG, false
}

// DecodeFile reads and decodes the image at path. The jpeg, png, tiff and
// bmp decoders are registered by this package's imports.
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

// EncodeFile writes img to path in the format implied by the path's
// extension.
func EncodeFile(img image.Image, path string, jpegQuality int) error {
	format, ok := FormatFor(path)
	if !ok {
		return fmt.Errorf("unsupported output format %q", filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	return Encode(f, img, format, jpegQuality)
}

// Encode writes img to w in the given format. jpegQuality applies to JPEG
// only; out-of-range values fall back to 95.
func Encode(w io.Writer, img image.Image, format Format, jpegQuality int) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case FormatBMP:
		return bmp.Encode(w, img)
	default:
		if jpegQuality < 1 || jpegQuality > 100 {
			jpegQuality = 95
		}
		return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	}
}

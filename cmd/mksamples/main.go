// Command mksamples writes a handful of labeled sample images into a
// directory so gostamp can be tried without a photo library. The files get
// staggered modification times, which exercises the mtime fallback of the
// date resolver.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var palette = []color.RGBA{
	{R: 70, G: 130, B: 180, A: 255},
	{R: 178, G: 34, B: 34, A: 255},
	{R: 46, G: 139, B: 87, A: 255},
	{R: 218, G: 165, B: 32, A: 255},
}

func main() {
	dir := flag.String("dir", "samples", "Directory to write sample images into")
	count := flag.Int("count", 4, "Number of sample images to generate")
	width := flag.Int("width", 640, "Sample image width")
	height := flag.Int("height", 480, "Sample image height")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		log.Fatalf("creating %s: %v", *dir, err)
	}

	for i := 0; i < *count; i++ {
		name := fmt.Sprintf("sample%02d.jpg", i+1)
		if i%2 == 1 {
			name = fmt.Sprintf("sample%02d.png", i+1)
		}
		path := filepath.Join(*dir, name)

		img := image.NewRGBA(image.Rect(0, 0, *width, *height))
		draw.Draw(img, img.Bounds(), &image.Uniform{palette[i%len(palette)]}, image.Point{}, draw.Src)
		addLabel(img, 20, 30, name)

		if err := writeImage(img, path); err != nil {
			log.Fatalf("writing %s: %v", path, err)
		}

		// Stagger mtimes a day apart so each sample gets a distinct
		// fallback date.
		mtime := time.Now().AddDate(0, 0, -i)
		if err := os.Chtimes(path, mtime, mtime); err != nil {
			log.Fatalf("setting mtime on %s: %v", path, err)
		}

		log.Printf("wrote %s", path)
	}
}

func writeImage(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if filepath.Ext(path) == ".png" {
		return png.Encode(f, img)
	}
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

func addLabel(img *image.RGBA, x, y int, label string) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 255, G: 255, B: 255, A: 255}),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(label)
}

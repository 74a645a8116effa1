package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	gostamp "github.com/CartaMedia/GoStamp"
)

func main() {
	dir := flag.String("dir", "", "Directory containing images to stamp")
	anchor := flag.String("anchor", string(gostamp.AnchorBottomRight), "Watermark position: top-left, top-right, bottom-left, bottom-right, center")
	size := flag.Float64("size", 36, "Font size in points (10-200)")
	colorName := flag.String("color", "white", "Text color: white, black, red, blue, green, yellow, or hex RRGGBB")
	fontName := flag.String("font", "", "System font family to use (default: embedded Go Regular)")
	fontDir := flag.String("fontdir", "", "Additional directory to search for fonts")
	quality := flag.Int("quality", 95, "JPEG output quality (1-100)")
	maxWidth := flag.Int("maxwidth", 0, "Downscale images wider than this before stamping (0 keeps the original size)")
	noBacking := flag.Bool("nobacking", false, "Disable the translucent backing behind the text")
	watch := flag.Bool("watch", false, "Keep running and stamp new images as they appear")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("gostamp", gostamp.Version)
		return
	}

	if *dir == "" && flag.NArg() > 0 {
		*dir = flag.Arg(0)
	}
	if *dir == "" {
		fmt.Fprintln(os.Stderr, "usage: gostamp [flags] <directory>")
		flag.PrintDefaults()
		os.Exit(2)
	}

	opts := gostamp.DefaultOptions()
	opts.FontSize = *size
	opts.FontName = *fontName
	opts.JPEGQuality = *quality
	opts.MaxWidth = *maxWidth
	opts.NoBacking = *noBacking
	if *fontDir != "" {
		opts.FontDirs = []string{*fontDir}
	}

	c, ok := gostamp.ParseColor(*colorName)
	if !ok {
		log.Fatalf("unknown color %q", *colorName)
	}
	opts.Color = c

	a, ok := gostamp.ParseAnchor(*anchor)
	if !ok {
		log.Fatalf("unknown anchor %q", *anchor)
	}
	opts.Anchor = a

	if err := opts.Validate(); err != nil {
		log.Fatal(err)
	}

	if *watch {
		runWatch(*dir, opts)
		return
	}

	res, err := gostamp.Process(*dir, opts)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Stamped %d/%d images into %s\n", res.Processed, res.Found, res.OutputDir)
	if res.Failed > 0 {
		fmt.Printf("%d images were skipped, see log output above\n", res.Failed)
		os.Exit(1)
	}
}

func runWatch(dir string, opts *gostamp.Options) {
	w, err := gostamp.NewWatcher(dir, opts)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.Printf("watching %s, press Ctrl-C to stop", dir)
	if err := w.Start(ctx); err != nil {
		log.Fatal(err)
	}
}

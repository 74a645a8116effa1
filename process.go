package gostamp

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/nfnt/resize"
)

// OutputDirName is the subdirectory created inside the source directory for
// the stamped copies.
const OutputDirName = "_watermark"

// Result summarizes a batch run.
type Result struct {
	Found     int    // supported images discovered
	Processed int    // outputs written
	Failed    int    // images skipped because of errors
	OutputDir string // where the stamped copies were written
}

// ListImages returns the supported image files directly inside dir, sorted
// by name. Subdirectories are not descended into.
func ListImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := FormatFor(entry.Name()); ok {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}

// Process stamps every supported image in dir with its capture date and
// writes the results to dir/_watermark, one output per input with the same
// filename. Per-file failures are logged and skipped; directory-level
// failures abort the run with an error.
func Process(dir string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("stat directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("not a directory: %s", dir)
	}

	files, err := ListImages(dir)
	if err != nil {
		return nil, err
	}

	outDir := filepath.Join(dir, OutputDirName)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	// Share one font cache across the whole run so system fonts are
	// scanned at most once.
	if opts.FontCache == nil {
		shared := *opts
		shared.FontCache = NewFontCache(opts.FontDirs...)
		opts = &shared
	}

	res := &Result{Found: len(files), OutputDir: outDir}
	for _, path := range files {
		name := filepath.Base(path)
		if err := ProcessFile(path, filepath.Join(outDir, name), opts); err != nil {
			log.Printf("skipping %s: %v", name, err)
			res.Failed++
			continue
		}
		res.Processed++
	}
	return res, nil
}

// ProcessFile stamps a single image from src and writes it to dst, in the
// format implied by dst's extension. The output file is only created after
// decoding and stamping succeed, so a failure never leaves a partial file.
func ProcessFile(src, dst string, opts *Options) error {
	if opts == nil {
		opts = DefaultOptions()
	}

	img, err := DecodeFile(src)
	if err != nil {
		return err
	}

	if opts.MaxWidth > 0 && img.Bounds().Dx() > opts.MaxWidth {
		img = resize.Resize(uint(opts.MaxWidth), 0, img, resize.Lanczos3)
	}

	stamped := Stamp(img, CaptureDate(src), opts)

	if err := EncodeFile(stamped, dst, opts.JPEGQuality); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

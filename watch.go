package gostamp

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher stamps supported images as they appear in a directory, writing the
// results to the same _watermark subdirectory Process uses. The watch is not
// recursive, so output files never feed back into the watcher.
type Watcher struct {
	dir     string
	outDir  string
	opts    *Options
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for dir. The options are validated once here;
// nil means DefaultOptions.
func NewWatcher(dir string, opts *Options) (*Watcher, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.FontCache == nil {
		shared := *opts
		shared.FontCache = NewFontCache(opts.FontDirs...)
		opts = &shared
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		dir:     dir,
		outDir:  filepath.Join(dir, OutputDirName),
		opts:    opts,
		watcher: fsWatcher,
	}, nil
}

// Start watches the directory and stamps new or modified images until ctx is
// canceled. A file that arrives in several chunks may fail to decode on the
// first event; the write event that completes it triggers a successful retry.
func (w *Watcher) Start(ctx context.Context) error {
	defer w.watcher.Close()

	if err := os.MkdirAll(w.outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := w.watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			w.handle(event.Name)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch error: %v", err)
		}
	}
}

func (w *Watcher) handle(path string) {
	if _, ok := FormatFor(path); !ok {
		return
	}

	name := filepath.Base(path)
	if err := ProcessFile(path, filepath.Join(w.outDir, name), w.opts); err != nil {
		log.Printf("skipping %s: %v", name, err)
		return
	}
	log.Printf("stamped %s", name)
}

package fileserver

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"

	"qr-code-service/internal/domain"
)

// Watcher tracks QR codes becoming visible in the shared directory. The API
// server writes the directory from another process (or container), so the
// file server learns about new codes only through the filesystem.
type Watcher struct {
	dir string
	fsw *fsnotify.Watcher

	mu    sync.Mutex
	count int
}

func NewWatcher(dir string) (*Watcher, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create static dir: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	w := &Watcher{dir: dir, fsw: fsw}
	if err := w.Rescan(); err != nil {
		fsw.Close()
		return nil, err
	}
	return w, nil
}

// Rescan recounts the QR codes currently visible in the directory.
func (w *Watcher) Rescan() error {
	entries, err := os.ReadDir(w.dir)
	if err != nil {
		return fmt.Errorf("read static dir: %w", err)
	}

	count := 0
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if domain.ValidateFilename(entry.Name()) == nil {
			count++
		}
	}

	w.mu.Lock()
	w.count = count
	w.mu.Unlock()
	return nil
}

// Count reports how many QR codes are currently servable.
func (w *Watcher) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.count
}

// Run consumes filesystem events until ctx is cancelled. Temp files from the
// writer's rename dance show up as events too, so every event triggers a
// rescan instead of an incremental count.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if domain.ValidateFilename(eventName(event)) == nil {
				log.WithFields(log.Fields{
					"file": eventName(event),
					"op":   event.Op.String(),
				}).Info("qr code visibility changed")
			}
			if err := w.Rescan(); err != nil {
				log.WithError(err).Warn("rescan static dir failed")
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.WithError(err).Warn("watcher error")
		}
	}
}

func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func eventName(event fsnotify.Event) string {
	// fsnotify reports full paths; listings are keyed by filename.
	return filepath.Base(event.Name)
}

package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// reloadDebounce coalesces editor write bursts into one reload
const reloadDebounce = 150 * time.Millisecond

// Watch reloads the catalog at path whenever it changes and passes valid results to apply
// Invalid edits are logged and skipped; the previous catalog stays active
// Blocks until ctx is done
func Watch(ctx context.Context, path string, defaultRadius float64, log *zap.Logger, apply func(*Catalog)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("catalog watcher: %w", err)
	}
	defer w.Close()

	// Watch the directory: editors often replace the file via rename
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("catalog watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("catalog watcher: %w", err)
	}

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
			} else {
				timer.Reset(reloadDebounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			c, err := Load(abs, defaultRadius)
			if err != nil {
				log.Warn("catalog reload rejected", zap.String("path", abs), zap.Error(err))
				continue
			}
			log.Info("catalog reloaded", zap.String("path", abs), zap.Int("entities", c.Len()))
			apply(c)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("catalog watcher error", zap.Error(err))
		}
	}
}

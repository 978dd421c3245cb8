// Package watch re-lists catalog records whenever a catalog file's content
// changes on disk.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/starford/zoodesk/internal/catalog"
	"github.com/starford/zoodesk/internal/checksum"
	"github.com/starford/zoodesk/internal/models"
	"github.com/starford/zoodesk/internal/storage"
)

// Callback receives a fresh listing for category. names is empty when the
// file could not be read.
type Callback func(category models.Category, names []string)

type target struct {
	category models.Category
	rel      string
	sum      string
}

// Watch reports the current listing of each category once, then watches the
// directories holding their files and reports again after every change that
// alters the file's content. Bursts of events are coalesced over debounce.
// It returns when ctx is cancelled.
//
// Directories rather than files are watched so that editors which save by
// rename are still observed.
func Watch(ctx context.Context, svc *catalog.Service, store storage.Provider, debounce time.Duration, logger *slog.Logger, cb Callback, categories ...models.Category) error {
	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}
	if len(categories) == 0 {
		categories = models.Categories()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	targets := make([]*target, 0, len(categories))
	byPath := make(map[string]*target, len(categories))
	dirs := make(map[string]struct{})
	for _, c := range categories {
		rel, err := svc.Path(c)
		if err != nil {
			return err
		}
		abs, err := store.Resolve(rel)
		if err != nil {
			return err
		}
		t := &target{category: c, rel: rel}
		targets = append(targets, t)
		byPath[abs] = t
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			return err
		}
	}

	logger.Info("watcher: started", slog.Int("files", len(targets)))

	for _, t := range targets {
		emit(svc, store, logger, t, cb, true)
	}

	// timer debounces bursts; pending holds the files touched since it was armed.
	var timer *time.Timer
	var timerCh <-chan time.Time
	pending := make(map[*target]struct{})

	schedule := func(t *target) {
		pending[t] = struct{}{}
		if timer == nil {
			timer = time.NewTimer(debounce)
			timerCh = timer.C
		} else {
			timer.Reset(debounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-timerCh:
			for t := range pending {
				emit(svc, store, logger, t, cb, false)
			}
			clear(pending)

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			t, tracked := byPath[ev.Name]
			if !tracked {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			logger.Debug("watcher: event", slog.String("path", t.rel), slog.String("op", ev.Op.String()))
			schedule(t)

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

// emit re-reads t's file and calls cb when its checksum moved (or always when
// force is set).
func emit(svc *catalog.Service, store storage.Provider, logger *slog.Logger, t *target, cb Callback, force bool) {
	sum := fileSum(store, t.rel)
	if !force && sum == t.sum {
		return
	}
	t.sum = sum

	names, err := svc.ScanNames(t.category)
	if err != nil {
		logger.Warn("watcher: scan failed",
			slog.String("path", t.rel),
			slog.String("error", err.Error()))
	}
	if cb != nil {
		cb(t.category, names)
	}
}

func fileSum(store storage.Provider, rel string) string {
	rc, err := store.Open(rel)
	if err != nil {
		return ""
	}
	defer rc.Close()
	sum, err := checksum.SumReader(rc)
	if err != nil {
		return ""
	}
	return sum
}

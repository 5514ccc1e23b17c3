package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reports changes to the YAML files under a config directory.
// Bursts of events (editors often write twice) are collapsed into one
// callback per Debounce window.
type Watcher struct {
	Dirs     []string
	Debounce time.Duration

	onChange func(string) // called with path that changed
	log      *zap.Logger
	watcher  *fsnotify.Watcher
	started  atomic.Bool
	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewWatcher creates a watcher for the default file and the profiles directory.
func NewWatcher(paths Paths, debounce time.Duration, logger *zap.Logger, onChange func(string)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		Dirs:     []string{paths.BaseDir, paths.ProfileDir()},
		Debounce: debounce,
		onChange: onChange,
		log:      logger,
		watcher:  fw,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching in a goroutine. Directories that do not exist are
// skipped.
func (w *Watcher) Start(ctx context.Context) {
	for _, d := range w.Dirs {
		if _, err := os.Stat(d); err != nil {
			continue
		}
		if err := w.watcher.Add(d); err != nil {
			w.log.Warn("watch failed", zap.String("dir", d), zap.Error(err))
			continue
		}
		w.log.Debug("watching", zap.String("dir", d))
	}
	w.started.Store(true)
	go w.run(ctx)
}

// Stop terminates the watcher and waits for its goroutine.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		if w.started.Load() {
			<-w.doneCh
		}
		_ = w.watcher.Close()
	})
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending string
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !relevant(ev) {
				continue
			}
			pending = ev.Name
			if timer == nil {
				timer = time.NewTimer(w.Debounce)
			} else {
				timer.Reset(w.Debounce)
			}
			timerC = timer.C
		case <-timerC:
			timerC = nil
			if w.onChange != nil {
				w.onChange(pending)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watcher error", zap.Error(err))
		}
	}
}

func relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
		return false
	}
	ext := strings.ToLower(filepath.Ext(ev.Name))
	return ext == ".yaml" || ext == ".yml"
}

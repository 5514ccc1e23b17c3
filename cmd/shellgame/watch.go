package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/xtding233/shellgame/internal/config"
)

// configWatch re-runs a job whenever the YAML under the loader's directory
// changes. The loader cache is dropped before each re-run.
type configWatch struct {
	loader  *config.Loader
	log     *zap.Logger
	watcher *config.Watcher
	changes chan string
}

func newConfigWatch(loader *config.Loader, debounce time.Duration, log *zap.Logger) (*configWatch, error) {
	if log == nil {
		log = zap.NewNop()
	}
	cw := &configWatch{
		loader:  loader,
		log:     log,
		changes: make(chan string, 1),
	}
	w, err := config.NewWatcher(loader.Paths(), debounce, log, cw.onChange)
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	cw.watcher = w
	return cw, nil
}

func (cw *configWatch) onChange(path string) {
	cw.loader.Invalidate()
	// one pending re-run is enough; it reads the latest files
	select {
	case cw.changes <- path:
	default:
	}
}

// Start registers the directories; events after it returns are seen.
func (cw *configWatch) Start(ctx context.Context) {
	cw.watcher.Start(ctx)
}

// Loop blocks until ctx is done. A failed run is logged and watching goes on.
func (cw *configWatch) Loop(ctx context.Context, run func(context.Context) error) error {
	defer cw.watcher.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case p := <-cw.changes:
			cw.log.Info("config changed, re-running sweep", zap.String("path", p))
			if err := run(ctx); err != nil {
				// the next edit may fix it
				cw.log.Error("sweep failed", zap.Error(err))
			}
		}
	}
}

// Package watcher feeds snapshot files dropped into an intake directory
// through the evaluation service. Collectors that cannot call the API can
// write their dossier to disk instead.
package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"dealscope/internal/codec"
	"dealscope/internal/domain"
)

// Evaluator runs the pipeline on one snapshot.
type Evaluator interface {
	Evaluate(ctx context.Context, snap domain.Snapshot) (domain.Report, error)
}

// IntakeWatcher watches a directory for snapshot files and evaluates each
// one as it lands.
type IntakeWatcher struct {
	dir      string
	svc      Evaluator
	logger   *zap.Logger
	debounce time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// New creates a new intake watcher
func New(dir string, svc Evaluator, logger *zap.Logger) *IntakeWatcher {
	return &IntakeWatcher{
		dir:      dir,
		svc:      svc,
		logger:   logger,
		debounce: 500 * time.Millisecond,
		timers:   make(map[string]*time.Timer),
	}
}

// WithDebounce sets the debounce duration
func (w *IntakeWatcher) WithDebounce(d time.Duration) *IntakeWatcher {
	w.debounce = d
	return w
}

// Watch starts watching the intake directory.
// It blocks until the context is cancelled or an error occurs.
func (w *IntakeWatcher) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(w.dir); err != nil {
		return err
	}

	w.logger.Info("watching intake directory", zap.String("dir", w.dir))

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if importerFor(event.Name) == nil {
				continue
			}

			// Collectors write files incrementally, so debounce per path
			// and ingest once the writes settle.
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.schedule(ctx, event.Name)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watcher error", zap.Error(err))

		case <-ctx.Done():
			w.mu.Lock()
			for _, timer := range w.timers {
				timer.Stop()
			}
			w.mu.Unlock()
			return ctx.Err()
		}
	}
}

func (w *IntakeWatcher) schedule(ctx context.Context, path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if timer, exists := w.timers[path]; exists {
		timer.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.ingest(ctx, path)
	})
}

// ingest decodes one snapshot file and runs it through the service. A
// malformed file is logged and skipped; it never stops the watcher.
func (w *IntakeWatcher) ingest(ctx context.Context, path string) {
	importer := importerFor(path)
	if importer == nil {
		return
	}

	f, err := os.Open(path)
	if err != nil {
		w.logger.Warn("failed to open snapshot file",
			zap.String("path", path), zap.Error(err))
		return
	}
	defer f.Close()

	snap, err := importer.Parse(f)
	if err != nil {
		w.logger.Warn("failed to decode snapshot file",
			zap.String("path", path), zap.Error(err))
		return
	}

	report, err := w.svc.Evaluate(ctx, snap)
	if err != nil {
		w.logger.Warn("evaluation failed",
			zap.String("path", path), zap.Error(err))
		return
	}

	w.logger.Info("snapshot file evaluated",
		zap.String("path", path),
		zap.String("report_id", report.ID),
		zap.String("recommendation", string(report.Decision.Recommendation)),
	)
}

// importerFor picks the codec for a snapshot file, or nil for files the
// watcher should ignore.
func importerFor(path string) codec.Importer {
	switch filepath.Ext(path) {
	case ".json":
		return codec.NewJSONCodec()
	case ".yaml", ".yml":
		return codec.NewYAMLCodec()
	default:
		return nil
	}
}

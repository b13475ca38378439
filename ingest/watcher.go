// Package ingest supplies the parser with files as they arrive: a
// directory watcher that parses LAS files on creation and hands the
// result to a caller-registered handler. It is the local counterpart
// of an upload endpoint; persistence of results stays with the caller.
package ingest

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/petralog/lascore/errors"
	"github.com/petralog/lascore/las"
	"github.com/petralog/lascore/logger"
)

// Handler receives each successfully parsed document. Parse failures
// are logged, not delivered.
type Handler func(path string, doc *las.Document)

// Config controls a Watcher.
type Config struct {
	// Dir is the directory to watch. Not recursive.
	Dir string
	// Patterns are filename globs treated as LAS files
	// (default *.las, *.LAS).
	Patterns []string
	// Debounce delays ingestion after the last write event so files
	// still being copied in are not parsed half-written (default 500ms).
	Debounce time.Duration
	// ParseOptions are passed through to the parser.
	ParseOptions las.Options
}

// Watcher watches a directory and parses LAS files as they appear.
type Watcher struct {
	cfg     Config
	handler Handler
	logger  *zap.SugaredLogger

	fsw *fsnotify.Watcher

	// timers debounces per path; a burst of writes to one file
	// collapses into a single parse.
	mu     sync.Mutex
	timers map[string]*time.Timer

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher for cfg.Dir delivering parsed documents
// to handler.
func NewWatcher(cfg Config, handler Handler) (*Watcher, error) {
	if cfg.Dir == "" {
		return nil, errors.New("watch directory not set")
	}
	if handler == nil {
		return nil, errors.New("handler not set")
	}
	if len(cfg.Patterns) == 0 {
		cfg.Patterns = []string{"*.las", "*.LAS"}
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = 500 * time.Millisecond
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}
	if err := fsw.Add(cfg.Dir); err != nil {
		fsw.Close()
		return nil, errors.Wrapf(err, "failed to watch directory %s", cfg.Dir)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		cfg:     cfg,
		handler: handler,
		logger:  logger.ComponentLogger("ingest.watcher"),
		fsw:     fsw,
		timers:  make(map[string]*time.Timer),
		ctx:     ctx,
		cancel:  cancel,
	}, nil
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start() {
	w.wg.Add(1)
	go w.loop()
	w.logger.Infow("Ingestion watcher started",
		logger.FieldPath, w.cfg.Dir)
}

// Stop shuts the watcher down and waits for in-flight work to drain:
// after it returns, no handler call is running or will run.
func (w *Watcher) Stop() {
	w.cancel()
	w.fsw.Close()

	w.mu.Lock()
	for path, t := range w.timers {
		// A timer that already fired owns its own wg slot and
		// releases it when the callback returns.
		if t.Stop() {
			w.wg.Done()
		}
		delete(w.timers, path)
	}
	w.mu.Unlock()

	w.wg.Wait()
	w.logger.Info("Ingestion watcher stopped")
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !w.shouldIngest(event.Name) {
				continue
			}
			w.schedule(event.Name)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warnw("Watcher error",
				logger.FieldError, err)
		}
	}
}

// shouldIngest reports whether the file name matches a configured
// pattern.
func (w *Watcher) shouldIngest(path string) bool {
	base := filepath.Base(path)
	for _, pattern := range w.cfg.Patterns {
		if ok, err := filepath.Match(pattern, base); err == nil && ok {
			return true
		}
	}
	return false
}

// schedule (re)arms the debounce timer for path. Each pending timer
// holds a WaitGroup slot so Stop can wait for callbacks in flight.
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.ctx.Err() != nil {
		return
	}
	if t, ok := w.timers[path]; ok {
		// Reset on a timer whose callback already started re-arms it
		// for a second run, which needs its own WaitGroup slot.
		if !t.Reset(w.cfg.Debounce) {
			w.wg.Add(1)
		}
		return
	}
	w.wg.Add(1)
	w.timers[path] = time.AfterFunc(w.cfg.Debounce, func() {
		defer w.wg.Done()
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()
		w.ingest(path)
	})
}

func (w *Watcher) ingest(path string) {
	if w.ctx.Err() != nil {
		return
	}

	start := time.Now()
	data, err := os.ReadFile(path)
	if err != nil {
		w.logger.Warnw("Unreadable file",
			logger.FieldFile, path,
			logger.FieldError, err)
		return
	}

	doc, err := las.ParseBytesWith(data, w.cfg.ParseOptions)
	if err != nil {
		// Malformed files fail deterministically; no retry.
		w.logger.Warnw("Rejected file",
			logger.FieldFile, path,
			logger.FieldError, err)
		return
	}

	w.logger.Infow("Ingested LAS file",
		logger.FieldFile, path,
		logger.FieldRows, doc.RowCount(),
		logger.FieldCurveCount, len(doc.AvailableCurves()),
		logger.FieldWarnings, len(doc.Warnings),
		logger.FieldDurationMS, time.Since(start).Milliseconds())

	w.handler(path, doc)
}

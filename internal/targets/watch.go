package targets

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/goliatone/go-instructions/internal/catalog"
	"github.com/goliatone/go-instructions/internal/logging"
	"github.com/goliatone/go-instructions/pkg/interfaces"
)

const defaultDebounce = 500 * time.Millisecond

// Watcher re-runs a sync whenever module files under the catalog root change.
// Rapid bursts of edits are debounced into a single run.
type Watcher struct {
	watcher  *fsnotify.Watcher
	catalog  interfaces.CatalogService
	sync     interfaces.SyncService
	logger   interfaces.Logger
	basePath string
	debounce time.Duration

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// WatcherConfig configures a Watcher.
type WatcherConfig struct {
	// BasePath is the catalog root whose category directories are watched.
	BasePath string
	// Debounce is the quiet period after the last event before a sync
	// runs. Defaults to 500ms.
	Debounce time.Duration
}

// NewWatcher constructs a watcher over the catalog root. The watch set is the
// root plus every category directory present; fsnotify does not recurse.
func NewWatcher(cfg WatcherConfig, catalogSvc interfaces.CatalogService, syncSvc interfaces.SyncService, logger interfaces.Logger) (*Watcher, error) {
	if logger == nil {
		logger = logging.NoOp()
	}

	notifier, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}

	w := &Watcher{
		watcher:  notifier,
		catalog:  catalogSvc,
		sync:     syncSvc,
		logger:   logger,
		basePath: cfg.BasePath,
		debounce: debounce,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}

	if err := w.addWatchSet(); err != nil {
		notifier.Close()
		return nil, err
	}

	return w, nil
}

// Start begins watching. It is non-blocking; the event loop runs in its own
// goroutine until Stop is called or ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the event loop to drain.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		w.logger.Error("targets.watch.close_failed", "error", err)
	}
}

func (w *Watcher) addWatchSet() error {
	if err := w.watcher.Add(w.basePath); err != nil {
		return err
	}
	for _, category := range interfaces.Categories() {
		dir := filepath.Join(w.basePath, catalog.CategoryDir(category))
		if _, err := os.Stat(dir); err != nil {
			// Absent category directories are fine; edits creating them
			// later surface as events on the base path.
			continue
		}
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
		if err := w.addSubdirectories(dir); err != nil {
			return err
		}
	}
	return nil
}

func (w *Watcher) addSubdirectories(dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() || path == dir {
			return nil
		}
		return w.watcher.Add(path)
	})
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("targets.watch.context_cancelled")
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("targets.watch.event", "op", event.Op.String(), "path", event.Name)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("targets.watch.error", "error", err)

		case <-fire:
			timer = nil
			fire = nil
			w.resync(ctx)
		}
	}
}

// relevant keeps only markdown edits; manifest and output writes from our own
// sync runs must not retrigger a sync.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return strings.EqualFold(filepath.Ext(event.Name), ".md")
}

func (w *Watcher) resync(ctx context.Context) {
	if err := w.catalog.Reload(ctx); err != nil {
		w.logger.Error("targets.watch.reload_failed", "error", err)
		return
	}
	result, err := w.sync.Sync(ctx, interfaces.SyncRequest{})
	if err != nil {
		w.logger.Error("targets.watch.sync_failed", "error", err)
		return
	}
	w.logger.Info("targets.watch.synced",
		"run_id", result.RunID,
		"written", result.Written(),
	)
}

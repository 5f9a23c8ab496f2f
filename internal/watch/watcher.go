// Package watch re-runs a build when any of a fixed set of input files changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/govuksite/internal/logfields"
)

// DefaultDebounce coalesces editor save bursts into one rebuild.
const DefaultDebounce = 300 * time.Millisecond

// Watcher monitors input files and triggers debounced rebuilds.
type Watcher struct {
	files    map[string]struct{}
	dirs     map[string]struct{}
	onChange func(ctx context.Context) error
	debounce time.Duration

	watcher   *fsnotify.Watcher
	triggerCh chan struct{}
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
	rebuildMu sync.Mutex
}

// New creates a Watcher for paths. onChange runs at most once at a time.
func New(paths []string, debounce time.Duration, onChange func(ctx context.Context) error) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &Watcher{
		files:     make(map[string]struct{}, len(paths)),
		dirs:      make(map[string]struct{}, len(paths)),
		onChange:  onChange,
		debounce:  debounce,
		watcher:   fw,
		triggerCh: make(chan struct{}, 1),
		stopCh:    make(chan struct{}),
	}
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("failed to resolve watch path %s: %w", p, err)
		}
		w.files[abs] = struct{}{}
		w.dirs[filepath.Dir(abs)] = struct{}{}
	}
	return w, nil
}

// Start watches the parent directory of every file (more reliable than
// watching files directly across atomic-rename saves) and returns immediately.
func (w *Watcher) Start(ctx context.Context) error {
	for dir := range w.dirs {
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
		slog.Debug("Watching directory", logfields.Path(dir))
	}

	w.wg.Add(2)
	go w.eventLoop(ctx)
	go w.rebuildLoop(ctx)
	return nil
}

// Stop closes the underlying watcher, waits for the loops to exit and for any
// in-flight rebuild to finish. Pending debounce timers become no-ops.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopCh)
		err = w.watcher.Close()
		w.wg.Wait()
		w.rebuildMu.Lock()
		w.rebuildMu.Unlock() //nolint:staticcheck // barrier for in-flight rebuilds
	})
	return err
}

func (w *Watcher) eventLoop(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
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
			slog.Debug("Input change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
			w.trigger()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("File watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return false
	}
	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}
	_, ok := w.files[abs]
	return ok
}

func (w *Watcher) trigger() {
	select {
	case w.triggerCh <- struct{}{}:
	default:
		// rebuild already pending
	}
}

func (w *Watcher) rebuildLoop(ctx context.Context) {
	defer w.wg.Done()
	var timer *time.Timer
	stopTimer := func() {
		if timer != nil {
			timer.Stop()
		}
	}
	for {
		select {
		case <-ctx.Done():
			stopTimer()
			return
		case <-w.stopCh:
			stopTimer()
			return
		case <-w.triggerCh:
			stopTimer()
			timer = time.AfterFunc(w.debounce, func() { w.rebuild(ctx) })
		}
	}
}

func (w *Watcher) rebuild(ctx context.Context) {
	w.rebuildMu.Lock()
	defer w.rebuildMu.Unlock()
	select {
	case <-w.stopCh:
		return
	default:
	}
	if ctx.Err() != nil {
		return
	}
	if err := w.onChange(ctx); err != nil {
		slog.Error("Rebuild failed", logfields.Error(err))
	}
}

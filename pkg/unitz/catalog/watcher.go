package catalog

import (
	"context"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/sambeau/unitz/internal/logger"
	"github.com/sambeau/unitz/pkg/unitz"
)

// DefaultDebounce is how long a catalog must be quiet before it is reloaded.
const DefaultDebounce = 100 * time.Millisecond

// Watcher keeps a registry in step with a set of catalog files. Each file
// is reloaded after a burst of writes settles, replacing the classes it
// defined before. A file that fails to load leaves its previous classes in
// place.
type Watcher struct {
	watcher  *fsnotify.Watcher
	reg      *unitz.Registry
	log      *logger.Logger
	debounce time.Duration
	onReload func(path string, err error)

	mu      sync.Mutex
	files   map[string][]string // catalog path -> class names it defined
	timers  map[string]*time.Timer
	reloads uint64
	closed  bool
}

// NewWatcher creates a watcher for the given catalogs. Nothing is loaded
// or watched until Start.
func NewWatcher(reg *unitz.Registry, log *logger.Logger, paths ...string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:  fsWatcher,
		reg:      reg,
		log:      logger.OrDiscard(log).Component("catalog"),
		debounce: DefaultDebounce,
		files:    make(map[string][]string),
		timers:   make(map[string]*time.Timer),
	}
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			fsWatcher.Close()
			return nil, err
		}
		w.files[abs] = nil
	}
	return w, nil
}

// SetDebounce changes the quiet period. Call before Start.
func (w *Watcher) SetDebounce(d time.Duration) { w.debounce = d }

// OnReload registers fn to be called after every reload attempt. Call
// before Start.
func (w *Watcher) OnReload(fn func(path string, err error)) { w.onReload = fn }

// Start loads every catalog once, then watches their directories until ctx
// is done or Close is called. An initial load failure is returned.
func (w *Watcher) Start(ctx context.Context) error {
	dirs := make(map[string]bool)
	for _, path := range w.paths() {
		if err := w.reload(path); err != nil {
			return err
		}
		dirs[filepath.Dir(path)] = true
	}

	for dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			w.log.Error("failed to watch catalog dir", "dir", dir, "error", err)
		} else {
			w.log.Info("watching catalogs", "dir", dir)
		}
	}

	go w.eventLoop(ctx)
	return nil
}

func (w *Watcher) paths() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, 0, len(w.files))
	for p := range w.files {
		out = append(out, p)
	}
	slices.Sort(out)
	return out
}

// eventLoop processes file system events
func (w *Watcher) eventLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.schedule(filepath.Clean(event.Name))

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Error("watcher error", "error", err)
		}
	}
}

// schedule (re)starts the debounce timer of a watched catalog.
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.files[path]; !ok || w.closed {
		return
	}
	if t, ok := w.timers[path]; ok {
		t.Reset(w.debounce)
		return
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		closed := w.closed
		w.mu.Unlock()
		if closed {
			return
		}
		if err := w.reload(path); err != nil {
			w.log.Error("catalog reload failed, keeping previous classes", "path", path, "error", err)
		}
	})
}

// reload loads path and swaps its classes into the registry.
func (w *Watcher) reload(path string) error {
	classes, err := Load(path)
	if err == nil {
		names := make([]string, len(classes))
		for i, c := range classes {
			names[i] = c.Name()
		}

		w.mu.Lock()
		previous := w.files[path]
		w.files[path] = names
		w.reloads++
		w.mu.Unlock()

		for _, old := range previous {
			if !slices.Contains(names, old) {
				w.reg.RemoveClass(old)
			}
		}
		w.reg.AddClasses(classes...)
		w.log.Info("catalog loaded", "path", path, "classes", len(classes))
	}
	if w.onReload != nil {
		w.onReload(path, err)
	}
	return err
}

// Reloads counts successful loads, including the initial ones.
func (w *Watcher) Reloads() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reloads
}

// Close stops the watcher and any pending reloads.
func (w *Watcher) Close() error {
	w.mu.Lock()
	w.closed = true
	for _, t := range w.timers {
		t.Stop()
	}
	w.timers = map[string]*time.Timer{}
	w.mu.Unlock()
	return w.watcher.Close()
}

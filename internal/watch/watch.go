// Package watch reports files that changed on disk.
package watch

import (
	"fmt"
	"path/filepath"
	"slices"
	"sync"

	"github.com/fsnotify/fsnotify"

	"vgfx/core"
)

// Watcher collects change notifications for a set of files. It watches
// their directories rather than the files themselves, so editors that save
// by writing a new file and renaming it over the old one are still seen.
type Watcher struct {
	fs *fsnotify.Watcher

	mu      sync.Mutex
	files   map[string]bool
	dirs    map[string]bool
	changed map[string]bool

	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
	closeErr  error
}

func New() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	w := &Watcher{
		fs:      fw,
		files:   make(map[string]bool),
		dirs:    make(map[string]bool),
		changed: make(map[string]bool),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Add starts watching path. Paths are reported back as absolute, cleaned
// paths.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.dirs[dir] {
		if err := w.fs.Add(dir); err != nil {
			return fmt.Errorf("watch %q: %w", dir, err)
		}
		w.dirs[dir] = true
	}
	w.files[abs] = true
	return nil
}

// Changed drains the set of watched files modified since the last call,
// sorted.
func (w *Watcher) Changed() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.changed) == 0 {
		return nil
	}
	out := make([]string, 0, len(w.changed))
	for p := range w.changed {
		out = append(out, p)
	}
	clear(w.changed)
	slices.Sort(out)
	return out
}

// Close stops watching and waits for the event loop to exit. Later calls
// return the first call's result.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		close(w.done)
		w.closeErr = w.fs.Close()
		w.wg.Wait()
	})
	return w.closeErr
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			name := filepath.Clean(ev.Name)
			w.mu.Lock()
			if w.files[name] {
				w.changed[name] = true
			}
			w.mu.Unlock()
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			core.Logger().Warn("watch: error", "err", err)
		}
	}
}

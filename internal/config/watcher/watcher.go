// Package watcher reloads configuration when the file changes on disk.
package watcher

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrWatcherClosed is returned when using a closed watcher.
var ErrWatcherClosed = errors.New("watcher: closed")

// DefaultDebounce coalesces the event bursts editors produce when
// saving a file.
const DefaultDebounce = 250 * time.Millisecond

// Watcher invokes a callback when a single configuration file changes.
// The parent directory is watched rather than the file itself, because
// most editors replace files by rename.
type Watcher struct {
	fsw      *fsnotify.Watcher
	path     string
	debounce time.Duration
	onChange func()

	closeOnce sync.Once
	done      chan struct{}
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides the debounce interval.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// New starts watching path and calls onChange (on the watcher's
// goroutine) after each debounced change.
func New(path string, onChange func(), opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		path:     abs,
		debounce: DefaultDebounce,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	go w.loop()
	return w, nil
}

// Path returns the watched file path.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher. Safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	return err
}

// loop filters events for the watched file and debounces the callback.
func (w *Watcher) loop() {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
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

		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			// Watch errors are transient; the next event still fires.

		case <-fire:
			timer = nil
			fire = nil
			if w.onChange != nil {
				w.onChange()
			}
		}
	}
}

// relevant reports whether the event concerns the watched file and a
// content-changing operation.
func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if filepath.Clean(ev.Name) != w.path {
		return false
	}
	return ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

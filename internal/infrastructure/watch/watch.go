// Package watch reports changes to level files on disk.
package watch

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce is how long a file must stay quiet before its change is reported
const debounce = 100 * time.Millisecond

// Watcher emits the path of every level file that is written, created,
// renamed or removed inside the watched directories
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// New watches the given directories
func New(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher; Events and Errors are closed once it has stopped
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

// Drain returns every pending change without blocking, deduplicated
func (w *Watcher) Drain() []string {
	var changed []string
	seen := make(map[string]bool)
	for {
		select {
		case name, ok := <-w.Events:
			if !ok {
				return changed
			}
			if !seen[name] {
				seen[name] = true
				changed = append(changed, name)
			}
		default:
			return changed
		}
	}
}

func (w *Watcher) run() {
	settle := newSettler(debounce)
	defer func() {
		settle.stop()
		close(w.Events)
		close(w.Errors)
		close(w.done)
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			if !IsLevelFile(event.Name) {
				continue
			}
			settle.touch(event.Name)
		case name := <-settle.ready:
			settle.forget(name)
			select {
			case w.Events <- name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// settler reports a path once it has gone delay without a new event, so a
// burst of writes from one save is reported after the last of them.
// touch and forget must be called from a single goroutine.
type settler struct {
	delay  time.Duration
	timers map[string]*time.Timer
	ready  chan string
	done   chan struct{}
}

func newSettler(delay time.Duration) *settler {
	return &settler{
		delay:  delay,
		timers: make(map[string]*time.Timer),
		ready:  make(chan string),
		done:   make(chan struct{}),
	}
}

// touch starts or restarts the quiet period for name
func (s *settler) touch(name string) {
	if t, ok := s.timers[name]; ok {
		t.Reset(s.delay)
		return
	}
	s.timers[name] = time.AfterFunc(s.delay, func() {
		select {
		case s.ready <- name:
		case <-s.done:
		}
	})
}

// forget drops the timer of a path that has been reported
func (s *settler) forget(name string) {
	delete(s.timers, name)
}

func (s *settler) stop() {
	close(s.done)
	for _, t := range s.timers {
		t.Stop()
	}
}

// IsLevelFile reports whether path has a level file extension
func IsLevelFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".json" || ext == ".tmx"
}

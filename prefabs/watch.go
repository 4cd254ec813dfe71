package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

var watchedExt = map[string]bool{".yaml": true, ".yml": true, ".tengo": true}

// Watcher reports edits to prefab and script files. fsnotify events are
// filtered and debounced on a background goroutine; Poll collects them
// without blocking, so the game loop can call it every tick.
type Watcher struct {
	fs      *fsnotify.Watcher
	changes chan string
	errs    chan error
	stop    chan struct{}
	done    chan struct{}

	closeOnce sync.Once
	closeErr  error
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}

	w := &Watcher{
		fs:      fsw,
		changes: make(chan string, 16),
		errs:    make(chan error, 1),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Close stops the background goroutine. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		close(w.stop)
		w.closeErr = w.fs.Close()
		<-w.done
	})
	return w.closeErr
}

// Poll returns each file changed since the last call once, plus any watcher
// errors.
func (w *Watcher) Poll() ([]string, []error) {
	var changed []string
	var errs []error
	seen := make(map[string]bool)
	for {
		select {
		case name := <-w.changes:
			if !seen[name] {
				seen[name] = true
				changed = append(changed, name)
			}
		case err := <-w.errs:
			errs = append(errs, err)
		default:
			return changed, errs
		}
	}
}

func (w *Watcher) loop() {
	defer close(w.done)
	last := make(map[string]time.Time)
	for {
		select {
		case <-w.stop:
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !relevant(ev) {
				continue
			}
			if t, dup := last[ev.Name]; dup && time.Since(t) < debounce {
				continue
			}
			last[ev.Name] = time.Now()
			select {
			case w.changes <- ev.Name:
			case <-w.stop:
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}

func relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
		return false
	}
	return watchedExt[strings.ToLower(filepath.Ext(ev.Name))]
}

package leveldata

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// Watcher reports .tmx files that change on disk. Events carries the path
// of each changed file. A burst of writes to one file collapses into a single
// event sent once the file has been quiet for the debounce window.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewWatcher(dirs ...string) (*Watcher, error) {
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

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	quiet := make(chan string)
	timers := make(map[string]*time.Timer)
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !IsLevelFile(event.Name) {
				continue
			}
			if t, ok := timers[event.Name]; ok {
				t.Reset(debounce)
				continue
			}
			name := event.Name
			timers[name] = time.AfterFunc(debounce, func() {
				select {
				case quiet <- name:
				case <-w.closeCh:
				}
			})
		case name := <-quiet:
			delete(timers, name)
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
				// Drop when nobody is draining errors
			}
		case <-w.closeCh:
			return
		}
	}
}

// IsLevelFile reports whether path names a TMX level.
func IsLevelFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tmx"
}

package main

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to a single config file. Events are debounced
// because editors tend to fire several writes per save.
type Watcher struct {
	watcher *fsnotify.Watcher
	target  string
	Events  chan struct{}
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewWatcher(filename string) (*Watcher, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// watch the directory: editors replace files on save, which would drop
	// a watch on the file itself
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher: fw,
		target:  abs,
		Events:  make(chan struct{}, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	var last time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			abs, err := filepath.Abs(event.Name)
			if err != nil || abs != w.target {
				continue
			}
			now := time.Now()
			if now.Sub(last) < 100*time.Millisecond {
				continue
			}
			last = now
			select {
			case w.Events <- struct{}{}:
			default:
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

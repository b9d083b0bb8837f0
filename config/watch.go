package config

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// TuningWatcher reloads a tuning file whenever it changes on disk and
// delivers the parsed result on Updates. Files that fail to parse are logged
// and skipped so a half-saved edit never reaches the game.
type TuningWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	Updates chan Tuning
	closeCh chan struct{}
	once    sync.Once
}

// WatchTuning starts watching the directory that holds path.
func WatchTuning(path string) (*TuningWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Editors replace files on save, so watch the directory instead of the file.
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	tw := &TuningWatcher{
		watcher: w,
		path:    filepath.Clean(path),
		Updates: make(chan Tuning, 1),
		closeCh: make(chan struct{}),
	}
	go tw.run()
	return tw, nil
}

func (tw *TuningWatcher) Close() error {
	var err error
	tw.once.Do(func() {
		close(tw.closeCh)
		err = tw.watcher.Close()
	})
	return err
}

func (tw *TuningWatcher) run() {
	// Saves arrive as several events (truncate, write, rename), so reload only
	// once the file has been quiet for reloadDelay.
	const reloadDelay = 100 * time.Millisecond
	var timer *time.Timer
	var pending <-chan time.Time
	for {
		select {
		case event, ok := <-tw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != tw.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDelay)
			} else {
				timer.Reset(reloadDelay)
			}
			pending = timer.C
		case <-pending:
			pending = nil
			t, err := LoadTuning(tw.path)
			if err != nil {
				log.Printf("Warning: Could not reload tuning: %v", err)
				continue
			}
			tw.deliver(t)
		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Warning: Tuning watcher error: %v", err)
		case <-tw.closeCh:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// deliver keeps only the newest tuning when the game has not consumed the last one.
func (tw *TuningWatcher) deliver(t Tuning) {
	select {
	case <-tw.Updates:
	default:
	}
	select {
	case tw.Updates <- t:
	case <-tw.closeCh:
	}
}

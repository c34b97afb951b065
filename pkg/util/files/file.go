// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"
	"k8s.io/klog/v2"
)

const (
	watchDebounceDelay = 500 * time.Millisecond
)

// Watcher encapsulates file watch and configuration,
// abstracting form the underlying file watch provider
type Watcher struct {
	Watcher      *fsnotify.Watcher
	WatchedFiles []string
	watched      []string
	delay        time.Duration
}

// NewFileWatcher creates Watcher
func NewFileWatcher() *Watcher {
	return &Watcher{
		WatchedFiles: []string{},
		watched:      []string{},
		delay:        watchDebounceDelay,
	}
}

// AddToWatch adds files to a WatchedFiles list monitored
// by this Watcher. The underlying fsnotify watcher is created on
// demand if it's nil when the operation is invoked.
func (w *Watcher) AddToWatch(files ...string) error {
	if len(files) == 0 {
		return nil
	}
	if w.Watcher == nil {
		var err error
		w.Watcher, err = fsnotify.NewWatcher()
		if err != nil {
			return err
		}
	}
	for _, f := range files {
		w.WatchedFiles = append(w.WatchedFiles, filepath.Clean(f))
	}
	return nil
}

// Watch starts monitoring WatchedFiles until the context is done. If WatchedFiles
// or Watcher are not initialized, Watch returns immediately. The eventHandler function
// is invoked once per burst of write, create or rename events on the watched files.
// Handler errors are logged and do not stop watching
func (w *Watcher) Watch(ctx context.Context, eventHandler func() error) error {
	if w.Watcher == nil || len(w.WatchedFiles) == 0 {
		return nil
	}
	defer func() {
		w.Watcher.Close() // nolint: errcheck
		klog.V(6).Infof("watching files stopped")
	}()

	// watch the parent directories as editors replace files on save
	for _, file := range w.WatchedFiles {
		watchDir := filepath.Dir(file)
		if slices.Contains(w.watched, watchDir) {
			continue
		}
		if err := w.Watcher.Add(watchDir); err != nil {
			return fmt.Errorf("could not watch %v: %v", file, err)
		}
		klog.V(6).Infof("watching %s", watchDir)
		w.watched = append(w.watched, watchDir)
	}
	klog.V(6).Info("watching files started")
	var timerC <-chan time.Time
	for {
		select {
		case <-timerC:
			timerC = nil
			if eventHandler != nil {
				if err := eventHandler(); err != nil {
					klog.Errorf("handling change of %v failed: %v", w.WatchedFiles, err)
				}
			}
		case event, ok := <-w.Watcher.Events:
			if !ok {
				return nil
			}
			if !slices.Contains(w.WatchedFiles, filepath.Clean(event.Name)) {
				continue
			}
			// use a timer to debounce updates
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				timerC = time.After(w.delay)
			}
		case err, ok := <-w.Watcher.Errors:
			if !ok {
				return nil
			}
			klog.V(6).Infof("watcher error: %v", err)
		case <-ctx.Done():
			return nil
		}
	}
}

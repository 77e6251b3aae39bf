// image_watch.go - Watch a directory for Layer 2 image drops

/*
image_watch.go - Image Watch

Watches a directory and loads any NIM or PNG file written into it
straight into the active Layer 2 banks. This is the quickest artist
loop: keep the window open, export from an editor, see the result on
the next frame.
*/

package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
)

// watchBackoff delays the load until the writer has settled. Editors
// tend to write image files in several chunks.
const watchBackoff = 100 * time.Millisecond

// ImageWatcher feeds image files dropped into a directory to a machine.
type ImageWatcher struct {
	machine *Machine
	watcher *fsnotify.Watcher
	pending string
	release chan struct{}
	running bool
}

// NewImageWatcher creates a watcher over dir. It does not start until
// Start is called.
func NewImageWatcher(m *Machine, dir string) (*ImageWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}
	log.WithField("dir", dir).Info("watching for layer2 images")
	return &ImageWatcher{
		machine: m,
		watcher: w,
		release: make(chan struct{}),
	}, nil
}

// Start runs the watch loop. Loads are debounced by watchBackoff and
// executed through load, which the caller uses to funnel the actual
// machine mutation onto its own goroutine.
func (iw *ImageWatcher) Start(load func(path string) error) error {
	if iw.watcher == nil {
		return fmt.Errorf("image watcher not initialized or stopped")
	}
	if iw.running {
		return fmt.Errorf("image watcher already started")
	}
	iw.running = true

	go func() {
		timer := time.NewTimer(time.Millisecond)
		<-timer.C

		for {
			select {

			case evt, ok := <-iw.watcher.Events:
				if !ok {
					iw.running = false
					close(iw.release)
					return
				}
				if !evt.Op.Has(fsnotify.Create) && !evt.Op.Has(fsnotify.Write) {
					continue
				}
				if !watchableImage(evt.Name) {
					continue
				}
				timer.Stop()
				iw.pending = evt.Name
				timer = time.NewTimer(watchBackoff)

			case err, ok := <-iw.watcher.Errors:
				if ok {
					log.Errorf("image watcher error: %v", err)
				}

			case <-timer.C:
				if iw.pending == "" {
					continue
				}
				if err := load(iw.pending); err != nil {
					log.WithError(err).WithField("path", iw.pending).Warn("image load failed")
				}
				iw.pending = ""
			}
		}
	}()

	return nil
}

// Stop signals the watcher to stop and waits until it has. Only the
// watch goroutine closes release, so the wait is skipped when Start
// was never called.
func (iw *ImageWatcher) Stop() {
	if iw.watcher == nil {
		return
	}
	started := iw.running
	if err := iw.watcher.Close(); err != nil {
		log.Errorf("could not close image watcher: %v", err)
	}
	if started {
		<-iw.release
	}
	iw.watcher = nil
}

func watchableImage(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".nim", ".png":
		return true
	}
	return false
}

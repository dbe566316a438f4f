// File: watch/watch.go

// Package watch implements the `--watch` re-run loop for the CLI's
// script-file mode: it watches one source file for writes and invokes
// a callback each time the file changes, letting a user iterate on a
// .lox script without manually re-invoking the interpreter. Nothing in
// the core interpreter is watch-aware; this package is purely a host
// convenience layered on top of interp.Interpreter from the outside.
package watch

import (
	"github.com/fsnotify/fsnotify"
)

// Watch calls onChange once immediately, then returns while a
// background goroutine calls it again every time path is written or
// created, until the returned stop function is called. An error
// setting up the watcher is returned from Watch itself; errors the
// watcher reports afterwards are ignored.
func Watch(path string, onChange func()) (stop func() error, err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, err
	}

	onChange()

	done := make(chan struct{})
	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					onChange()
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			case <-done:
				return
			}
		}
	}()

	stop = func() error {
		close(done)
		return watcher.Close()
	}
	return stop, nil
}

// Package watchertest defines a fake Watcher implementation for testing.
package watchertest

import (
	"path/filepath"
	"sync"

	"github.com/lapwatch/lapwatch/internal/watcher"
)

// FakeWatcher is a Watcher whose change events are triggered manually.
//
// Unlike the real implementation, watched paths do not need to exist.
type FakeWatcher struct {
	sync.Mutex

	handlers map[string]func()
	finished bool
}

var _ watcher.Watcher = &FakeWatcher{}

func NewFakeWatcher() *FakeWatcher {
	return &FakeWatcher{
		handlers: make(map[string]func()),
	}
}

// OnChange invokes the change callback registered for the path, if any.
func (w *FakeWatcher) OnChange(path string) {
	w.Lock()
	handler := w.handlers[w.toAbs(path)]
	finished := w.finished
	w.Unlock()

	if handler != nil && !finished {
		handler()
	}
}

// IsWatching reports whether a callback is registered for the path.
func (w *FakeWatcher) IsWatching(path string) bool {
	w.Lock()
	defer w.Unlock()

	return w.handlers[w.toAbs(path)] != nil
}

func (w *FakeWatcher) Watch(path string, onChange func()) error {
	w.Lock()
	defer w.Unlock()

	w.handlers[w.toAbs(path)] = onChange
	return nil
}

func (w *FakeWatcher) Finish() {
	w.Lock()
	defer w.Unlock()

	w.finished = true
}

func (w *FakeWatcher) toAbs(path string) string {
	absPath, err := filepath.Abs(path)

	if err != nil {
		panic(err)
	}

	return absPath
}

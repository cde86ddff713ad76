// Package watcher notifies on changes to watched files.
package watcher

import (
	"time"

	"github.com/lapwatch/lapwatch/internal/observability"
)

// Watcher invokes callbacks when registered files are modified.
type Watcher interface {
	// Watch begins watching the file at the specified path.
	//
	// onChange runs after the contents of the file may have changed,
	// including when a file is created at the path. Writes that leave
	// the file's mtime untouched can go unnoticed: there is no
	// guarantee that onChange runs after the final change to a file.
	Watch(path string, onChange func()) error

	// Finish stops the watcher from emitting any more change events.
	Finish()
}

type Params struct {
	// Logger receives errors from the underlying poller. Defaults to a
	// no-op logger.
	Logger *observability.CoreLogger

	// PollingPeriod is how often to poll files for updates.
	//
	// If unset, this uses a default value.
	PollingPeriod time.Duration
}

func New(params Params) Watcher {
	return newWatcher(params)
}

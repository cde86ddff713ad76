package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lapwatch/lapwatch/internal/stopwatch"
)

const eventBufferSize = 64

// ForwardSnapshots returns an engine tick callback that forwards
// snapshots to the UI.
//
// The callback never blocks: when the UI is behind, the snapshot is
// dropped and the next tick supersedes it.
func ForwardSnapshots(events chan<- tea.Msg) func(stopwatch.Snapshot) {
	return func(snap stopwatch.Snapshot) {
		select {
		case events <- TickMsg{Snap: snap}:
		default:
		}
	}
}

// NotifyPrefsChanged returns a watcher callback that tells the UI to
// reload preferences from storage.
func NotifyPrefsChanged(events chan<- tea.Msg) func() {
	return func() {
		select {
		case events <- PrefsReloadedMsg{}:
		default:
		}
	}
}

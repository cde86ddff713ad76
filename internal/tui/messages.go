// Messages for the Bubble Tea model.

package tui

import (
	"github.com/lapwatch/lapwatch/internal/stopwatch"
)

// TickMsg carries a fresh engine snapshot to the UI.
type TickMsg struct {
	Snap stopwatch.Snapshot
}

// PrefsReloadedMsg indicates that the preferences file changed on disk.
type PrefsReloadedMsg struct{}

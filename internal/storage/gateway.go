// Package storage persists laps and preferences between sessions.
package storage

import "github.com/lapwatch/lapwatch/internal/lapledger"

// Preference keys understood by the app.
const (
	// PrefTheme selects the color palette, "dark" or "light".
	PrefTheme = "theme"

	// PrefSoundEnabled turns the lap bell on or off, "true" or "false".
	PrefSoundEnabled = "soundEnabled"
)

// Gateway stores lap history and preferences.
//
// Implementations report failures to the caller; callers log and keep
// going with in-memory state, so no Gateway error ever interrupts the
// stopwatch.
type Gateway interface {
	// SaveLaps replaces the stored lap history.
	SaveLaps(laps []lapledger.Lap) error

	// LoadLaps returns the stored lap history in recording order, or an
	// empty slice when there is none. Unreadable or malformed history
	// is treated as absent, not as an error.
	LoadLaps() ([]lapledger.Lap, error)

	// SavePreference stores one preference value.
	SavePreference(key, value string) error

	// LoadPreference returns the stored value for key. ok is false when
	// the key has never been stored.
	LoadPreference(key string) (value string, ok bool, err error)
}

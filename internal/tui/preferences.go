package tui

import (
	"fmt"
	"strconv"

	"github.com/lapwatch/lapwatch/internal/observability"
	"github.com/lapwatch/lapwatch/internal/storage"
)

// Preferences holds the UI settings backed by the storage gateway.
//
// Loading is tolerant: a missing or unrecognized value falls back to its
// default. Toggles update the in-memory value first and then write
// through, so a storage failure never blocks the UI.
type Preferences struct {
	gateway storage.Gateway
	logger  *observability.CoreLogger

	theme        string
	soundEnabled bool
}

// LoadPreferences reads preferences from the gateway, which may be nil
// for a purely in-memory session.
func LoadPreferences(
	gateway storage.Gateway,
	logger *observability.CoreLogger,
) *Preferences {
	if logger == nil {
		logger = observability.NewNoOpLogger()
	}

	p := &Preferences{gateway: gateway, logger: logger}
	p.Reload()
	return p
}

// Reload re-reads all preferences from the gateway.
func (p *Preferences) Reload() {
	p.theme = ThemeDark
	if value, ok := p.load(storage.PrefTheme); ok && value == ThemeLight {
		p.theme = ThemeLight
	}

	p.soundEnabled = false
	if value, ok := p.load(storage.PrefSoundEnabled); ok && value == "true" {
		p.soundEnabled = true
	}
}

// Theme returns the current theme name, ThemeDark or ThemeLight.
func (p *Preferences) Theme() string {
	return p.theme
}

// SoundEnabled reports whether the lap sound is on.
func (p *Preferences) SoundEnabled() bool {
	return p.soundEnabled
}

// ToggleTheme switches between the dark and light themes.
func (p *Preferences) ToggleTheme() {
	if p.theme == ThemeLight {
		p.theme = ThemeDark
	} else {
		p.theme = ThemeLight
	}
	p.save(storage.PrefTheme, p.theme)
}

// ToggleSound switches the lap sound on or off.
func (p *Preferences) ToggleSound() {
	p.soundEnabled = !p.soundEnabled
	p.save(storage.PrefSoundEnabled, strconv.FormatBool(p.soundEnabled))
}

// Persist writes the current values back to the gateway.
//
// Called once at startup so the preferences file exists before the file
// watcher registers it.
func (p *Preferences) Persist() {
	p.save(storage.PrefTheme, p.theme)
	p.save(storage.PrefSoundEnabled, strconv.FormatBool(p.soundEnabled))
}

func (p *Preferences) load(key string) (string, bool) {
	if p.gateway == nil {
		return "", false
	}

	value, ok, err := p.gateway.LoadPreference(key)
	if err != nil {
		p.logger.CaptureError(
			fmt.Errorf("tui: loading preference %q: %w", key, err))
		return "", false
	}
	return value, ok
}

func (p *Preferences) save(key, value string) {
	if p.gateway == nil {
		return
	}

	if err := p.gateway.SavePreference(key, value); err != nil {
		p.logger.CaptureError(
			fmt.Errorf("tui: saving preference %q: %w", key, err))
	}
}

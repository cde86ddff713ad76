package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding defines a key binding for a particular target type.
//
// If Handler is nil, the binding is shown in the help screen but is not
// dispatched through the key map (useful for documentation-only bindings
// handled by a child component or intercepted before dispatch).
type KeyBinding[T any] struct {
	Keys        []string
	Description string
	Handler     func(*T, tea.KeyMsg) tea.Cmd
}

// BindingCategory groups related key bindings (primarily for help display).
type BindingCategory[T any] struct {
	Name     string
	Bindings []KeyBinding[T]
}

// StopwatchKeyBindings returns the key bindings for the stopwatch view.
func StopwatchKeyBindings() []BindingCategory[Model] {
	return []BindingCategory[Model]{
		{
			Name: "Stopwatch",
			Bindings: []KeyBinding[Model]{
				{
					Keys:        []string{"space"},
					Description: "Start or pause the timer",
					Handler:     (*Model).handleToggleRunPause,
				},
				{
					Keys:        []string{"l"},
					Description: "Record a lap (while running)",
					Handler:     (*Model).handleLap,
				},
				{
					Keys:        []string{"r"},
					Description: "Reset the timer and all laps",
					Handler:     (*Model).handleReset,
				},
				{
					Keys:        []string{"c"},
					Description: "Clear laps, keeping the timer",
					Handler:     (*Model).handleClearLaps,
				},
			},
		},
		{
			Name: "Preferences",
			Bindings: []KeyBinding[Model]{
				{
					Keys:        []string{"t"},
					Description: "Toggle dark/light theme",
					Handler:     (*Model).handleToggleTheme,
				},
				{
					Keys:        []string{"s"},
					Description: "Toggle the lap sound",
					Handler:     (*Model).handleToggleSound,
				},
			},
		},

		// Documentation-only bindings (handled by the laps viewport).
		{
			Name: "Laps",
			Bindings: []KeyBinding[Model]{
				{
					Keys:        []string{"up", "down", "pgup", "pgdown"},
					Description: "Scroll the lap list",
				},
			},
		},

		{
			Name: "General",
			Bindings: []KeyBinding[Model]{
				{
					Keys:        []string{"h", "?"},
					Description: "Toggle this help screen",
				},
				{
					Keys:        []string{"q", "ctrl+c"},
					Description: "Quit",
					Handler:     (*Model).handleQuit,
				},
			},
		},
	}
}

// buildKeyMap builds a fast lookup map from key string to handler.
func buildKeyMap[T any](categories []BindingCategory[T]) map[string]func(*T, tea.KeyMsg) tea.Cmd {
	keyMap := make(map[string]func(*T, tea.KeyMsg) tea.Cmd)
	for _, category := range categories {
		for _, binding := range category.Bindings {
			if binding.Handler == nil {
				continue
			}
			for _, key := range binding.Keys {
				keyMap[normalizeKey(key)] = binding.Handler
			}
		}
	}
	return keyMap
}

// normalizeKey normalizes Bubble Tea's KeyMsg.String() into a stable key
// used by our maps.
//
// Bubble Tea has historically reported space as " " in some situations;
// we want a help-friendly, explicit key name.
func normalizeKey(key string) string {
	if key == " " {
		return "space"
	}
	return key
}

package tui

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleToggleRunPause(tea.KeyMsg) tea.Cmd {
	m.engine.TogglePause()
	m.syncSnapshot()
	return nil
}

func (m *Model) handleLap(tea.KeyMsg) tea.Cmd {
	before := len(m.laps)
	m.engine.Lap()
	m.refreshLaps()
	m.syncSnapshot()

	if len(m.laps) > before && m.prefs.SoundEnabled() {
		return ringBell
	}
	return nil
}

func (m *Model) handleReset(tea.KeyMsg) tea.Cmd {
	m.engine.Reset()
	m.refreshLaps()
	m.syncSnapshot()
	return nil
}

func (m *Model) handleClearLaps(tea.KeyMsg) tea.Cmd {
	m.engine.ClearLaps()
	m.refreshLaps()
	m.syncSnapshot()
	return nil
}

func (m *Model) handleToggleTheme(tea.KeyMsg) tea.Cmd {
	m.prefs.ToggleTheme()
	m.applyTheme()
	return nil
}

func (m *Model) handleToggleSound(tea.KeyMsg) tea.Cmd {
	m.prefs.ToggleSound()
	return nil
}

func (m *Model) handleQuit(tea.KeyMsg) tea.Cmd {
	m.engine.Close()
	return tea.Quit
}

// ringBell asks the terminal to sound its bell.
func ringBell() tea.Msg {
	_, _ = os.Stdout.WriteString("\a")
	return nil
}

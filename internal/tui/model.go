// Package tui implements the terminal user interface for the stopwatch.
package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lapwatch/lapwatch/internal/lapledger"
	"github.com/lapwatch/lapwatch/internal/observability"
	"github.com/lapwatch/lapwatch/internal/stopwatch"
)

type Params struct {
	// Engine drives the stopwatch. Required.
	Engine *stopwatch.Engine

	// Prefs holds the UI preferences. Required.
	Prefs *Preferences

	// Events delivers engine snapshots and preference change
	// notifications to the UI. If nil, a buffered channel is created;
	// reach it through Events().
	Events chan tea.Msg

	// Logger receives UI errors. Defaults to a no-op logger.
	Logger *observability.CoreLogger
}

// Model is the top-level Bubble Tea model.
type Model struct {
	engine *stopwatch.Engine
	prefs  *Preferences
	logger *observability.CoreLogger
	events chan tea.Msg

	keyMap   map[string]func(*Model, tea.KeyMsg) tea.Cmd
	help     *HelpModel
	theme    Theme
	lapsView viewport.Model
	chart    *SplitChart

	snap  stopwatch.Snapshot
	laps  []lapledger.Lap
	stats lapledger.Stats

	width  int
	height int
}

func New(params Params) *Model {
	if params.Logger == nil {
		params.Logger = observability.NewNoOpLogger()
	}
	if params.Events == nil {
		params.Events = make(chan tea.Msg, eventBufferSize)
	}

	categories := StopwatchKeyBindings()
	theme := themeForName(params.Prefs.Theme())

	m := &Model{
		engine: params.Engine,
		prefs:  params.Prefs,
		logger: params.Logger,
		events: params.Events,

		keyMap:   buildKeyMap(categories),
		help:     NewHelp(theme, categories),
		theme:    theme,
		lapsView: viewport.New(80, 10),
		chart:    NewSplitChart(80, chartHeight, theme.Spark),
	}

	m.snap = m.engine.Snapshot()
	m.refreshLaps()

	return m
}

// Events returns the channel feeding engine and watcher events to the UI.
func (m *Model) Events() chan tea.Msg {
	return m.events
}

// Init implements tea.Model.Init.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("lapwatch"),
		m.waitForEvent(),
	)
}

// Update implements tea.Model.Update.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Help short-circuit: the only thing allowed to consume the message.
	if handled, cmd := m.handleHelp(msg); handled {
		return m, cmd
	}

	switch t := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(t)

	case tea.WindowSizeMsg:
		m.width, m.height = t.Width, t.Height
		m.help.SetSize(t.Width, t.Height)
		m.resizePanels()
		return m, nil

	case TickMsg:
		m.snap = t.Snap
		return m, m.waitForEvent()

	case PrefsReloadedMsg:
		m.prefs.Reload()
		m.applyTheme()
		return m, m.waitForEvent()

	default:
		return m, nil
	}
}

// handleHelp centralizes help toggle and routing while active.
func (m *Model) handleHelp(msg tea.Msg) (bool, tea.Cmd) {
	// Toggle on 'h' / '?'
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "h", "?":
			m.help.Toggle()
			return true, nil
		}
	}

	// When help is visible, it owns key/mouse
	if m.help.IsActive() {
		switch msg.(type) {
		case tea.KeyMsg, tea.MouseMsg:
			updated, cmd := m.help.Update(msg)
			m.help = updated
			return true, cmd
		}
	}
	return false, nil
}

// handleKeyMsg processes keyboard events using the centralized key
// bindings. Keys without a binding fall through to the laps viewport
// for scrolling.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handler, ok := m.keyMap[normalizeKey(msg.String())]; ok && handler != nil {
		return m, handler(m, msg)
	}

	var cmd tea.Cmd
	m.lapsView, cmd = m.lapsView.Update(msg)
	return m, cmd
}

// waitForEvent returns a command that blocks until the engine or the
// preferences watcher produces the next event.
func (m *Model) waitForEvent() tea.Cmd {
	return func() tea.Msg {
		return <-m.events
	}
}

// refreshLaps re-reads the lap history from the engine and redraws the
// dependent panels.
func (m *Model) refreshLaps() {
	m.laps = m.engine.Laps()
	m.stats = m.engine.Stats()
	m.chart.Replace(m.laps)
	m.updateLapsView()
}

func (m *Model) syncSnapshot() {
	m.snap = m.engine.Snapshot()
}

func (m *Model) applyTheme() {
	m.theme = themeForName(m.prefs.Theme())
	m.help.SetTheme(m.theme)
	m.chart.SetStyle(m.theme.Spark)
	m.updateLapsView()
}

func (m *Model) updateLapsView() {
	m.lapsView.SetContent(m.renderLapLines())
	m.lapsView.GotoTop()
}

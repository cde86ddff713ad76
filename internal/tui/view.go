package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lapwatch/lapwatch/internal/timefmt"
	"github.com/lapwatch/lapwatch/internal/timer"
)

// Fixed rows in the vertical layout. The lap list absorbs whatever
// height remains.
const (
	headerHeight    = 3
	chartHeight     = 6
	statusBarHeight = 1

	// Each panel spends one row on its title.
	panelTitleRows = 2

	minContentWidth = 20
	minLapsHeight   = 3
)

// resizePanels distributes the terminal size across the panels.
func (m *Model) resizePanels() {
	contentWidth := max(m.width-2, minContentWidth)
	m.chart.Resize(contentWidth, chartHeight)

	lapsHeight := m.height - headerHeight - chartHeight - panelTitleRows - statusBarHeight
	m.lapsView.Width = contentWidth
	m.lapsView.Height = max(lapsHeight, minLapsHeight)
}

// View renders the UI based on the data in the model.
//
// Implements tea.Model.View.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	statusBar := m.renderStatusBar()

	// Show help screen if active
	if m.help.IsActive() {
		content := lipgloss.JoinVertical(lipgloss.Left, m.help.View(), statusBar)
		return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, content)
	}

	fullView := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.renderSplits(),
		m.renderLaps(),
		statusBar,
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top, fullView)
}

// renderHeader draws the clock readout and the state line beneath it.
func (m *Model) renderHeader() string {
	clock := m.theme.Clock.Render(timefmt.Format(m.snap.Elapsed))

	line := m.theme.StateLabel.Render(stateLabel(m.snap.State))
	if m.snap.State != timer.Idle {
		line += m.theme.Muted.Render(" • lap ") +
			m.theme.LapTime.Render(timefmt.Compact(m.snap.CurrentLap))
	}

	return lipgloss.JoinVertical(lipgloss.Left, " "+clock, " "+line, "")
}

func (m *Model) renderSplits() string {
	title := m.theme.PanelTitle.Render(" Splits")
	return lipgloss.JoinVertical(lipgloss.Left, title, m.chart.View())
}

func (m *Model) renderLaps() string {
	title := " Laps"
	if n := len(m.laps); n > 0 {
		title = fmt.Sprintf(" Laps (%d)", n)
		if m.stats.HasAverage {
			title += " • avg " + timefmt.Compact(m.stats.Average)
		}
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.PanelTitle.Render(title),
		m.lapsView.View(),
	)
}

// renderLapLines builds the lap list content, newest lap first.
func (m *Model) renderLapLines() string {
	if len(m.laps) == 0 {
		return m.theme.Muted.Render(" No laps yet. Press l while running.")
	}

	var b strings.Builder
	for i := len(m.laps) - 1; i >= 0; i-- {
		b.WriteString(m.renderLapLine(i))
		if i > 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (m *Model) renderLapLine(i int) string {
	lap := m.laps[i]

	// Extremes are marked on every holder, so ties are all flagged.
	marker := "  "
	switch {
	case m.stats.Fastest[i]:
		marker = m.theme.Fastest.Render("▲ ")
	case m.stats.Slowest[i]:
		marker = m.theme.Slowest.Render("▼ ")
	}

	index := m.theme.LapIndex.Render(fmt.Sprintf("#%-3d", i+1))
	split := m.theme.LapTime.Render(fmt.Sprintf("%9s", timefmt.Compact(lap.Split)))

	delta := ""
	if m.stats.HasAverage {
		style := m.theme.DeltaFast
		if m.stats.Deltas[i] > 0 {
			style = m.theme.DeltaSlow
		}
		delta = "  " + style.Render(fmt.Sprintf("%7s", timefmt.FormatDelta(m.stats.Deltas[i])))
	}

	total := m.theme.Muted.Render("at " + timefmt.Format(lap.Total))

	return fmt.Sprintf(" %s%s %s%s  %s", marker, index, split, delta, total)
}

// renderStatusBar creates the status bar.
func (m *Model) renderStatusBar() string {
	statusText := fmt.Sprintf(" %s • %s • theme: %s • sound: %s",
		stateLabel(m.snap.State),
		lapCountText(m.snap.LapCount),
		m.prefs.Theme(),
		onOff(m.prefs.SoundEnabled()),
	)

	// Right side content.
	helpText := "h: help "
	rightAligned := lipgloss.PlaceHorizontal(
		m.width-lipgloss.Width(statusText),
		lipgloss.Right,
		helpText,
	)

	return m.theme.StatusBar.
		Width(m.width).
		MaxWidth(m.width).
		Render(statusText + rightAligned)
}

func stateLabel(s timer.State) string {
	return strings.ToUpper(s.String())
}

func lapCountText(n int) string {
	if n == 1 {
		return "1 lap"
	}
	return fmt.Sprintf("%d laps", n)
}

func onOff(enabled bool) string {
	if enabled {
		return "on"
	}
	return "off"
}

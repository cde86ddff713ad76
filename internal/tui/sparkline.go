package tui

import (
	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/NimbleMarkets/ntcharts/linechart/streamlinechart"
	"github.com/charmbracelet/lipgloss"

	"github.com/lapwatch/lapwatch/internal/lapledger"
)

// SplitChart renders lap splits as a compact streaming line chart,
// newest on the right.
type SplitChart struct {
	chart streamlinechart.Model
}

func NewSplitChart(width, height int, style lipgloss.Style) *SplitChart {
	chart := streamlinechart.New(width, height,
		streamlinechart.WithXYSteps(0, 0),
		streamlinechart.WithStyles(runes.ArcLineStyle, style),
	)
	return &SplitChart{chart: chart}
}

// Replace redraws the chart from the full lap history.
func (c *SplitChart) Replace(laps []lapledger.Lap) {
	c.chart.ClearAllData()
	for _, lap := range laps {
		c.chart.Push(lap.Split.Seconds())
	}
	c.chart.Draw()
}

// Resize adjusts the chart to a new width and height.
func (c *SplitChart) Resize(width, height int) {
	c.chart.Resize(width, height)
	c.chart.DrawAll()
}

// SetStyle restyles the chart line, e.g. after a theme change.
func (c *SplitChart) SetStyle(style lipgloss.Style) {
	c.chart.SetStyles(runes.ArcLineStyle, style)
	c.chart.Draw()
}

func (c *SplitChart) View() string {
	return c.chart.View()
}

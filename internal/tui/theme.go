package tui

import "github.com/charmbracelet/lipgloss"

// Theme names as stored in preferences.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Theme holds the styles for one color scheme.
type Theme struct {
	Name string

	Clock      lipgloss.Style
	StateLabel lipgloss.Style

	PanelTitle lipgloss.Style

	LapIndex  lipgloss.Style
	LapTime   lipgloss.Style
	DeltaFast lipgloss.Style
	DeltaSlow lipgloss.Style
	Fastest   lipgloss.Style
	Slowest   lipgloss.Style
	Muted     lipgloss.Style

	Spark     lipgloss.Style
	StatusBar lipgloss.Style

	HelpTitle   lipgloss.Style
	HelpSection lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
	HelpContent lipgloss.Style
}

func DarkTheme() Theme {
	return Theme{
		Name: ThemeDark,

		Clock:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		StateLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

		PanelTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245")),

		LapIndex:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		LapTime:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		DeltaFast: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		DeltaSlow: lipgloss.NewStyle().Foreground(lipgloss.Color("167")),
		Fastest:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Slowest:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("167")),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		Spark: lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("235")).
			Background(lipgloss.Color("110")),

		HelpTitle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")),
		HelpSection: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("110")).MarginTop(1).MarginBottom(1),
		HelpKey:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Width(helpKeyWidth),
		HelpDesc:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HelpContent: lipgloss.NewStyle().MarginLeft(2).MarginTop(2),
	}
}

func LightTheme() Theme {
	return Theme{
		Name: ThemeLight,

		Clock:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")),
		StateLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("243")),

		PanelTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("240")),

		LapIndex:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		LapTime:   lipgloss.NewStyle().Foreground(lipgloss.Color("235")),
		DeltaFast: lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		DeltaSlow: lipgloss.NewStyle().Foreground(lipgloss.Color("124")),
		Fastest:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("28")),
		Slowest:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("124")),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("249")),

		Spark: lipgloss.NewStyle().Foreground(lipgloss.Color("25")),
		StatusBar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("31")),

		HelpTitle:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("235")),
		HelpSection: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")).MarginTop(1).MarginBottom(1),
		HelpKey:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("235")).Width(helpKeyWidth),
		HelpDesc:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		HelpContent: lipgloss.NewStyle().MarginLeft(2).MarginTop(2),
	}
}

// themeForName returns the theme for a stored preference value, falling
// back to the dark theme for anything unrecognized.
func themeForName(name string) Theme {
	if name == ThemeLight {
		return LightTheme()
	}
	return DarkTheme()
}

const helpKeyWidth = 24

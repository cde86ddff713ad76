package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lapwatch/lapwatch/internal/version"
)

// HelpEntry represents a single entry in the help screen.
type HelpEntry struct {
	Key         string
	Description string
}

var blankLine = HelpEntry{}

// HelpModel represents the help screen.
type HelpModel struct {
	viewport viewport.Model
	active   bool
	width    int
	height   int

	theme      Theme
	categories []BindingCategory[Model]
}

func NewHelp(theme Theme, categories []BindingCategory[Model]) *HelpModel {
	vp := viewport.New(80, 20)
	return &HelpModel{
		viewport:   vp,
		theme:      theme,
		categories: categories,
	}
}

// SetTheme restyles the help screen.
func (h *HelpModel) SetTheme(theme Theme) {
	h.theme = theme
	if h.active {
		h.viewport.SetContent(h.generateHelpContent())
	}
}

// generateHelpContent generates the help screen content.
func (h *HelpModel) generateHelpContent() string {
	entries := []HelpEntry{
		{Key: "── lapwatch: a drift-free terminal stopwatch ──"},
		{Key: "version", Description: version.Version},
		blankLine,
	}
	entries = append(entries, helpEntriesFromCategories(h.categories)...)

	helpSection := ""
	for _, entry := range entries {
		switch {
		case entry.Key == "":
			helpSection += "\n"
		case entry.Description == "":
			helpSection += h.theme.HelpSection.Render(entry.Key) + "\n"
		default:
			key := h.theme.HelpKey.Render(entry.Key)
			desc := h.theme.HelpDesc.Render(entry.Description)
			helpSection += lipgloss.JoinHorizontal(lipgloss.Top, key, desc) + "\n"
		}
	}

	title := h.theme.HelpTitle.Render("lapwatch") + "\n"

	return title + helpSection
}

func helpEntriesFromCategories[T any](categories []BindingCategory[T]) []HelpEntry {
	var entries []HelpEntry
	for _, category := range categories {
		entries = append(entries, HelpEntry{Key: category.Name})
		for _, binding := range category.Bindings {
			entries = append(entries, HelpEntry{
				Key:         strings.Join(binding.Keys, ", "),
				Description: binding.Description,
			})
		}
		entries = append(entries, blankLine)
	}
	return entries
}

// SetSize updates the size of the help screen.
func (h *HelpModel) SetSize(width, height int) {
	h.width = width
	h.height = height - statusBarHeight
	h.viewport.Width = width
	h.viewport.Height = h.height

	if h.active {
		h.viewport.SetContent(h.generateHelpContent())
	}
}

// Toggle toggles the help screen visibility.
func (h *HelpModel) Toggle() {
	h.active = !h.active
	if h.active {
		h.viewport.GotoTop()
		h.viewport.SetContent(h.generateHelpContent())
	}
}

// IsActive returns whether the help screen is active.
func (h *HelpModel) IsActive() bool {
	return h.active
}

// Update handles messages for the help screen.
func (h *HelpModel) Update(msg tea.Msg) (*HelpModel, tea.Cmd) {
	if !h.active {
		return h, nil
	}

	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "h", "?", "esc":
			h.Toggle()
			return h, nil
		case "q", "ctrl+c":
			// Allow quitting from help screen
			return h, tea.Quit
		default:
			// Let viewport handle other keys
			h.viewport, cmd = h.viewport.Update(msg)
		}
	case tea.MouseMsg:
		// Let viewport handle mouse events
		h.viewport, cmd = h.viewport.Update(msg)
	}

	return h, cmd
}

// View renders the help screen.
func (h *HelpModel) View() string {
	if !h.active {
		return ""
	}

	content := h.theme.HelpContent.Render(h.viewport.View())

	return lipgloss.Place(
		h.width,
		h.height,
		lipgloss.Left,
		lipgloss.Top,
		content,
	)
}

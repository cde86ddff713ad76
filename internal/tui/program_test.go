package tui_test

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"

	"github.com/lapwatch/lapwatch/internal/stopwatch"
	"github.com/lapwatch/lapwatch/internal/tui"
)

// Runs the whole program against the real clock: start the stopwatch,
// record a lap, quit. Engine ticks travel through the event channel the
// same way they do in production.
func TestProgram_StartLapQuit(t *testing.T) {
	t.Parallel()

	events := make(chan tea.Msg, 64)
	engine := stopwatch.New(stopwatch.Params{
		OnTick: tui.ForwardSnapshots(events),
	})
	defer engine.Close()

	prefs := tui.LoadPreferences(nil, nil)
	m := tui.New(tui.Params{Engine: engine, Prefs: prefs, Events: events})

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(120, 40))

	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return strings.Contains(string(b), "IDLE")
	}, teatest.WithDuration(3*time.Second))

	// Start, then wait for the readout to move.
	tm.Send(tea.KeyMsg{Type: tea.KeySpace})
	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return strings.Contains(string(b), "RUNNING")
	}, teatest.WithDuration(3*time.Second))

	tm.Type("l")
	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return strings.Contains(string(b), "Laps (1)")
	}, teatest.WithDuration(3*time.Second))

	// Cleanly terminate to keep test output tidy.
	tm.Type("q")
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))
}

func TestProgram_HelpScreen(t *testing.T) {
	t.Parallel()

	engine := stopwatch.New(stopwatch.Params{})
	defer engine.Close()

	prefs := tui.LoadPreferences(nil, nil)
	m := tui.New(tui.Params{Engine: engine, Prefs: prefs})

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(120, 40))

	tm.Type("h")
	teatest.WaitFor(t, tm.Output(), func(b []byte) bool {
		return strings.Contains(string(b), "drift-free terminal stopwatch")
	}, teatest.WithDuration(3*time.Second))

	// Quitting works from the help screen too.
	tm.Type("q")
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))
}

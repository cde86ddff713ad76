// Package storagetest provides an in-memory Gateway for tests.
package storagetest

import (
	"slices"
	"sync"

	"github.com/lapwatch/lapwatch/internal/lapledger"
	"github.com/lapwatch/lapwatch/internal/storage"
)

// A fake implementation of Gateway that keeps everything in memory.
type FakeGateway struct {
	sync.Mutex
	laps     []lapledger.Lap
	lapSaves int
	prefs    map[string]string

	saveLapsErr error
	loadLapsErr error
	savePrefErr error
	loadPrefErr error
}

func NewFakeGateway() *FakeGateway {
	return &FakeGateway{prefs: make(map[string]string)}
}

// Prove that we implement the interface.
var _ storage.Gateway = &FakeGateway{}

func (g *FakeGateway) SaveLaps(laps []lapledger.Lap) error {
	g.Lock()
	defer g.Unlock()

	g.lapSaves++
	if g.saveLapsErr != nil {
		return g.saveLapsErr
	}
	g.laps = slices.Clone(laps)
	return nil
}

func (g *FakeGateway) LoadLaps() ([]lapledger.Lap, error) {
	g.Lock()
	defer g.Unlock()

	if g.loadLapsErr != nil {
		return nil, g.loadLapsErr
	}
	return slices.Clone(g.laps), nil
}

func (g *FakeGateway) SavePreference(key, value string) error {
	g.Lock()
	defer g.Unlock()

	if g.savePrefErr != nil {
		return g.savePrefErr
	}
	g.prefs[key] = value
	return nil
}

func (g *FakeGateway) LoadPreference(key string) (string, bool, error) {
	g.Lock()
	defer g.Unlock()

	if g.loadPrefErr != nil {
		return "", false, g.loadPrefErr
	}
	value, ok := g.prefs[key]
	return value, ok, nil
}

// SetLaps seeds the stored lap history.
func (g *FakeGateway) SetLaps(laps []lapledger.Lap) {
	g.Lock()
	defer g.Unlock()
	g.laps = slices.Clone(laps)
}

// SetPreference seeds one stored preference.
func (g *FakeGateway) SetPreference(key, value string) {
	g.Lock()
	defer g.Unlock()
	g.prefs[key] = value
}

// FailSaveLaps makes subsequent SaveLaps calls return err.
func (g *FakeGateway) FailSaveLaps(err error) {
	g.Lock()
	defer g.Unlock()
	g.saveLapsErr = err
}

// FailLoadLaps makes subsequent LoadLaps calls return err.
func (g *FakeGateway) FailLoadLaps(err error) {
	g.Lock()
	defer g.Unlock()
	g.loadLapsErr = err
}

// FailSavePreference makes subsequent SavePreference calls return err.
func (g *FakeGateway) FailSavePreference(err error) {
	g.Lock()
	defer g.Unlock()
	g.savePrefErr = err
}

// FailLoadPreference makes subsequent LoadPreference calls return err.
func (g *FakeGateway) FailLoadPreference(err error) {
	g.Lock()
	defer g.Unlock()
	g.loadPrefErr = err
}

// SavedLaps returns the most recently stored lap history.
func (g *FakeGateway) SavedLaps() []lapledger.Lap {
	g.Lock()
	defer g.Unlock()
	return slices.Clone(g.laps)
}

// SaveLapsCalls returns how many times SaveLaps was called.
func (g *FakeGateway) SaveLapsCalls() int {
	g.Lock()
	defer g.Unlock()
	return g.lapSaves
}

// Preference returns the stored value for key.
func (g *FakeGateway) Preference(key string) (string, bool) {
	g.Lock()
	defer g.Unlock()
	value, ok := g.prefs[key]
	return value, ok
}

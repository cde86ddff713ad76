package storage_test

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lapwatch/lapwatch/internal/lapledger"
	"github.com/lapwatch/lapwatch/internal/observability"
	"github.com/lapwatch/lapwatch/internal/storage"
)

func newTestStore() (*storage.FileStore, afero.Fs) {
	fs := afero.NewMemMapFs()
	store := storage.NewFileStore(fs, "/data", observability.NewNoOpLogger())
	return store, fs
}

func TestSaveAndLoadLaps(t *testing.T) {
	store, _ := newTestStore()

	saved := []lapledger.Lap{
		{Split: 1500 * time.Millisecond, Total: 1500 * time.Millisecond},
		{Split: 2 * time.Second, Total: 3500 * time.Millisecond},
	}
	require.NoError(t, store.SaveLaps(saved))

	loaded, err := store.LoadLaps()
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

func TestSaveLapsKeepsSubMillisecondPrecision(t *testing.T) {
	store, _ := newTestStore()

	lap := lapledger.Lap{
		Split: 1500*time.Millisecond + 500*time.Microsecond,
		Total: 1500*time.Millisecond + 500*time.Microsecond,
	}
	require.NoError(t, store.SaveLaps([]lapledger.Lap{lap}))

	loaded, err := store.LoadLaps()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.InDelta(t, float64(lap.Split), float64(loaded[0].Split), float64(time.Microsecond))
}

func TestSaveLapsReplacesHistory(t *testing.T) {
	store, _ := newTestStore()

	require.NoError(t, store.SaveLaps([]lapledger.Lap{
		{Split: time.Second, Total: time.Second},
	}))
	require.NoError(t, store.SaveLaps(nil))

	laps, err := store.LoadLaps()
	require.NoError(t, err)
	assert.Empty(t, laps)
}

func TestLoadLapsMissingFile(t *testing.T) {
	store, _ := newTestStore()

	laps, err := store.LoadLaps()
	require.NoError(t, err)
	assert.Empty(t, laps)
}

func TestLoadLapsToleratesMalformedData(t *testing.T) {
	cases := map[string]string{
		"not json":          `{]`,
		"not an array":      `{"lapMs": 100}`,
		"item not object":   `[42]`,
		"missing field":     `[{"lapMs": 100}]`,
		"non-numeric field": `[{"lapMs": "fast", "totalMs": 100}]`,
		"negative value":    `[{"lapMs": -5, "totalMs": 100}]`,
		"non-finite value":  `[{"lapMs": NaN, "totalMs": 100}]`,
		"decreasing totals": `[{"lapMs": 100, "totalMs": 200}, {"lapMs": 100, "totalMs": 100}]`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			store, fs := newTestStore()
			require.NoError(t,
				afero.WriteFile(fs, store.LapsPath(), []byte(raw), 0o644))

			laps, err := store.LoadLaps()
			require.NoError(t, err)
			assert.Empty(t, laps)
		})
	}
}

func TestSavePreferenceKeepsOtherKeys(t *testing.T) {
	store, _ := newTestStore()

	require.NoError(t, store.SavePreference(storage.PrefTheme, "light"))
	require.NoError(t, store.SavePreference(storage.PrefSoundEnabled, "true"))
	require.NoError(t, store.SavePreference(storage.PrefTheme, "dark"))

	theme, ok, err := store.LoadPreference(storage.PrefTheme)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "dark", theme)

	sound, ok, err := store.LoadPreference(storage.PrefSoundEnabled)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "true", sound)
}

func TestLoadPreferenceMissingFile(t *testing.T) {
	store, _ := newTestStore()

	_, ok, err := store.LoadPreference(storage.PrefTheme)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadPreferenceUnknownKey(t *testing.T) {
	store, _ := newTestStore()
	require.NoError(t, store.SavePreference(storage.PrefTheme, "dark"))

	_, ok, err := store.LoadPreference("fontSize")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadPreferenceToleratesMalformedFile(t *testing.T) {
	store, fs := newTestStore()
	require.NoError(t,
		afero.WriteFile(fs, store.PreferencesPath(), []byte(`not json`), 0o644))

	_, ok, err := store.LoadPreference(storage.PrefTheme)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSavePreferenceReplacesMalformedFile(t *testing.T) {
	store, fs := newTestStore()
	require.NoError(t,
		afero.WriteFile(fs, store.PreferencesPath(), []byte(`[1, 2]`), 0o644))

	require.NoError(t, store.SavePreference(storage.PrefTheme, "light"))

	theme, ok, err := store.LoadPreference(storage.PrefTheme)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "light", theme)
}

func TestWritesLeaveNoTempFile(t *testing.T) {
	store, fs := newTestStore()
	require.NoError(t, store.SaveLaps([]lapledger.Lap{
		{Split: time.Second, Total: time.Second},
	}))

	exists, err := afero.Exists(fs, store.LapsPath()+".tmp")
	require.NoError(t, err)
	assert.False(t, exists)
}

package storage

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/afero"
	"github.com/wandb/simplejsonext"

	"github.com/lapwatch/lapwatch/internal/lapledger"
	"github.com/lapwatch/lapwatch/internal/observability"
)

const (
	lapsFileName  = "laps.json"
	prefsFileName = "preferences.json"
)

// FileStore is the durable Gateway, keeping laps and preferences as
// JSON files in one directory.
//
// Writes go through a temp file and rename so a crash never leaves a
// half-written file. Reads are tolerant: files that do not parse or do
// not look like what we wrote are treated as absent rather than fatal.
type FileStore struct {
	mu     sync.Mutex
	fs     afero.Fs
	dir    string
	logger *observability.CoreLogger
}

func NewFileStore(fs afero.Fs, dir string, logger *observability.CoreLogger) *FileStore {
	if logger == nil {
		logger = observability.NewNoOpLogger()
	}
	return &FileStore{
		fs:     fs,
		dir:    dir,
		logger: logger,
	}
}

// Dir returns the directory holding the store's files.
func (s *FileStore) Dir() string {
	return s.dir
}

// LapsPath returns the on-disk path of the lap history file.
func (s *FileStore) LapsPath() string {
	return filepath.Join(s.dir, lapsFileName)
}

// PreferencesPath returns the on-disk path of the preferences file.
func (s *FileStore) PreferencesPath() string {
	return filepath.Join(s.dir, prefsFileName)
}

// lapRecord is the wire form of one lap. Durations are stored as
// non-negative milliseconds.
type lapRecord struct {
	LapMs   float64 `json:"lapMs"`
	TotalMs float64 `json:"totalMs"`
}

// SaveLaps replaces the stored lap history.
func (s *FileStore) SaveLaps(laps []lapledger.Lap) error {
	records := make([]lapRecord, 0, len(laps))
	for _, lap := range laps {
		records = append(records, lapRecord{
			LapMs:   durationToMs(lap.Split),
			TotalMs: durationToMs(lap.Total),
		})
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: marshaling laps: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeFileLocked(s.LapsPath(), data)
}

// LoadLaps returns the stored lap history.
//
// A missing or malformed file yields an empty history: stored laps are
// a convenience, never a reason to refuse to start.
func (s *FileStore) LoadLaps() ([]lapledger.Lap, error) {
	s.mu.Lock()
	data, err := afero.ReadFile(s.fs, s.LapsPath())
	s.mu.Unlock()

	if os.IsNotExist(err) {
		return []lapledger.Lap{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: reading laps: %w", err)
	}

	laps, ok := decodeLaps(data)
	if !ok {
		s.logger.Warn("storage: ignoring malformed lap history", "path", s.LapsPath())
		return []lapledger.Lap{}, nil
	}
	return laps, nil
}

// decodeLaps parses lap history, reporting ok=false for anything that
// does not hold together as a recorded session.
func decodeLaps(data []byte) ([]lapledger.Lap, bool) {
	val, err := simplejsonext.Unmarshal(data)
	if err != nil {
		return nil, false
	}

	items, ok := val.([]any)
	if !ok {
		return nil, false
	}

	laps := make([]lapledger.Lap, 0, len(items))
	var prevTotal float64
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, false
		}
		lapMs, ok := wireNumber(obj["lapMs"])
		if !ok || lapMs < 0 {
			return nil, false
		}
		totalMs, ok := wireNumber(obj["totalMs"])
		if !ok || totalMs < 0 {
			return nil, false
		}
		// Laps are recorded in order, so totals never decrease.
		if totalMs < prevTotal {
			return nil, false
		}
		prevTotal = totalMs

		laps = append(laps, lapledger.Lap{
			Split: durationFromMs(lapMs),
			Total: durationFromMs(totalMs),
		})
	}
	return laps, true
}

// SavePreference stores one preference, keeping the others.
func (s *FileStore) SavePreference(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs := s.loadPreferencesLocked()
	prefs[key] = value

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: marshaling preferences: %w", err)
	}
	return s.writeFileLocked(s.PreferencesPath(), data)
}

// LoadPreference returns the stored value for key.
func (s *FileStore) LoadPreference(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := afero.ReadFile(s.fs, s.PreferencesPath())
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: reading preferences: %w", err)
	}

	var prefs map[string]string
	if err := json.Unmarshal(data, &prefs); err != nil {
		s.logger.Warn("storage: ignoring malformed preferences", "path", s.PreferencesPath())
		return "", false, nil
	}

	value, ok := prefs[key]
	return value, ok, nil
}

// loadPreferencesLocked reads the preference map, treating a missing or
// malformed file as empty.
func (s *FileStore) loadPreferencesLocked() map[string]string {
	prefs := map[string]string{}

	data, err := afero.ReadFile(s.fs, s.PreferencesPath())
	if err != nil {
		return prefs
	}
	if err := json.Unmarshal(data, &prefs); err != nil {
		s.logger.Warn("storage: ignoring malformed preferences", "path", s.PreferencesPath())
		return map[string]string{}
	}
	return prefs
}

// writeFileLocked writes data atomically via temp file + rename,
// creating the directory on first use.
func (s *FileStore) writeFileLocked(path string, data []byte) error {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("storage: creating data dir: %w", err)
	}

	tempPath := path + ".tmp"
	if err := afero.WriteFile(s.fs, tempPath, data, 0o644); err != nil {
		return fmt.Errorf("storage: writing temp file: %w", err)
	}
	if err := s.fs.Rename(tempPath, path); err != nil {
		return fmt.Errorf("storage: renaming temp file: %w", err)
	}
	return nil
}

func durationToMs(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func durationFromMs(ms float64) time.Duration {
	return time.Duration(ms * float64(time.Millisecond))
}

// wireNumber converts a decoded JSON value to a finite float64.
func wireNumber(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case int64:
		f = float64(n)
	case float64:
		f = n
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

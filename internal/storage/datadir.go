package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const envDataDir = "LAPWATCH_DATA_DIR"

// DefaultDir returns the directory where laps and preferences are
// stored.
//
// The LAPWATCH_DATA_DIR environment variable wins, then
// ~/.config/lapwatch, then the OS user config dir, with a temp
// directory as the last resort. Each candidate is verified writable
// before being chosen.
func DefaultDir() string {
	if raw := strings.TrimSpace(os.Getenv(envDataDir)); raw != "" {
		if d, ok := usableDir(raw); ok {
			return d
		}
	}

	if home, err := os.UserHomeDir(); err == nil {
		if d, ok := usableDir(filepath.Join(home, ".config", "lapwatch")); ok {
			return d
		}
	}

	if base, err := os.UserConfigDir(); err == nil {
		if d, ok := usableDir(filepath.Join(base, "lapwatch")); ok {
			return d
		}
	}

	if tmp, err := os.MkdirTemp("", "lapwatch-*"); err == nil {
		return tmp
	}

	return os.TempDir()
}

func usableDir(dir string) (string, bool) {
	d := expandAndClean(dir)
	if err := ensureWritableDir(d); err != nil {
		return "", false
	}
	return d, true
}

func expandAndClean(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return p
	}
	if strings.HasPrefix(p, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			if len(p) == 1 {
				p = home
			} else if p[1] == '/' || p[1] == '\\' {
				p = filepath.Join(home, p[2:])
			}
		}
	}
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}
	return filepath.Clean(p)
}

// ensureWritableDir verifies directory writability without leaving
// files behind.
func ensureWritableDir(dir string) error {
	if dir == "" {
		return errors.New("empty dir")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, ".lapwatch-writecheck-*")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return nil
}

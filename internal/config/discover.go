package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// FindConfigPath returns the nearest .filematcher/config.yaml at or above start.
// Returns an empty path (and no error) when no directory up to the filesystem
// root holds one.
func FindConfigPath(start string) (string, error) {
	current, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", start, err)
	}

	for {
		candidate := filepath.Join(current, DirName, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}

		// Move up one directory
		parent := filepath.Dir(current)
		if parent == current {
			// Reached filesystem root
			return "", nil
		}
		current = parent
	}
}

// Discover loads the nearest project configuration above start, falling back
// to defaults when none exists.
func Discover(start string) (*Config, string, error) {
	path, err := FindConfigPath(start)
	if err != nil {
		return nil, "", err
	}
	if path == "" {
		return DefaultConfig(), "", nil
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

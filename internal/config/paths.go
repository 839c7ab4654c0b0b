package config

import (
	"os"
	"path/filepath"
)

// Paths contains the standard filesystem locations.
type Paths struct {
	// HomeDir is ~/.magicappdev.
	HomeDir string

	// ConfigFile is ~/.magicappdev/config.yaml.
	ConfigFile string

	// TemplatesDir is ~/.magicappdev/templates.
	TemplatesDir string

	// CacheDir is ~/.magicappdev/cache.
	CacheDir string
}

// DefaultPaths returns the default paths.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	home := filepath.Join(homeDir, ".magicappdev")
	return &Paths{
		HomeDir:      home,
		ConfigFile:   filepath.Join(home, "config.yaml"),
		TemplatesDir: filepath.Join(home, "templates"),
		CacheDir:     filepath.Join(home, "cache"),
	}, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
// ~user forms are returned unchanged.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	if len(path) == 1 {
		return homeDir, nil
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}
	return path, nil
}

// FileExists reports whether path (with ~ expanded) exists.
func FileExists(path string) (bool, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(expanded); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// EnsureDir expands path and creates it if missing.
func EnsureDir(path string) (string, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return "", err
	}
	return expanded, os.MkdirAll(expanded, 0o755)
}

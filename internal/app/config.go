package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Version is the installer version shown in the banner.
const Version = "0.3"

// Config holds everything one run needs. It is built once by the CLI and
// passed down explicitly.
type Config struct {
	InputDir     string // staging tree with C3/ and DS/
	BackupDir    string
	CreaturesDir string // holds "Creatures 3" and "Docking Station"

	SkipBackup bool
	Uninstall  bool // wins over SkipBackup
	Version    bool // wins over everything, no file system work

	// TablesPath replaces the built-in lookup tables when set.
	TablesPath string

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg, fills in default directories for the ones left
// empty and makes the directory paths absolute. A version-only run needs no
// directories, so they are neither defaulted nor resolved.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.Version {
		return &cfg, nil
	}

	dirs := []struct {
		name     string
		path     *string
		fallback func() (string, error)
	}{
		{"input_dir", &cfg.InputDir, DefaultInputDir},
		{"backup_dir", &cfg.BackupDir, DefaultBackupDir},
		{"creatures_dir", &cfg.CreaturesDir, DefaultCreaturesDir},
	}
	for _, d := range dirs {
		if strings.TrimSpace(*d.path) == "" {
			def, err := d.fallback()
			if err != nil {
				return nil, fmt.Errorf("no %s given and no default available: %w", d.name, err)
			}
			*d.path = def
		}
		abs, err := filepath.Abs(*d.path)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", d.name, *d.path, err)
		}
		*d.path = abs
	}

	return &cfg, nil
}

// DefaultInputDir is the working directory.
func DefaultInputDir() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to read working directory: %w", err)
	}
	return wd, nil
}

// DefaultBackupDir is ~/Documents/Creatures Patch Backups.
func DefaultBackupDir() (string, error) {
	return documentsDir("Creatures Patch Backups")
}

// DefaultCreaturesDir is ~/Documents/Creatures.
func DefaultCreaturesDir() (string, error) {
	return documentsDir("Creatures")
}

func documentsDir(name string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to find home directory: %w", err)
	}
	return filepath.Join(home, "Documents", name), nil
}

package app

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/creatures-addons/internal/addon"
	"github.com/specialistvlad/creatures-addons/internal/resolver"
	"github.com/specialistvlad/creatures-addons/internal/tables"
)

// App encapsulates the dependencies and configuration of one run.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	addons *addon.Config
}

// NewApp is the constructor for the main application. Status lines are
// written to outW and structured logs to logW. The lookup tables are loaded
// here, except for a version-only run, which must not touch the disk.
func NewApp(outW, logW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	a := &App{
		outW:   outW,
		logger: logger,
		config: cfg,
	}
	if cfg.Version {
		return a, nil
	}

	tbl, err := loadTables(cfg.TablesPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("Lookup tables loaded.", "source", tablesSource(cfg.TablesPath), "extensions", tbl.Extensions(), "exceptions", tbl.ExceptionCount())

	a.addons = &addon.Config{
		InputDir:     cfg.InputDir,
		BackupDir:    cfg.BackupDir,
		CreaturesDir: cfg.CreaturesDir,
		Resolver:     resolver.New(tbl),
		Status:       outW,
	}
	return a, nil
}

func loadTables(path string) (*tables.Tables, error) {
	if path == "" {
		return tables.Default(), nil
	}
	tbl, err := tables.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load lookup tables: %w", err)
	}
	return tbl, nil
}

func tablesSource(path string) string {
	if path == "" {
		return "built-in"
	}
	return path
}

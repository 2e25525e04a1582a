package addon

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/specialistvlad/creatures-addons/internal/ctxlog"
	"github.com/specialistvlad/creatures-addons/internal/fsutil"
	"github.com/specialistvlad/creatures-addons/internal/game"
)

// removeFunc is swapped out in tests to simulate permission failures.
var removeFunc = os.Remove

// Uninstall removes every installed file that the staged add-ons of g
// provide and restores the saved original when a backup exists.
//
// A file that is already gone is reported as NotInstalled and the run goes
// on; its backup, if any, is still restored. Any other failure to delete,
// permission denied included, is fatal.
func Uninstall(ctx context.Context, cfg *Config, g game.Game) ([]Result, error) {
	logger := ctxlog.FromContext(ctx).With("op", "uninstall", "game", g)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Info("Uninstall started.")

	candidates, err := Candidates(ctx, cfg, g)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, 2*len(candidates))
	for _, cd := range candidates {
		removed, err := removeInstalled(ctx, cfg, cd)
		if err != nil {
			return results, err
		}
		results = append(results, removed)

		restored, err := restoreBackup(ctx, cfg, cd)
		if err != nil {
			return results, err
		}
		results = append(results, restored)
	}

	logger.Info("Uninstall finished.", "files", len(candidates))
	return results, nil
}

func removeInstalled(ctx context.Context, cfg *Config, cd Candidate) (Result, error) {
	logger := ctxlog.FromContext(ctx)
	installed := cd.InstalledPath(cfg)

	cfg.statusf("Deleting '%s' from '%s'...", cd.Name, cd.Addon)
	err := checkNotDir(installed)
	if err == nil {
		err = removeFunc(installed)
	}
	switch {
	case err == nil:
		logger.Debug("Installed file deleted.", "path", installed)
		return Result{Candidate: cd, Outcome: Deleted, Path: installed}, nil
	case errors.Is(err, fs.ErrNotExist):
		logger.Warn("Installed file not found, nothing to delete.", "path", installed)
		cfg.statusf("SKIPPED: '%s' from '%s' isn't installed. Nothing to delete.", cd.Name, cd.Addon)
		return Result{Candidate: cd, Outcome: NotInstalled, Path: installed}, nil
	default:
		if IsPermission(err) {
			logger.Error("Permission denied while deleting installed file.", "path", installed)
		}
		return Result{}, &OpError{Op: "uninstall", Game: cd.Game, Path: installed, Err: err}
	}
}

func restoreBackup(ctx context.Context, cfg *Config, cd Candidate) (Result, error) {
	logger := ctxlog.FromContext(ctx)
	backup := cd.BackupPath(cfg)
	installed := cd.InstalledPath(cfg)

	exists, err := fsutil.FileExists(backup)
	if err != nil {
		return Result{}, &OpError{Op: "restore", Game: cd.Game, Path: backup, Err: err}
	}
	if !exists {
		cfg.statusf("No backup of '%s' (%s) to restore.", cd.Name, cd.Addon)
		return Result{Candidate: cd, Outcome: NoBackup, Path: backup}, nil
	}

	cfg.statusf("Restoring '%s' (%s) from backup...", cd.Name, cd.Addon)
	if err := fsutil.CopyFileTo(backup, installed); err != nil {
		return Result{}, &OpError{Op: "restore", Game: cd.Game, Path: installed, Err: err}
	}
	logger.Debug("Backup restored.", "from", backup, "to", installed)
	return Result{Candidate: cd, Outcome: Restored, Path: installed}, nil
}

// checkNotDir keeps Uninstall from removing an empty directory that carries
// an installed file's name. Backup treats such a path as not installed.
func checkNotDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s: %w", path, ErrIsDirectory)
	}
	return nil
}

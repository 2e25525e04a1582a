package addon

import (
	"context"
	"path/filepath"

	"github.com/specialistvlad/creatures-addons/internal/ctxlog"
	"github.com/specialistvlad/creatures-addons/internal/fsutil"
	"github.com/specialistvlad/creatures-addons/internal/game"
)

// Backup saves every installed file that the staged add-ons of g would
// overwrite. A file is only saved when it exists and differs from the
// staged replacement; an existing backup is replaced.
func Backup(ctx context.Context, cfg *Config, g game.Game) ([]Result, error) {
	logger := ctxlog.FromContext(ctx).With("op", "backup", "game", g)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Info("Backup started.")

	candidates, err := Candidates(ctx, cfg, g)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(candidates))
	for _, cd := range candidates {
		res, err := backupOne(ctx, cfg, cd)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}

	logger.Info("Backup finished.", "files", len(results))
	return results, nil
}

func backupOne(ctx context.Context, cfg *Config, cd Candidate) (Result, error) {
	logger := ctxlog.FromContext(ctx)
	installed := cd.InstalledPath(cfg)
	logger.Debug("Checking installed file.", "addon", cd.Addon, "file", cd.Name, "installed", installed)

	exists, err := fsutil.FileExists(installed)
	if err != nil {
		return Result{}, &OpError{Op: "backup", Game: cd.Game, Path: installed, Err: err}
	}
	if !exists {
		cfg.statusf("SKIPPED: '%s' from '%s' doesn't exist in current install. Nothing to back up.", cd.Name, cd.Addon)
		return Result{Candidate: cd, Outcome: NothingToBackUp, Path: installed}, nil
	}

	same, err := fsutil.SameContents(installed, cd.Path)
	if err != nil {
		return Result{}, &OpError{Op: "backup", Game: cd.Game, Path: installed, Err: err}
	}
	if same {
		cfg.statusf("SKIPPED: Currently installed '%s' is already from '%s'.", cd.Name, cd.Addon)
		return Result{Candidate: cd, Outcome: AlreadyInstalled, Path: installed}, nil
	}

	cfg.statusf("Backing up '%s' from '%s'...", cd.Name, cd.Addon)
	backup := cd.BackupPath(cfg)
	if _, err := fsutil.CopyFile(installed, filepath.Dir(backup)); err != nil {
		return Result{}, &OpError{Op: "backup", Game: cd.Game, Path: backup, Err: err}
	}
	logger.Debug("Installed file backed up.", "from", installed, "to", backup)
	return Result{Candidate: cd, Outcome: BackedUp, Path: backup}, nil
}

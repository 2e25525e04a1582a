package addon

import (
	"context"

	"github.com/specialistvlad/creatures-addons/internal/ctxlog"
	"github.com/specialistvlad/creatures-addons/internal/fsutil"
	"github.com/specialistvlad/creatures-addons/internal/game"
)

// Install copies every staged file of g into the game, replacing whatever
// is installed under the same name. Destination directories are created
// when missing.
func Install(ctx context.Context, cfg *Config, g game.Game) ([]Result, error) {
	logger := ctxlog.FromContext(ctx).With("op", "install", "game", g)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Info("Install started.")

	candidates, err := Candidates(ctx, cfg, g)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(candidates))
	for _, cd := range candidates {
		cfg.statusf("Copying '%s' from '%s'...", cd.Name, cd.Addon)
		dst, err := fsutil.CopyFile(cd.Path, cfg.installedDir(cd.Game, cd.Dest))
		if err != nil {
			return results, &OpError{Op: "install", Game: g, Path: dst, Err: err}
		}
		logger.Debug("File installed.", "addon", cd.Addon, "file", cd.Name, "to", dst)
		results = append(results, Result{Candidate: cd, Outcome: Installed, Path: dst})
	}

	logger.Info("Install finished.", "files", len(results))
	return results, nil
}

package addon

import (
	"context"
	"path/filepath"

	"github.com/specialistvlad/creatures-addons/internal/ctxlog"
	"github.com/specialistvlad/creatures-addons/internal/fsutil"
	"github.com/specialistvlad/creatures-addons/internal/game"
)

// Candidate is one staged add-on file with its resolved destination.
type Candidate struct {
	Game game.Game
	// Path is the staged file.
	Path string
	// Name is the base name of Path.
	Name string
	// Addon is the name of the directory directly containing Path.
	Addon string
	// Dest is the destination subdirectory, slash-separated.
	Dest string
}

// InstalledPath is where the live game keeps this file.
func (cd Candidate) InstalledPath(cfg *Config) string {
	return filepath.Join(cfg.installedDir(cd.Game, cd.Dest), cd.Name)
}

// BackupPath is where the original of this file is saved for this add-on.
func (cd Candidate) BackupPath(cfg *Config) string {
	return filepath.Join(cfg.backupDir(cd.Game, cd.Addon, cd.Dest), cd.Name)
}

// Candidates lists the staged files of one game in processing order: by
// extension in table order, then in directory walk order. Files without a
// destination are left out.
func Candidates(ctx context.Context, cfg *Config, g game.Game) ([]Candidate, error) {
	logger := ctxlog.FromContext(ctx)
	root := cfg.stagingDir(g)

	var out []Candidate
	for _, ext := range cfg.Resolver.Tables().Extensions() {
		files, err := fsutil.FindFilesByExtension(root, "."+ext)
		if err != nil {
			return nil, &OpError{Op: "scan", Game: g, Path: root, Err: err}
		}
		for _, path := range files {
			dest, ok := cfg.Resolver.Resolve(g, path)
			if !ok {
				logger.Debug("No destination for file, skipping.", "file", path)
				continue
			}
			out = append(out, Candidate{
				Game:  g,
				Path:  path,
				Name:  filepath.Base(path),
				Addon: filepath.Base(filepath.Dir(path)),
				Dest:  dest,
			})
		}
	}

	logger.Debug("Staged files collected.", "root", root, "count", len(out))
	return out, nil
}

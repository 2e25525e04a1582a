package addon

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/specialistvlad/creatures-addons/internal/game"
	"github.com/specialistvlad/creatures-addons/internal/resolver"
)

// Config is the explicit input of every operation.
type Config struct {
	InputDir     string
	BackupDir    string
	CreaturesDir string

	Resolver *resolver.Resolver

	// Status receives one human-readable line per file action. Nil
	// discards them.
	Status io.Writer
}

func (c *Config) stagingDir(g game.Game) string {
	return filepath.Join(c.InputDir, string(g))
}

func (c *Config) installedDir(g game.Game, dest string) string {
	return filepath.Join(c.CreaturesDir, g.FullName(), filepath.FromSlash(dest))
}

func (c *Config) backupDir(g game.Game, addon, dest string) string {
	return filepath.Join(c.BackupDir, g.FullName(), addon, filepath.FromSlash(dest))
}

func (c *Config) statusf(format string, args ...any) {
	if c.Status == nil {
		return
	}
	fmt.Fprintf(c.Status, format+"\n", args...)
}

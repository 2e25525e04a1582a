// Package testutil builds throwaway staging, game and backup trees for
// package and end-to-end tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/creatures-addons/internal/game"
	"github.com/stretchr/testify/require"
)

// Staging is a temporary root holding the three directories a run works on.
type Staging struct {
	Root         string
	InputDir     string
	BackupDir    string
	CreaturesDir string
}

// NewStaging creates input/, backups/ and creatures/ under t.TempDir().
// The game folders themselves are not created, like on a fresh machine.
func NewStaging(t *testing.T) *Staging {
	t.Helper()

	root := t.TempDir()
	s := &Staging{
		Root:         root,
		InputDir:     filepath.Join(root, "input"),
		BackupDir:    filepath.Join(root, "backups"),
		CreaturesDir: filepath.Join(root, "creatures"),
	}
	for _, dir := range []string{s.InputDir, s.BackupDir, s.CreaturesDir} {
		require.NoError(t, os.MkdirAll(dir, 0o755))
	}
	return s
}

// Stage writes an add-on file at input/<game>/<rel> and returns its path.
// rel uses forward slashes, e.g. "MyPatch/Images/worm.c16".
func (s *Staging) Stage(t *testing.T, g game.Game, rel, content string) string {
	t.Helper()
	path := filepath.Join(s.InputDir, string(g), filepath.FromSlash(rel))
	WriteFile(t, path, content)
	return path
}

// Installed returns the path of <creatures>/<full name>/<rel>.
func (s *Staging) Installed(g game.Game, rel string) string {
	return filepath.Join(s.CreaturesDir, g.FullName(), filepath.FromSlash(rel))
}

// Install writes a file directly into the game folder, as if it shipped
// with the game.
func (s *Staging) Install(t *testing.T, g game.Game, rel, content string) string {
	t.Helper()
	path := s.Installed(g, rel)
	WriteFile(t, path, content)
	return path
}

// Backup returns the path of <backups>/<full name>/<addon>/<rel>.
func (s *Staging) Backup(g game.Game, addon, rel string) string {
	return filepath.Join(s.BackupDir, g.FullName(), addon, filepath.FromSlash(rel))
}

// WriteFile creates path with its parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// RequireContent fails the test unless path holds exactly content.
func RequireContent(t *testing.T, path, content string) {
	t.Helper()
	got, err := os.ReadFile(path)
	require.NoError(t, err, "expected file %s to exist", path)
	require.Equal(t, content, string(got), "unexpected content in %s", path)
}

// RequireMissing fails the test if path exists.
func RequireMissing(t *testing.T, path string) {
	t.Helper()
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err), "expected %s to be absent, stat err=%v", path, err)
}

// Snapshot returns every regular file below root mapped to its content,
// keyed by slash-separated relative path. Directories are not recorded.
func Snapshot(t *testing.T, root string) map[string]string {
	t.Helper()
	out := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		out[filepath.ToSlash(rel)] = string(b)
		return nil
	})
	if os.IsNotExist(err) {
		return out
	}
	require.NoError(t, err)
	return out
}

package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/creatures-addons/internal/cli"
	"github.com/specialistvlad/creatures-addons/internal/game"
	"github.com/specialistvlad/creatures-addons/internal/testutil"
	"github.com/stretchr/testify/require"
)

func stagingArgs(s *testutil.Staging, extra ...string) []string {
	return append([]string{"-i", s.InputDir, "-b", s.BackupDir, "-c", s.CreaturesDir}, extra...)
}

func TestRun_Version(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, &bytes.Buffer{}, []string{"--version"})

	require.NoError(t, err)
	require.Equal(t, "Creatures Exodus Add-on Installer v0.3\n", out.String())
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, []string{"-h"})

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}

func TestRun_InstallScenario(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	s := testutil.NewStaging(t)
	s.Stage(t, game.C3, "MyPatch/Images/worm.c16", "worm")
	s.Stage(t, game.DS, "MyFix/!DS splash map.cos", "splash")
	out := &bytes.Buffer{}

	// --- Act ---
	err := run(out, &bytes.Buffer{}, stagingArgs(s))

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, out.String(), "SKIPPED: 'worm.c16' from 'MyPatch' doesn't exist in current install. Nothing to back up.")
	testutil.RequireContent(t, s.Installed(game.C3, "Images/worm.c16"), "worm")
	testutil.RequireContent(t, s.Installed(game.DS, "Bootstrap/000 Switcher/!DS splash map.cos"), "splash")
	require.Contains(t, out.String(), "Done!")
}

func TestRun_UninstallScenario(t *testing.T) {
	t.Parallel()

	s := testutil.NewStaging(t)
	s.Stage(t, game.C3, "MyPatch/Images/worm.c16", "worm")
	installed := s.Install(t, game.C3, "Images/worm.c16", "worm")

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, stagingArgs(s, "-u"))

	require.NoError(t, err)
	testutil.RequireMissing(t, installed)
}

func TestRun_BadTablesFile(t *testing.T) {
	t.Parallel()

	s := testutil.NewStaging(t)
	tablesPath := filepath.Join(s.Root, "tables.hcl")
	testutil.WriteFile(t, tablesPath, `exception "x.cos" {}`)

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, stagingArgs(s, "--tables", tablesPath))

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load lookup tables")
}

func TestRun_WithoutHomeDirectory(t *testing.T) {
	t.Setenv("HOME", "")

	t.Run("Version", func(t *testing.T) {
		out := &bytes.Buffer{}

		err := run(out, &bytes.Buffer{}, []string{"--version"})

		require.NoError(t, err)
		require.Equal(t, "Creatures Exodus Add-on Installer v0.3\n", out.String())
	})

	t.Run("All directories given", func(t *testing.T) {
		// --- Arrange ---
		s := testutil.NewStaging(t)
		s.Stage(t, game.C3, "MyPatch/Images/worm.c16", "worm")

		// --- Act ---
		err := run(&bytes.Buffer{}, &bytes.Buffer{}, stagingArgs(s))

		// --- Assert ---
		require.NoError(t, err)
		testutil.RequireContent(t, s.Installed(game.C3, "Images/worm.c16"), "worm")
	})
}

package cli_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/creatures-addons/internal/app"
	"github.com/specialistvlad/creatures-addons/internal/cli"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	defInput, err := app.DefaultInputDir()
	require.NoError(t, err)
	defBackup, err := app.DefaultBackupDir()
	require.NoError(t, err)
	defCreatures, err := app.DefaultCreaturesDir()
	require.NoError(t, err)

	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectErr      string
		expectedConfig *app.Config
		checkOutput    func(t *testing.T, output string)
	}{
		{
			name: "Happy path with all long flags",
			args: []string{
				"--input_dir", "/test/input",
				"--backup_dir=/test/backups",
				"--creatures_dir", "/test/creatures",
				"--skip_backup",
				"--tables", "/test/tables.hcl",
				"--log-level=debug",
				"--log-format=json",
			},
			expectedConfig: &app.Config{
				InputDir:     "/test/input",
				BackupDir:    "/test/backups",
				CreaturesDir: "/test/creatures",
				SkipBackup:   true,
				TablesPath:   "/test/tables.hcl",
				LogLevel:     "debug",
				LogFormat:    "json",
			},
		},
		{
			name: "Shorthand flags",
			args: []string{"-i", "/in", "-b", "/bk", "-c", "/cr", "-u", "-t", "/t.hcl"},
			expectedConfig: &app.Config{
				InputDir:     "/in",
				BackupDir:    "/bk",
				CreaturesDir: "/cr",
				Uninstall:    true,
				TablesPath:   "/t.hcl",
				LogLevel:     app.DefaultLogLevel,
				LogFormat:    app.DefaultLogFormat,
			},
		},
		{
			name: "Defaults",
			args: nil,
			expectedConfig: &app.Config{
				InputDir:     defInput,
				BackupDir:    defBackup,
				CreaturesDir: defCreatures,
				LogLevel:     app.DefaultLogLevel,
				LogFormat:    app.DefaultLogFormat,
			},
		},
		{
			name: "Version flag",
			args: []string{"--version", "-s"},
			expectedConfig: &app.Config{
				SkipBackup:   true,
				Version:      true,
				LogLevel:     app.DefaultLogLevel,
				LogFormat:    app.DefaultLogFormat,
			},
		},
		{
			name:       "Help flag triggers clean exit",
			args:       []string{"-h"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, "Usage:")
				require.Contains(t, output, "-creatures_dir")
			},
		},
		{
			name:      "Unknown flag",
			args:      []string{"--not-a-flag"},
			expectErr: "flag provided but not defined: -not-a-flag",
		},
		{
			name:      "Positional argument",
			args:      []string{"somewhere"},
			expectErr: `unexpected argument "somewhere"`,
		},
		{
			name:      "Invalid log format",
			args:      []string{"--log-format=xml"},
			expectErr: "invalid log-format",
		},
		{
			name:      "Invalid log level",
			args:      []string{"--log-level=trace"},
			expectErr: "invalid log-level",
		},
		{
			name: "Empty input dir falls back to default",
			args: []string{"-i", "", "-b", "/bk", "-c", "/cr"},
			expectedConfig: &app.Config{
				InputDir:     defInput,
				BackupDir:    "/bk",
				CreaturesDir: "/cr",
				LogLevel:     app.DefaultLogLevel,
				LogFormat:    app.DefaultLogFormat,
			},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			out := &bytes.Buffer{}

			// --- Act ---
			cfg, shouldExit, err := cli.Parse(tc.args, out)

			// --- Assert ---
			if tc.expectErr != "" {
				require.Error(t, err)
				var exitErr *cli.ExitError
				require.True(t, errors.As(err, &exitErr))
				require.Equal(t, 2, exitErr.Code)
				require.Contains(t, err.Error(), tc.expectErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectExit, shouldExit)
			if tc.checkOutput != nil {
				tc.checkOutput(t, out.String())
			}
			if tc.expectedConfig != nil {
				if diff := cmp.Diff(tc.expectedConfig, cfg); diff != "" {
					t.Errorf("config mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestParse_RelativeDirsBecomeAbsolute(t *testing.T) {
	t.Parallel()

	cfg, _, err := cli.Parse([]string{"-i", "staging"}, &bytes.Buffer{})
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.Equal(t, filepath.Join(wd, "staging"), cfg.InputDir)
}

func TestParse_WithoutHomeDirectory(t *testing.T) {
	t.Setenv("HOME", "")

	testCases := []struct {
		name      string
		args      []string
		expectErr string
	}{
		{name: "Version", args: []string{"--version"}},
		{name: "Explicit directories", args: []string{"-i", "/in", "-b", "/bk", "-c", "/cr"}},
		{name: "Backup default needed", args: []string{"-i", "/in", "-c", "/cr"}, expectErr: "no backup_dir given and no default available"},
		{name: "Creatures default needed", args: []string{"-i", "/in", "-b", "/bk"}, expectErr: "no creatures_dir given and no default available"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Act ---
			cfg, shouldExit, err := cli.Parse(tc.args, &bytes.Buffer{})

			// --- Assert ---
			require.False(t, shouldExit)
			if tc.expectErr != "" {
				var exitErr *cli.ExitError
				require.True(t, errors.As(err, &exitErr))
				require.Equal(t, 2, exitErr.Code)
				require.Contains(t, err.Error(), tc.expectErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, cfg)
		})
	}
}

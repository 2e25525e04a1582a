package app

import (
	"os"
	"testing"

	"github.com/specialistvlad/creatures-addons/internal/testutil"
	"github.com/stretchr/testify/require"
)

// setupAppTest creates a new app instance over the staging tree s. The
// callback can adjust the configuration before validation.
func setupAppTest(t *testing.T, s *testutil.Staging, adjust func(*Config)) (*App, *testutil.SafeBuffer, *testutil.SafeBuffer) {
	t.Helper()

	cfg := Config{
		InputDir:     s.InputDir,
		BackupDir:    s.BackupDir,
		CreaturesDir: s.CreaturesDir,
		LogLevel:     "debug",
		LogFormat:    "text",
	}
	if adjust != nil {
		adjust(&cfg)
	}
	valid, err := NewConfig(cfg)
	require.NoError(t, err)

	outBuffer := &testutil.SafeBuffer{}
	logBuffer := &testutil.SafeBuffer{}
	testApp, err := NewApp(outBuffer, logBuffer, valid)
	require.NoError(t, err)

	t.Cleanup(func() {
		if os.Getenv("ADDONS_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})

	return testApp, outBuffer, logBuffer
}

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"todo/internal/config"
	"todo/internal/logging"
	"todo/internal/repository/sqlite"

	"github.com/stretchr/testify/require"
)

// testApp bundles an App with captured output and open counting
type testApp struct {
	app    *App
	out    *bytes.Buffer
	errOut *bytes.Buffer
	opens  int
}

func setupTestApp(t *testing.T) *testApp {
	t.Helper()
	ta := &testApp{out: &bytes.Buffer{}, errOut: &bytes.Buffer{}}
	dbPath := filepath.Join(t.TempDir(), "todo.db")

	ta.app = NewApp(config.NewConfig(), ta.out, ta.errOut).
		WithRepositoryOpener(func(ctx context.Context, cfg *config.Config) (sqlite.Repository, error) {
			ta.opens++
			return sqlite.New(ctx, dbPath)
		})
	t.Cleanup(func() { ta.app.Close() })
	return ta
}

// runCLI drives the whole command line against a temp database and
// returns the exit code with captured stdout and stderr
func runCLI(t *testing.T, dbPath string, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("TODO_DB", dbPath)
	t.Cleanup(resetLogging)

	var stdout, stderr bytes.Buffer
	code := Main(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func tempDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "my_database.db")
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func requireExit(t *testing.T, want, got int, stderr string) {
	t.Helper()
	require.Equal(t, want, got, "stderr: %s", stderr)
}

func resetLogging() {
	logging.SetOutput(os.Stderr)
	logging.SetLevel("warn")
}

//go:build integration

package integration_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shellsmith-labs/shellsmith/internal/cli"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir   string // HOME — contains .shellsmith/ config
	OutputDir string // Where generated scripts land
}

// setupTestEnv creates isolated temp directories and pins the author via the
// environment so runs are deterministic regardless of the host git config.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		HomeDir:   t.TempDir(),
		OutputDir: t.TempDir(),
	}

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("SHELLSMITH_AUTHOR", "Integration Tester")

	return env
}

// runCLI executes the root command in-process with the given stdin and args.
func runCLI(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd, _ := cli.NewRootCmd()
	var outBuf, errBuf bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file %s to exist: %v", path, err)
	}
}

func readScript(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}
	return string(data)
}

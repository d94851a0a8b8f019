package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrepareHookRestoresBeforeWipingCaches(t *testing.T) {
	prepare, err := PrepareHook()
	require.NoError(t, err)
	restore := strings.Index(prepare, "git checkout")
	wipe := strings.Index(prepare, "sync")
	require.GreaterOrEqual(t, restore, 0)
	require.Greater(t, wipe, restore, "restore I/O must not land after the cache wipe: %v", prepare)
}

func TestRestoreFixturesCommandIsNonDestructive(t *testing.T) {
	restore := RestoreFixturesCommand()
	require.Contains(t, restore, "git checkout")
	require.Contains(t, restore, "submodule foreach")
	require.NotContains(t, restore, "clean")
	require.NotContains(t, restore, "reset")
}

func gitRun(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))
}

func restoreRun(t *testing.T, dir string) {
	t.Helper()
	cmd := exec.Command("sh", "-c", RestoreFixturesCommand())
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, string(output))
}

func TestRestoreFixturesIdempotentAndRevertsMutation(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}
	dir := t.TempDir()
	fixture := filepath.Join(dir, "fixture.go")
	gitRun(t, dir, "init")
	require.NoError(t, os.WriteFile(fixture, []byte("package fixture\n"), 0o644))
	gitRun(t, dir, "add", ".")
	gitRun(t, dir, "-c", "user.email=bench@localhost", "-c", "user.name=bench", "commit", "-m", "fixture")

	// pristine tree: restore is a no-op
	restoreRun(t, dir)
	data, err := os.ReadFile(fixture)
	require.NoError(t, err)
	require.Equal(t, "package fixture\n", string(data))

	// in-place mutation, as the tool under test would perform
	require.NoError(t, os.WriteFile(fixture, []byte("package f_xtur_\n"), 0o644))
	restoreRun(t, dir)
	data, err = os.ReadFile(fixture)
	require.NoError(t, err)
	require.Equal(t, "package fixture\n", string(data))
}

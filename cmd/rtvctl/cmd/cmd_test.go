package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestConfig writes a pebble-backed rtvctl.toml under a fresh temp
// directory and returns its path, so a whole test can run several
// commands against the same store.
func newTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	configPath := filepath.Join(dir, "rtvctl.toml")
	content := "[store]\nbackend = \"pebble\"\npath = \"" + filepath.Join(dir, "data") + "\"\ncache_size = 16\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))
	return configPath
}

// runRoot executes rootCmd against configPath and returns any error the
// command produced.
func runRoot(t *testing.T, configPath string, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(append([]string{"--conf", configPath}, args...))
	return rootCmd.Execute()
}

func TestPushThenSizeCommand(t *testing.T) {
	configPath := newTestConfig(t)
	require.NoError(t, runRoot(t, configPath, "push", "demo", "hello"))
	require.NoError(t, runRoot(t, configPath, "push", "demo", "world"))
	assert.NoError(t, runRoot(t, configPath, "size", "demo"))
}

func TestValidateCommandOnFreshVector(t *testing.T) {
	configPath := newTestConfig(t)
	require.NoError(t, runRoot(t, configPath, "push", "demo", "hello"))
	assert.NoError(t, runRoot(t, configPath, "validate", "demo"))
}

func TestGetCommandOutOfBounds(t *testing.T) {
	configPath := newTestConfig(t)
	require.NoError(t, runRoot(t, configPath, "push", "demo", "hello"))
	assert.Error(t, runRoot(t, configPath, "get", "demo", "99"))
}

func TestExportImportRoundTrip(t *testing.T) {
	configPath := newTestConfig(t)
	file := filepath.Join(t.TempDir(), "snapshot.bin")

	require.NoError(t, runRoot(t, configPath, "push", "demo", "hello"))
	require.NoError(t, runRoot(t, configPath, "export", "demo", file))
	assert.FileExists(t, file)

	require.NoError(t, runRoot(t, configPath, "import", "demo2", file))
	assert.NoError(t, runRoot(t, configPath, "size", "demo2"))
}

func TestBenchCommandRuns(t *testing.T) {
	configPath := newTestConfig(t)
	assert.NoError(t, runRoot(t, configPath, "bench"))
}

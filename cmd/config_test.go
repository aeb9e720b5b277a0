package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/spmoutdated/pkg/config"
	"github.com/ajxudir/spmoutdated/pkg/errors"
)

// chdir switches into dir for the rest of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

// TestConfigCommand tests the behavior of config command with various flags.
//
// It verifies:
//   - --show-defaults prints the embedded defaults
//   - --show-effective falls back to defaults without a file
//   - --show-effective reports the loaded file
//   - No flag prints help
func TestConfigCommand(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	stdout, _, err := runCLI(t, "config", "--show-defaults")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Default configuration:")
	assert.Contains(t, stdout, config.GetDefaultConfig())

	stdout, _, err = runCLI(t, "config", "--show-effective")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Source: built-in defaults")
	assert.Contains(t, stdout, "concurrency: 8")

	require.NoError(t, os.WriteFile(config.FileName, []byte("concurrency: 3\n"), 0o644))
	stdout, _, err = runCLI(t, "config", "--show-effective")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Source: "+config.FileName)
	assert.Contains(t, stdout, "concurrency: 3")

	stdout, _, err = runCLI(t, "config")
	require.NoError(t, err)
	assert.Contains(t, stdout, "--show-defaults")
}

// TestConfigInit tests the behavior of config --init.
//
// It verifies:
//   - The template is written with 0600 permissions
//   - The template is itself a valid configuration
//   - An existing file is not overwritten
func TestConfigInit(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	stdout, _, err := runCLI(t, "config", "--init")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Created configuration template")

	info, err := os.Stat(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	data, err := os.ReadFile(filepath.Join(dir, config.FileName))
	require.NoError(t, err)
	assert.NoError(t, config.ValidateConfigFile(data))

	_, _, err = runCLI(t, "config", "--init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

// TestConfigInitWriteError tests the behavior of config --init when writing fails.
//
// It verifies:
//   - Write failures are returned
func TestConfigInitWriteError(t *testing.T) {
	chdir(t, t.TempDir())

	old := writeFileFunc
	writeFileFunc = func(string, []byte, os.FileMode) error { return os.ErrPermission }
	defer func() { writeFileFunc = old }()

	_, _, err := runCLI(t, "config", "--init")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrPermission)
}

// TestConfigValidate tests the behavior of config --validate.
//
// It verifies:
//   - A valid file is reported as valid
//   - An invalid file lists each failure and exits with ExitConfigError
//   - A missing file exits with ExitConfigError
//   - --config selects the file to validate
func TestConfigValidate(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	_, _, err := runCLI(t, "config", "--validate")
	require.Error(t, err)
	assert.Equal(t, errors.ExitConfigError, errors.GetExitCode(err))

	require.NoError(t, os.WriteFile(config.FileName, []byte("format: json\n"), 0o644))
	stdout, _, err := runCLI(t, "config", "--validate")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Configuration valid: "+config.FileName)

	bad := filepath.Join(dir, "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("format: html\nconcurrency: 0\nonlyMajorUpdates: true\n"), 0o644))
	stdout, _, err = runCLI(t, "config", "--validate", "--config", bad)
	require.Error(t, err)
	assert.Equal(t, errors.ExitConfigError, errors.GetExitCode(err))
	assert.Contains(t, stdout, "Configuration validation failed for: "+bad)
	assert.Contains(t, stdout, "did you mean 'only_major_updates'")
}

package cmdexec

import (
	"context"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("skipping Unix-specific test on Windows")
	}
}

// TestApplyReplacements tests the behavior of applyReplacements.
//
// It verifies:
//   - Template placeholders are replaced with values
//   - Values with unsafe characters are quoted
//   - Empty values remove the placeholder entirely
func TestApplyReplacements(t *testing.T) {
	t.Run("basic replacement", func(t *testing.T) {
		result := applyReplacements("git ls-remote --tags {{location}}", map[string]string{
			"location": "https://github.com/Alamofire/Alamofire.git",
		})
		assert.Equal(t, "git ls-remote --tags https://github.com/Alamofire/Alamofire.git", result)
	})

	t.Run("unsafe value is quoted", func(t *testing.T) {
		result := applyReplacements("git ls-remote --tags {{location}}", map[string]string{
			"location": "https://example.com/a.git; rm -rf /",
		})
		assert.Equal(t, "git ls-remote --tags 'https://example.com/a.git; rm -rf /'", result)
	})

	t.Run("empty value removes placeholder", func(t *testing.T) {
		result := applyReplacements("git {{flag}} ls-remote", map[string]string{"flag": ""})
		assert.Equal(t, "git  ls-remote", result)
		assert.NotContains(t, result, "''")
	})
}

// TestShellEscape tests the behavior of shellEscape.
func TestShellEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "''"},
		{"simple", "simple"},
		{"git@github.com:apple/swift-log.git", "git@github.com:apple/swift-log.git"},
		{"with space", "'with space'"},
		{"it's", `'it'\''s'`},
		{"$(whoami)", "'$(whoami)'"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, shellEscape(tt.in))
		})
	}
}

// TestIsShellSafe tests the behavior of isShellSafe.
func TestIsShellSafe(t *testing.T) {
	for _, r := range "azAZ09-_./@:+=" {
		assert.True(t, isShellSafe(r), "expected %q to be safe", r)
	}
	for _, r := range " ;|&$`'\"\\*?" {
		assert.False(t, isShellSafe(r), "expected %q to be unsafe", r)
	}
}

// TestGetShell tests the behavior of getShell.
//
// It verifies:
//   - SHELL environment variable is used when set, without login flag
//   - Falls back to sh when SHELL is not set
func TestGetShell(t *testing.T) {
	skipOnWindows(t)

	t.Run("uses SHELL env var when set", func(t *testing.T) {
		t.Setenv("SHELL", "/bin/bash")
		shell, args := getShell()
		assert.Equal(t, "/bin/bash", shell)
		assert.Equal(t, []string{"-c"}, args)
	})

	t.Run("falls back to sh when SHELL not set", func(t *testing.T) {
		t.Setenv("SHELL", "")
		shell, args := getShell()
		assert.Equal(t, "sh", shell)
		assert.Equal(t, []string{"-c"}, args)
	})
}

// TestExecute tests the behavior of execute.
//
// It verifies:
//   - Stdout is returned for successful commands
//   - Replacements and environment variables are applied
//   - Failures carry stderr in the error message and the exit code
//   - Empty commands and cancelled contexts are rejected
func TestExecute(t *testing.T) {
	skipOnWindows(t)
	ctx := context.Background()

	t.Run("simple command", func(t *testing.T) {
		out, err := execute(ctx, Request{Command: "echo hello"}, nil)
		require.NoError(t, err)
		assert.Equal(t, "hello", strings.TrimSpace(string(out)))
	})

	t.Run("with replacements", func(t *testing.T) {
		out, err := execute(ctx, Request{
			Command:      "echo {{location}}",
			Replacements: map[string]string{"location": "https://example.com/repo.git"},
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/repo.git", strings.TrimSpace(string(out)))
	})

	t.Run("with env", func(t *testing.T) {
		out, err := execute(ctx, Request{
			Command: "echo $SPM_OUTDATED_TEST_VAR",
			Env:     map[string]string{"SPM_OUTDATED_TEST_VAR": "value"},
		}, nil)
		require.NoError(t, err)
		assert.Equal(t, "value", strings.TrimSpace(string(out)))
	})

	t.Run("working directory", func(t *testing.T) {
		dir := t.TempDir()
		out, err := execute(ctx, Request{Command: "pwd", Dir: dir}, nil)
		require.NoError(t, err)
		assert.Equal(t, filepath.Base(dir), filepath.Base(strings.TrimSpace(string(out))))
	})

	t.Run("failure includes stderr", func(t *testing.T) {
		_, err := execute(ctx, Request{Command: "echo 'repository not found' >&2; exit 128"}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "repository not found")
		assert.Equal(t, 128, ExitCode(err))
	})

	t.Run("empty command", func(t *testing.T) {
		_, err := execute(ctx, Request{Command: "   "}, nil)
		assert.Error(t, err)
	})

	t.Run("cancelled context", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := execute(cancelled, Request{Command: "echo never"}, nil)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

// TestExecuteTimeout tests that commands exceeding their timeout are killed.
func TestExecuteTimeout(t *testing.T) {
	skipOnWindows(t)

	start := time.Now()
	_, err := execute(context.Background(), Request{Command: "sleep 10", TimeoutSeconds: 1}, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Less(t, time.Since(start), 8*time.Second)
}

// TestExitCode tests the behavior of ExitCode.
func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, -1, ExitCode(assert.AnError))
}

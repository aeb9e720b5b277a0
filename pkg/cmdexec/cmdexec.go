// Package cmdexec runs the external commands spm-outdated relies on, most
// notably the configured tag-listing command (git ls-remote by default).
//
// Commands are templated strings executed through the user's shell. Template
// values are shell-escaped, every command runs in its own process group, and
// a per-command timeout kills the whole group when it expires.
package cmdexec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ajxudir/spmoutdated/pkg/verbose"
)

// Request describes one command invocation.
//
// Fields:
//   - Command: Command template, e.g. "git ls-remote --tags {{location}}"
//   - Replacements: Template values; each {{key}} is replaced by its shell-escaped value
//   - Env: Extra environment variables, values may reference existing variables
//   - Dir: Working directory, empty for the current one
//   - TimeoutSeconds: Maximum execution time, 0 for no timeout
type Request struct {
	Command        string
	Replacements   map[string]string
	Env            map[string]string
	Dir            string
	TimeoutSeconds int
}

// ExecuteFunc is the function signature for context-aware command execution.
//
// Parameters:
//   - ctx: Context for cancellation control
//   - req: The command to run
//   - logger: Diagnostic sink, nil for none
//
// Returns:
//   - []byte: Stdout of the command
//   - error: Any error that occurred during execution, including timeouts
type ExecuteFunc func(ctx context.Context, req Request, logger *log.Logger) ([]byte, error)

// Execute is the default command execution function.
//
// It can be replaced with a stub in tests.
var Execute ExecuteFunc = execute

// ErrTimeout is wrapped by errors returned for commands that exceeded their timeout.
var ErrTimeout = errors.New("command timed out")

// getShell returns the user's shell and args to run a command string.
//
// The SHELL environment variable wins when set; otherwise a platform default
// is used. The shell is not started as a login shell so that many concurrent
// invocations do not each source the user's profile.
//
// Returns:
//   - shell: The path to the shell executable
//   - args: The shell arguments needed to execute a command string
func getShell() (shell string, args []string) {
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh, []string{"-c"}
	}
	return defaultShell[0], defaultShell[1:]
}

// execute applies replacements and runs the command through the shell.
//
// Parameters:
//   - ctx: Context for cancellation control
//   - req: The command to run
//   - logger: Diagnostic sink, nil for none
//
// Returns:
//   - []byte: Stdout of the command
//   - error: Error describing the failure, with stderr folded into the message
func execute(ctx context.Context, req Request, logger *log.Logger) ([]byte, error) {
	logger = verbose.OrDiscard(logger)

	if strings.TrimSpace(req.Command) == "" {
		return nil, fmt.Errorf("no command provided")
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	cmdStr := applyReplacements(req.Command, req.Replacements)

	if req.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(req.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	environ := os.Environ()
	for key, value := range req.Env {
		environ = append(environ, fmt.Sprintf("%s=%s", key, os.ExpandEnv(value)))
	}

	verbose.CommandExec(logger, cmdStr, req.Dir)
	out, err := executeCommand(ctx, cmdStr, environ, req.Dir, req.TimeoutSeconds, logger)
	if err != nil {
		verbose.CommandResult(logger, cmdStr, ExitCode(err), err.Error())
		return nil, err
	}
	verbose.CommandResult(logger, cmdStr, 0, string(out))
	return out, nil
}

// applyReplacements applies template replacements to the command string.
//
// Placeholders in the format {{key}} are replaced with shell-escaped values.
// Empty values remove the placeholder entirely.
//
// Parameters:
//   - command: Command string containing template placeholders
//   - replacements: Map of template keys to replacement values
//
// Returns:
//   - string: Command string with all placeholders replaced
func applyReplacements(command string, replacements map[string]string) string {
	result := command
	for key, value := range replacements {
		placeholder := "{{" + key + "}}"
		escaped := ""
		if value != "" {
			escaped = shellEscape(value)
		}
		result = strings.ReplaceAll(result, placeholder, escaped)
	}
	return result
}

// shellEscape escapes a string for safe use in shell commands.
//
// Values made only of safe characters are returned unquoted. Anything else is
// wrapped in single quotes, with embedded single quotes closed, escaped and reopened.
//
// Parameters:
//   - s: String to escape for shell usage
//
// Returns:
//   - string: Shell-safe escaped string
func shellEscape(s string) string {
	if s == "" {
		return "''"
	}

	needsEscape := false
	for _, r := range s {
		if !isShellSafe(r) {
			needsEscape = true
			break
		}
	}
	if !needsEscape {
		return s
	}

	var escaped strings.Builder
	escaped.WriteRune('\'')
	for _, r := range s {
		if r == '\'' {
			escaped.WriteString("'\\''")
		} else {
			escaped.WriteRune(r)
		}
	}
	escaped.WriteRune('\'')
	return escaped.String()
}

// isShellSafe returns true if the character is safe to use unquoted in shell.
func isShellSafe(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '-' || r == '_' || r == '.' ||
		r == '/' || r == '@' || r == ':' ||
		r == '+' || r == '='
}

// executeCommand executes a single command string through the user's shell.
//
// The command runs in its own process group, and cancellation or timeout
// kills the whole group so that no child keeps the output pipes open.
//
// Parameters:
//   - ctx: Context for cancellation and timeout control
//   - cmdStr: Command string to execute
//   - environ: Full environment variable array for the command
//   - dir: Working directory for command execution
//   - timeoutSeconds: Maximum execution time in seconds (used for error messages)
//   - logger: Diagnostic sink
//
// Returns:
//   - []byte: Stdout output from the command
//   - error: Any error that occurred during execution, including timeout errors
func executeCommand(ctx context.Context, cmdStr string, environ []string, dir string, timeoutSeconds int, logger *log.Logger) ([]byte, error) {
	if strings.TrimSpace(cmdStr) == "" {
		return nil, fmt.Errorf("empty command")
	}

	shell, shellArgs := getShell()
	args := append(append([]string{}, shellArgs...), cmdStr)

	cmd := exec.CommandContext(ctx, shell, args...)
	cmd.Env = environ
	if dir != "" {
		cmd.Dir = dir
	}

	setProcGroup(cmd)
	cmd.Cancel = func() error { return killProcGroup(cmd) }
	cmd.WaitDelay = 2 * time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) && timeoutSeconds > 0 {
			logger.Debug("command deadline exceeded, process group killed", "cmd", cmdStr)
			return nil, fmt.Errorf("%w after %d seconds: %v", ErrTimeout, timeoutSeconds, err)
		}

		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = strings.TrimSpace(stdout.String())
		}
		if errMsg != "" {
			return nil, fmt.Errorf("%w: %s", err, errMsg)
		}
		return nil, err
	}

	return stdout.Bytes(), nil
}

// ExitCode extracts the process exit code from an execution error.
//
// Returns 0 for nil and -1 when the error does not carry an exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// Package verbose builds the diagnostic loggers used throughout spm-outdated.
//
// There is no package-level logger. Commands build one with New and pass it
// down explicitly; library code that receives a nil logger falls back to
// Discard so unit tests stay silent.
package verbose

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// New creates a logger writing to w.
//
// It performs the following operations:
//   - Defaults w to os.Stderr when nil
//   - Sets the level to debug when enabled, otherwise to error so that
//     non-fatal diagnostics stay silent at normal verbosity
//   - Prefixes records with the tool name
//
// Parameters:
//   - w: Destination writer; nil means os.Stderr
//   - enabled: Whether verbose (debug) logging is enabled
//
// Returns:
//   - *log.Logger: Configured logger
func New(w io.Writer, enabled bool) *log.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := log.ErrorLevel
	if enabled {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Level:  level,
		Prefix: "spm-outdated",
	})
}

// Discard returns a logger that drops every record.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

// OrDiscard returns l, or a discard logger when l is nil.
func OrDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return Discard()
	}
	return l
}

// CommandExec logs command execution details at debug level.
//
// Parameters:
//   - l: Logger to write to
//   - cmd: The command string being executed
//   - workDir: The working directory path for command execution
func CommandExec(l *log.Logger, cmd, workDir string) {
	l.Debug("executing command", "cmd", cmd, "dir", workDir)
}

// CommandResult logs command execution results at debug level.
//
// It performs the following operations:
//   - Logs success or failure with the exit code
//   - Truncates long command strings to 60 characters for readability
//   - Keeps at most the first 3 output lines when output has more than 5 lines
//
// Parameters:
//   - l: Logger to write to
//   - cmd: The command string that was executed
//   - exitCode: The exit code returned by the command (0 for success)
//   - output: The command output (stdout/stderr)
func CommandResult(l *log.Logger, cmd string, exitCode int, output string) {
	summary := summarizeOutput(output)
	if exitCode == 0 {
		l.Debug("command succeeded", "cmd", truncate(cmd, 60), "output", summary)
		return
	}
	l.Debug("command failed", "cmd", truncate(cmd, 60), "exit", exitCode, "output", summary)
}

// summarizeOutput trims command output down to a few truncated lines.
func summarizeOutput(output string) string {
	trimmed := strings.TrimSpace(output)
	if trimmed == "" {
		return ""
	}
	lines := strings.Split(trimmed, "\n")
	if len(lines) > 5 {
		kept := make([]string, 0, 4)
		for _, line := range lines[:3] {
			kept = append(kept, truncate(line, 100))
		}
		kept = append(kept, "... ("+strconv.Itoa(len(lines)-3)+" more lines)")
		return strings.Join(kept, "\n")
	}
	for i, line := range lines {
		lines[i] = truncate(line, 100)
	}
	return strings.Join(lines, "\n")
}

// truncate shortens a string to the specified maximum length.
//
// Parameters:
//   - s: The string to truncate
//   - maxLen: The maximum length for the returned string (must be at least 3)
//
// Returns:
//   - string: The original or truncated string with "..." suffix if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

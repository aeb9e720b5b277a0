// Package preflight checks that the tag-listing command can run before any
// repository is queried.
//
// Without this check a missing git binary would make every lookup fail, and
// since lookup failures are not fatal the run would wrongly report every
// package as up-to-date.
package preflight

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ajxudir/spmoutdated/pkg/verbose"
)

// CommandResolutionHints maps command names to installation instructions.
var CommandResolutionHints = map[string]string{
	"git":   "Install git: https://git-scm.com/downloads (on macOS run 'xcode-select --install')",
	"ssh":   "Install an OpenSSH client, required for git@ repository locations",
	"xcrun": "Install the Xcode command line tools: xcode-select --install",
}

var (
	lookPathFunc   = exec.LookPath
	shellCheckFunc = commandExistsInShell
)

// MissingCommandError represents a missing command with a resolution hint.
//
// Fields:
//   - Command: The name of the missing command
//   - Hint: Installation instructions, empty if none is known
type MissingCommandError struct {
	Command string
	Hint    string
}

// Error returns a formatted error message with resolution instructions.
func (e *MissingCommandError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("command not found: %s\n  Resolution: %s", e.Command, e.Hint)
	}
	return fmt.Sprintf("command not found: %s\n  Resolution: Ensure '%s' is installed and available in your PATH,\n              or set git_command in .spm-outdated.yml to an available tool.", e.Command, e.Command)
}

// ValidateCommand checks that every program named by a command template exists.
//
// It performs the following operations:
//   - Extracts the program names from each pipeline and command-list segment
//   - Looks each one up in PATH
//   - Falls back to the user's shell to detect aliases and functions
//
// Parameters:
//   - command: Command template, e.g. "git ls-remote --tags {{location}}"
//   - logger: Diagnostic sink, nil for none
//
// Returns:
//   - error: *MissingCommandError for the first program that was not found, or nil
func ValidateCommand(command string, logger *log.Logger) error {
	logger = verbose.OrDiscard(logger)

	for _, name := range ExtractCommands(command) {
		if _, err := lookPathFunc(name); err == nil {
			logger.Debug("preflight: command found in PATH", "command", name)
			continue
		}
		if shellCheckFunc(name) {
			logger.Debug("preflight: command found as shell alias or function", "command", name)
			continue
		}
		logger.Debug("preflight: command not found", "command", name)
		return &MissingCommandError{Command: name, Hint: CommandResolutionHints[name]}
	}
	return nil
}

// ExtractCommands returns the program names invoked by a shell command line.
//
// Segments separated by "|", "&&", "||" or ";" are inspected separately. Leading
// environment assignments such as GIT_SSH_COMMAND=ssh are skipped, as are
// template placeholders. Names are deduplicated in order of first appearance.
//
// Parameters:
//   - command: Shell command line
//
// Returns:
//   - []string: Unique program names, empty if none were found
func ExtractCommands(command string) []string {
	result := []string{}
	seen := make(map[string]bool)

	normalized := strings.NewReplacer("\r\n", "\n", "\\\n", " ", "&&", "\n", "||", "\n", "|", "\n", ";", "\n").Replace(command)
	for _, segment := range strings.Split(normalized, "\n") {
		segment = strings.TrimSpace(segment)
		if segment == "" || strings.HasPrefix(segment, "#") {
			continue
		}

		for _, field := range strings.Fields(segment) {
			if isAssignment(field) {
				continue
			}
			if strings.HasPrefix(field, "{{") || seen[field] {
				break
			}
			seen[field] = true
			result = append(result, field)
			break
		}
	}
	return result
}

// isAssignment reports whether field is a NAME=value environment prefix.
func isAssignment(field string) bool {
	name, _, ok := strings.Cut(field, "=")
	if !ok || name == "" {
		return false
	}
	for i, r := range name {
		if r == '_' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (i > 0 && r >= '0' && r <= '9') {
			continue
		}
		return false
	}
	return true
}

// commandExistsInShell checks if a command exists through the user's shell.
func commandExistsInShell(cmd string) bool {
	shell, args := getShellCommandCheck(cmd)
	return exec.Command(shell, args...).Run() == nil
}

package preflight

import (
	"os"
	"strings"
)

// getShellCommandCheck returns the shell and args for checking if a command exists.
//
// A login shell runs 'command -v', which detects executables, aliases,
// shell functions and built-ins. The name is single-quoted so it is never
// interpreted by the shell.
//
// Parameters:
//   - cmd: The command name to check for existence
//
// Returns:
//   - shell: The shell executable to use ($SHELL, or "sh" as fallback)
//   - args: Arguments running 'command -v' for cmd
func getShellCommandCheck(cmd string) (shell string, args []string) {
	shell = os.Getenv("SHELL")
	if shell == "" {
		shell = "sh"
	}
	quoted := "'" + strings.ReplaceAll(cmd, "'", `'\''`) + "'"
	return shell, []string{"-l", "-c", "command -v " + quoted}
}

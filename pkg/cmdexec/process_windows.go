//go:build windows

package cmdexec

import (
	"os/exec"
)

// defaultShell runs command strings when SHELL is unset.
var defaultShell = []string{"cmd", "/C"}

// setProcGroup does nothing on Windows; helpers exit with their parent.
func setProcGroup(*exec.Cmd) {}

// killProcGroup kills the process started for cmd.
func killProcGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}

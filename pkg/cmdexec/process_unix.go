//go:build unix

package cmdexec

import (
	"os/exec"
	"syscall"
)

// defaultShell runs command strings when SHELL is unset.
var defaultShell = []string{"sh", "-c"}

// setProcGroup starts cmd as the leader of a new process group.
//
// git ls-remote forks transport helpers (git-remote-https, ssh). Putting the
// whole tree in one group lets a timeout reap the helpers too, instead of
// leaving them holding the output pipe open.
func setProcGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// killProcGroup sends SIGKILL to the process group led by cmd.
//
// Parameters:
//   - cmd: A started command configured by setProcGroup
//
// Returns:
//   - error: The kill error, or nil when the process never started
func killProcGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
}

package tags

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/ajxudir/spmoutdated/pkg/cmdexec"
	"github.com/ajxudir/spmoutdated/pkg/verbose"
)

// DefaultCommand is the tag-listing command used when none is configured.
const DefaultCommand = "git ls-remote --tags {{location}}"

// GitRefLister lists tags by running a git command through cmdexec.
//
// Fields:
//   - Command: Command template; {{location}} is replaced with the shell-escaped repository location
//   - TimeoutSeconds: Per-invocation deadline, 0 for none
//   - Logger: Diagnostic sink, nil for none
type GitRefLister struct {
	Command        string
	TimeoutSeconds int
	Logger         *log.Logger
}

// ListRefs runs the configured command for location and parses its output.
//
// Git is never allowed to prompt for credentials; an unreachable or private
// repository fails instead of blocking the run.
//
// Parameters:
//   - ctx: Context for cancellation control
//   - location: Repository location from the lockfile
//
// Returns:
//   - []Ref: Parsed references
//   - error: Command failure, including timeouts
func (g *GitRefLister) ListRefs(ctx context.Context, location string) ([]Ref, error) {
	command := g.Command
	if command == "" {
		command = DefaultCommand
	}

	out, err := cmdexec.Execute(ctx, cmdexec.Request{
		Command:        command,
		Replacements:   map[string]string{"location": location},
		Env:            map[string]string{"GIT_TERMINAL_PROMPT": "0"},
		TimeoutSeconds: g.TimeoutSeconds,
	}, verbose.OrDiscard(g.Logger))
	if err != nil {
		return nil, err
	}
	return ParseLsRemote(out), nil
}

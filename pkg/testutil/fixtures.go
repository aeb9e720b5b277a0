package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/ajxudir/spmoutdated/pkg/cmdexec"
	"github.com/ajxudir/spmoutdated/pkg/pin"
)

// WriteResolved writes a version 2 Package.resolved for pins into dir.
//
// Parameters:
//   - t: Testing instance for helper marking
//   - dir: Target directory
//   - pins: Pins to record, in order
//
// Returns:
//   - string: Path of the written file
func WriteResolved(t *testing.T, dir string, pins ...pin.Pin) string {
	t.Helper()

	type state struct {
		Branch   string `json:"branch,omitempty"`
		Revision string `json:"revision,omitempty"`
		Version  string `json:"version,omitempty"`
	}
	type entry struct {
		Identity string `json:"identity"`
		Kind     string `json:"kind"`
		Location string `json:"location"`
		State    state  `json:"state"`
	}

	entries := make([]entry, 0, len(pins))
	for _, p := range pins {
		e := entry{Identity: p.Identity, Kind: "remoteSourceControl", Location: p.Location}
		e.State.Revision = p.Revision
		if p.Version != nil {
			e.State.Version = p.Version.String()
		} else {
			e.State.Branch = "main"
		}
		entries = append(entries, e)
	}

	data, err := json.MarshalIndent(map[string]interface{}{"pins": entries, "version": 2}, "", "  ")
	if err != nil {
		t.Fatalf("failed to encode Package.resolved: %v", err)
	}

	path := filepath.Join(dir, "Package.resolved")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// LsRemoteOutput renders tag names the way `git ls-remote --tags` prints
// them. Every tag also gets a dereferenced "^{}" line.
func LsRemoteOutput(tags ...string) []byte {
	var b strings.Builder
	for i, tag := range tags {
		hash := fmt.Sprintf("%040x", i+1)
		fmt.Fprintf(&b, "%s\trefs/tags/%s\n", hash, tag)
		fmt.Fprintf(&b, "%s\trefs/tags/%s^{}\n", hash, tag)
	}
	return []byte(b.String())
}

// FakeGit replaces cmdexec.Execute with a stub answering tag listings from
// a fixed table. Locations missing from the table fail like an unreachable
// repository. The original function is restored when the test ends.
//
// Parameters:
//   - t: Testing instance for cleanup registration
//   - tags: Tag names per repository location
//
// Returns:
//   - *FakeGitCalls: Record of the locations queried
func FakeGit(t *testing.T, tags map[string][]string) *FakeGitCalls {
	t.Helper()

	calls := &FakeGitCalls{}
	old := cmdexec.Execute
	cmdexec.Execute = func(_ context.Context, req cmdexec.Request, _ *log.Logger) ([]byte, error) {
		location := req.Replacements["location"]
		calls.record(location)
		names, ok := tags[location]
		if !ok {
			return nil, fmt.Errorf("fatal: repository '%s' not found", location)
		}
		return LsRemoteOutput(names...), nil
	}
	t.Cleanup(func() { cmdexec.Execute = old })
	return calls
}

// FakeGitCalls records the locations a FakeGit stub was asked about.
type FakeGitCalls struct {
	mu        sync.Mutex
	locations []string
}

func (c *FakeGitCalls) record(location string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.locations = append(c.locations, location)
}

// Locations returns the queried locations, sorted.
func (c *FakeGitCalls) Locations() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := append([]string(nil), c.locations...)
	sort.Strings(out)
	return out
}

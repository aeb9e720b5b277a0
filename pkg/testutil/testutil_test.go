package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/spmoutdated/pkg/cmdexec"
	"github.com/ajxudir/spmoutdated/pkg/lockfile"
	"github.com/ajxudir/spmoutdated/pkg/tags"
)

// TestPinBuilder tests the behavior of PinBuilder.
//
// It verifies:
//   - Fields set through the builder appear on the pin
//   - Built pins do not share their version pointer
func TestPinBuilder(t *testing.T) {
	b := NewPin("Alamofire").WithRevision("abc").WithVersion("5.4.0")
	first := b.Build()
	second := b.Build()

	assert.Equal(t, "Alamofire", first.Identity)
	assert.Equal(t, "https://github.com/example/alamofire.git", first.Location)
	assert.Equal(t, "abc", first.Revision)
	require.NotNil(t, first.Version)
	assert.Equal(t, "5.4.0", first.Version.String())
	assert.NotSame(t, first.Version, second.Version)
}

// TestBranchPin tests the behavior of BranchPin.
//
// It verifies:
//   - Branch pins carry a revision but no version
func TestBranchPin(t *testing.T) {
	p := BranchPin("swift-log", "https://github.com/apple/swift-log.git", "6fe203d")
	assert.False(t, p.HasResolvedVersion())
	assert.True(t, p.HasRevision())
}

// TestWriteResolved tests the behavior of WriteResolved.
//
// It verifies:
//   - The written file loads back through the lockfile package
func TestWriteResolved(t *testing.T) {
	dir := t.TempDir()
	path := WriteResolved(t, dir,
		VersionPin("kingfisher", "https://github.com/onevcat/Kingfisher.git", "7.0.0"),
		BranchPin("swift-log", "https://github.com/apple/swift-log.git", "6fe203d"),
	)

	pins, err := lockfile.Load(path, nil)
	require.NoError(t, err)
	require.Len(t, pins, 2)
	assert.Equal(t, "kingfisher", pins[0].Identity)
	assert.Equal(t, "7.0.0", pins[0].Version.String())
	assert.Nil(t, pins[1].Version)
	assert.Equal(t, "6fe203d", pins[1].Revision)
}

// TestLsRemoteOutput tests the behavior of LsRemoteOutput.
//
// It verifies:
//   - Output parses back into the given tags once dereferenced entries are dropped
func TestLsRemoteOutput(t *testing.T) {
	refs := tags.ParseLsRemote(LsRemoteOutput("v1.0.0", "1.1.0"))
	assert.Len(t, refs, 4)
	assert.Equal(t, []string{"1.0.0", "1.1.0"}, tags.NormalizeRefs(refs))
}

// TestFakeGit tests the behavior of FakeGit.
//
// It verifies:
//   - Known locations return ls-remote output
//   - Unknown locations fail
//   - Queried locations are recorded
func TestFakeGit(t *testing.T) {
	calls := FakeGit(t, map[string][]string{"https://a.example/a.git": {"1.0.0"}})

	out, err := cmdexec.Execute(context.Background(), cmdexec.Request{
		Replacements: map[string]string{"location": "https://a.example/a.git"},
	}, nil)
	require.NoError(t, err)
	assert.Contains(t, string(out), "refs/tags/1.0.0")

	_, err = cmdexec.Execute(context.Background(), cmdexec.Request{
		Replacements: map[string]string{"location": "https://b.example/b.git"},
	}, nil)
	assert.Error(t, err)

	assert.Equal(t, []string{"https://a.example/a.git", "https://b.example/b.git"}, calls.Locations())
}

// TestCaptureStdout tests the behavior of CaptureStdout.
//
// It verifies:
//   - Content written to stdout is returned
func TestCaptureStdout(t *testing.T) {
	out := CaptureStdout(t, func() { fmt.Print("hello") })
	assert.Equal(t, "hello", out)
}

// TestCaptureStderr tests the behavior of CaptureStderr.
//
// It verifies:
//   - Content written to stderr is returned
func TestCaptureStderr(t *testing.T) {
	out := CaptureStderr(t, func() { fmt.Fprint(os.Stderr, "oops") })
	assert.Equal(t, "oops", out)
}

package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestParseLsRemote tests the behavior of ParseLsRemote.
//
// It verifies:
//   - Tab separated "<sha>\t<ref>" lines are parsed in order
//   - The "^{}" suffix is removed and flagged as dereferenced
//   - Blank lines are skipped
func TestParseLsRemote(t *testing.T) {
	output := []byte("a1b2\trefs/tags/5.4.0\n" +
		"c3d4\trefs/tags/5.4.0^{}\n" +
		"\n" +
		"e5f6\trefs/tags/v5.5.0\n" +
		"refs/tags/bare\n")

	refs := ParseLsRemote(output)

	assert.Equal(t, []Ref{
		{Name: "refs/tags/5.4.0"},
		{Name: "refs/tags/5.4.0", Dereferenced: true},
		{Name: "refs/tags/v5.5.0"},
		{Name: "refs/tags/bare"},
	}, refs)
}

// TestParseLsRemoteEmpty tests that empty output yields no references.
func TestParseLsRemoteEmpty(t *testing.T) {
	assert.Empty(t, ParseLsRemote(nil))
	assert.Empty(t, ParseLsRemote([]byte("\n\n")))
}

// TestNormalizeTag tests the behavior of NormalizeTag.
func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"refs/tags/5.4.0", "5.4.0"},
		{"refs/tags/v5.4.0", "5.4.0"},
		{"refs/tags/V2.0.0", "V2.0.0"},
		{"v1.0.0", "1.0.0"},
		{"refs/tags/vapor", "vapor"},
		{"refs/tags/v", "v"},
		{"refs/tags/release-1.0", "release-1.0"},
		{"refs/tags/vv1.0.0", "vv1.0.0"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTag(tt.in))
		})
	}
}

// TestNormalizeRefs tests that dereferenced entries are dropped.
func TestNormalizeRefs(t *testing.T) {
	names := NormalizeRefs([]Ref{
		{Name: "refs/tags/v1.0.0"},
		{Name: "refs/tags/v1.0.0", Dereferenced: true},
		{Name: "refs/tags/2.0.0^{}"},
		{Name: "refs/tags/2.0.0"},
	})
	assert.Equal(t, []string{"1.0.0", "2.0.0"}, names)
}

// TestParseVersions tests that non-version tags are skipped.
func TestParseVersions(t *testing.T) {
	versions := ParseVersions([]string{"1.0.0", "latest", "2.0", "2.0.0-rc.1"}, nil)
	var got []string
	for _, v := range versions {
		got = append(got, v.String())
	}
	assert.Equal(t, []string{"1.0.0", "2.0.0-rc.1"}, got)
}

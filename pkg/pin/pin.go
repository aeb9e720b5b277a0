// Package pin models a dependency fixed by a lockfile to a revision and/or a version.
package pin

import (
	"strings"

	"github.com/ajxudir/spmoutdated/pkg/version"
)

// Pin is one resolved dependency read from a lockfile.
//
// Pins are built once by the lockfile loader and are read-only afterwards.
//
// Fields:
//   - Identity: Package identity, unique within one lockfile
//   - Location: Repository location handed to tag discovery, opaque otherwise
//   - Revision: Pinned commit hash, empty when absent
//   - Version: Pinned version, nil when the pin carries no parseable version
type Pin struct {
	Identity string
	Location string
	Revision string
	Version  *version.Version
}

// New creates a Pin. An empty versionText yields a pin without a version.
//
// Parameters:
//   - identity: Package identity
//   - location: Repository location
//   - revision: Pinned commit hash, may be empty
//   - versionText: Pinned version string, may be empty
//
// Returns:
//   - Pin: The constructed pin
//   - error: *version.ParseError when versionText is non-empty and malformed; the
//     returned pin is still usable and carries no version
func New(identity, location, revision, versionText string) (Pin, error) {
	p := Pin{Identity: identity, Location: location, Revision: revision}
	if strings.TrimSpace(versionText) == "" {
		return p, nil
	}
	v, err := version.Parse(versionText)
	if err != nil {
		return p, err
	}
	p.Version = &v
	return p, nil
}

// HasResolvedVersion reports whether the pin carries a version, regardless of its revision.
// Only pins with a resolved version are eligible for remote lookup.
func (p Pin) HasResolvedVersion() bool {
	return p.Version != nil && p.Version.IsValid()
}

// HasRevision reports whether the pin carries a commit hash.
func (p Pin) HasRevision() bool {
	return p.Revision != ""
}

// MatchesIdentity reports whether name equals the pin identity, ignoring case.
func (p Pin) MatchesIdentity(name string) bool {
	return strings.EqualFold(p.Identity, name)
}

// String returns "identity@version", or "identity@revision" for unresolved pins.
func (p Pin) String() string {
	switch {
	case p.HasResolvedVersion():
		return p.Identity + "@" + p.Version.String()
	case p.HasRevision():
		return p.Identity + "@" + p.Revision
	default:
		return p.Identity
	}
}

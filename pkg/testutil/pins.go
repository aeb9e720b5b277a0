package testutil

import (
	"strings"

	"github.com/ajxudir/spmoutdated/pkg/pin"
	"github.com/ajxudir/spmoutdated/pkg/version"
)

// PinBuilder provides a fluent API for building test pins.
//
// Use this builder to construct Pin values for testing purposes
// without needing to set all fields manually.
type PinBuilder struct {
	p pin.Pin
}

// NewPin creates a new PinBuilder for the given identity.
//
// The location defaults to a GitHub URL derived from the identity.
//
// Parameters:
//   - identity: Package identity, e.g. "alamofire"
//
// Returns:
//   - *PinBuilder: New builder instance ready for method chaining
func NewPin(identity string) *PinBuilder {
	return &PinBuilder{p: pin.Pin{
		Identity: identity,
		Location: "https://github.com/example/" + strings.ToLower(identity) + ".git",
	}}
}

// WithLocation sets the repository location.
func (b *PinBuilder) WithLocation(location string) *PinBuilder {
	b.p.Location = location
	return b
}

// WithRevision sets the pinned commit.
func (b *PinBuilder) WithRevision(revision string) *PinBuilder {
	b.p.Revision = revision
	return b
}

// WithVersion sets the pinned version. It panics when text is not a valid
// version.
//
// Parameters:
//   - text: Version text, e.g. "5.4.0"
//
// Returns:
//   - *PinBuilder: Self for method chaining
func (b *PinBuilder) WithVersion(text string) *PinBuilder {
	v := version.MustParse(text)
	b.p.Version = &v
	return b
}

// Build returns the built pin. The builder can be reused after calling Build.
func (b *PinBuilder) Build() pin.Pin {
	p := b.p
	if p.Version != nil {
		v := *p.Version
		p.Version = &v
	}
	return p
}

// VersionPin is a shortcut for a pin with a location, a revision and a version.
//
// Parameters:
//   - identity: Package identity
//   - location: Repository location
//   - versionText: Pinned version
//
// Returns:
//   - pin.Pin: The pin
func VersionPin(identity, location, versionText string) pin.Pin {
	return NewPin(identity).
		WithLocation(location).
		WithRevision(strings.Repeat("a", 40)).
		WithVersion(versionText).
		Build()
}

// BranchPin is a shortcut for a pin tracking a branch, with a revision and no version.
func BranchPin(identity, location, revision string) pin.Pin {
	return NewPin(identity).WithLocation(location).WithRevision(revision).Build()
}

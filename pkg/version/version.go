// Package version implements the semantic version model used to compare
// pinned package versions against the versions published as repository tags.
//
// A Version is MAJOR.MINOR.PATCH with optional pre-release identifiers and
// build metadata. Ordering follows semantic versioning precedence; build
// metadata never affects ordering or equality.
package version

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ParseError is returned when text is not a MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD] version.
//
// Parse errors are never fatal: callers drop the offending item.
type ParseError struct {
	Input string
	Err   error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid version %q: %v", e.Input, e.Err)
}

// Unwrap returns the underlying parser error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Version is an immutable parsed semantic version.
//
// The zero Version is not valid; obtain values through Parse or MustParse.
type Version struct {
	sv *semver.Version
}

// Parse parses text as a strict semantic version.
//
// A leading "v" is not accepted here; tag normalization strips it before
// parsing. All three numeric components are required, and surrounding
// whitespace is rejected.
//
// Parameters:
//   - text: Version string such as "5.4.0" or "6.0.0-beta.1+exp.sha"
//
// Returns:
//   - Version: The parsed version
//   - error: *ParseError when text is malformed
func Parse(text string) (Version, error) {
	sv, err := semver.StrictNewVersion(text)
	if err != nil {
		return Version{}, &ParseError{Input: text, Err: err}
	}
	return Version{sv: sv}, nil
}

// MustParse is like Parse but panics on malformed input. Intended for tests and constants.
func MustParse(text string) Version {
	v, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return v
}

// IsValid reports whether v was produced by a successful parse.
func (v Version) IsValid() bool {
	return v.sv != nil
}

// Major returns the major component.
func (v Version) Major() uint64 { return v.sv.Major() }

// Minor returns the minor component.
func (v Version) Minor() uint64 { return v.sv.Minor() }

// Patch returns the patch component.
func (v Version) Patch() uint64 { return v.sv.Patch() }

// Prerelease returns the dot-separated pre-release identifiers, or nil.
func (v Version) Prerelease() []string {
	pre := v.sv.Prerelease()
	if pre == "" {
		return nil
	}
	return strings.Split(pre, ".")
}

// IsPrerelease reports whether v carries pre-release identifiers.
func (v Version) IsPrerelease() bool {
	return v.sv.Prerelease() != ""
}

// Metadata returns the build metadata, which is ignored for ordering.
func (v Version) Metadata() string {
	return v.sv.Metadata()
}

// String formats v canonically as MAJOR.MINOR.PATCH[-PRERELEASE][+BUILD].
func (v Version) String() string {
	if v.sv == nil {
		return ""
	}
	return v.sv.String()
}

// Compare returns -1, 0 or +1 when a is lower than, equal to, or greater than b.
//
// Major, minor and patch compare numerically. When they are equal, a version
// without pre-release identifiers is greater than one with them; otherwise
// identifiers compare left to right (numeric identifiers numerically and
// below alphanumeric ones, alphanumeric identifiers lexically) and a shorter
// identifier list that prefixes the longer one sorts first.
func Compare(a, b Version) int {
	if c := compareUint(a.Major(), b.Major()); c != 0 {
		return c
	}
	if c := compareUint(a.Minor(), b.Minor()); c != 0 {
		return c
	}
	if c := compareUint(a.Patch(), b.Patch()); c != 0 {
		return c
	}
	return comparePrerelease(a.Prerelease(), b.Prerelease())
}

func compareUint(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// comparePrerelease orders identifier lists by semver precedence. Numeric
// identifiers of any length compare by value, which the strict parser
// guarantees carry no leading zeros.
func comparePrerelease(a, b []string) int {
	switch {
	case len(a) == 0 && len(b) == 0:
		return 0
	case len(a) == 0:
		return 1
	case len(b) == 0:
		return -1
	}
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareIdentifier(a[i], b[i]); c != 0 {
			return c
		}
	}
	return compareUint(uint64(len(a)), uint64(len(b)))
}

func compareIdentifier(a, b string) int {
	an, bn := isNumeric(a), isNumeric(b)
	switch {
	case an && bn:
		if c := compareUint(uint64(len(a)), uint64(len(b))); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	case an:
		return -1
	case bn:
		return 1
	}
	return strings.Compare(a, b)
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Equal reports whether a and b have the same precedence.
func Equal(a, b Version) bool {
	return Compare(a, b) == 0
}

// LessThan reports whether a sorts before b.
func LessThan(a, b Version) bool {
	return Compare(a, b) < 0
}

// MajorDelta returns a.major - b.major.
func MajorDelta(a, b Version) int64 {
	return int64(a.Major()) - int64(b.Major())
}

// Sort sorts versions ascending in place. The sort is stable, so entries that
// compare equal keep their relative order.
func Sort(versions []Version) {
	sort.SliceStable(versions, func(i, j int) bool {
		return LessThan(versions[i], versions[j])
	})
}

// Max returns the greatest version and true, or false for an empty slice.
// When several versions compare equal the last occurrence wins.
func Max(versions []Version) (Version, bool) {
	if len(versions) == 0 {
		return Version{}, false
	}
	best := versions[0]
	for _, v := range versions[1:] {
		if Compare(v, best) >= 0 {
			best = v
		}
	}
	return best, true
}

// MarshalText implements encoding.TextMarshaler.
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

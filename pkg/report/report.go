// Package report assembles the result of an outdated check.
package report

import (
	"sort"

	"github.com/ajxudir/spmoutdated/pkg/pin"
	"github.com/ajxudir/spmoutdated/pkg/version"
)

// OutdatedPackage is a pinned package for which a newer qualifying version exists.
//
// Current and Latest always differ by value.
//
// Fields:
//   - Identity: Package identity from the lockfile
//   - Current: Pinned version
//   - Latest: Greatest version that passed the active filters
//   - Location: Repository location
type OutdatedPackage struct {
	Identity string
	Current  version.Version
	Latest   version.Version
	Location string
}

// Result is the outcome of one run.
//
// Every checked pin is either in Outdated, in Ignored, or was up-to-date and
// dropped.
//
// Fields:
//   - Outdated: Outdated packages sorted by identity (ordinal, case-sensitive)
//   - Ignored: Pins without a resolved version, in lockfile order
type Result struct {
	Outdated []OutdatedPackage
	Ignored  []pin.Pin
}

// HasOutdated reports whether at least one package is outdated.
func (r Result) HasOutdated() bool {
	return len(r.Outdated) > 0
}

// Assemble builds a Result from unordered outdated packages and ordered ignored pins.
//
// Outdated packages are sorted by identity. The ignored pins keep their
// relative order. Neither input is modified.
//
// Parameters:
//   - outdated: Outdated packages in any order
//   - ignored: Pins without a resolved version, in lockfile order
//
// Returns:
//   - Result: Result with non-nil slices
func Assemble(outdated []OutdatedPackage, ignored []pin.Pin) Result {
	sorted := make([]OutdatedPackage, len(outdated))
	copy(sorted, outdated)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Identity < sorted[j].Identity
	})

	kept := make([]pin.Pin, len(ignored))
	copy(kept, ignored)

	return Result{Outdated: sorted, Ignored: kept}
}

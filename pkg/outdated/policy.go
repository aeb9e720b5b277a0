package outdated

import (
	"github.com/ajxudir/spmoutdated/pkg/pin"
	"github.com/ajxudir/spmoutdated/pkg/version"
)

// EvaluatePackage decides whether p has a qualifying newer version.
//
// It performs the following operations:
//   - Drops pre-release versions when ignorePrerelease is set
//   - Keeps only versions with a greater major component when onlyMajorUpdates is set
//   - Picks the greatest remaining version as the candidate
//
// The package is outdated when a candidate exists and differs from the pinned
// version by value. The pinned version does not need to appear in versions.
//
// Parameters:
//   - p: Pin with a resolved version
//   - versions: Available versions in any order
//   - ignorePrerelease: Whether pre-release versions are excluded
//   - onlyMajorUpdates: Whether only major version bumps qualify
//
// Returns:
//   - version.Version: The candidate, meaningful only when the bool is true
//   - bool: True when p is outdated
func EvaluatePackage(p pin.Pin, versions []version.Version, ignorePrerelease, onlyMajorUpdates bool) (version.Version, bool) {
	if !p.HasResolvedVersion() {
		return version.Version{}, false
	}
	current := *p.Version

	candidates := make([]version.Version, 0, len(versions))
	for _, v := range versions {
		if ignorePrerelease && v.IsPrerelease() {
			continue
		}
		if onlyMajorUpdates && version.MajorDelta(v, current) <= 0 {
			continue
		}
		candidates = append(candidates, v)
	}

	latest, ok := version.Max(candidates)
	if !ok || version.Equal(latest, current) {
		return version.Version{}, false
	}
	return latest, true
}

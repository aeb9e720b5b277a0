package output

import (
	"encoding/xml"

	"github.com/ajxudir/spmoutdated/pkg/report"
)

// OutdatedResult is the structured form of a report.
//
// Fields:
//   - XMLName: XML root element name (used only for XML marshaling)
//   - Summary: Package counts
//   - Packages: Outdated packages, sorted by identity
//   - IgnoredPackages: Packages without a resolved version
type OutdatedResult struct {
	XMLName         xml.Name        `json:"-" xml:"outdatedResult"`
	Summary         OutdatedSummary `json:"summary" xml:"summary"`
	Packages        []OutdatedEntry `json:"outdatedPackages" xml:"outdatedPackages>package"`
	IgnoredPackages []IgnoredEntry  `json:"ignoredPackages" xml:"ignoredPackages>package"`
}

// OutdatedSummary holds the package counts of a result.
type OutdatedSummary struct {
	OutdatedPackages int `json:"outdated" xml:"outdated"`
	IgnoredPackages  int `json:"ignored" xml:"ignored"`
}

// OutdatedEntry is one outdated package.
//
// Fields:
//   - Identity: Package identity
//   - Current: Pinned version
//   - Latest: Latest qualifying version
//   - URL: Repository location
type OutdatedEntry struct {
	Identity string `json:"identity" xml:"identity"`
	Current  string `json:"currentVersion" xml:"currentVersion"`
	Latest   string `json:"latestVersion" xml:"latestVersion"`
	URL      string `json:"url" xml:"url"`
}

// IgnoredEntry is one package that was not checked because it has no version.
//
// Fields:
//   - Identity: Package identity
//   - Revision: Pinned commit hash, omitted if empty
//   - URL: Repository location
type IgnoredEntry struct {
	Identity string `json:"identity" xml:"identity"`
	Revision string `json:"revision,omitempty" xml:"revision,omitempty"`
	URL      string `json:"url" xml:"url"`
}

// NewOutdatedResult converts a report into its structured form.
//
// Collections are always non-nil so that JSON output has empty arrays
// instead of null.
func NewOutdatedResult(r report.Result) *OutdatedResult {
	result := &OutdatedResult{
		Summary: OutdatedSummary{
			OutdatedPackages: len(r.Outdated),
			IgnoredPackages:  len(r.Ignored),
		},
		Packages:        make([]OutdatedEntry, 0, len(r.Outdated)),
		IgnoredPackages: make([]IgnoredEntry, 0, len(r.Ignored)),
	}
	for _, o := range r.Outdated {
		result.Packages = append(result.Packages, OutdatedEntry{
			Identity: o.Identity,
			Current:  o.Current.String(),
			Latest:   o.Latest.String(),
			URL:      o.Location,
		})
	}
	for _, p := range r.Ignored {
		result.IgnoredPackages = append(result.IgnoredPackages, IgnoredEntry{
			Identity: p.Identity,
			Revision: p.Revision,
			URL:      p.Location,
		})
	}
	return result
}

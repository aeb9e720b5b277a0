// Package tags discovers the versions a repository publishes as git tags.
//
// Discovery is split into a transport (RefLister), which lists raw references
// for a repository location, and a Discoverer, which turns those references
// into an ascending list of semantic versions.
package tags

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/ajxudir/spmoutdated/pkg/errors"
	"github.com/ajxudir/spmoutdated/pkg/pin"
	"github.com/ajxudir/spmoutdated/pkg/verbose"
	"github.com/ajxudir/spmoutdated/pkg/version"
)

// RefLister lists the tag references of a remote repository.
//
//go:generate mockgen -source=discovery.go -destination=mocks/mock_ref_lister.go -package=mocks
type RefLister interface {
	// ListRefs returns every tag reference published at location.
	ListRefs(ctx context.Context, location string) ([]Ref, error)
}

// Discoverer resolves the available versions of a pinned package.
//
// A Discoverer holds no per-run state and is safe for concurrent use as long
// as its RefLister is.
type Discoverer struct {
	refs   RefLister
	logger *log.Logger
}

// NewDiscoverer creates a Discoverer backed by refs.
//
// Parameters:
//   - refs: Transport used to list repository tags
//   - logger: Diagnostic sink, nil for none
//
// Returns:
//   - *Discoverer: Ready-to-use discoverer
func NewDiscoverer(refs RefLister, logger *log.Logger) *Discoverer {
	return &Discoverer{refs: refs, logger: verbose.OrDiscard(logger)}
}

// AvailableVersions lists the versions published for p's repository.
//
// It performs the following operations:
//   - Step 1: Lists the repository references through the transport
//   - Step 2: Drops dereferenced entries and normalizes tag names
//   - Step 3: Parses each name, silently dropping those that are not versions
//   - Step 4: Sorts the result ascending, keeping duplicates
//
// A transport failure is logged at debug level and yields an empty list. It
// never reaches the caller as an error.
//
// Parameters:
//   - ctx: Context for cancellation control
//   - p: The pin whose repository is queried
//
// Returns:
//   - []version.Version: Ascending versions, possibly empty
func (d *Discoverer) AvailableVersions(ctx context.Context, p pin.Pin) []version.Version {
	refs, err := d.refs.ListRefs(ctx, p.Location)
	if err != nil {
		lookupErr := &errors.LookupError{Identity: p.Identity, Location: p.Location, Err: err}
		d.logger.Debug("tag lookup failed", "package", p.Identity, "err", lookupErr)
		return []version.Version{}
	}

	versions := ParseVersions(NormalizeRefs(refs), d.logger)
	version.Sort(versions)
	d.logger.Debug("tags resolved", "package", p.Identity, "versions", len(versions))
	return versions
}

// ParseVersions parses normalized tag names, dropping the ones that are not
// semantic versions. Input order is preserved.
func ParseVersions(names []string, logger *log.Logger) []version.Version {
	logger = verbose.OrDiscard(logger)
	versions := make([]version.Version, 0, len(names))
	for _, name := range names {
		v, err := version.Parse(name)
		if err != nil {
			logger.Debug("skipping tag", "tag", name, "err", err)
			continue
		}
		versions = append(versions, v)
	}
	return versions
}

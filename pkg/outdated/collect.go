// Package outdated decides which pinned packages have newer versions upstream.
//
// Collect fans out one version lookup per version-pinned package, waits for
// all of them, and classifies every pin with EvaluatePackage. A failed
// lookup only affects its own package.
package outdated

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/ajxudir/spmoutdated/pkg/pin"
	"github.com/ajxudir/spmoutdated/pkg/report"
	"github.com/ajxudir/spmoutdated/pkg/verbose"
	"github.com/ajxudir/spmoutdated/pkg/version"
)

// DefaultConcurrency is the lookup limit used when Options.Concurrency is not positive.
const DefaultConcurrency = 8

// VersionSource provides the versions published for a pinned package.
//
//go:generate mockgen -source=collect.go -destination=mocks/mock_version_source.go -package=mocks
type VersionSource interface {
	// AvailableVersions returns the ascending versions for p. Failures are
	// reported as an empty list.
	AvailableVersions(ctx context.Context, p pin.Pin) []version.Version
}

// Options control one collection run.
//
// Fields:
//   - IgnorePrerelease: Drop versions carrying pre-release identifiers before choosing a candidate
//   - OnlyMajorUpdates: Only consider versions whose major component is greater than the current one
//   - Concurrency: Maximum number of lookups in flight, DefaultConcurrency when not positive
//   - Logger: Diagnostic sink, nil for none
//   - OnChecked: Called after each lookup completes, from the lookup goroutine; may be nil
type Options struct {
	IgnorePrerelease bool
	OnlyMajorUpdates bool
	Concurrency      int
	Logger           *log.Logger
	OnChecked        func(p pin.Pin)
}

func (o Options) limit() int {
	if o.Concurrency > 0 {
		return o.Concurrency
	}
	return DefaultConcurrency
}

// Collect checks every pin against its upstream versions.
//
// It performs the following operations:
//   - Step 1: Splits pins into version-resolved and unresolved; unresolved pins are ignored
//   - Step 2: Looks up versions for each resolved pin on a bounded errgroup
//   - Step 3: Waits for every lookup; no lookup cancels another
//   - Step 4: Classifies each resolved pin with EvaluatePackage
//   - Step 5: Assembles the sorted report
//
// Only pins with a resolved version are ever passed to src.
//
// Parameters:
//   - ctx: Context passed to every lookup
//   - src: Version source, usually a *tags.Discoverer
//   - pins: Pins to check, in lockfile order
//   - opts: Filters and limits for this run
//
// Returns:
//   - report.Result: Outdated packages sorted by identity and ignored pins in input order
func Collect(ctx context.Context, src VersionSource, pins []pin.Pin, opts Options) report.Result {
	logger := verbose.OrDiscard(opts.Logger)

	eligible := make([]*pin.Pin, 0, len(pins))
	var ignored []pin.Pin
	for i := range pins {
		if pins[i].HasResolvedVersion() {
			eligible = append(eligible, &pins[i])
			continue
		}
		logger.Debug("ignoring package without version", "package", pins[i].Identity)
		ignored = append(ignored, pins[i])
	}

	available := make(map[*pin.Pin][]version.Version, len(eligible))
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(opts.limit())
	for _, p := range eligible {
		g.Go(func() error {
			versions := src.AvailableVersions(ctx, *p)

			mu.Lock()
			available[p] = versions
			mu.Unlock()

			if opts.OnChecked != nil {
				opts.OnChecked(*p)
			}
			return nil
		})
	}
	_ = g.Wait()

	var outdated []report.OutdatedPackage
	for _, p := range eligible {
		latest, ok := EvaluatePackage(*p, available[p], opts.IgnorePrerelease, opts.OnlyMajorUpdates)
		if !ok {
			logger.Debug("package is up to date", "package", p.Identity, "version", p.Version.String())
			continue
		}
		logger.Debug("package is outdated", "package", p.Identity, "current", p.Version.String(), "latest", latest.String())
		outdated = append(outdated, report.OutdatedPackage{
			Identity: p.Identity,
			Current:  *p.Version,
			Latest:   latest,
			Location: p.Location,
		})
	}

	return report.Assemble(outdated, ignored)
}

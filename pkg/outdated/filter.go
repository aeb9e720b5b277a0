package outdated

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ajxudir/spmoutdated/pkg/pin"
	"github.com/ajxudir/spmoutdated/pkg/verbose"
)

// FilterDirect keeps the pins declared as direct dependencies.
//
// A nil direct list means the manifest could not be read: every pin is kept
// and a warning is logged. A non-nil empty list keeps nothing.
//
// Parameters:
//   - pins: Pins from the lockfile
//   - direct: Direct dependency names from the manifest, nil when unavailable
//   - logger: Diagnostic sink, nil for none
//
// Returns:
//   - []pin.Pin: Pins whose identity matches a direct dependency, ignoring case
func FilterDirect(pins []pin.Pin, direct []string, logger *log.Logger) []pin.Pin {
	logger = verbose.OrDiscard(logger)
	if direct == nil {
		logger.Warn("direct dependencies unavailable, checking all packages")
		return pins
	}

	names := lowerSet(direct)
	kept := make([]pin.Pin, 0, len(pins))
	for _, p := range pins {
		if _, ok := names[strings.ToLower(p.Identity)]; ok {
			kept = append(kept, p)
			continue
		}
		logger.Debug("skipping indirect package", "package", p.Identity)
	}
	return kept
}

// FilterIgnored removes the pins named in ignore, ignoring case.
func FilterIgnored(pins []pin.Pin, ignore []string, logger *log.Logger) []pin.Pin {
	if len(ignore) == 0 {
		return pins
	}
	logger = verbose.OrDiscard(logger)

	names := lowerSet(ignore)
	kept := make([]pin.Pin, 0, len(pins))
	for _, p := range pins {
		if _, ok := names[strings.ToLower(p.Identity)]; ok {
			logger.Debug("skipping package from ignore list", "package", p.Identity)
			continue
		}
		kept = append(kept, p)
	}
	return kept
}

func lowerSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[strings.ToLower(strings.TrimSpace(n))] = struct{}{}
	}
	return set
}

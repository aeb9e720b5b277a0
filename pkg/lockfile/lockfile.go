// Package lockfile reads the pins recorded in a SwiftPM Package.resolved file.
//
// Both the original schema (version 1, pins nested under "object") and the
// current schema (versions 2 and 3, top-level "pins") are supported. Each
// schema has its own decoder; decoders are tried in sequence and the first
// one that accepts the document wins.
package lockfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/ajxudir/spmoutdated/pkg/errors"
	"github.com/ajxudir/spmoutdated/pkg/pin"
	"github.com/ajxudir/spmoutdated/pkg/verbose"
)

// FileName is the name of the SwiftPM lockfile.
const FileName = "Package.resolved"

// searchPatterns lists the lockfile locations relative to a project directory,
// in priority order.
var searchPatterns = []string{
	FileName,
	filepath.Join("*.xcworkspace", "xcshareddata", "swiftpm", FileName),
	filepath.Join("*.xcodeproj", "project.xcworkspace", "xcshareddata", "swiftpm", FileName),
}

// Locate finds the lockfile for path.
//
// When path is a regular file it is returned unchanged. When it is a
// directory the search patterns are tried in order; glob matches are sorted
// and the first match wins.
//
// Parameters:
//   - path: Lockfile path or project directory
//
// Returns:
//   - string: Path of the lockfile
//   - error: *errors.NotFoundError when no lockfile exists
func Locate(path string) (string, error) {
	if path == "" {
		path = "."
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", &errors.NotFoundError{Path: path, Searched: []string{path}}
	}
	if !info.IsDir() {
		return path, nil
	}

	searched := make([]string, 0, len(searchPatterns))
	for _, pattern := range searchPatterns {
		full := filepath.Join(path, pattern)
		searched = append(searched, full)

		matches, err := filepath.Glob(full)
		if err != nil || len(matches) == 0 {
			continue
		}
		sort.Strings(matches)
		for _, m := range matches {
			if fi, err := os.Stat(m); err == nil && !fi.IsDir() {
				return m, nil
			}
		}
	}

	return "", &errors.NotFoundError{Path: path, Searched: searched}
}

// Load reads and decodes the lockfile at path.
//
// Parameters:
//   - path: Path of a Package.resolved file
//   - logger: Diagnostic sink, nil for none
//
// Returns:
//   - []pin.Pin: Pins in file order
//   - error: *errors.NotReadableError when the file cannot be read or decoded
func Load(path string, logger *log.Logger) ([]pin.Pin, error) {
	logger = verbose.OrDiscard(logger)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.NotReadableError{Path: path, Err: err}
	}

	pins, err := Parse(data, logger)
	if err != nil {
		return nil, &errors.NotReadableError{Path: path, Err: err}
	}
	logger.Debug("lockfile loaded", "path", path, "pins", len(pins))
	return pins, nil
}

// Parse decodes lockfile contents.
//
// A pin whose version string is malformed is kept without a version, so it
// is reported as ignored; the parse failure is logged at debug level.
//
// Parameters:
//   - data: Raw Package.resolved contents
//   - logger: Diagnostic sink, nil for none
//
// Returns:
//   - []pin.Pin: Pins in file order
//   - error: Error when the document is not JSON or uses an unknown schema version
func Parse(data []byte, logger *log.Logger) ([]pin.Pin, error) {
	logger = verbose.OrDiscard(logger)

	var header struct {
		Version int `json:"version"`
	}
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, fmt.Errorf("invalid lockfile JSON: %w", err)
	}

	for _, d := range decoders {
		if !d.accepts(header.Version) {
			continue
		}
		entries, err := d.decode(data)
		if err != nil {
			return nil, fmt.Errorf("invalid version %d lockfile: %w", header.Version, err)
		}
		return toPins(entries, logger), nil
	}

	return nil, fmt.Errorf("unsupported lockfile version %d", header.Version)
}

func toPins(entries []entry, logger *log.Logger) []pin.Pin {
	pins := make([]pin.Pin, 0, len(entries))
	for _, e := range entries {
		p, err := pin.New(e.identity, e.location, e.state.Revision, e.state.Version)
		if err != nil {
			logger.Debug("pin version is not a semantic version", "package", e.identity, "err", err)
		}
		pins = append(pins, p)
	}
	return pins
}

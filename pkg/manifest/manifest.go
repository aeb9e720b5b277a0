// Package manifest extracts the direct dependencies a project declares.
//
// Two manifest kinds are understood: a SwiftPM Package.swift and the Xcode
// project.pbxproj files that reference remote Swift packages. Extraction is
// text based; manifests are never evaluated.
package manifest

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ajxudir/spmoutdated/pkg/errors"
	"github.com/ajxudir/spmoutdated/pkg/verbose"
)

// Extractor reads direct dependency names from one kind of manifest.
type Extractor interface {
	// Name identifies the manifest kind in diagnostics.
	Name() string
	// Find returns the manifest files of this kind in dir, in priority order.
	Find(dir string) []string
	// Extract returns the dependency names declared in content, in declaration order.
	Extract(content []byte) []string
}

// extractors are tried in order; the first kind with a readable manifest wins.
var extractors = []Extractor{
	&PackageSwiftExtractor{},
	&XcodeProjectExtractor{},
}

// DirectDependencies returns the direct dependency names declared in dir.
//
// It performs the following operations:
//   - Tries each manifest kind in order and stops at the first one with a readable file
//   - Merges names from every file of that kind
//   - Deduplicates case-insensitively, keeping the first spelling
//
// When no manifest can be read a warning is logged and nil is returned, which
// callers treat as "no filtering".
//
// Parameters:
//   - dir: Project directory
//   - logger: Diagnostic sink, nil for none
//
// Returns:
//   - []string: Direct dependency names, or nil when unavailable
func DirectDependencies(dir string, logger *log.Logger) []string {
	logger = verbose.OrDiscard(logger)

	names, err := directDependencies(dir, logger)
	if err != nil {
		logger.Warn("direct dependencies unavailable", "err", err)
		return nil
	}
	return names
}

func directDependencies(dir string, logger *log.Logger) ([]string, error) {
	var lastErr error
	for _, ex := range extractors {
		files := ex.Find(dir)
		if len(files) == 0 {
			continue
		}

		var names []string
		read := 0
		for _, file := range files {
			content, err := os.ReadFile(file)
			if err != nil {
				lastErr = err
				logger.Debug("manifest not readable", "path", file, "err", err)
				continue
			}
			read++
			names = append(names, ex.Extract(content)...)
		}
		if read == 0 {
			continue
		}

		names = dedupe(names)
		logger.Debug("direct dependencies extracted", "manifest", ex.Name(), "count", len(names))
		return names, nil
	}
	return nil, &errors.ManifestUnavailableError{Dir: dir, Err: lastErr}
}

// IdentityFromURL derives a package identity from a repository location.
//
// The last path component is used with any trailing "/" and ".git" removed,
// so "https://github.com/Alamofire/Alamofire.git" becomes "Alamofire" and
// "git@github.com:apple/swift-log.git" becomes "swift-log".
//
// Parameters:
//   - url: Repository URL, SSH location or local path
//
// Returns:
//   - string: The derived identity, empty when url has no usable component
func IdentityFromURL(url string) string {
	s := strings.TrimRight(strings.TrimSpace(url), "/")
	s = strings.TrimSuffix(s, ".git")
	s = strings.TrimRight(s, "/")
	if i := strings.LastIndexAny(s, "/:"); i >= 0 {
		s = s[i+1:]
	}
	return s
}

func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		key := strings.ToLower(n)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, n)
	}
	return out
}

func globSorted(dir, pattern string) []string {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil
	}
	sort.Strings(matches)
	return matches
}

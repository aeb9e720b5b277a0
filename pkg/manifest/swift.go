package manifest

import (
	"path/filepath"
	"regexp"
)

var (
	blockComment = regexp.MustCompile(`(?s)/\*.*?\*/`)
	lineComment  = regexp.MustCompile(`(?m)^\s*//.*$`)

	// packageDecl matches .package(url:), .package(name:url:), .package(id:) and .package(path:).
	packageDecl = regexp.MustCompile(`\.package\s*\(\s*(?:name\s*:\s*"(?P<name>[^"]*)"\s*,\s*)?(?P<kind>url|id|path)\s*:\s*"(?P<value>[^"]+)"`)

	// repositoryURL matches remote package references in project.pbxproj files.
	repositoryURL = regexp.MustCompile(`repositoryURL\s*=\s*"?(?P<value>[^";\s]+)"?\s*;`)
)

// PackageSwiftExtractor reads dependencies from a SwiftPM Package.swift.
type PackageSwiftExtractor struct{}

// Name implements Extractor.
func (e *PackageSwiftExtractor) Name() string { return "Package.swift" }

// Find implements Extractor.
func (e *PackageSwiftExtractor) Find(dir string) []string {
	return globSorted(dir, "Package.swift")
}

// Extract returns one identity per dependency declaration. For
// .package(name:url:) both the declared name and the URL identity are
// returned, since older lockfiles key pins by name.
func (e *PackageSwiftExtractor) Extract(content []byte) []string {
	text := blockComment.ReplaceAllString(string(content), "")
	text = lineComment.ReplaceAllString(text, "")

	var names []string
	for _, m := range namedMatches(packageDecl, text) {
		if m["name"] != "" {
			names = append(names, m["name"])
		}
		switch m["kind"] {
		case "id":
			names = append(names, m["value"])
		case "url", "path":
			names = append(names, IdentityFromURL(m["value"]))
		}
	}
	return names
}

// XcodeProjectExtractor reads remote package references from Xcode projects.
type XcodeProjectExtractor struct{}

// Name implements Extractor.
func (e *XcodeProjectExtractor) Name() string { return "project.pbxproj" }

// Find implements Extractor.
func (e *XcodeProjectExtractor) Find(dir string) []string {
	return globSorted(dir, filepath.Join("*.xcodeproj", "project.pbxproj"))
}

// Extract implements Extractor.
func (e *XcodeProjectExtractor) Extract(content []byte) []string {
	var names []string
	for _, m := range namedMatches(repositoryURL, string(content)) {
		names = append(names, IdentityFromURL(m["value"]))
	}
	return names
}

// namedMatches returns every match of re in text as a map of named groups.
func namedMatches(re *regexp.Regexp, text string) []map[string]string {
	groups := re.SubexpNames()
	var out []map[string]string
	for _, match := range re.FindAllStringSubmatch(text, -1) {
		m := make(map[string]string, len(groups))
		for i, g := range groups {
			if g != "" {
				m[g] = match[i]
			}
		}
		out = append(out, m)
	}
	return out
}

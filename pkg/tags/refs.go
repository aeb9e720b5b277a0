package tags

import (
	"bufio"
	"bytes"
	"strings"
	"unicode"
)

const (
	tagNamespace    = "refs/tags/"
	dereferenceMark = "^{}"
)

// Ref is one reference returned by a remote tag-listing query.
//
// Fields:
//   - Name: Reference name without the dereference suffix, e.g. "refs/tags/5.4.0"
//   - Dereferenced: True for "^{}" entries that point at the commit behind an annotated tag
type Ref struct {
	Name         string
	Dereferenced bool
}

// ParseLsRemote parses the output of `git ls-remote --tags`.
//
// Each non-empty line is "<object>\t<refname>". Lines with a single field are
// taken as the reference name itself. A trailing "^{}" on the name marks the
// entry as dereferenced and is removed from Name.
//
// Parameters:
//   - output: Raw command output
//
// Returns:
//   - []Ref: References in output order
func ParseLsRemote(output []byte) []Ref {
	var refs []Ref
	scanner := bufio.NewScanner(bytes.NewReader(output))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		name := fields[len(fields)-1]
		ref := Ref{Name: name}
		if strings.HasSuffix(name, dereferenceMark) {
			ref.Name = strings.TrimSuffix(name, dereferenceMark)
			ref.Dereferenced = true
		}
		refs = append(refs, ref)
	}
	return refs
}

// NormalizeTag turns a reference name into a candidate version string.
//
// The "refs/tags/" namespace is stripped, then one leading "v" is stripped
// only when a digit follows it ("v5.4.0" becomes "5.4.0", "vapor" and
// "V5.4.0" are left alone).
//
// Parameters:
//   - name: Reference or tag name
//
// Returns:
//   - string: Normalized tag text
func NormalizeTag(name string) string {
	tag := strings.TrimPrefix(strings.TrimSpace(name), tagNamespace)
	if len(tag) > 1 && tag[0] == 'v' && unicode.IsDigit(rune(tag[1])) {
		tag = tag[1:]
	}
	return tag
}

// NormalizeRefs normalizes every non-dereferenced reference name.
//
// Dereferenced entries are dropped because the annotated tag they belong to
// also appears as a plain entry.
//
// Parameters:
//   - refs: References as returned by the transport
//
// Returns:
//   - []string: Normalized tag names in input order
func NormalizeRefs(refs []Ref) []string {
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref.Dereferenced || strings.HasSuffix(ref.Name, dereferenceMark) {
			continue
		}
		names = append(names, NormalizeTag(ref.Name))
	}
	return names
}

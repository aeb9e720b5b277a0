package manifest

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/spmoutdated/pkg/verbose"
)

const packageSwift = `// swift-tools-version:5.7
import PackageDescription

let package = Package(
    name: "App",
    dependencies: [
        .package(url: "https://github.com/Alamofire/Alamofire.git", from: "5.4.0"),
        .package(name: "Kingfisher", url: "https://github.com/onevcat/Kingfisher.git", .upToNextMajor(from: "7.0.0")),
        .package(id: "mona.LinkedList", from: "1.0.0"),
        .package(path: "../LocalKit"),
        // .package(url: "https://github.com/commented/Out.git", from: "1.0.0"),
        /* .package(url: "https://github.com/block/Commented.git", from: "1.0.0"), */
        .package(
            url: "git@github.com:apple/swift-log.git",
            exact: "1.4.0"
        ),
        .package(url: "https://github.com/alamofire/alamofire", from: "5.0.0"),
    ],
    targets: [.target(name: "App", dependencies: ["Alamofire"])]
)
`

const pbxproj = `/* Begin XCRemoteSwiftPackageReference section */
		8A1 /* XCRemoteSwiftPackageReference "Alamofire" */ = {
			isa = XCRemoteSwiftPackageReference;
			repositoryURL = "https://github.com/Alamofire/Alamofire.git";
			requirement = {
				kind = upToNextMajorVersion;
				minimumVersion = 5.4.0;
			};
		};
		8A2 /* XCRemoteSwiftPackageReference "swift-collections" */ = {
			isa = XCRemoteSwiftPackageReference;
			repositoryURL = https://github.com/apple/swift-collections;
		};
/* End XCRemoteSwiftPackageReference section */
`

// TestPackageSwiftExtract tests the behavior of PackageSwiftExtractor.Extract.
//
// It verifies:
//   - url, name+url, id and path declarations are recognized
//   - Commented-out declarations are skipped
//   - Multi-line declarations are recognized
func TestPackageSwiftExtract(t *testing.T) {
	names := (&PackageSwiftExtractor{}).Extract([]byte(packageSwift))
	assert.Equal(t, []string{
		"Alamofire",
		"Kingfisher", "Kingfisher",
		"mona.LinkedList",
		"LocalKit",
		"swift-log",
		"alamofire",
	}, names)
}

// TestXcodeProjectExtract tests the behavior of XcodeProjectExtractor.Extract.
func TestXcodeProjectExtract(t *testing.T) {
	names := (&XcodeProjectExtractor{}).Extract([]byte(pbxproj))
	assert.Equal(t, []string{"Alamofire", "swift-collections"}, names)
}

// TestIdentityFromURL tests the behavior of IdentityFromURL.
func TestIdentityFromURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"https://github.com/Alamofire/Alamofire.git", "Alamofire"},
		{"https://github.com/apple/swift-log", "swift-log"},
		{"https://github.com/apple/swift-log/", "swift-log"},
		{"https://github.com/apple/swift-log.git/", "swift-log"},
		{"git@github.com:apple/swift-nio.git", "swift-nio"},
		{"git@example.com:Repo.git", "Repo"},
		{"../LocalKit", "LocalKit"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IdentityFromURL(tt.in))
		})
	}
}

// TestDirectDependencies tests the behavior of DirectDependencies.
//
// It verifies:
//   - Package.swift is preferred and names are deduplicated case-insensitively
//   - Xcode projects are used when no Package.swift exists
//   - A directory without manifests yields nil and a warning
func TestDirectDependencies(t *testing.T) {
	t.Run("package swift", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "Package.swift"), []byte(packageSwift), 0o644))

		names := DirectDependencies(dir, nil)
		assert.Equal(t, []string{"Alamofire", "Kingfisher", "mona.LinkedList", "LocalKit", "swift-log"}, names)
	})

	t.Run("xcode project", func(t *testing.T) {
		dir := t.TempDir()
		projectDir := filepath.Join(dir, "App.xcodeproj")
		require.NoError(t, os.MkdirAll(projectDir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(projectDir, "project.pbxproj"), []byte(pbxproj), 0o644))

		names := DirectDependencies(dir, nil)
		assert.Equal(t, []string{"Alamofire", "swift-collections"}, names)
	})

	t.Run("no manifest", func(t *testing.T) {
		var buf bytes.Buffer
		names := DirectDependencies(t.TempDir(), verbose.New(&buf, true))
		assert.Nil(t, names)
		assert.Contains(t, buf.String(), "direct dependencies unavailable")
	})

	t.Run("manifest without dependencies", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "Package.swift"), []byte(`let package = Package(name: "Empty")`), 0o644))

		names := DirectDependencies(dir, nil)
		assert.NotNil(t, names)
		assert.Empty(t, names)
	})
}

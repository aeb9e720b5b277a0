package output

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/spmoutdated/pkg/pin"
	"github.com/ajxudir/spmoutdated/pkg/report"
	"github.com/ajxudir/spmoutdated/pkg/version"
)

func sampleResult() report.Result {
	return report.Assemble(
		[]report.OutdatedPackage{
			{
				Identity: "swift-log",
				Current:  version.MustParse("1.4.0"),
				Latest:   version.MustParse("1.5.3"),
				Location: "https://github.com/apple/swift-log.git",
			},
			{
				Identity: "Alamofire",
				Current:  version.MustParse("5.4.0"),
				Latest:   version.MustParse("5.6.0"),
				Location: "https://github.com/Alamofire/Alamofire.git",
			},
		},
		[]pin.Pin{{Identity: "SwiftyJSON", Location: "https://github.com/SwiftyJSON/SwiftyJSON.git", Revision: "b3dcd7d"}},
	)
}

func render(t *testing.T, format Format, result report.Result) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteResult(&buf, format, result))
	return buf.String()
}

// TestWriteResultTable tests the table format.
//
// It verifies:
//   - Rows are aligned and sorted by identity
//   - Ignored packages are listed after the table
//   - An empty report prints the up-to-date message
func TestWriteResultTable(t *testing.T) {
	want := strings.Join([]string{
		"Package    Current  Latest  URL",
		"---------  -------  ------  ------------------------------------------",
		"Alamofire  5.4.0    5.6.0   https://github.com/Alamofire/Alamofire.git",
		"swift-log  1.4.0    1.5.3   https://github.com/apple/swift-log.git",
		"",
		"Ignored packages (no resolved version):",
		"  SwiftyJSON@b3dcd7d",
		"",
	}, "\n")
	if diff := cmp.Diff(want, render(t, FormatTable, sampleResult())); diff != "" {
		t.Errorf("table output mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, UpToDateMessage+"\n", render(t, FormatTable, report.Assemble(nil, nil)))
}

// TestWriteResultMarkdown tests the markdown format.
func TestWriteResultMarkdown(t *testing.T) {
	got := render(t, FormatMarkdown, sampleResult())
	assert.Contains(t, got, "| Package | Current | Latest | URL |\n|---|---|---|---|\n")
	assert.Contains(t, got, "| Alamofire | 5.4.0 | 5.6.0 | https://github.com/Alamofire/Alamofire.git |\n")
	assert.Contains(t, got, "- `SwiftyJSON@b3dcd7d`\n")
	assert.Less(t, strings.Index(got, "Alamofire"), strings.Index(got, "swift-log"))

	assert.Equal(t, UpToDateMessage+"\n", render(t, FormatMarkdown, report.Result{}))
}

// TestWriteResultJSON tests the JSON format.
//
// It verifies:
//   - Outdated and ignored packages are encoded with stable keys
//   - Empty collections encode as empty arrays, not null
func TestWriteResultJSON(t *testing.T) {
	var decoded struct {
		Summary struct {
			Outdated int `json:"outdated"`
			Ignored  int `json:"ignored"`
		} `json:"summary"`
		OutdatedPackages []OutdatedEntry `json:"outdatedPackages"`
		IgnoredPackages  []IgnoredEntry  `json:"ignoredPackages"`
	}
	require.NoError(t, json.Unmarshal([]byte(render(t, FormatJSON, sampleResult())), &decoded))

	assert.Equal(t, 2, decoded.Summary.Outdated)
	assert.Equal(t, 1, decoded.Summary.Ignored)
	want := []OutdatedEntry{
		{Identity: "Alamofire", Current: "5.4.0", Latest: "5.6.0", URL: "https://github.com/Alamofire/Alamofire.git"},
		{Identity: "swift-log", Current: "1.4.0", Latest: "1.5.3", URL: "https://github.com/apple/swift-log.git"},
	}
	if diff := cmp.Diff(want, decoded.OutdatedPackages); diff != "" {
		t.Errorf("outdated packages mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []IgnoredEntry{{Identity: "SwiftyJSON", Revision: "b3dcd7d", URL: "https://github.com/SwiftyJSON/SwiftyJSON.git"}}, decoded.IgnoredPackages)

	empty := render(t, FormatJSON, report.Assemble(nil, nil))
	assert.Contains(t, empty, `"outdatedPackages": []`)
	assert.Contains(t, empty, `"ignoredPackages": []`)
}

// TestWriteResultXML tests the XML format.
func TestWriteResultXML(t *testing.T) {
	got := render(t, FormatXML, sampleResult())
	assert.True(t, strings.HasPrefix(got, xml.Header))

	var decoded OutdatedResult
	require.NoError(t, xml.Unmarshal([]byte(strings.TrimPrefix(got, xml.Header)), &decoded))
	require.Len(t, decoded.Packages, 2)
	assert.Equal(t, "Alamofire", decoded.Packages[0].Identity)
	require.Len(t, decoded.IgnoredPackages, 1)
	assert.Equal(t, "SwiftyJSON", decoded.IgnoredPackages[0].Identity)
}

// TestWriteResultCSV tests the CSV format.
func TestWriteResultCSV(t *testing.T) {
	want := "PACKAGE,CURRENT,LATEST,URL\n" +
		"Alamofire,5.4.0,5.6.0,https://github.com/Alamofire/Alamofire.git\n" +
		"swift-log,1.4.0,1.5.3,https://github.com/apple/swift-log.git\n"
	assert.Equal(t, want, render(t, FormatCSV, sampleResult()))
}

// TestWriteResultXcode tests the Xcode annotation format.
func TestWriteResultXcode(t *testing.T) {
	want := "warning: Dependency Alamofire is outdated (5.4.0 < 5.6.0)\n" +
		"warning: Dependency swift-log is outdated (1.4.0 < 1.5.3)\n"
	assert.Equal(t, want, render(t, FormatXcode, sampleResult()))
	assert.Empty(t, render(t, FormatXcode, report.Result{}))
}

// TestWriteResultUnsupported tests that unknown formats are rejected.
func TestWriteResultUnsupported(t *testing.T) {
	err := WriteResult(&bytes.Buffer{}, Format("html"), report.Result{})
	assert.Error(t, err)
}

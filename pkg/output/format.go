// Package output renders outdated-check results.
//
// The table and markdown formats are meant for people, xcode emits IDE
// annotations, and csv, json and xml are meant for tools.
package output

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/ajxudir/spmoutdated/pkg/errors"
)

// Format represents the output format type.
type Format string

const (
	// FormatTable is the default terminal table output.
	FormatTable Format = "table"
	// FormatMarkdown outputs a markdown table.
	FormatMarkdown Format = "markdown"
	// FormatJSON outputs data as JSON.
	FormatJSON Format = "json"
	// FormatXML outputs data as XML.
	FormatXML Format = "xml"
	// FormatCSV outputs data as comma-separated values.
	FormatCSV Format = "csv"
	// FormatXcode outputs one Xcode build warning per outdated package.
	FormatXcode Format = "xcode"
)

// Formats lists every supported format, default first.
func Formats() []Format {
	return []Format{FormatTable, FormatMarkdown, FormatJSON, FormatXML, FormatCSV, FormatXcode}
}

// FormatNames lists the supported format names, default first.
func FormatNames() []string {
	formats := Formats()
	names := make([]string, 0, len(formats))
	for _, f := range formats {
		names = append(names, string(f))
	}
	return names
}

// ParseFormat parses a format string into a Format type.
//
// The parsing is case-insensitive and an empty string selects FormatTable.
// "md" is accepted as an alias for markdown.
//
// Parameters:
//   - s: Format string to parse (e.g., "json", "Markdown", "XCODE")
//
// Returns:
//   - Format: The parsed format
//   - error: *errors.ValidationError listing the valid formats when s is unknown
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "table":
		return FormatTable, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	case "xml":
		return FormatXML, nil
	case "csv":
		return FormatCSV, nil
	case "xcode":
		return FormatXcode, nil
	default:
		return FormatTable, &errors.ValidationError{
			Field:     "format",
			Message:   fmt.Sprintf("unknown output format %q", s),
			ValidKeys: FormatNames(),
		}
	}
}

// IsStructuredFormat returns true if the format is meant for machine consumption.
//
// Structured formats (CSV, JSON, XML) never mix diagnostics or progress into
// their output.
//
// Parameters:
//   - f: The format to check
//
// Returns:
//   - bool: true if format is CSV, JSON, or XML
func IsStructuredFormat(f Format) bool {
	return f == FormatCSV || f == FormatJSON || f == FormatXML
}

// Formatter handles writing data in a specific format.
//
// Fields:
//   - format: The output format
//   - writer: Destination for formatted output
type Formatter struct {
	format Format
	writer io.Writer
}

// NewFormatter creates a new formatter for the given format and writer.
func NewFormatter(format Format, writer io.Writer) *Formatter {
	return &Formatter{
		format: format,
		writer: writer,
	}
}

// Format returns the current format.
func (f *Formatter) Format() Format {
	return f.format
}

// WriteCSV writes a header row and data rows as CSV.
//
// csv.Writer buffers all writes and only reports errors via Error() after Flush().
//
// Parameters:
//   - headers: Column headers for the CSV
//   - rows: Data rows, each with as many columns as headers
//
// Returns:
//   - error: When write or flush fails, returns the underlying error; otherwise returns nil
func (f *Formatter) WriteCSV(headers []string, rows [][]string) error {
	w := csv.NewWriter(f.writer)

	_ = w.Write(headers)
	for _, row := range rows {
		_ = w.Write(row)
	}

	w.Flush()
	return w.Error()
}

// WriteJSON writes data as indented JSON.
//
// Parameters:
//   - data: Data structure to encode as JSON
//
// Returns:
//   - error: When encoding fails, returns the underlying error; otherwise returns nil
func (f *Formatter) WriteJSON(data interface{}) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// WriteXML writes data as XML.
//
// It performs the following operations:
//   - Step 1: Writes the XML header (<?xml version="1.0"?>)
//   - Step 2: Encodes the data with 2-space indentation
//   - Step 3: Adds a trailing newline
//
// Parameters:
//   - data: Data structure to encode as XML (must have xml tags)
//
// Returns:
//   - error: When encoding fails, returns the underlying error; otherwise returns nil
func (f *Formatter) WriteXML(data interface{}) error {
	_, _ = fmt.Fprint(f.writer, xml.Header)
	encoder := xml.NewEncoder(f.writer)
	encoder.Indent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(f.writer)
	return nil
}

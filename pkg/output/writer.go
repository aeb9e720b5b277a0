package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ajxudir/spmoutdated/pkg/report"
)

// UpToDateMessage is printed by the human-readable formats when nothing is outdated.
const UpToDateMessage = "Everything is up-to-date!"

// WriteResult writes a report in the specified format.
//
// It performs the following operations:
//   - Step 1: Creates a formatter for the requested format
//   - Step 2: Writes the report using format-specific logic
//
// Parameters:
//   - w: Destination writer for the output
//   - format: Output format
//   - result: Report to write
//
// Returns:
//   - error: When format is unsupported, returns an error; when write fails, returns the underlying error; otherwise returns nil
func WriteResult(w io.Writer, format Format, result report.Result) error {
	formatter := NewFormatter(format, w)

	switch format {
	case FormatTable:
		return writeTable(w, result)
	case FormatMarkdown:
		return writeMarkdown(w, result)
	case FormatJSON:
		return formatter.WriteJSON(NewOutdatedResult(result))
	case FormatXML:
		return formatter.WriteXML(NewOutdatedResult(result))
	case FormatCSV:
		return writeCSV(formatter, result)
	case FormatXcode:
		return writeXcode(w, result)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// writeTable writes the plain terminal table followed by ignored packages.
func writeTable(w io.Writer, result report.Result) error {
	if !result.HasOutdated() {
		_, _ = fmt.Fprintln(w, UpToDateMessage)
	} else {
		table := NewTable().
			AddColumn("Package").
			AddColumn("Current").
			AddColumn("Latest").
			AddColumn("URL")
		rows := outdatedRows(result)
		for _, row := range rows {
			table.UpdateWidths(row...)
		}

		table.Fprint(w)
		for _, row := range rows {
			_, _ = fmt.Fprintln(w, table.FormatRow(row...))
		}
	}

	if len(result.Ignored) > 0 {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, "Ignored packages (no resolved version):")
		for _, p := range result.Ignored {
			_, err := fmt.Fprintf(w, "  %s\n", p.String())
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// writeMarkdown writes a GitHub-flavored markdown table.
func writeMarkdown(w io.Writer, result report.Result) error {
	if !result.HasOutdated() {
		_, _ = fmt.Fprintln(w, UpToDateMessage)
	} else {
		_, _ = fmt.Fprintln(w, "| Package | Current | Latest | URL |")
		_, _ = fmt.Fprintln(w, "|---|---|---|---|")
		for _, row := range outdatedRows(result) {
			for i := range row {
				row[i] = strings.ReplaceAll(row[i], "|", `\|`)
			}
			_, _ = fmt.Fprintf(w, "| %s |\n", strings.Join(row, " | "))
		}
	}

	if len(result.Ignored) > 0 {
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, "Ignored packages (no resolved version):")
		_, _ = fmt.Fprintln(w)
		for _, p := range result.Ignored {
			if _, err := fmt.Fprintf(w, "- `%s`\n", p.String()); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeCSV writes one row per outdated package.
func writeCSV(f *Formatter, result report.Result) error {
	headers := []string{"PACKAGE", "CURRENT", "LATEST", "URL"}
	return f.WriteCSV(headers, outdatedRows(result))
}

// writeXcode writes build-log warnings that Xcode shows in its issue navigator.
func writeXcode(w io.Writer, result report.Result) error {
	for _, o := range result.Outdated {
		_, err := fmt.Fprintf(w, "warning: Dependency %s is outdated (%s < %s)\n",
			o.Identity, o.Current.String(), o.Latest.String())
		if err != nil {
			return err
		}
	}
	return nil
}

func outdatedRows(result report.Result) [][]string {
	rows := make([][]string, 0, len(result.Outdated))
	for _, o := range result.Outdated {
		rows = append(rows, []string{o.Identity, o.Current.String(), o.Latest.String(), o.Location})
	}
	return rows
}

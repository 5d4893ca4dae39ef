// Package cli — summary.go prints the end-of-run report.
//
// The report is printed as a one-line text summary (default), as indented
// JSON, or as YAML, depending on the -output flag. Failed renames are
// always listed so that a non-silent record exists even though they do
// not change the exit code.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/replacename/internal/model"
	"github.com/mmr-tortoise/replacename/internal/renamer"
)

// printSummary writes report to w in the requested format.
func printSummary(w io.Writer, format model.OutputFormat, report *renamer.Report) error {
	switch format {
	case model.FormatJSON:
		return printSummaryJSON(w, report)
	case model.FormatYAML:
		return printSummaryYAML(w, report)
	default:
		return printSummaryText(w, report)
	}
}

// printSummaryJSON outputs the report as structured JSON with 2-space
// indentation.
func printSummaryJSON(w io.Writer, report *renamer.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printSummaryYAML(w io.Writer, report *renamer.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return err
	}
	return enc.Close()
}

// printSummaryText outputs a single counters line followed by one line per
// failed rename:
//
//	Finished. visited=4 renamed=2 unchanged=0 skipped=1 failed=1
//	  failed: /dir/a_old.txt -> /dir/a_new.txt: permission denied
func printSummaryText(w io.Writer, report *renamer.Report) error {
	if _, err := fmt.Fprintln(w, FormatSummaryLine(report)); err != nil {
		return err
	}
	if !report.HasFailures() {
		return nil
	}
	for _, f := range report.Failures {
		if _, err := fmt.Fprintf(w, "  failed: %s -> %s: %s\n", f.Path, f.Target, f.Error); err != nil {
			return err
		}
	}
	return nil
}

// FormatSummaryLine renders the counters of a report on one line.
//
// This function is exported for testing purposes (tested in summary_test.go).
func FormatSummaryLine(report *renamer.Report) string {
	return fmt.Sprintf("Finished. visited=%d renamed=%d unchanged=%d skipped=%d failed=%d",
		report.Visited, report.Renamed, report.Unchanged, report.Skipped, report.Failed)
}

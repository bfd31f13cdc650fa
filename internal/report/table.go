package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/khanhnv2901/headerhawk/internal/checker"
)

var (
	presentColor = color.New(color.FgGreen).SprintFunc()
	missingColor = color.New(color.FgRed).SprintFunc()
	warnColor    = color.New(color.FgYellow).SprintFunc()
	errorColor   = color.New(color.FgRed).SprintFunc()
)

// WriteTable renders one aligned row per record: URL, STATUS, then one
// column per checklist header. Rows for failed fetches keep their failure
// reason in a footer below the table so the columns stay readable.
func WriteTable(w io.Writer, records []checker.Record, checklist []string) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)

	headings := []string{"URL", "STATUS"}
	for _, name := range checklist {
		headings = append(headings, strings.ToUpper(name))
	}
	fmt.Fprintln(tw, strings.Join(headings, "\t"))

	for _, record := range records {
		row := []string{record.URL, statusCell(record)}
		for _, check := range record.Checks {
			row = append(row, checkCell(record, check))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()

	writeFailureFooter(w, records)
}

func statusCell(record checker.Record) string {
	switch record.Status {
	case checker.StatusOK:
		return presentColor(record.Status)
	case checker.StatusInsecure:
		return warnColor("insecure (TLS unverified)")
	case checker.StatusError, checker.StatusInvalid:
		return errorColor(record.Status)
	default:
		return record.Status
	}
}

func checkCell(record checker.Record, check checker.HeaderCheck) string {
	switch {
	case record.Status == checker.StatusError || record.Status == checker.StatusInvalid:
		return "-"
	case check.Present:
		return presentColor(check.Value)
	default:
		return missingColor("missing")
	}
}

// writeFailureFooter lists validation and fetch failures after the table,
// one line per affected URL.
func writeFailureFooter(w io.Writer, records []checker.Record) {
	printed := false
	for _, record := range records {
		if record.Error == "" {
			continue
		}
		if !printed {
			fmt.Fprintln(w)
			printed = true
		}
		fmt.Fprintf(w, "%s %s: %s\n", errorColor("!"), record.URL, record.Error)
	}
}

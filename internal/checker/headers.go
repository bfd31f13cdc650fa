package checker

import (
	consts "github.com/khanhnv2901/headerhawk/internal/constants"
)

// DefaultChecklist is the ordered set of response headers every scan
// evaluates. Order here fixes the column order in both the console table
// and the CSV export.
var DefaultChecklist = []string{
	"Content-Security-Policy",
	"X-Frame-Options",
	"Strict-Transport-Security",
	"Referrer-Policy",
}

// HeaderCheck captures the presence of one checklist header on one target
type HeaderCheck struct {
	Name    string `json:"name"`
	Present bool   `json:"present"`
	Value   string `json:"value,omitempty"`
}

// Record is one report row: the target plus one HeaderCheck per checklist
// entry, in checklist order. Immutable once built.
type Record struct {
	URL        string        `json:"url"`
	FinalURL   string        `json:"final_url,omitempty"`
	Status     string        `json:"status"`
	HTTPStatus int           `json:"http_status,omitempty"`
	Error      string        `json:"error,omitempty"`
	Checks     []HeaderCheck `json:"checks"`
}

// AnalyzeHeaders turns a FetchResult into a Record against the given
// checklist. Lookups are case-insensitive (http.Header semantics). A failed
// fetch yields a record whose checks are all absent, with the failure reason
// retained. Pure function: no I/O, deterministic for the same input.
func AnalyzeHeaders(result FetchResult, checklist []string) Record {
	record := Record{
		URL:        result.Target,
		FinalURL:   result.FinalURL,
		Status:     result.Status,
		HTTPStatus: result.HTTPStatus,
		Error:      result.Error,
		Checks:     make([]HeaderCheck, 0, len(checklist)),
	}

	for _, name := range checklist {
		check := HeaderCheck{Name: name}
		if value := result.Headers.Get(name); value != "" {
			check.Present = true
			check.Value = truncateValue(value)
		}
		record.Checks = append(record.Checks, check)
	}

	return record
}

// invalidRecord builds the placeholder row for input that never passed
// validation, so the report still covers every URL the user supplied.
func invalidRecord(raw string, err error, checklist []string) Record {
	record := Record{
		URL:    raw,
		Status: StatusInvalid,
		Error:  err.Error(),
		Checks: make([]HeaderCheck, len(checklist)),
	}
	for i, name := range checklist {
		record.Checks[i] = HeaderCheck{Name: name}
	}
	return record
}

// truncateValue caps long header values so one oversized CSP does not wreck
// the table layout.
func truncateValue(value string) string {
	runes := []rune(value)
	if len(runes) <= consts.MaxHeaderLength {
		return value
	}
	return string(runes[:consts.MaxHeaderLength]) + "..."
}

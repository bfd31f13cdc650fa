package checker

import (
	"net/http"
	"strings"
	"testing"
)

func TestAnalyzeHeaders_CSPPresent(t *testing.T) {
	headers := http.Header{}
	headers.Set("Content-Security-Policy", "default-src 'self'")

	record := AnalyzeHeaders(FetchResult{
		Target:  "https://example.com",
		Status:  StatusOK,
		Headers: headers,
	}, DefaultChecklist)

	csp := record.Checks[0]
	if csp.Name != "Content-Security-Policy" {
		t.Fatalf("expected CSP first in checklist order, got %s", csp.Name)
	}
	if !csp.Present {
		t.Error("expected CSP to be present")
	}
	if csp.Value != "default-src 'self'" {
		t.Errorf("expected raw CSP value, got %q", csp.Value)
	}
}

func TestAnalyzeHeaders_XFrameOptionsAbsent(t *testing.T) {
	headers := http.Header{}
	headers.Set("Content-Security-Policy", "default-src 'self'")

	record := AnalyzeHeaders(FetchResult{
		Target:  "https://example.com",
		Status:  StatusOK,
		Headers: headers,
	}, DefaultChecklist)

	xfo := record.Checks[1]
	if xfo.Name != "X-Frame-Options" {
		t.Fatalf("expected X-Frame-Options second, got %s", xfo.Name)
	}
	if xfo.Present {
		t.Error("expected X-Frame-Options to be absent")
	}
	if xfo.Value != "" {
		t.Errorf("expected empty value for absent header, got %q", xfo.Value)
	}
}

func TestAnalyzeHeaders_CaseInsensitiveLookup(t *testing.T) {
	headers := http.Header{}
	headers.Set("strict-transport-security", "max-age=31536000")

	record := AnalyzeHeaders(FetchResult{Status: StatusOK, Headers: headers}, DefaultChecklist)

	if !record.Checks[2].Present {
		t.Error("expected lookup to be case-insensitive")
	}
}

func TestAnalyzeHeaders_FailedFetch(t *testing.T) {
	record := AnalyzeHeaders(FetchResult{
		Target: "https://down.example.com",
		Status: StatusError,
		Error:  "connection refused",
	}, DefaultChecklist)

	if record.Status != StatusError {
		t.Errorf("expected error status, got %s", record.Status)
	}
	if record.Error != "connection refused" {
		t.Errorf("expected failure reason retained, got %q", record.Error)
	}
	if len(record.Checks) != len(DefaultChecklist) {
		t.Fatalf("expected %d checks, got %d", len(DefaultChecklist), len(record.Checks))
	}
	for _, check := range record.Checks {
		if check.Present {
			t.Errorf("expected %s to be absent on failed fetch", check.Name)
		}
	}
}

func TestAnalyzeHeaders_TruncatesLongValues(t *testing.T) {
	headers := http.Header{}
	long := strings.Repeat("a", 120)
	headers.Set("Content-Security-Policy", long)

	record := AnalyzeHeaders(FetchResult{Status: StatusOK, Headers: headers}, DefaultChecklist)

	value := record.Checks[0].Value
	if len([]rune(value)) != 83 {
		t.Errorf("expected 80 runes plus ellipsis, got %d", len([]rune(value)))
	}
	if !strings.HasSuffix(value, "...") {
		t.Errorf("expected truncated value to end with ..., got %q", value)
	}
}

func TestAnalyzeHeaders_ChecklistOrderPreserved(t *testing.T) {
	record := AnalyzeHeaders(FetchResult{Status: StatusOK}, DefaultChecklist)

	if len(record.Checks) != len(DefaultChecklist) {
		t.Fatalf("expected %d checks, got %d", len(DefaultChecklist), len(record.Checks))
	}
	for i, name := range DefaultChecklist {
		if record.Checks[i].Name != name {
			t.Errorf("check %d: expected %s, got %s", i, name, record.Checks[i].Name)
		}
	}
}

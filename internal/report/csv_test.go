package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/khanhnv2901/headerhawk/internal/checker"
)

func sampleRecords() []checker.Record {
	return []checker.Record{
		{
			URL:        "https://a.example.com",
			FinalURL:   "https://a.example.com/",
			Status:     checker.StatusOK,
			HTTPStatus: 200,
			Checks: []checker.HeaderCheck{
				{Name: "Content-Security-Policy", Present: true, Value: "default-src 'self'"},
				{Name: "X-Frame-Options"},
				{Name: "Strict-Transport-Security", Present: true, Value: "max-age=31536000"},
				{Name: "Referrer-Policy"},
			},
		},
		{
			URL:    "https://b.example.com",
			Status: checker.StatusError,
			Error:  "connection refused",
			Checks: []checker.HeaderCheck{
				{Name: "Content-Security-Policy"},
				{Name: "X-Frame-Options"},
				{Name: "Strict-Transport-Security"},
				{Name: "Referrer-Policy"},
			},
		},
		{
			URL:        "https://c.example.com",
			FinalURL:   "https://c.example.com/home",
			Status:     checker.StatusInsecure,
			HTTPStatus: 200,
			Checks: []checker.HeaderCheck{
				{Name: "Content-Security-Policy"},
				{Name: "X-Frame-Options", Present: true, Value: "DENY"},
				{Name: "Strict-Transport-Security"},
				{Name: "Referrer-Policy"},
			},
		},
	}
}

func TestWriteCSV_RowAndColumnShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")

	if err := WriteCSV(path, sampleRecords(), checker.DefaultChecklist); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open exported file: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("parse exported CSV: %v", err)
	}

	if len(rows) != 4 {
		t.Fatalf("expected header plus 3 data rows, got %d rows", len(rows))
	}

	wantHeader := []string{
		"url", "final_url", "status", "http_status", "error",
		"content_security_policy_present", "content_security_policy_value",
		"x_frame_options_present", "x_frame_options_value",
		"strict_transport_security_present", "strict_transport_security_value",
		"referrer_policy_present", "referrer_policy_value",
	}
	if !reflect.DeepEqual(rows[0], wantHeader) {
		t.Errorf("unexpected column order:\n got %v\nwant %v", rows[0], wantHeader)
	}

	if rows[1][5] != "true" || rows[1][6] != "default-src 'self'" {
		t.Errorf("expected CSP present/value pair, got %v", rows[1][5:7])
	}
	if rows[2][2] != checker.StatusError || rows[2][4] != "connection refused" {
		t.Errorf("expected failure row to carry status and reason, got %v", rows[2])
	}
	if rows[2][3] != "" {
		t.Errorf("expected empty http_status for failed fetch, got %q", rows[2][3])
	}
}

func TestWriteCSV_OverwritesDeterministically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	records := sampleRecords()

	if err := WriteCSV(path, records, checker.DefaultChecklist); err != nil {
		t.Fatalf("first write: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read first export: %v", err)
	}

	if err := WriteCSV(path, records, checker.DefaultChecklist); err != nil {
		t.Fatalf("second write: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read second export: %v", err)
	}

	if string(first) != string(second) {
		t.Error("expected identical input to produce identical CSV content")
	}
}

func TestWriteCSV_CreateFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "results.csv")

	if err := WriteCSV(path, sampleRecords(), checker.DefaultChecklist); err == nil {
		t.Fatal("expected error when the target directory does not exist")
	}
}

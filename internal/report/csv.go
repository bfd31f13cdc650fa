package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/khanhnv2901/headerhawk/internal/checker"
	consts "github.com/khanhnv2901/headerhawk/internal/constants"
)

// WriteCSV exports records to path, overwriting any existing file. Column
// order is fixed so downstream diffs stay stable across runs: url,
// final_url, status, http_status, error, then a present/value column pair
// per checklist header.
func WriteCSV(path string, records []checker.Record, checklist []string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, consts.DefaultFilePerm)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	heading := []string{"url", "final_url", "status", "http_status", "error"}
	for _, name := range checklist {
		column := columnName(name)
		heading = append(heading, column+"_present", column+"_value")
	}
	if err := w.Write(heading); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.URL,
			record.FinalURL,
			record.Status,
			httpStatusField(record),
			record.Error,
		}
		for _, check := range record.Checks {
			row = append(row, strconv.FormatBool(check.Present), check.Value)
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row for %s: %w", record.URL, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func columnName(header string) string {
	return strings.ReplaceAll(strings.ToLower(header), "-", "_")
}

func httpStatusField(record checker.Record) string {
	if record.HTTPStatus == 0 {
		return ""
	}
	return strconv.Itoa(record.HTTPStatus)
}

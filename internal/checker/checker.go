package checker

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	hherrors "github.com/khanhnv2901/headerhawk/internal/errors"
)

// Record status values.
const (
	StatusOK       = "ok"       // verified fetch succeeded
	StatusInsecure = "insecure" // fetch succeeded only with TLS verification disabled
	StatusError    = "error"    // fetch failed
	StatusInvalid  = "invalid"  // URL never passed validation, no request made
)

// FetchResult represents the outcome of a single header fetch
type FetchResult struct {
	Target     string      `json:"target"`
	FinalURL   string      `json:"final_url,omitempty"`
	CheckedAt  time.Time   `json:"checked_at"`
	Status     string      `json:"status"`
	HTTPStatus int         `json:"http_status,omitempty"`
	Headers    http.Header `json:"-"`
	Error      string      `json:"error,omitempty"`
}

// Fetcher is the interface header retrieval implementations must satisfy
type Fetcher interface {
	// Fetch retrieves response headers for a single validated target
	Fetch(ctx context.Context, target Target) FetchResult

	// Name returns the name of this fetcher (e.g., "check headers")
	Name() string
}

// ProgressFunc is a callback invoked before each fetch starts
type ProgressFunc func(index, total int, target Target)

// Runner orchestrates sequential fetches with a fixed inter-request delay
type Runner struct {
	Delay     time.Duration // Minimum pause between consecutive fetches
	Timeout   time.Duration // Timeout for each fetch
	Checklist []string      // Ordered header checklist passed to the analyzer
}

// Run processes raw URL strings in input order: validate, fetch, analyze.
// Invalid URLs still yield a Record so the report covers every input; the
// returned error is ErrNoValidURLs when not a single URL reached the fetcher.
func (r *Runner) Run(ctx context.Context, raws []string, fetcher Fetcher, progress ProgressFunc) ([]Record, error) {
	limiter := rate.NewLimiter(rate.Every(r.Delay), 1)
	records := make([]Record, 0, len(raws))
	fetched := 0

	for i, raw := range raws {
		target, err := ParseTarget(raw)
		if err != nil {
			records = append(records, invalidRecord(raw, err, r.Checklist))
			continue
		}

		if progress != nil {
			progress(i+1, len(raws), target)
		}

		// The delay applies uniformly, regardless of the previous outcome.
		_ = limiter.Wait(ctx)

		fetchCtx, cancel := context.WithTimeout(ctx, r.Timeout)
		result := fetcher.Fetch(fetchCtx, target)
		cancel()
		fetched++

		records = append(records, AnalyzeHeaders(result, r.Checklist))
	}

	if fetched == 0 {
		return records, hherrors.ErrNoValidURLs
	}
	return records, nil
}

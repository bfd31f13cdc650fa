// Package checker implements the HeaderHawk scanning pipeline.
//
// Architecture overview:
//
//   - ParseTarget validates and normalizes user-supplied URL strings into
//     Targets before any network access happens; ValidateBatch enforces the
//     per-run batch limit.
//   - HeaderFetcher performs the actual HTTP GET for a Target, following
//     redirects and falling back to an unverified TLS request when (and only
//     when) certificate verification fails.
//   - Runner coordinates sequential execution with a fixed inter-request
//     delay, feeding each FetchResult through AnalyzeHeaders.
//   - AnalyzeHeaders is a pure function turning a FetchResult into a Record
//     against an explicit header checklist, so it can be tested in isolation.
//
// This layout keeps protocol logic internal while cmd/ simply instantiates a
// fetcher and feeds it into the runner.
package checker

package constants

import (
	"io/fs"
	"time"
)

const (
	// DefaultFilePerm is the default permission used when creating files.
	DefaultFilePerm fs.FileMode = 0o644
)

const (
	// MaxURLs bounds how many URLs a single run may process.
	MaxURLs = 20
	// MaxHeaderLength caps header values before the reporter truncates them.
	MaxHeaderLength = 80
	// MaxRedirects bounds how many redirect hops a fetch will follow.
	MaxRedirects = 10
	// DefaultTimeout is the per-request connect/read deadline.
	DefaultTimeout = 10 * time.Second
	// RateLimitDelay is the mandatory pause between consecutive fetches.
	RateLimitDelay = 2 * time.Second
)

const (
	// UserAgent identifies this tool to target servers.
	UserAgent = "HeaderHawk/1.0 (Security Header Analyzer)"
	// ResultsFilename is the fixed CSV export path, written to the CWD.
	ResultsFilename = "headerhawk_results.csv"
)

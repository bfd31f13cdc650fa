package errors

import "errors"

// Domain errors
var (
	// Input errors
	ErrNoURLs            = errors.New("no URLs provided")
	ErrTooManyURLs       = errors.New("too many URLs")
	ErrMissingScheme     = errors.New("missing URL scheme")
	ErrUnsupportedScheme = errors.New("unsupported URL scheme (only http and https are allowed)")
	ErrMissingHost       = errors.New("missing host")
	ErrMalformedURL      = errors.New("malformed URL")

	// Run errors
	ErrNoValidURLs = errors.New("no valid URLs to check")
)

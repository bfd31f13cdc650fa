package checker

import (
	"fmt"
	"net/url"
	"strings"

	consts "github.com/khanhnv2901/headerhawk/internal/constants"
	hherrors "github.com/khanhnv2901/headerhawk/internal/errors"
)

// Target is a validated scan target.
type Target struct {
	Original string // URL string exactly as the user supplied it
	URL      string // Normalized absolute URL used for the request
	Scheme   string // http or https
	Host     string // Hostname without port or path
}

// ParseTarget validates raw as an absolute HTTP/HTTPS URL. Inputs without a
// scheme get an https:// prefix before validation, so bare hostnames are
// accepted. Every malformed input comes back as a wrapped sentinel error,
// never a panic.
func ParseTarget(raw string) (Target, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Target{}, fmt.Errorf("%w: empty input", hherrors.ErrMalformedURL)
	}
	if strings.HasPrefix(trimmed, "://") {
		return Target{}, fmt.Errorf("%w: %q", hherrors.ErrMissingScheme, trimmed)
	}

	parsed, err := url.Parse(trimmed)

	// A scheme containing a dot is really a bare host:port (e.g.
	// "example.com:8080"), so treat it the same as a missing scheme and
	// default to https. Inputs that already carry an explicit scheme are
	// never rewritten.
	switch {
	case err == nil && (parsed.Scheme == "" || strings.Contains(parsed.Scheme, ".")):
		parsed, err = url.Parse("https://" + trimmed)
	case err != nil && !strings.Contains(trimmed, "://"):
		parsed, err = url.Parse("https://" + trimmed)
	}
	if err != nil {
		return Target{}, fmt.Errorf("%w: %v", hherrors.ErrMalformedURL, err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return Target{}, fmt.Errorf("%w: %q", hherrors.ErrUnsupportedScheme, parsed.Scheme)
	}
	if parsed.Hostname() == "" {
		return Target{}, fmt.Errorf("%w: %q", hherrors.ErrMissingHost, trimmed)
	}

	return Target{
		Original: trimmed,
		URL:      parsed.String(),
		Scheme:   parsed.Scheme,
		Host:     parsed.Hostname(),
	}, nil
}

// ValidateBatch enforces the batch bounds before any network access. An
// oversized batch is rejected outright rather than silently truncated.
func ValidateBatch(raws []string) error {
	if len(raws) == 0 {
		return hherrors.ErrNoURLs
	}
	if len(raws) > consts.MaxURLs {
		return fmt.Errorf("%w: maximum %d URLs allowed, you provided %d",
			hherrors.ErrTooManyURLs, consts.MaxURLs, len(raws))
	}
	return nil
}

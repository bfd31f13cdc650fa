package checker

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	consts "github.com/khanhnv2901/headerhawk/internal/constants"
)

// HeaderFetcher performs HTTP/HTTPS GET requests to collect response headers
type HeaderFetcher struct {
	Timeout   time.Duration
	UserAgent string
	Logger    *zap.SugaredLogger // optional, used for the TLS fallback warning
}

// Fetch performs a GET request against the target and captures its response
// headers. TLS verification is on for the first attempt; when it fails on a
// certificate error (and only then) the request is retried unverified and
// the result is tagged StatusInsecure.
func (h *HeaderFetcher) Fetch(ctx context.Context, target Target) FetchResult {
	result := FetchResult{
		Target:    target.Original,
		CheckedAt: time.Now().UTC(),
	}

	resp, err := h.get(ctx, target.URL, false)
	if err != nil {
		if !isCertificateError(err) {
			result.Status = StatusError
			result.Error = err.Error()
			return result
		}

		if h.Logger != nil {
			h.Logger.Warnw("TLS verification failed, retrying without verification",
				"target", target.Original, "error", err.Error())
		}

		resp, err = h.get(ctx, target.URL, true)
		if err != nil {
			result.Status = StatusError
			result.Error = err.Error()
			return result
		}
		result.Status = StatusInsecure
	} else {
		result.Status = StatusOK
	}
	defer resp.Body.Close()

	result.HTTPStatus = resp.StatusCode
	result.Headers = resp.Header
	if resp.Request != nil && resp.Request.URL != nil {
		result.FinalURL = resp.Request.URL.String()
	}

	// Discard response body - only the headers matter here
	_, _ = io.Copy(io.Discard, resp.Body)

	return result
}

// Name returns the name of this fetcher
func (h *HeaderFetcher) Name() string {
	return "check headers"
}

func (h *HeaderFetcher) get(ctx context.Context, url string, insecure bool) (*http.Response, error) {
	client := &http.Client{
		Timeout: h.Timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: insecure},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= consts.MaxRedirects {
				return fmt.Errorf("stopped after %d redirects", consts.MaxRedirects)
			}
			return nil
		},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	userAgent := h.UserAgent
	if userAgent == "" {
		userAgent = consts.UserAgent
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("DNT", "1")

	return client.Do(req)
}

// isCertificateError reports whether err stems from certificate validation.
// Other network failures (DNS, refused connections, timeouts) must not
// trigger the unverified fallback.
func isCertificateError(err error) bool {
	var verifyErr *tls.CertificateVerificationError
	if errors.As(err, &verifyErr) {
		return true
	}
	var unknownAuthority x509.UnknownAuthorityError
	var hostnameErr x509.HostnameError
	var invalidCert x509.CertificateInvalidError
	return errors.As(err, &unknownAuthority) ||
		errors.As(err, &hostnameErr) ||
		errors.As(err, &invalidCert)
}

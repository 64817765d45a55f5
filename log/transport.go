package log

import (
	"net/http"
	"net/url"
	"time"
)

// redacted replaces sensitive query values in logged URLs
const redacted = "REDACTED"

var sensitiveParams = []string{"api_key", "apiKey", "token"}

type loggingTransport struct {
	next   http.RoundTripper
	logger Logger
}

// NewLoggingTransport wraps next so that every request is logged at debug level with its method, URL, status
// and duration. Headers are never logged, so the API key does not leak into logs.
func NewLoggingTransport(next http.RoundTripper, logger Logger) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &loggingTransport{next: next, logger: logger}
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	elapsed := time.Since(start)

	if err != nil {
		t.logger.Debug("request failed",
			"method", req.Method,
			"url", RedactURL(req.URL),
			"duration", elapsed,
			"error", err)
		return resp, err
	}

	t.logger.Debug("request completed",
		"method", req.Method,
		"url", RedactURL(req.URL),
		"status", resp.StatusCode,
		"duration", elapsed)
	return resp, nil
}

// CloseIdleConnections releases the idle connections of the wrapped transport
func (t *loggingTransport) CloseIdleConnections() {
	if closer, ok := t.next.(interface{ CloseIdleConnections() }); ok {
		closer.CloseIdleConnections()
	}
}

// RedactURL renders u with credential-like query values replaced
func RedactURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	copied := *u
	copied.User = nil
	query := copied.Query()
	changed := false
	for _, name := range sensitiveParams {
		if _, ok := query[name]; ok {
			query.Set(name, redacted)
			changed = true
		}
	}
	if changed {
		copied.RawQuery = query.Encode()
	}
	return copied.String()
}

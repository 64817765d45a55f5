package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is returned when the service answers with a non-2xx status after retries are exhausted
type HTTPError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *HTTPError) Error() string {
	text := fmt.Sprintf("HTTP Error %d", e.StatusCode)
	if status := http.StatusText(e.StatusCode); status != "" {
		text += " " + status
	}
	if e.Message != "" {
		text += ": " + e.Message
	}
	return text
}

// Temporary returns true for statuses the session retries
func (e *HTTPError) Temporary() bool {
	switch e.StatusCode {
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return true
	}
	return false
}

func NewHTTPError(statusCode int, message string, url string) error {
	return &HTTPError{StatusCode: statusCode, Message: message, URL: url}
}

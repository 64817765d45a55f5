package client

import (
	"context"
	"net/http"

	"github.com/datascribe/datascribe-go/config"
	"github.com/datascribe/datascribe-go/log"
	"github.com/hashicorp/go-retryablehttp"
)

// retryStatuses are the transient statuses a request is retried on. Other 4xx and 5xx responses are
// returned to the caller on the first attempt.
var retryStatuses = map[int]bool{
	http.StatusTooManyRequests:    true,
	http.StatusBadGateway:         true,
	http.StatusServiceUnavailable: true,
	http.StatusGatewayTimeout:     true,
}

// NewSession builds the retrying HTTP session owned by a client. Waits between attempts grow exponentially
// from RetryWaitMin up to RetryWaitMax and honor Retry-After. Once retries are exhausted the last response is
// handed back unchanged so its status can be reported.
func NewSession(cfg config.Config) *retryablehttp.Client {
	session := retryablehttp.NewClient()
	session.RetryMax = cfg.MaxRetries()
	session.RetryWaitMin = cfg.RetryWaitMin()
	session.RetryWaitMax = cfg.RetryWaitMax()
	session.CheckRetry = checkRetry
	session.Backoff = retryablehttp.DefaultBackoff
	session.ErrorHandler = retryablehttp.PassthroughErrorHandler

	if logger := cfg.Logger(); logger != nil {
		session.Logger = retryablehttp.LeveledLogger(logger)
	} else {
		session.Logger = nil
	}

	httpClient := session.HTTPClient
	if custom := cfg.HTTPClient(); custom != nil {
		copied := *custom
		httpClient = &copied
	}
	httpClient.Timeout = cfg.Timeout()
	if cfg.RequestLogging() && cfg.Logger() != nil {
		httpClient.Transport = log.NewLoggingTransport(httpClient.Transport, cfg.Logger())
	}
	session.HTTPClient = httpClient

	return session
}

func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		// connection level failures, minus the ones that cannot succeed on a second attempt
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}
	return retryStatuses[resp.StatusCode], nil
}

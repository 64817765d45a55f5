package config

import (
	"net/http"
	"time"

	"github.com/datascribe/datascribe-go/log"
)

type Config interface {
	APIKey() string
	BaseURL() string
	MaxRetries() int
	RetryWaitMin() time.Duration
	RetryWaitMax() time.Duration
	Timeout() time.Duration
	AuthHeader() (name string, scheme string)
	RequestLogging() bool
	HTTPClient() *http.Client
	Logger() log.Logger
}

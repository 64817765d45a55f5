package client

import (
	"net/http"
	"strings"
	"time"

	"github.com/datascribe/datascribe-go/log"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL      = "https://datascribe.cloud"
	DefaultMaxRetries   = 3
	DefaultRetryWaitMin = 500 * time.Millisecond
	DefaultRetryWaitMax = 30 * time.Second
	DefaultTimeout      = 30 * time.Second
	DefaultAuthHeader   = "Authorization"
	DefaultAuthScheme   = "Bearer"
)

type ClientConfig struct {
	apiKey         string
	baseURL        string
	maxRetries     int
	retryWaitMin   time.Duration
	retryWaitMax   time.Duration
	timeout        time.Duration
	authHeader     string
	authScheme     string
	requestLogging bool
	httpClient     *http.Client
	logger         log.Logger
}

func (cfg ClientConfig) APIKey() string {
	return cfg.apiKey
}

func (cfg ClientConfig) BaseURL() string {
	return cfg.baseURL
}

func (cfg ClientConfig) MaxRetries() int {
	return cfg.maxRetries
}

func (cfg ClientConfig) RetryWaitMin() time.Duration {
	return cfg.retryWaitMin
}

func (cfg ClientConfig) RetryWaitMax() time.Duration {
	return cfg.retryWaitMax
}

func (cfg ClientConfig) Timeout() time.Duration {
	return cfg.timeout
}

func (cfg ClientConfig) AuthHeader() (string, string) {
	return cfg.authHeader, cfg.authScheme
}

func (cfg ClientConfig) RequestLogging() bool {
	return cfg.requestLogging
}

func (cfg ClientConfig) HTTPClient() *http.Client {
	return cfg.httpClient
}

func (cfg ClientConfig) Logger() log.Logger {
	return cfg.logger
}

func (cfg *ClientConfig) WithAPIKey(apiKey string) *ClientConfig {
	cfg.apiKey = apiKey
	return cfg
}

func (cfg *ClientConfig) WithBaseURL(baseURL string) *ClientConfig {
	cfg.baseURL = strings.TrimRight(baseURL, "/")
	return cfg
}

func (cfg *ClientConfig) WithMaxRetries(maxRetries int) *ClientConfig {
	cfg.maxRetries = maxRetries
	return cfg
}

func (cfg *ClientConfig) WithRetryWaitMin(wait time.Duration) *ClientConfig {
	cfg.retryWaitMin = wait
	return cfg
}

func (cfg *ClientConfig) WithRetryWaitMax(wait time.Duration) *ClientConfig {
	cfg.retryWaitMax = wait
	return cfg
}

func (cfg *ClientConfig) WithTimeout(timeout time.Duration) *ClientConfig {
	cfg.timeout = timeout
	return cfg
}

// WithAuthHeader sets the header carrying the API key. An empty scheme sends the bare key.
func (cfg *ClientConfig) WithAuthHeader(name, scheme string) *ClientConfig {
	cfg.authHeader = name
	cfg.authScheme = scheme
	return cfg
}

func (cfg *ClientConfig) WithRequestLogging(requestLogging bool) *ClientConfig {
	cfg.requestLogging = requestLogging
	return cfg
}

func (cfg *ClientConfig) WithHTTPClient(httpClient *http.Client) *ClientConfig {
	cfg.httpClient = httpClient
	return cfg
}

func (cfg *ClientConfig) WithLogger(logger log.Logger) *ClientConfig {
	cfg.logger = logger
	return cfg
}

func (cfg ClientConfig) NewClient() (*Client, error) {
	return New(cfg)
}

// NewClientConfig returns a configuration with the default endpoint, retry and timeout settings. An empty
// apiKey is resolved from the environment when the client is built.
func NewClientConfig(apiKey string) (*ClientConfig, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return NewClientConfigWithLogger(log.NewZapLogger(logger), apiKey), nil
}

func NewClientConfigWithLogger(logger log.Logger, apiKey string) *ClientConfig {
	return &ClientConfig{
		apiKey:       apiKey,
		baseURL:      DefaultBaseURL,
		maxRetries:   DefaultMaxRetries,
		retryWaitMin: DefaultRetryWaitMin,
		retryWaitMax: DefaultRetryWaitMax,
		timeout:      DefaultTimeout,
		authHeader:   DefaultAuthHeader,
		authScheme:   DefaultAuthScheme,
		logger:       logger,
	}
}

package config

import (
	"net/http"
	"time"

	"github.com/datascribe/datascribe-go/log"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type ConfigMock struct {
	mock.Mock
}

func NewConfigMock() *ConfigMock {
	return &ConfigMock{}
}

// Default registers settings suited to tests against a local server: no retry waits and a short timeout
func (o *ConfigMock) Default() *ConfigMock {
	o.On("APIKey").Return("test-api-key")
	o.On("BaseURL").Return("http://127.0.0.1")
	o.On("MaxRetries").Return(3)
	o.On("RetryWaitMin").Return(time.Millisecond)
	o.On("RetryWaitMax").Return(5 * time.Millisecond)
	o.On("Timeout").Return(5 * time.Second)
	o.On("AuthHeader").Return("Authorization", "Bearer")
	o.On("RequestLogging").Return(false)
	o.On("HTTPClient").Return((*http.Client)(nil))
	o.On("Logger").Return(log.NewZapLogger(zap.NewExample()))
	return o
}

func (o *ConfigMock) APIKey() string {
	args := o.Called()
	return args.String(0)
}

func (o *ConfigMock) BaseURL() string {
	args := o.Called()
	return args.String(0)
}

func (o *ConfigMock) MaxRetries() int {
	args := o.Called()
	return args.Int(0)
}

func (o *ConfigMock) RetryWaitMin() time.Duration {
	args := o.Called()
	return args.Get(0).(time.Duration)
}

func (o *ConfigMock) RetryWaitMax() time.Duration {
	args := o.Called()
	return args.Get(0).(time.Duration)
}

func (o *ConfigMock) Timeout() time.Duration {
	args := o.Called()
	return args.Get(0).(time.Duration)
}

func (o *ConfigMock) AuthHeader() (string, string) {
	args := o.Called()
	return args.String(0), args.String(1)
}

func (o *ConfigMock) RequestLogging() bool {
	args := o.Called()
	return args.Bool(0)
}

func (o *ConfigMock) HTTPClient() *http.Client {
	args := o.Called()
	return args.Get(0).(*http.Client)
}

func (o *ConfigMock) Logger() log.Logger {
	args := o.Called()
	return args.Get(0).(log.Logger)
}

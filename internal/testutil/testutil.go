package testutil

import (
	"os"
	"strings"

	"github.com/datascribe/datascribe-go/log"
	"go.uber.org/zap"
)

const TestAPIKey = "test-api-key"

func PanicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func TestLogger() log.Logger {
	if strings.ToUpper(os.Getenv("TEST_TRACE")) == "ON" {
		logger, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		return log.NewZapLogger(logger)
	}

	return log.NewZapLogger(zap.NewNop())
}

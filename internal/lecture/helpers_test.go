package lecture

import (
	"errors"
	"time"

	"github.com/nguyentantai21042004/lecture-assistant/internal/config"
	"github.com/nguyentantai21042004/lecture-assistant/internal/gemini"
	"github.com/nguyentantai21042004/lecture-assistant/internal/logger"
)

// testConfig uses millisecond backoff so retry tests stay fast.
func testConfig() *config.Config {
	cfg := &config.Config{
		Retry: config.RetryConfig{InitialDelay: time.Millisecond},
	}
	cfg.ApplyDefaults()
	return cfg
}

func newTestAssistant(gen gemini.Generator) *implAssistant {
	return New(testConfig(), gen, logger.Nop(), nil).(*implAssistant)
}

var errRateLimited = &gemini.APIError{Code: 429, Status: "RESOURCE_EXHAUSTED", Message: "quota exceeded"}

var errBadRequest = errors.New("gemini api error 400: invalid argument")

func nopLogger() logger.Logger { return logger.Nop() }

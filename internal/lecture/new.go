package lecture

import (
	"context"
	"time"

	"github.com/nguyentantai21042004/lecture-assistant/internal/config"
	"github.com/nguyentantai21042004/lecture-assistant/internal/gemini"
	"github.com/nguyentantai21042004/lecture-assistant/internal/logger"
	"github.com/nguyentantai21042004/lecture-assistant/internal/metrics"
	"github.com/nguyentantai21042004/lecture-assistant/pkg/retry"
)

type implAssistant struct {
	gen               gemini.Generator
	logger            logger.Logger
	metrics           *metrics.Metrics
	retry             retry.Policy
	maxAudioBytes     int
	quizCount         int
	defaultDifficulty Difficulty
}

// New creates an Assistant. A nil gen means no credential was configured:
// the condition is logged once and every call fails with
// gemini.ErrMissingCredential. m may be nil.
func New(cfg *config.Config, gen gemini.Generator, log logger.Logger, m *metrics.Metrics) Assistant {
	if gen == nil {
		log.Error(context.Background(), "%s is missing from environment variables", cfg.Gemini.APIKeyEnv)
	}

	difficulty, err := ParseDifficulty(cfg.Quiz.DefaultDifficulty)
	if err != nil {
		difficulty = Medium
	}

	return &implAssistant{
		gen:     gen,
		logger:  log,
		metrics: m,
		retry: retry.Policy{
			MaxRetries:   cfg.Retry.MaxRetries,
			InitialDelay: cfg.Retry.InitialDelay,
			Multiplier:   cfg.Retry.Multiplier,
		},
		maxAudioBytes:     cfg.Audio.MaxBytes,
		quizCount:         cfg.Quiz.DefaultCount,
		defaultDifficulty: difficulty,
	}
}

// generate runs one model request through the retry policy. check, when
// set, validates the reply inside the retried operation.
func (a *implAssistant) generate(ctx context.Context, op string, parts []gemini.Part, check func(string) error) (string, error) {
	start := time.Now()
	retriesLeft := a.retry.MaxRetries

	text, err := retry.Do(ctx, a.retry, func() (string, error) {
		text, err := a.gen.Generate(ctx, parts...)
		if err != nil {
			return "", err
		}
		if check != nil {
			if err := check(text); err != nil {
				return "", err
			}
		}
		return text, nil
	}, retry.WithNotify(func(err error, wait time.Duration) {
		a.logger.Warn(ctx, "Rate limit hit during %s. Retrying in %dms... (%d retries left)", op, wait.Milliseconds(), retriesLeft)
		retriesLeft--
		a.metrics.ObserveRetry(op)
	}))

	a.metrics.ObserveRequest(op, Kind(err), time.Since(start))
	return text, err
}

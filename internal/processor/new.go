package processor

import (
	"time"

	"github.com/nguyentantai21042004/lecture-assistant/internal/config"
	"github.com/nguyentantai21042004/lecture-assistant/internal/lecture"
	"github.com/nguyentantai21042004/lecture-assistant/internal/logger"
	"github.com/nguyentantai21042004/lecture-assistant/internal/metrics"
	"github.com/nguyentantai21042004/lecture-assistant/pkg/executor"
)

type implProcessor struct {
	cfg       *config.Config
	executor  executor.Executor
	assistant lecture.Assistant
	logger    logger.Logger
	metrics   *metrics.Metrics
	now       func() time.Time
}

// New creates a new Processor instance
func New(cfg *config.Config, exec executor.Executor, assistant lecture.Assistant, log logger.Logger, m *metrics.Metrics) Processor {
	return &implProcessor{
		cfg:       cfg,
		executor:  exec,
		assistant: assistant,
		logger:    log,
		metrics:   m,
		now:       time.Now,
	}
}

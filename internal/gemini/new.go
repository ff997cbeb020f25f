package gemini

import (
	"context"
	"fmt"
	"sync"

	"github.com/nguyentantai21042004/lecture-assistant/internal/logger"
	"google.golang.org/genai"
)

// Config selects the model and the keys used to reach it.
type Config struct {
	Model   string
	APIKeys []string
}

type implGenerator struct {
	model   string
	models  []contentModel
	current int
	logger  logger.Logger
	mu      sync.Mutex
}

// contentModel is the part of *genai.Models the generator relies on.
type contentModel interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// New creates a Generator backed by the Gemini API. One client is built per
// key; keys are rotated when a request is rate limited.
func New(ctx context.Context, cfg Config, log logger.Logger) (Generator, error) {
	if len(cfg.APIKeys) == 0 {
		return nil, ErrMissingCredential
	}

	models := make([]contentModel, 0, len(cfg.APIKeys))
	for i, key := range cfg.APIKeys {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("create client for key %d: %w", i+1, err)
		}
		models = append(models, client.Models)
	}

	return newGenerator(cfg.Model, models, log), nil
}

func newGenerator(model string, models []contentModel, log logger.Logger) *implGenerator {
	return &implGenerator{
		model:  model,
		models: models,
		logger: log,
	}
}

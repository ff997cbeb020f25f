package lecture

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/lecture-assistant/internal/gemini"
)

// GenerateSummary asks the model for a short plain-text summary of the
// transcript and strips any markdown the model still produced.
func (a *implAssistant) GenerateSummary(ctx context.Context, transcript string) (string, error) {
	if a.gen == nil {
		return "", gemini.ErrMissingCredential
	}
	if strings.TrimSpace(transcript) == "" {
		return "", ErrEmptyInput
	}

	prompt := fmt.Sprintf(summaryPrompt, transcript)
	text, err := a.generate(ctx, "summary", []gemini.Part{gemini.Text(prompt)}, nil)
	if err != nil {
		return "", err
	}

	return Sanitize(text), nil
}

// GenerateExplanation is GenerateSummary under the dashboard's name.
func (a *implAssistant) GenerateExplanation(ctx context.Context, transcript string) (string, error) {
	return a.GenerateSummary(ctx, transcript)
}

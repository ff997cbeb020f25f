package gemini

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// Generate sends parts as a single user turn and concatenates the text of
// the first candidate. A rate-limited answer moves to the next key before
// the error is returned, so a retry goes out on a fresh quota.
func (g *implGenerator) Generate(ctx context.Context, parts ...Part) (string, error) {
	contents, err := toContents(parts)
	if err != nil {
		return "", err
	}

	idx, model := g.pick()
	result, err := model.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		err = wrapError(err)
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.IsRateLimited() && len(g.models) > 1 {
			g.logger.Warn(ctx, "Key %d rate limited, rotating...", idx+1)
			g.rotate(idx)
		}
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part != nil && part.Text != "" {
				text += part.Text
			}
		}
		return text, nil
	}

	return "", ErrEmptyResponse
}

func (g *implGenerator) pick() (int, contentModel) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current, g.models[g.current]
}

// rotate advances past idx unless another caller already did.
func (g *implGenerator) rotate(idx int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.current == idx {
		g.current = (g.current + 1) % len(g.models)
	}
}

func toContents(parts []Part) ([]*genai.Content, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("build request: no content parts")
	}

	out := make([]*genai.Part, 0, len(parts))
	for i, p := range parts {
		if p.InlineData != nil {
			data, err := base64.StdEncoding.DecodeString(p.InlineData.Data)
			if err != nil {
				return nil, fmt.Errorf("build request: part %d: %w", i, err)
			}
			out = append(out, genai.NewPartFromBytes(data, p.InlineData.MIMEType))
			continue
		}
		out = append(out, genai.NewPartFromText(p.Text))
	}

	return []*genai.Content{genai.NewContentFromParts(out, genai.RoleUser)}, nil
}

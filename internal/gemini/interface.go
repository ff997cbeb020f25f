package gemini

import "context"

// Generator submits content parts to a generative model and returns the
// text of its reply.
type Generator interface {
	Generate(ctx context.Context, parts ...Part) (string, error)
}

// Part is one element of a request: either text or inline data.
type Part struct {
	Text       string
	InlineData *Blob
}

// Blob is inline media, base64-encoded.
type Blob struct {
	Data     string
	MIMEType string
}

// Text builds a text part.
func Text(s string) Part {
	return Part{Text: s}
}

// Inline builds an inline data part from base64 content.
func Inline(data, mimeType string) Part {
	return Part{InlineData: &Blob{Data: data, MIMEType: mimeType}}
}

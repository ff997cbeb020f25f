package lecture

import (
	"context"
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/lecture-assistant/internal/audio"
	"github.com/nguyentantai21042004/lecture-assistant/internal/gemini"
)

// TranscribeAudio returns a verbatim transcript of the capture. Empty and
// oversized captures are rejected before any request is made, and a blank
// transcript is reported as ErrEmptyTranscript.
func (a *implAssistant) TranscribeAudio(ctx context.Context, capture audio.Capture) (string, error) {
	if a.gen == nil {
		return "", gemini.ErrMissingCredential
	}
	if capture.Size() == 0 {
		return "", ErrEmptyAudio
	}
	if capture.Size() > a.maxAudioBytes {
		return "", fmt.Errorf("%w (max %dMB)", ErrAudioTooLarge, a.maxAudioBytes/(1024*1024))
	}

	payload := audio.Encode(capture)
	a.metrics.ObserveAudio(capture.Size())

	a.logger.Info(ctx, "Transcribing audio: mimeType=%s size=%.2f KB reportedType=%q duration=%s",
		payload.MIMEType, float64(capture.Size())/1024, capture.Type, audio.Probe(capture))

	parts := []gemini.Part{
		gemini.Inline(payload.Data, payload.MIMEType),
		gemini.Text(transcribeInstruction),
	}

	transcript, err := a.generate(ctx, "transcribe", parts, func(text string) error {
		if strings.TrimSpace(text) == "" {
			return ErrEmptyTranscript
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	a.logger.Debug(ctx, "Transcription completed: %d characters", len(transcript))
	return transcript, nil
}

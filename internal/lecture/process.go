package lecture

import (
	"context"
	"fmt"

	"github.com/nguyentantai21042004/lecture-assistant/internal/audio"
)

// ProcessLectureAudio transcribes the capture and summarizes the transcript.
func (a *implAssistant) ProcessLectureAudio(ctx context.Context, capture audio.Capture) (Result, error) {
	transcript, err := a.TranscribeAudio(ctx, capture)
	if err != nil {
		a.logger.Error(ctx, "Error processing lecture audio: %v", err)
		return Result{}, fmt.Errorf("transcribe audio: %w", err)
	}

	explanation, err := a.GenerateSummary(ctx, transcript)
	if err != nil {
		a.logger.Error(ctx, "Error processing lecture audio: %v", err)
		return Result{}, fmt.Errorf("generate summary: %w", err)
	}

	return Result{Transcript: transcript, Explanation: explanation}, nil
}

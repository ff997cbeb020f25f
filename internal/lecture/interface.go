package lecture

import (
	"context"

	"github.com/nguyentantai21042004/lecture-assistant/internal/audio"
)

// Assistant turns lecture recordings into transcripts, explanations and
// quizzes. Implementations are safe for concurrent use.
type Assistant interface {
	TranscribeAudio(ctx context.Context, capture audio.Capture) (string, error)
	GenerateSummary(ctx context.Context, transcript string) (string, error)
	GenerateExplanation(ctx context.Context, transcript string) (string, error)
	GenerateQuizQuestions(ctx context.Context, transcript string, difficulty Difficulty, count int) ([]QuizQuestion, error)
	ProcessLectureAudio(ctx context.Context, capture audio.Capture) (Result, error)
}

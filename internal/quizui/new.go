package quizui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nguyentantai21042004/lecture-assistant/internal/lecture"
)

// Source produces a fresh quiz set for a transcript.
type Source interface {
	GenerateQuizQuestions(ctx context.Context, transcript string, difficulty lecture.Difficulty, count int) ([]lecture.QuizQuestion, error)
}

// New creates the quiz model. Questions are requested as soon as the
// program starts.
func New(ctx context.Context, src Source, transcript string, difficulty lecture.Difficulty, count int) Model {
	return Model{
		ctx:        ctx,
		source:     src,
		transcript: transcript,
		difficulty: difficulty,
		count:      count,
		state:      stateLoading,
		selected:   -1,
	}
}

// NewProgram wraps the model in a full-screen bubbletea program.
func NewProgram(m Model) *tea.Program {
	return tea.NewProgram(m, tea.WithAltScreen())
}

package lecture

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/lecture-assistant/internal/gemini"
)

// reJSONArray spans from the first '[' to the last ']' across lines.
var reJSONArray = regexp.MustCompile(`(?s)\[.*\]`)

// wireQuestion is the shape the model is asked to produce.
type wireQuestion struct {
	Question      string      `json:"question"`
	Options       []string    `json:"options"`
	CorrectAnswer answerIndex `json:"correctAnswer"`
}

// answerIndex accepts an integral JSON number (1, 1.0) or a quoted one ("1").
type answerIndex int

func (a *answerIndex) UnmarshalJSON(b []byte) error {
	var v any
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}

	var s string
	switch t := v.(type) {
	case json.Number:
		s = t.String()
	case string:
		s = strings.TrimSpace(t)
	default:
		return fmt.Errorf("correctAnswer: unsupported value %s", b)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return fmt.Errorf("correctAnswer: %q is not an index", s)
	}
	*a = answerIndex(f)
	return nil
}

// GenerateQuizQuestions asks the model for count multiple-choice questions
// about the transcript. A reply that cannot be parsed yields an empty list
// and a nil error; remote and configuration failures are still returned.
func (a *implAssistant) GenerateQuizQuestions(ctx context.Context, transcript string, difficulty Difficulty, count int) ([]QuizQuestion, error) {
	if a.gen == nil {
		return nil, gemini.ErrMissingCredential
	}
	if strings.TrimSpace(transcript) == "" {
		return nil, ErrEmptyInput
	}
	if difficulty == "" {
		difficulty = a.defaultDifficulty
	}
	if !difficulty.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDifficulty, difficulty)
	}
	if count <= 0 {
		count = a.quizCount
	}

	prompt := fmt.Sprintf(quizPrompt, transcript, difficulty, difficulty.Description(), count)
	text, err := a.generate(ctx, "quiz", []gemini.Part{gemini.Text(prompt)}, nil)
	if err != nil {
		return nil, err
	}

	a.logger.Debug(ctx, "Raw Gemini quiz response: %s", text)

	raw, skipped, err := parseQuiz(text)
	if err != nil {
		a.logger.Error(ctx, "Failed to parse quiz JSON: %v", err)
		a.metrics.ObserveQuiz(difficulty.String(), 0)
		return []QuizQuestion{}, nil
	}
	for _, err := range skipped {
		a.logger.Warn(ctx, "Dropping quiz question: %v", err)
	}

	questions := a.normalize(ctx, raw, count)
	a.metrics.ObserveQuiz(difficulty.String(), len(questions))
	return questions, nil
}

// parseQuiz extracts the question array from a model reply. Prose around
// the array is ignored; without brackets the whole reply is parsed. Items
// are decoded one by one: an item that does not decode is reported in
// skipped and the rest are kept.
func parseQuiz(text string) (questions []wireQuestion, skipped []error, err error) {
	jsonStr := text
	if m := reJSONArray.FindString(text); m != "" {
		jsonStr = m
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(jsonStr), &items); err != nil {
		return nil, nil, fmt.Errorf("unmarshal quiz: %w", err)
	}

	questions = make([]wireQuestion, 0, len(items))
	for i, item := range items {
		var q wireQuestion
		if err := json.Unmarshal(item, &q); err != nil {
			skipped = append(skipped, fmt.Errorf("item %d: %w", i+1, err))
			continue
		}
		questions = append(questions, q)
	}
	return questions, skipped, nil
}

// normalize drops malformed items, caps the list at count and numbers the
// survivors from 1.
func (a *implAssistant) normalize(ctx context.Context, raw []wireQuestion, count int) []QuizQuestion {
	questions := make([]QuizQuestion, 0, len(raw))
	for i, q := range raw {
		if err := validateQuestion(q); err != nil {
			a.logger.Warn(ctx, "Dropping quiz question %d: %v", i+1, err)
			continue
		}
		if len(questions) == count {
			a.logger.Warn(ctx, "Model returned %d questions, keeping the first %d", len(raw), count)
			break
		}
		questions = append(questions, QuizQuestion{
			ID:            len(questions) + 1,
			Text:          q.Question,
			Options:       q.Options,
			CorrectAnswer: int(q.CorrectAnswer),
		})
	}
	return questions
}

func validateQuestion(q wireQuestion) error {
	if strings.TrimSpace(q.Question) == "" {
		return fmt.Errorf("empty question text")
	}
	if len(q.Options) != OptionsPerQuestion {
		return fmt.Errorf("got %d options, want %d", len(q.Options), OptionsPerQuestion)
	}
	if q.CorrectAnswer < 0 || int(q.CorrectAnswer) >= OptionsPerQuestion {
		return fmt.Errorf("correct answer %d out of range", q.CorrectAnswer)
	}
	return nil
}

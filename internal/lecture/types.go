package lecture

import (
	"fmt"
	"strings"
)

// Difficulty shapes the quiz prompt only.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists the accepted values in ascending order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// ParseDifficulty accepts easy, medium or hard in any case. An empty string
// means medium.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if d == "" {
		return Medium, nil
	}
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
	}
	return d, nil
}

func (d Difficulty) Valid() bool {
	switch d {
	case Easy, Medium, Hard:
		return true
	}
	return false
}

// Description is the wording used in the quiz prompt.
func (d Difficulty) Description() string {
	switch d {
	case Easy:
		return "foundational facts and basic concepts"
	case Medium:
		return "application and understanding of concepts"
	case Hard:
		return "deep theoretical knowledge and complex analysis"
	}
	return ""
}

func (d Difficulty) String() string { return string(d) }

// QuizQuestion is one multiple-choice item.
type QuizQuestion struct {
	ID            int      `json:"id"`
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
}

// OptionsPerQuestion is the number of answers every question carries.
const OptionsPerQuestion = 4

// Result is the output of processing one recording.
type Result struct {
	Transcript  string `json:"transcription"`
	Explanation string `json:"explanation"`
}

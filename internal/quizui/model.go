package quizui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nguyentantai21042004/lecture-assistant/internal/lecture"
)

type state int

const (
	stateLoading state = iota
	stateQuestion
	stateAnswered
	stateFinished
	stateEmpty
	stateError
)

// questionsMsg carries the result of one generation request.
type questionsMsg struct {
	questions []lecture.QuizQuestion
	err       error
}

// Model is the bubbletea model of a single quiz session.
type Model struct {
	ctx        context.Context
	source     Source
	transcript string
	difficulty lecture.Difficulty
	count      int

	state     state
	questions []lecture.QuizQuestion
	index     int
	selected  int // -1 until an option is picked
	score     int
	err       error
	width     int
}

func (m Model) Init() tea.Cmd {
	return m.load()
}

func (m Model) load() tea.Cmd {
	ctx, src := m.ctx, m.source
	transcript, difficulty, count := m.transcript, m.difficulty, m.count
	return func() tea.Msg {
		qs, err := src.GenerateQuizQuestions(ctx, transcript, difficulty, count)
		return questionsMsg{questions: qs, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case questionsMsg:
		m.questions = msg.questions
		m.index = 0
		m.selected = -1
		m.score = 0
		m.err = msg.err
		switch {
		case msg.err != nil:
			m.state = stateError
		case len(msg.questions) == 0:
			m.state = stateEmpty
		default:
			m.state = stateQuestion
		}

	case tea.KeyMsg:
		return m.handleKey(msg.String())
	}
	return m, nil
}

func (m Model) handleKey(key string) (tea.Model, tea.Cmd) {
	if key == "ctrl+c" || key == "q" {
		return m, tea.Quit
	}

	switch m.state {
	case stateQuestion:
		options := len(m.current().Options)
		switch key {
		case "1", "2", "3", "4":
			if i := int(key[0] - '1'); i < options {
				m.selected = i
			}
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			} else {
				m.selected = options - 1
			}
		case "down", "j":
			m.selected = (m.selected + 1) % options
		case "enter":
			if m.selected < 0 {
				return m, nil
			}
			if m.selected == m.current().CorrectAnswer {
				m.score++
			}
			m.state = stateAnswered
		}

	case stateAnswered:
		if key == "enter" || key == "n" {
			if m.index+1 >= len(m.questions) {
				m.state = stateFinished
				return m, nil
			}
			m.index++
			m.selected = -1
			m.state = stateQuestion
		}

	case stateFinished, stateEmpty, stateError:
		if key == "r" {
			m.state = stateLoading
			m.err = nil
			return m, m.load()
		}
	}
	return m, nil
}

func (m Model) current() lecture.QuizQuestion {
	return m.questions[m.index]
}

// Score reports the number of correctly answered questions so far.
func (m Model) Score() int {
	return m.score
}

package quizui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	questionStyle = lipgloss.NewStyle().Bold(true)
	optionStyle   = lipgloss.NewStyle().PaddingLeft(2)
	selectedStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("39")).Bold(true)
	correctStyle  = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("42")).Bold(true)
	wrongStyle    = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("196"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("239"))
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Lecture Quiz (%s)", m.difficulty)))
	b.WriteString("\n\n")

	switch m.state {
	case stateLoading:
		b.WriteString("Generating questions...\n")

	case stateEmpty:
		b.WriteString("No Questions Available\n\n")
		b.WriteString(helpStyle.Render("r to try again • q to quit"))

	case stateError:
		b.WriteString(errorStyle.Render("Failed to generate questions: " + m.err.Error()))
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("r to try again • q to quit"))

	case stateQuestion, stateAnswered:
		m.renderQuestion(&b)

	case stateFinished:
		b.WriteString(fmt.Sprintf("You scored %d out of %d on %s mode.\n\n", m.score, len(m.questions), m.difficulty))
		b.WriteString(helpStyle.Render("r for a new quiz • q to quit"))
	}

	out := b.String()
	if m.width > 0 {
		out = lipgloss.NewStyle().Width(m.width).Render(out)
	}
	return out
}

func (m Model) renderQuestion(b *strings.Builder) {
	q := m.current()
	b.WriteString(progressStyle.Render(fmt.Sprintf("Question %d of %d", m.index+1, len(m.questions))))
	b.WriteString("\n\n")
	b.WriteString(questionStyle.Render(q.Text))
	b.WriteString("\n\n")

	answered := m.state == stateAnswered
	for i, opt := range q.Options {
		line := fmt.Sprintf("%d. %s", i+1, opt)
		style := optionStyle
		switch {
		case answered && i == q.CorrectAnswer:
			style = correctStyle
		case answered && i == m.selected:
			style = wrongStyle
		case !answered && i == m.selected:
			style = selectedStyle
			line = "> " + line
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if !answered {
		b.WriteString(helpStyle.Render("1-4 or ↑/↓ to choose • enter to check • q to quit"))
		return
	}

	if m.selected == q.CorrectAnswer {
		b.WriteString(correctStyle.Render("Correct!"))
	} else {
		b.WriteString(wrongStyle.Render("Incorrect. The answer is " + q.Options[q.CorrectAnswer]))
	}
	b.WriteString("\n\n")
	next := "Next Question"
	if m.index+1 >= len(m.questions) {
		next = "Finish Quiz"
	}
	b.WriteString(helpStyle.Render("enter: " + next + " • q to quit"))
}

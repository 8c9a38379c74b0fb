// Package tui holds the Bubble Tea models for the interactive screens:
// quiz play, flashcard study, and card entry. The models are pure
// consumers of the session state machines in internal/quiz and
// internal/flashcards; all persistence goes through the hub.
package tui

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/rcollings/studyhub/internal/domain"
	"github.com/rcollings/studyhub/internal/hub"
	"github.com/rcollings/studyhub/internal/quiz"
	"github.com/rcollings/studyhub/internal/ui/theme"
)

// quizModel drives one quiz play session.
type quizModel struct {
	hub      *hub.Hub
	subject  domain.SubjectID
	session  *quiz.Session
	selected int
	feedback string
	record   *domain.ProgressRecord
	err      error
}

func newQuizModel(h *hub.Hub, subject domain.SubjectID, session *quiz.Session) quizModel {
	return quizModel{hub: h, subject: subject, session: session}
}

func (m quizModel) Init() tea.Cmd {
	return nil
}

func (m quizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if kmsg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.record != nil || m.err != nil {
		return m, tea.Quit
	}

	if m.session.Complete() {
		switch kmsg.String() {
		case "f", "enter":
			rec, err := m.hub.FinishSession(context.Background(), m.subject, m.session)
			if err != nil {
				m.err = err
				return m, nil
			}
			m.record = &rec
			return m, nil
		case "r":
			m.session.Retry()
			m.selected = 0
			m.feedback = ""
			return m, nil
		}
		return m, nil
	}

	q := m.session.Current()
	switch kmsg.String() {
	case "up", "k":
		if m.selected > 0 {
			m.selected--
		}
	case "down", "j":
		if m.selected < len(q.Choices)-1 {
			m.selected++
		}
	case "enter":
		choice := q.Choices[m.selected]
		if m.session.Answer(choice) {
			m.feedback = theme.Correct.Render("Correct!")
		} else {
			m.feedback = theme.Incorrect.Render("Wrong! Answer: " + q.Answer)
		}
		m.selected = 0
	}
	return m, nil
}

func (m quizModel) View() tea.View {
	v := tea.NewView("")

	title := theme.Title.Render(m.session.Quiz.Title)

	switch {
	case m.err != nil:
		v.SetContent(title + "\n\n" + theme.Incorrect.Render(m.err.Error()) + "\n")
	case m.record != nil:
		body := fmt.Sprintf("Progress saved. Attempts: %d  Correct: %d  Mastery: %d%%",
			m.record.Attempts, m.record.Correct, m.record.Mastery)
		v.SetContent(title + "\n\n" + theme.Body.Render(body) + "\n\n" +
			theme.Hint.Render("Press any key to exit") + "\n")
	case m.session.Complete():
		body := fmt.Sprintf("Quiz complete. Your score: %d / %d",
			m.session.Score, m.session.Length())
		v.SetContent(title + "\n\n" + theme.Body.Render(body) + "\n\n" +
			theme.Hint.Render("[f] finish and save  [r] retry  [ctrl+c] quit") + "\n")
	default:
		q := m.session.Current()
		s := title + "\n"
		if m.feedback != "" {
			s += "\n" + m.feedback + "\n"
		}
		s += "\n" + theme.Body.Render(fmt.Sprintf("Q%d/%d: %s",
			m.session.Index+1, m.session.Length(), q.Text)) + "\n\n"
		for i, c := range q.Choices {
			if i == m.selected {
				s += theme.Selected.Render("> "+c) + "\n"
			} else {
				s += theme.Unselected.Render("  "+c) + "\n"
			}
		}
		s += "\n" + theme.Hint.Render("↑↓ select  enter answer  ctrl+c quit") + "\n"
		v.SetContent(s)
	}
	return v
}

// PlayQuiz runs the interactive quiz screen until the session is finished
// or abandoned.
func PlayQuiz(h *hub.Hub, subject domain.SubjectID, session *quiz.Session) error {
	p := tea.NewProgram(newQuizModel(h, subject, session))
	_, err := p.Run()
	return err
}

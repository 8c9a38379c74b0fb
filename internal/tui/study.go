package tui

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/rcollings/studyhub/internal/domain"
	"github.com/rcollings/studyhub/internal/flashcards"
	"github.com/rcollings/studyhub/internal/hub"
	"github.com/rcollings/studyhub/internal/ui/theme"
)

// studyModel drives one flashcard study session.
type studyModel struct {
	hub     *hub.Hub
	subject domain.Subject
	session *flashcards.StudySession
	err     error
}

func newStudyModel(h *hub.Hub, subject domain.Subject, session *flashcards.StudySession) studyModel {
	return studyModel{hub: h, subject: subject, session: session}
}

func (m studyModel) Init() tea.Cmd {
	return nil
}

func (m studyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if kmsg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.session.Complete() || m.err != nil {
		return m, tea.Quit
	}

	if !m.session.Revealed() {
		switch kmsg.String() {
		case "enter", " ", "f":
			m.session.Reveal()
		case "s":
			m.session.Skip()
		}
		return m, nil
	}

	var rating flashcards.Rating
	switch kmsg.String() {
	case "e":
		rating = flashcards.RatingEasy
	case "g":
		rating = flashcards.RatingGood
	case "h":
		rating = flashcards.RatingHard
	case "s":
		m.session.Skip()
		return m, nil
	default:
		return m, nil
	}

	if err := m.hub.RateCard(context.Background(), m.session, rating); err != nil {
		m.err = err
	}
	return m, nil
}

func (m studyModel) View() tea.View {
	v := tea.NewView("")

	title := theme.Title.Render("Studying: " + m.subject.Name)

	switch {
	case m.err != nil:
		v.SetContent(title + "\n\n" + theme.Incorrect.Render(m.err.Error()) + "\n")
	case m.session.Complete():
		v.SetContent(title + "\n\n" + theme.Body.Render("Session complete.") + "\n\n" +
			theme.Hint.Render("Press any key to exit") + "\n")
	default:
		card := m.session.Current()
		s := title + "\n\n"
		s += theme.Hint.Render(fmt.Sprintf("Card %d of %d",
			m.session.Position()+1, m.session.Length())) + "\n\n"
		s += theme.Card.Render(card.Front) + "\n\n"
		if m.session.Revealed() {
			s += theme.Card.Render(card.Back) + "\n\n"
			s += theme.Hint.Render("[e] easy  [g] good  [h] hard  [s] skip") + "\n"
		} else {
			s += theme.Hint.Render("[enter] flip  [s] skip  [ctrl+c] quit") + "\n"
		}
		v.SetContent(s)
	}
	return v
}

// StudyCards runs the interactive flashcard screen until every card has
// been shown.
func StudyCards(h *hub.Hub, subject domain.Subject, session *flashcards.StudySession) error {
	p := tea.NewProgram(newStudyModel(h, subject, session))
	_, err := p.Run()
	return err
}

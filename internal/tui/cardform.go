package tui

import (
	"context"
	"errors"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/rcollings/studyhub/internal/domain"
	"github.com/rcollings/studyhub/internal/flashcards"
	"github.com/rcollings/studyhub/internal/hub"
	"github.com/rcollings/studyhub/internal/ui/theme"
)

// cardFormModel collects a new flashcard's front and back text.
type cardFormModel struct {
	hub     *hub.Hub
	subject domain.SubjectID
	front   textinput.Model
	back    textinput.Model
	focused int // 0 = front, 1 = back
	message string
	saved   int
	err     error
}

func newCardFormModel(h *hub.Hub, subject domain.SubjectID) cardFormModel {
	front := textinput.New()
	front.Placeholder = "Front (prompt)"
	front.Focus()

	back := textinput.New()
	back.Placeholder = "Back (answer)"

	return cardFormModel{hub: h, subject: subject, front: front, back: back}
}

func (m cardFormModel) Init() tea.Cmd {
	return nil
}

func (m cardFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "shift+tab":
			m.toggleFocus()
			return m, nil
		case "enter":
			if m.focused == 0 {
				m.toggleFocus()
				return m, nil
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	if m.focused == 0 {
		m.front, cmd = m.front.Update(msg)
	} else {
		m.back, cmd = m.back.Update(msg)
	}
	return m, cmd
}

func (m *cardFormModel) toggleFocus() {
	if m.focused == 0 {
		m.focused = 1
		m.front.Blur()
		m.back.Focus()
	} else {
		m.focused = 0
		m.back.Blur()
		m.front.Focus()
	}
}

func (m cardFormModel) submit() (tea.Model, tea.Cmd) {
	_, err := m.hub.CreateCard(context.Background(), m.subject, m.front.Value(), m.back.Value())
	if err != nil {
		if errors.Is(err, flashcards.ErrInvalidCard) {
			m.message = theme.Incorrect.Render("Fill both front and back.")
			return m, nil
		}
		m.err = err
		return m, tea.Quit
	}

	m.saved++
	m.message = theme.Correct.Render("Card saved.")
	m.front.SetValue("")
	m.back.SetValue("")
	if m.focused == 1 {
		m.toggleFocus()
	}
	return m, nil
}

func (m cardFormModel) View() tea.View {
	v := tea.NewView("")

	s := theme.Title.Render("Add flashcards") + "\n\n"
	s += m.front.View() + "\n"
	s += m.back.View() + "\n\n"
	if m.message != "" {
		s += m.message + "\n\n"
	}
	s += theme.Hint.Render("tab switch field  enter save  esc done") + "\n"
	v.SetContent(s)
	return v
}

// AddCards runs the card entry form until the user exits. It returns the
// number of cards saved.
func AddCards(h *hub.Hub, subject domain.SubjectID) (int, error) {
	m, err := tea.NewProgram(newCardFormModel(h, subject)).Run()
	if err != nil {
		return 0, err
	}
	form := m.(cardFormModel)
	if form.err != nil {
		return form.saved, form.err
	}
	return form.saved, nil
}

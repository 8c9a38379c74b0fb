package flashcards

import (
	"time"

	"github.com/rcollings/studyhub/internal/domain"
)

// StudySession is an ephemeral walk over every card in a deck, in stored
// order, with a two-phase reveal per card: hidden (front only), then
// revealed (front and back, rating offered). A card may also be skipped
// from either phase without a rating. Sessions are never persisted; card
// mutations made by ratings are the caller's to persist.
type StudySession struct {
	deck     *domain.Deck
	pos      int
	revealed bool
}

// NewStudySession starts a session over deck. An empty or nil deck yields
// ErrNoCards.
func NewStudySession(deck *domain.Deck) (*StudySession, error) {
	if deck == nil || len(deck.Cards) == 0 {
		return nil, ErrNoCards
	}
	return &StudySession{deck: deck}, nil
}

// Current returns the card being shown, or nil once the session is
// complete. The pointer aliases the deck's card so rating mutations land in
// the owning document.
func (s *StudySession) Current() *domain.Flashcard {
	if s.Complete() {
		return nil
	}
	return &s.deck.Cards[s.pos]
}

// Revealed reports whether the current card's back is showing.
func (s *StudySession) Revealed() bool {
	return s.revealed
}

// Reveal flips the current card to show its back.
func (s *StudySession) Reveal() {
	if !s.Complete() {
		s.revealed = true
	}
}

// Rate grades the revealed card, updating its schedule, and advances.
// It returns the rated card so the caller can persist the mutation, or nil
// if there was nothing to rate (card not revealed, or session complete).
func (s *StudySession) Rate(rating Rating, now time.Time) *domain.Flashcard {
	card := s.Current()
	if card == nil || !s.revealed {
		return nil
	}
	Reschedule(card, rating, now)
	s.advance()
	return card
}

// Skip advances past the current card without changing its schedule.
func (s *StudySession) Skip() {
	if !s.Complete() {
		s.advance()
	}
}

// Complete reports whether every card has been shown.
func (s *StudySession) Complete() bool {
	return s.pos >= len(s.deck.Cards)
}

// Position returns the zero-based index of the current card.
func (s *StudySession) Position() int {
	return s.pos
}

// Length returns the card count.
func (s *StudySession) Length() int {
	return len(s.deck.Cards)
}

func (s *StudySession) advance() {
	s.pos++
	s.revealed = false
}

// Package flashcards creates cards, updates their review intervals from
// recall ratings, and drives study sessions over a subject's deck.
package flashcards

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/rcollings/studyhub/internal/domain"
)

// ErrInvalidCard indicates a card was created with a blank front or back.
var ErrInvalidCard = errors.New("card front and back must both be non-empty")

// ErrNoCards indicates a study session was requested over an empty deck.
var ErrNoCards = errors.New("no cards to study")

// DefaultDeckName names the singleton per-subject deck.
const DefaultDeckName = "Default deck"

// Rating grades recall quality for a revealed card. There is no separate
// "again" rating below Hard.
type Rating int

const (
	RatingHard Rating = 1
	RatingGood Rating = 3
	RatingEasy Rating = 4
)

const (
	// DefaultInterval is the review interval for new cards, in days.
	DefaultInterval = 1
	// DefaultEase seeds the stored ease factor. The scheduler never reads
	// it back; it is kept for persisted-format compatibility.
	DefaultEase = 2.5

	goodGrowth = 1.6
	easyStep   = 0.3
)

// NewCard builds a flashcard due immediately, with the default interval and
// ease. Front and back must be non-empty after trimming.
func NewCard(id, front, back string, now time.Time) (domain.Flashcard, error) {
	front = strings.TrimSpace(front)
	back = strings.TrimSpace(back)
	if front == "" || back == "" {
		return domain.Flashcard{}, ErrInvalidCard
	}
	return domain.Flashcard{
		ID:       id,
		Front:    front,
		Back:     back,
		NextDue:  now,
		Interval: DefaultInterval,
		Ease:     DefaultEase,
	}, nil
}

// Reschedule updates a card's interval and due date from a recall rating.
// Good and Easy grow the interval (×1.6 and ×1.9); Hard resets it to one
// day. The interval never drops below one day.
func Reschedule(card *domain.Flashcard, rating Rating, now time.Time) {
	if rating >= RatingGood {
		factor := goodGrowth + float64(rating-RatingGood)*easyStep
		card.Interval = int(math.Round(float64(card.Interval) * factor))
		if card.Interval < 1 {
			card.Interval = 1
		}
	} else {
		card.Interval = 1
	}
	card.NextDue = now.Add(time.Duration(card.Interval) * 24 * time.Hour)
}

// IsDue reports whether the card is at or past its due date. Stored for
// display; study sessions do not filter on it.
func IsDue(card domain.Flashcard, now time.Time) bool {
	return !now.Before(card.NextDue)
}

package flashcards

import (
	"errors"
	"testing"
	"time"

	"github.com/rcollings/studyhub/internal/domain"
)

var now = time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

func TestNewCardDefaults(t *testing.T) {
	card, err := NewCard("card-1", "front", "back", now)
	if err != nil {
		t.Fatalf("new card: %v", err)
	}
	if card.Interval != DefaultInterval {
		t.Errorf("interval = %d, want %d", card.Interval, DefaultInterval)
	}
	if !card.NextDue.Equal(now) {
		t.Errorf("nextDue = %v, want creation time %v", card.NextDue, now)
	}
	if card.Ease != DefaultEase {
		t.Errorf("ease = %v, want %v", card.Ease, DefaultEase)
	}
}

func TestNewCardRequiresBothSides(t *testing.T) {
	tests := []struct {
		name        string
		front, back string
	}{
		{"empty front", "", "back"},
		{"empty back", "front", ""},
		{"whitespace front", "   ", "back"},
		{"both empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCard("id", tt.front, tt.back, now)
			if !errors.Is(err, ErrInvalidCard) {
				t.Errorf("err = %v, want ErrInvalidCard", err)
			}
		})
	}
}

func TestReschedule(t *testing.T) {
	tests := []struct {
		name         string
		interval     int
		rating       Rating
		wantInterval int
	}{
		{"good from one", 1, RatingGood, 2},   // round(1*1.6)
		{"good from two", 2, RatingGood, 3},   // round(2*1.6)
		{"good from ten", 10, RatingGood, 16}, // round(10*1.6)
		{"easy from one", 1, RatingEasy, 2},   // round(1*1.9)
		{"easy from ten", 10, RatingEasy, 19}, // round(10*1.9)
		{"hard resets", 30, RatingHard, 1},
		{"hard from one stays one", 1, RatingHard, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := domain.Flashcard{Interval: tt.interval}
			Reschedule(&card, tt.rating, now)
			if card.Interval != tt.wantInterval {
				t.Errorf("interval = %d, want %d", card.Interval, tt.wantInterval)
			}
			wantDue := now.Add(time.Duration(tt.wantInterval) * 24 * time.Hour)
			if !card.NextDue.Equal(wantDue) {
				t.Errorf("nextDue = %v, want %v", card.NextDue, wantDue)
			}
		})
	}
}

func TestRescheduleIntervalNeverBelowOne(t *testing.T) {
	ratings := []Rating{
		RatingHard, RatingGood, RatingHard, RatingHard, RatingEasy,
		RatingGood, RatingGood, RatingHard, RatingEasy, RatingEasy,
	}
	card, err := NewCard("id", "f", "b", now)
	if err != nil {
		t.Fatalf("new card: %v", err)
	}
	for i, r := range ratings {
		Reschedule(&card, r, now)
		if card.Interval < 1 {
			t.Fatalf("after rating %d (%v): interval = %d, want >= 1", i, r, card.Interval)
		}
	}
}

func TestIsDue(t *testing.T) {
	card := domain.Flashcard{NextDue: now}
	if !IsDue(card, now) {
		t.Error("card due exactly now should be due")
	}
	if IsDue(card, now.Add(-time.Hour)) {
		t.Error("card should not be due before its due date")
	}
	if !IsDue(card, now.Add(time.Hour)) {
		t.Error("card past its due date should be due")
	}
}

package quiz

import (
	"slices"
	"testing"

	"github.com/rcollings/studyhub/internal/domain"
)

func threeQuestionQuiz() domain.Quiz {
	return domain.Quiz{
		ID:    "quiz-1",
		Title: "t",
		Questions: []domain.Question{
			{ID: "q1", Text: "1+1?", Choices: []string{"2", "3", "N/A", "N/A"}, Answer: "2"},
			{ID: "q2", Text: "2+2?", Choices: []string{"5", "4", "N/A", "N/A"}, Answer: "4"},
			{ID: "q3", Text: "3+3?", Choices: []string{"6", "7", "N/A", "N/A"}, Answer: "6"},
		},
	}
}

func TestSessionScoring(t *testing.T) {
	s := NewSession(threeQuestionQuiz())

	if s.Complete() {
		t.Fatal("new session already complete")
	}
	if got := s.Current().ID; got != "q1" {
		t.Fatalf("current = %s, want q1", got)
	}

	if !s.Answer("2") {
		t.Error("correct answer scored as wrong")
	}
	if !s.Answer("4") {
		t.Error("correct answer scored as wrong")
	}
	if s.Answer("7") {
		t.Error("wrong answer scored as correct")
	}

	if !s.Complete() {
		t.Fatal("session not complete after all answers")
	}
	if s.Score != 2 {
		t.Errorf("score = %d, want 2", s.Score)
	}
	if s.Current() != nil {
		t.Error("Current should be nil once complete")
	}
}

func TestSessionAnswerAfterCompleteIsNoop(t *testing.T) {
	s := NewSession(threeQuestionQuiz())
	s.Answer("2")
	s.Answer("4")
	s.Answer("6")

	if s.Answer("2") {
		t.Error("answering a complete session should not score")
	}
	if s.Score != 3 {
		t.Errorf("score = %d, want 3", s.Score)
	}
}

func TestSessionRetryKeepsOrder(t *testing.T) {
	s := NewSession(threeQuestionQuiz())
	before := make([][]string, 0, s.Length())
	for !s.Complete() {
		before = append(before, slices.Clone(s.Current().Choices))
		s.Answer("wrong")
	}

	s.Retry()

	if s.Score != 0 || s.Index != 0 {
		t.Fatalf("retry left score=%d index=%d", s.Score, s.Index)
	}
	for i := 0; !s.Complete(); i++ {
		if !slices.Equal(s.Current().Choices, before[i]) {
			t.Errorf("question %d reshuffled on retry: %v vs %v",
				i, s.Current().Choices, before[i])
		}
		s.Answer("wrong")
	}
}

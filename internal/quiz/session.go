package quiz

import "github.com/rcollings/studyhub/internal/domain"

// Session is an ephemeral play-through of one quiz. It presents questions
// sequentially, each answered exactly once with no going back, and is never
// persisted mid-play. Question and choice order are fixed for the whole
// session, including retries.
type Session struct {
	Quiz  domain.Quiz
	Index int
	Score int
}

// NewSession starts a play session over quiz.
func NewSession(quiz domain.Quiz) *Session {
	return &Session{Quiz: quiz}
}

// Current returns the question being presented, or nil once the session is
// complete.
func (s *Session) Current() *domain.Question {
	if s.Complete() {
		return nil
	}
	return &s.Quiz.Questions[s.Index]
}

// Answer records the selected choice for the current question and advances.
// It reports whether the choice was correct (textual equality with the
// question's answer). Answering a complete session is a no-op.
func (s *Session) Answer(choice string) bool {
	q := s.Current()
	if q == nil {
		return false
	}
	correct := choice == q.Answer
	if correct {
		s.Score++
	}
	s.Index++
	return correct
}

// Complete reports whether every question has been answered.
func (s *Session) Complete() bool {
	return s.Index >= len(s.Quiz.Questions)
}

// Retry restarts the session with score zero and the same question and
// choice order.
func (s *Session) Retry() {
	s.Index = 0
	s.Score = 0
}

// Length returns the question count.
func (s *Session) Length() int {
	return len(s.Quiz.Questions)
}

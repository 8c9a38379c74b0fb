package quiz

import "errors"

// ErrNoValidQuestions indicates quiz text parsed to zero usable questions;
// no quiz is created.
var ErrNoValidQuestions = errors.New("no valid questions parsed")

// ErrNoQuizzes indicates a play session was requested with no quizzes saved.
var ErrNoQuizzes = errors.New("no quizzes available")

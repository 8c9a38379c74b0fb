// Package quiz parses the line-based question format into quizzes and
// drives sequential play sessions over them.
package quiz

import (
	"math/rand/v2"
	"strings"

	"github.com/google/uuid"

	"github.com/rcollings/studyhub/internal/domain"
)

// DefaultTitle is used when a quiz is created with a blank title.
const DefaultTitle = "Untitled Quiz"

// PlaceholderChoice pads question choice lists up to ChoicesPerQuestion.
const PlaceholderChoice = "N/A"

// ChoicesPerQuestion is the fixed choice count per question.
const ChoicesPerQuestion = 4

// Parser turns raw quiz text into domain quizzes. The zero value is not
// usable; construct with NewParser.
type Parser struct {
	rng   *rand.Rand
	newID func() string
}

// NewParser creates a Parser. A nil rng falls back to the shared
// math/rand/v2 source; a nil newID falls back to UUIDs.
func NewParser(rng *rand.Rand, newID func() string) *Parser {
	if newID == nil {
		newID = uuid.NewString
	}
	return &Parser{rng: rng, newID: newID}
}

// Parse builds a quiz from raw text, one question per line in the form
//
//	question text | correct answer | wrong1 ; wrong2 ; wrong3
//
// Lines with fewer than two pipe-separated fields are silently skipped and
// the wrong-answer field is optional. Choice order is shuffled once here
// and persisted; it is never reshuffled on replay. If no line parses,
// ErrNoValidQuestions is returned and no quiz is created.
func (p *Parser) Parse(title, raw string) (domain.Quiz, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		title = DefaultTitle
	}

	var questions []domain.Question
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		q, ok := p.parseLine(line)
		if ok {
			questions = append(questions, q)
		}
	}

	if len(questions) == 0 {
		return domain.Quiz{}, ErrNoValidQuestions
	}

	return domain.Quiz{
		ID:        p.newID(),
		Title:     title,
		Questions: questions,
	}, nil
}

func (p *Parser) parseLine(line string) (domain.Question, bool) {
	parts := strings.Split(line, "|")
	if len(parts) < 2 {
		return domain.Question{}, false
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	text := parts[0]
	correct := parts[1]

	var wrongs []string
	if len(parts) > 2 {
		for _, w := range strings.Split(parts[2], ";") {
			w = strings.TrimSpace(w)
			if w != "" {
				wrongs = append(wrongs, w)
			}
		}
	}

	choices := append([]string{correct}, wrongs...)
	if len(choices) > ChoicesPerQuestion {
		choices = choices[:ChoicesPerQuestion]
	}
	for len(choices) < ChoicesPerQuestion {
		choices = append(choices, PlaceholderChoice)
	}
	p.shuffle(choices)

	return domain.Question{
		ID:      p.newID(),
		Text:    text,
		Choices: choices,
		Answer:  correct,
	}, true
}

// shuffle applies a uniform random permutation to choices.
func (p *Parser) shuffle(choices []string) {
	swap := func(i, j int) { choices[i], choices[j] = choices[j], choices[i] }
	if p.rng != nil {
		p.rng.Shuffle(len(choices), swap)
		return
	}
	rand.Shuffle(len(choices), swap)
}

package quiz

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"
)

// testParser returns a parser with a seeded random source and sequential
// ids, so parses are reproducible.
func testParser() *Parser {
	rng := rand.New(rand.NewPCG(1, 2))
	n := 0
	newID := func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
	return NewParser(rng, newID)
}

func TestParseSingleQuestion(t *testing.T) {
	p := testParser()
	q, err := p.Parse("Arithmetic", "What is 2+2? | 4 | 3 ; 5 ; 22")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if q.Title != "Arithmetic" {
		t.Errorf("title = %q, want %q", q.Title, "Arithmetic")
	}
	if len(q.Questions) != 1 {
		t.Fatalf("got %d questions, want 1", len(q.Questions))
	}

	got := q.Questions[0]
	if got.Text != "What is 2+2?" {
		t.Errorf("text = %q", got.Text)
	}
	if got.Answer != "4" {
		t.Errorf("answer = %q, want %q", got.Answer, "4")
	}
	want := []string{"22", "3", "4", "5"}
	choices := slices.Clone(got.Choices)
	slices.Sort(choices)
	if !slices.Equal(choices, want) {
		t.Errorf("choices = %v, want a permutation of %v", got.Choices, want)
	}
}

func TestParseNoValidQuestions(t *testing.T) {
	p := testParser()
	_, err := p.Parse("Bad", "Bad line with one field")
	if !errors.Is(err, ErrNoValidQuestions) {
		t.Fatalf("err = %v, want ErrNoValidQuestions", err)
	}
}

func TestParseSkipsInvalidLines(t *testing.T) {
	p := testParser()
	raw := "no pipes here\n" +
		"Q1? | a | b\n" +
		"\n" +
		"also invalid\n" +
		"Q2? | x | y ; z"
	q, err := p.Parse("", raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(q.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(q.Questions))
	}
	if q.Title != DefaultTitle {
		t.Errorf("title = %q, want %q", q.Title, DefaultTitle)
	}
}

func TestParsePadsWithPlaceholder(t *testing.T) {
	p := testParser()
	q, err := p.Parse("t", "Capital of France? | Paris")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	choices := q.Questions[0].Choices
	if len(choices) != ChoicesPerQuestion {
		t.Fatalf("got %d choices, want %d", len(choices), ChoicesPerQuestion)
	}
	placeholders := 0
	for _, c := range choices {
		if c == PlaceholderChoice {
			placeholders++
		}
	}
	if placeholders != 3 {
		t.Errorf("got %d placeholders, want 3", placeholders)
	}
	if !slices.Contains(choices, "Paris") {
		t.Errorf("choices %v missing correct answer", choices)
	}
}

func TestParseTruncatesExtraWrongs(t *testing.T) {
	p := testParser()
	q, err := p.Parse("t", "Pick one | a | b ; c ; d ; e ; f")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	choices := q.Questions[0].Choices
	if len(choices) != ChoicesPerQuestion {
		t.Fatalf("got %d choices, want %d", len(choices), ChoicesPerQuestion)
	}
	// The correct answer survives truncation; it is always kept first
	// before shuffling.
	if !slices.Contains(choices, "a") {
		t.Errorf("choices %v missing correct answer", choices)
	}
	if slices.Contains(choices, "e") || slices.Contains(choices, "f") {
		t.Errorf("choices %v kept wrongs past the cap", choices)
	}
}

func TestParseAnswerAlwaysAmongChoices(t *testing.T) {
	p := testParser()
	raw := "Q1? | one | a ; b ; c\n" +
		"Q2? | two\n" +
		"Q3? | three | x"
	q, err := p.Parse("t", raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for _, question := range q.Questions {
		if !slices.Contains(question.Choices, question.Answer) {
			t.Errorf("question %q: answer %q not in choices %v",
				question.Text, question.Answer, question.Choices)
		}
	}
}

func TestParseExtraPipeFieldsIgnored(t *testing.T) {
	p := testParser()
	q, err := p.Parse("t", "Q? | right | w1 ; w2 | ignored tail")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	choices := q.Questions[0].Choices
	if slices.Contains(choices, "ignored tail") {
		t.Errorf("choices %v should not include fields past the third", choices)
	}
}

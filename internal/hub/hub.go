// Package hub is the view-facing facade over the study document. Every
// operation validates its input, mutates the in-memory document, then
// persists the whole document synchronously as one logical step.
// Failures come back as typed errors; nothing here panics across the
// boundary.
package hub

import (
	"context"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rcollings/studyhub/internal/domain"
	"github.com/rcollings/studyhub/internal/flashcards"
	"github.com/rcollings/studyhub/internal/heuristics"
	"github.com/rcollings/studyhub/internal/progress"
	"github.com/rcollings/studyhub/internal/quiz"
	"github.com/rcollings/studyhub/internal/store"
)

// SummarySentences is the sentence budget for note summaries.
const SummarySentences = 3

// Hub owns the loaded document and the repositories needed to persist it.
// It assumes exactly one active session against the store at a time; there
// is no locking and no concurrent access.
type Hub struct {
	docs   *store.DocumentRepo
	doc    *domain.Document
	now    func() time.Time
	newID  func() string
	rng    *rand.Rand
	parser *quiz.Parser
}

// Option configures a Hub.
type Option func(*Hub)

// WithClock substitutes the time source.
func WithClock(now func() time.Time) Option {
	return func(h *Hub) { h.now = now }
}

// WithIDSource substitutes the id generator.
func WithIDSource(newID func() string) Option {
	return func(h *Hub) { h.newID = newID }
}

// WithRand substitutes the random source used for choice shuffling.
func WithRand(rng *rand.Rand) Option {
	return func(h *Hub) { h.rng = rng }
}

// Open loads the study document, initializing and persisting a fresh one on
// first run.
func Open(ctx context.Context, docs *store.DocumentRepo, opts ...Option) (*Hub, error) {
	h := &Hub{
		docs:  docs,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.parser = quiz.NewParser(h.rng, h.newID)

	doc, found, err := docs.Load(ctx, store.DocumentKey, domain.NewDocument())
	if err != nil {
		return nil, err
	}
	h.doc = doc
	if !found {
		if err := h.persist(ctx); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// Subjects returns the subject enumeration.
func (h *Hub) Subjects() []domain.Subject {
	return domain.Subjects
}

// Document exposes the loaded document for read-only display.
func (h *Hub) Document() *domain.Document {
	return h.doc
}

func (h *Hub) data(sub domain.SubjectID) (*domain.SubjectData, error) {
	d := h.doc.Data(sub)
	if d == nil {
		return nil, &NotFoundError{Kind: "subject", ID: string(sub)}
	}
	return d, nil
}

func (h *Hub) persist(ctx context.Context) error {
	return h.docs.Save(ctx, store.DocumentKey, h.doc)
}

// --- Notes ---

// CreateNote saves a note for sub, newest first.
func (h *Hub) CreateNote(ctx context.Context, sub domain.SubjectID, text string) (domain.Note, error) {
	data, err := h.data(sub)
	if err != nil {
		return domain.Note{}, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Note{}, ErrEmptyInput
	}
	note := domain.Note{ID: h.newID(), Text: text, Created: h.now()}
	data.Notes = append([]domain.Note{note}, data.Notes...)
	if err := h.persist(ctx); err != nil {
		return domain.Note{}, err
	}
	return note, nil
}

// Notes lists sub's notes, newest first.
func (h *Hub) Notes(sub domain.SubjectID) ([]domain.Note, error) {
	data, err := h.data(sub)
	if err != nil {
		return nil, err
	}
	return data.Notes, nil
}

// Note returns one note by id. The raw text is what the view layer offers
// for export; the core does no file I/O.
func (h *Hub) Note(sub domain.SubjectID, id string) (domain.Note, error) {
	data, err := h.data(sub)
	if err != nil {
		return domain.Note{}, err
	}
	for _, n := range data.Notes {
		if n.ID == id {
			return n, nil
		}
	}
	return domain.Note{}, &NotFoundError{Kind: "note", ID: id}
}

// DeleteNote removes a note by id.
func (h *Hub) DeleteNote(ctx context.Context, sub domain.SubjectID, id string) error {
	data, err := h.data(sub)
	if err != nil {
		return err
	}
	idx := slices.IndexFunc(data.Notes, func(n domain.Note) bool { return n.ID == id })
	if idx < 0 {
		return &NotFoundError{Kind: "note", ID: id}
	}
	data.Notes = slices.Delete(data.Notes, idx, idx+1)
	return h.persist(ctx)
}

// SummarizeDraft runs the sentence-truncation summarizer over draft text.
func (h *Hub) SummarizeDraft(text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyInput
	}
	return heuristics.Summarize(text, SummarySentences), nil
}

// --- Quizzes ---

// CreateQuiz parses raw question text into a new quiz for sub, newest
// first. A blank title becomes quiz.DefaultTitle; zero parsed questions
// surface quiz.ErrNoValidQuestions and nothing is persisted.
func (h *Hub) CreateQuiz(ctx context.Context, sub domain.SubjectID, title, raw string) (domain.Quiz, error) {
	data, err := h.data(sub)
	if err != nil {
		return domain.Quiz{}, err
	}
	if strings.TrimSpace(raw) == "" {
		return domain.Quiz{}, ErrEmptyInput
	}
	q, err := h.parser.Parse(title, raw)
	if err != nil {
		return domain.Quiz{}, err
	}
	data.Quizzes = append([]domain.Quiz{q}, data.Quizzes...)
	if err := h.persist(ctx); err != nil {
		return domain.Quiz{}, err
	}
	return q, nil
}

// Quizzes lists sub's quizzes, newest first.
func (h *Hub) Quizzes(sub domain.SubjectID) ([]domain.Quiz, error) {
	data, err := h.data(sub)
	if err != nil {
		return nil, err
	}
	return data.Quizzes, nil
}

// DeleteQuiz removes a quiz by id.
func (h *Hub) DeleteQuiz(ctx context.Context, sub domain.SubjectID, id string) error {
	data, err := h.data(sub)
	if err != nil {
		return err
	}
	idx := slices.IndexFunc(data.Quizzes, func(q domain.Quiz) bool { return q.ID == id })
	if idx < 0 {
		return &NotFoundError{Kind: "quiz", ID: id}
	}
	data.Quizzes = slices.Delete(data.Quizzes, idx, idx+1)
	return h.persist(ctx)
}

// StartQuiz begins a play session. An empty id plays the most recent quiz.
// With no quizzes saved it returns quiz.ErrNoQuizzes; a stale id returns a
// NotFoundError. Answering and retrying happen on the returned session;
// FinishSession commits the result.
func (h *Hub) StartQuiz(sub domain.SubjectID, id string) (*quiz.Session, error) {
	data, err := h.data(sub)
	if err != nil {
		return nil, err
	}
	if len(data.Quizzes) == 0 {
		return nil, quiz.ErrNoQuizzes
	}
	if id == "" {
		return quiz.NewSession(data.Quizzes[0]), nil
	}
	for _, q := range data.Quizzes {
		if q.ID == id {
			return quiz.NewSession(q), nil
		}
	}
	return nil, &NotFoundError{Kind: "quiz", ID: id}
}

// FinishSession commits a completed play session to sub's progress record
// and returns the updated record.
func (h *Hub) FinishSession(ctx context.Context, sub domain.SubjectID, s *quiz.Session) (domain.ProgressRecord, error) {
	rec := h.doc.ProgressFor(sub)
	if rec == nil {
		return domain.ProgressRecord{}, &NotFoundError{Kind: "subject", ID: string(sub)}
	}
	progress.Record(rec, s.Length(), s.Score)
	if err := h.persist(ctx); err != nil {
		return domain.ProgressRecord{}, err
	}
	return *rec, nil
}

// --- Flashcards ---

// CreateCard adds a flashcard to sub's default deck, creating the deck on
// first use. New cards are due immediately and go to the front of the deck.
func (h *Hub) CreateCard(ctx context.Context, sub domain.SubjectID, front, back string) (domain.Flashcard, error) {
	data, err := h.data(sub)
	if err != nil {
		return domain.Flashcard{}, err
	}
	card, err := flashcards.NewCard(h.newID(), front, back, h.now())
	if err != nil {
		return domain.Flashcard{}, err
	}
	if len(data.Decks) == 0 {
		data.Decks = append(data.Decks, domain.Deck{
			ID:   h.newID(),
			Name: flashcards.DefaultDeckName,
		})
	}
	deck := &data.Decks[0]
	deck.Cards = append([]domain.Flashcard{card}, deck.Cards...)
	if err := h.persist(ctx); err != nil {
		return domain.Flashcard{}, err
	}
	return card, nil
}

// Deck returns sub's default deck, or nil if no card was ever added.
func (h *Hub) Deck(sub domain.SubjectID) (*domain.Deck, error) {
	data, err := h.data(sub)
	if err != nil {
		return nil, err
	}
	if len(data.Decks) == 0 {
		return nil, nil
	}
	return &data.Decks[0], nil
}

// StartStudy begins a study session over sub's deck. An absent or empty
// deck returns flashcards.ErrNoCards. Reveal and Skip happen on the
// returned session; RateCard persists rating mutations.
func (h *Hub) StartStudy(sub domain.SubjectID) (*flashcards.StudySession, error) {
	deck, err := h.Deck(sub)
	if err != nil {
		return nil, err
	}
	return flashcards.NewStudySession(deck)
}

// RateCard grades the revealed card in s and persists the rescheduled card
// immediately. Rating a hidden card is a no-op.
func (h *Hub) RateCard(ctx context.Context, s *flashcards.StudySession, rating flashcards.Rating) error {
	if s.Rate(rating, h.now()) == nil {
		return nil
	}
	return h.persist(ctx)
}

// --- Past papers ---

// SavePastPaper stores past-paper text for sub, newest first.
func (h *Hub) SavePastPaper(ctx context.Context, sub domain.SubjectID, text string) (domain.PastPaper, error) {
	data, err := h.data(sub)
	if err != nil {
		return domain.PastPaper{}, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.PastPaper{}, ErrEmptyInput
	}
	paper := domain.PastPaper{ID: h.newID(), Text: text, Created: h.now()}
	data.PastPapers = append([]domain.PastPaper{paper}, data.PastPapers...)
	if err := h.persist(ctx); err != nil {
		return domain.PastPaper{}, err
	}
	return paper, nil
}

// PastPapers lists sub's past papers, newest first.
func (h *Hub) PastPapers(sub domain.SubjectID) ([]domain.PastPaper, error) {
	data, err := h.data(sub)
	if err != nil {
		return nil, err
	}
	return data.PastPapers, nil
}

// DeletePastPaper removes a past paper by id.
func (h *Hub) DeletePastPaper(ctx context.Context, sub domain.SubjectID, id string) error {
	data, err := h.data(sub)
	if err != nil {
		return err
	}
	idx := slices.IndexFunc(data.PastPapers, func(p domain.PastPaper) bool { return p.ID == id })
	if idx < 0 {
		return &NotFoundError{Kind: "past paper", ID: id}
	}
	data.PastPapers = slices.Delete(data.PastPapers, idx, idx+1)
	return h.persist(ctx)
}

// AnalyzePastPaper extracts keywords from a stored past paper.
func (h *Hub) AnalyzePastPaper(sub domain.SubjectID, id string) ([]string, error) {
	data, err := h.data(sub)
	if err != nil {
		return nil, err
	}
	for _, p := range data.PastPapers {
		if p.ID == id {
			return heuristics.ExtractTopics(p.Text), nil
		}
	}
	return nil, &NotFoundError{Kind: "past paper", ID: id}
}

// AnalyzeText extracts keywords from draft text that is not yet saved.
func (h *Hub) AnalyzeText(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyInput
	}
	return heuristics.ExtractTopics(text), nil
}

// --- Progress ---

// Progress lists progress records with subject metadata. A non-empty
// filter narrows to one subject.
func (h *Hub) Progress(filter domain.SubjectID) []progress.Entry {
	return progress.List(h.doc, filter)
}

// ResetProgress zeroes sub's record unconditionally and persists. Asking
// the user first is the view layer's job.
func (h *Hub) ResetProgress(ctx context.Context, sub domain.SubjectID) error {
	rec := h.doc.ProgressFor(sub)
	if rec == nil {
		return &NotFoundError{Kind: "subject", ID: string(sub)}
	}
	progress.Reset(rec)
	return h.persist(ctx)
}

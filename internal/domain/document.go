// Package domain defines the persisted study document and its record types.
//
// The whole of a learner's data is one Document: per-subject notes, quizzes,
// flashcard decks and past papers, plus per-subject progress counters. The
// Document is the single owned aggregate; every entity is value-owned by its
// parent list and carries a UUID string id.
package domain

import "time"

// CurrentVersion is the persisted document schema version.
const CurrentVersion = 1

// Document is the top-level persisted aggregate.
type Document struct {
	Version  int                           `json:"version"`
	Subjects map[SubjectID]*SubjectData    `json:"subjects"`
	Progress map[SubjectID]*ProgressRecord `json:"progress"`
}

// SubjectData holds all study material for one subject.
type SubjectData struct {
	Notes      []Note      `json:"notes"`
	Quizzes    []Quiz      `json:"quizzes"`
	Decks      []Deck      `json:"decks"`
	PastPapers []PastPaper `json:"pastpapers"`
}

// Note is a saved block of study notes. Notes are ordered newest-first.
type Note struct {
	ID      string    `json:"id"`
	Text    string    `json:"text"`
	Created time.Time `json:"created"`
}

// Quiz is an immutable set of multiple-choice questions.
type Quiz struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Question is a single multiple-choice question. Choices always has
// exactly four entries, shuffled once at creation time, and Answer is
// always one of them.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"q"`
	Choices []string `json:"choices"`
	Answer  string   `json:"answer"`
}

// Deck is a named collection of flashcards. One deck per subject is
// supported; it is created lazily on the first card add.
type Deck struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Cards []Flashcard `json:"cards"`
}

// Flashcard is a front/back card with its review schedule. Ease is stored
// for persisted-format compatibility but is not read by the scheduler.
type Flashcard struct {
	ID       string    `json:"id"`
	Front    string    `json:"front"`
	Back     string    `json:"back"`
	NextDue  time.Time `json:"nextDue"`
	Interval int       `json:"interval"`
	Ease     float64   `json:"ease"`
}

// PastPaper is saved past-paper text for keyword analysis.
type PastPaper struct {
	ID      string    `json:"id"`
	Text    string    `json:"text"`
	Created time.Time `json:"created"`
}

// ProgressRecord accumulates quiz results for one subject.
// Invariants: Correct <= Attempts; Mastery = round(100*Correct/Attempts)
// when Attempts > 0, else 0.
type ProgressRecord struct {
	Attempts int `json:"attempts"`
	Correct  int `json:"correct"`
	Mastery  int `json:"mastery"`
}

// NewDocument builds the first-run document: one empty SubjectData and one
// zeroed ProgressRecord per predefined subject.
func NewDocument() *Document {
	d := &Document{
		Version:  CurrentVersion,
		Subjects: make(map[SubjectID]*SubjectData, len(Subjects)),
		Progress: make(map[SubjectID]*ProgressRecord, len(Subjects)),
	}
	for _, s := range Subjects {
		d.Subjects[s.ID] = emptySubjectData()
		d.Progress[s.ID] = &ProgressRecord{}
	}
	return d
}

func emptySubjectData() *SubjectData {
	return &SubjectData{
		Notes:      []Note{},
		Quizzes:    []Quiz{},
		Decks:      []Deck{},
		PastPapers: []PastPaper{},
	}
}

// Migrate upgrades a loaded document to CurrentVersion in place. Missing
// subject buckets and progress records are filled with empty defaults, so
// documents written before a subject existed (or by version 0, which had no
// version field) load cleanly.
func (d *Document) Migrate() {
	if d.Subjects == nil {
		d.Subjects = make(map[SubjectID]*SubjectData, len(Subjects))
	}
	if d.Progress == nil {
		d.Progress = make(map[SubjectID]*ProgressRecord, len(Subjects))
	}
	for _, s := range Subjects {
		if d.Subjects[s.ID] == nil {
			d.Subjects[s.ID] = emptySubjectData()
		}
		if d.Progress[s.ID] == nil {
			d.Progress[s.ID] = &ProgressRecord{}
		}
	}
	d.Version = CurrentVersion
}

// Data returns the subject bucket for id, or nil for an unknown subject.
func (d *Document) Data(id SubjectID) *SubjectData {
	return d.Subjects[id]
}

// ProgressFor returns the progress record for id, or nil for an unknown
// subject.
func (d *Document) ProgressFor(id SubjectID) *ProgressRecord {
	return d.Progress[id]
}

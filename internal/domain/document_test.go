package domain

import (
	"encoding/json"
	"testing"
)

func TestNewDocument(t *testing.T) {
	d := NewDocument()

	if d.Version != CurrentVersion {
		t.Errorf("version = %d, want %d", d.Version, CurrentVersion)
	}
	for _, s := range Subjects {
		data := d.Data(s.ID)
		if data == nil {
			t.Fatalf("subject %s has no bucket", s.ID)
		}
		if len(data.Notes)+len(data.Quizzes)+len(data.Decks)+len(data.PastPapers) != 0 {
			t.Errorf("subject %s bucket not empty", s.ID)
		}
		rec := d.ProgressFor(s.ID)
		if rec == nil || *rec != (ProgressRecord{}) {
			t.Errorf("subject %s progress not zeroed: %+v", s.ID, rec)
		}
	}
}

func TestMigrateFillsMissingBuckets(t *testing.T) {
	// A version-0 document: no version field, one subject missing.
	raw := `{
		"subjects": {"maths-ocr": {"notes": [], "quizzes": [], "decks": [], "pastpapers": []}},
		"progress": {"maths-ocr": {"attempts": 2, "correct": 1, "mastery": 50}}
	}`
	var d Document
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	d.Migrate()

	if d.Version != CurrentVersion {
		t.Errorf("version = %d, want %d", d.Version, CurrentVersion)
	}
	for _, s := range Subjects {
		if d.Data(s.ID) == nil {
			t.Errorf("subject %s bucket missing after migrate", s.ID)
		}
		if d.ProgressFor(s.ID) == nil {
			t.Errorf("subject %s progress missing after migrate", s.ID)
		}
	}
	// Existing data survives.
	if d.ProgressFor(SubjectMaths).Attempts != 2 {
		t.Error("migrate clobbered existing progress")
	}
}

func TestSubjectByID(t *testing.T) {
	s, ok := SubjectByID(SubjectEconomics)
	if !ok || s.Name == "" {
		t.Errorf("SubjectByID(%s) = %+v, %v", SubjectEconomics, s, ok)
	}
	if _, ok := SubjectByID("biology"); ok {
		t.Error("unknown subject id should not resolve")
	}
}

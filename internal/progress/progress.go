// Package progress aggregates quiz attempts into a per-subject mastery
// percentage.
package progress

import (
	"math"

	"github.com/rcollings/studyhub/internal/domain"
)

// Mastery computes the rounded percentage of correct answers over total
// attempts. Zero attempts yields zero.
func Mastery(attempts, correct int) int {
	if attempts <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(correct) / float64(attempts)))
}

// Record adds a batch of attempts and correct answers to rec and recomputes
// its mastery.
func Record(rec *domain.ProgressRecord, attempts, correct int) {
	rec.Attempts += attempts
	rec.Correct += correct
	rec.Mastery = Mastery(rec.Attempts, rec.Correct)
}

// Reset zeroes rec unconditionally. Confirmation prompts are the caller's
// concern. Resetting an already-zero record is a no-op, so Reset is
// idempotent.
func Reset(rec *domain.ProgressRecord) {
	*rec = domain.ProgressRecord{}
}

// Entry pairs a progress record with its subject metadata for display.
type Entry struct {
	Subject domain.Subject
	Record  domain.ProgressRecord
}

// List returns entries for every subject in enumeration order, or just the
// one named by filter when filter is non-empty.
func List(doc *domain.Document, filter domain.SubjectID) []Entry {
	var entries []Entry
	for _, s := range domain.Subjects {
		if filter != "" && s.ID != filter {
			continue
		}
		rec := doc.ProgressFor(s.ID)
		if rec == nil {
			rec = &domain.ProgressRecord{}
		}
		entries = append(entries, Entry{Subject: s, Record: *rec})
	}
	return entries
}

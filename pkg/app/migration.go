package app

import (
	"github.com/google/uuid"

	"github.com/0401lucky/daybook/pkg/journal"
	"github.com/0401lucky/daybook/pkg/record"
)

// Migrate lifts a legacy single-field journal into the multi-entry ledger: a
// record with a non-blank journal scalar and an empty ledger gains one entry
// synthesized from journal/mood/createdAt. This is structural repair invoked
// on load, not a user command, so it bypasses the blank and sealed checks and
// appends to the ledger directly.
//
// Idempotent: once the ledger is non-empty there is nothing left to lift.
// Reports whether the record changed.
func Migrate(rec *record.DailyRecord) bool {
	if rec == nil || rec.Entries.Len() > 0 {
		return false
	}
	if journal.IsBlank(rec.Journal) {
		return false
	}
	rec.Entries.Entries = append(rec.Entries.Entries, journal.Entry{
		ID:        uuid.NewString(),
		Content:   rec.Journal,
		Mood:      rec.Mood,
		CreatedAt: rec.CreatedAt,
	})
	return true
}

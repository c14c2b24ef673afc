// Package seal implements the seal/unseal state machine for daily records.
// Sealing is the single authority consulted before mutation; a sealed record
// is read-only history until unsealed.
package seal

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/0401lucky/daybook/pkg/journal"
	"github.com/0401lucky/daybook/pkg/record"
	"github.com/0401lucky/daybook/pkg/timeutil"
)

// MinJournalLen is the legacy journal length that makes a day with open
// tasks sealable.
const MinJournalLen = 50

var (
	ErrAlreadySealed = errors.New("seal: record is already sealed")
	ErrNotSealed     = errors.New("seal: record is not sealed")
)

// Unmet explains a failed seal attempt. A record seals when any one
// alternative holds:
//
//	(a) at least one task and all of them completed,
//	(b) at least one task and enough journal (legacy text or an entry),
//	(c) no tasks but some journal activity (text, mood, or an entry).
//
// Each field names what the corresponding alternative is still missing, so
// callers can present every remaining path to a sealable day. Returned as an
// ordinary outcome, never panicked.
type Unmet struct {
	NoTasks            bool // (a) and (b) need a non-empty task list
	TasksRemaining     int  // (a): tasks still incomplete
	JournalCharsNeeded int  // (b): characters short of MinJournalLen
	NoEntries          bool // (b) and (c): the ledger is empty
	JournalBlank       bool // (c): legacy journal blank after stripping
	NoMood             bool // (c): no mood recorded
}

func (u *Unmet) Error() string {
	reasons := make([]string, 0, 3)
	if u.NoTasks {
		reasons = append(reasons, "complete at least one task")
	} else if u.TasksRemaining > 0 {
		reasons = append(reasons, fmt.Sprintf("%d task(s) still open", u.TasksRemaining))
	}
	if u.NoEntries {
		if u.JournalCharsNeeded > 0 {
			reasons = append(reasons, fmt.Sprintf("journal needs %d more character(s) or an entry", u.JournalCharsNeeded))
		} else {
			reasons = append(reasons, "add a journal entry")
		}
	}
	if u.NoTasks && u.JournalBlank && u.NoMood && u.NoEntries {
		reasons = append(reasons, "write some journal text or record a mood")
	}
	return "seal: preconditions unmet: " + strings.Join(reasons, "; ")
}

// Evaluate checks the seal precondition without changing state. It returns
// nil when the record may seal, otherwise the full breakdown of what each
// alternative is missing.
func Evaluate(rec *record.DailyRecord) *Unmet {
	journalLen := utf8.RuneCountInString(rec.Journal)
	hasEntries := rec.Entries.Len() > 0

	if rec.Tasks.Len() > 0 {
		if rec.Tasks.AllCompleted() {
			return nil
		}
		if journalLen >= MinJournalLen || hasEntries {
			return nil
		}
	} else if !journal.IsBlank(rec.Journal) || rec.Mood != journal.MoodNone || hasEntries {
		return nil
	}

	u := &Unmet{
		NoTasks:        rec.Tasks.Len() == 0,
		TasksRemaining: rec.Tasks.Len() - rec.Tasks.CompletedCount(),
		NoEntries:      !hasEntries,
		JournalBlank:   journal.IsBlank(rec.Journal),
		NoMood:         rec.Mood == journal.MoodNone,
	}
	if journalLen < MinJournalLen {
		u.JournalCharsNeeded = MinJournalLen - journalLen
	}
	return u
}

// Seal transitions Unsealed to Sealed when the precondition holds. On
// success sealedAt is set strictly after any previous seal, so rapid
// seal/unseal/seal cycles stay monotonic even when the wall clock has not
// advanced. On failure no state changes and the Unmet breakdown is returned.
func Seal(rec *record.DailyRecord, now time.Time) error {
	if rec.IsSealed {
		return ErrAlreadySealed
	}
	if unmet := Evaluate(rec); unmet != nil {
		return unmet
	}
	at := At(now, rec.SealedAt)
	rec.SealedAt = &at
	rec.SetSealed(true)
	return nil
}

// Unseal reverses a seal. Task and journal data, and sealedAt, are left
// untouched.
func Unseal(rec *record.DailyRecord) error {
	if !rec.IsSealed {
		return ErrNotSealed
	}
	rec.SetSealed(false)
	return nil
}

// At produces the seal timestamp: now, unless a previous seal is not
// strictly in the past, in which case it advances one nanosecond beyond it.
func At(now time.Time, prev *timeutil.Timestamp) timeutil.Timestamp {
	if prev != nil && !now.After(prev.Time) {
		return timeutil.Timestamp{Time: prev.Add(time.Nanosecond)}
	}
	return timeutil.Timestamp{Time: now}
}

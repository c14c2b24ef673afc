// Package record defines the daily record aggregate, which is also the
// storage and wire shape: a date-keyed JSON document.
package record

import (
	"errors"
	"fmt"
	"time"

	"github.com/0401lucky/daybook/pkg/journal"
	"github.com/0401lucky/daybook/pkg/metrics"
	"github.com/0401lucky/daybook/pkg/task"
	"github.com/0401lucky/daybook/pkg/timeutil"
)

// ErrMalformedDate rejects identities that are not YYYY-MM-DD keys.
var ErrMalformedDate = errors.New("record: malformed date key")

// DailyRecord accumulates one day's tasks and journal entries. The legacy
// journal/mood scalars predate the multi-entry ledger; once the ledger is
// non-empty they mirror the newest entry and are refreshed by Refresh.
//
// sealedAt is absent until the first successful seal and is only ever
// overwritten by a later seal, never cleared by unseal.
type DailyRecord struct {
	Date           string              `json:"date"`
	Tasks          task.Registry       `json:"tasks"`
	Entries        journal.Ledger      `json:"journalEntries"`
	Journal        string              `json:"journal"`
	Mood           journal.Mood        `json:"mood,omitempty"`
	IsSealed       bool                `json:"isSealed"`
	CompletionRate int                 `json:"completionRate"`
	CreatedAt      timeutil.Timestamp  `json:"createdAt"`
	SealedAt       *timeutil.Timestamp `json:"sealedAt,omitempty"`
}

// New creates a fresh unsealed record for the given date key.
func New(date string, now time.Time) (*DailyRecord, error) {
	if _, err := timeutil.ParseDateKey(date); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedDate, date)
	}
	return &DailyRecord{
		Date:      date,
		CreatedAt: timeutil.Timestamp{Time: now},
	}, nil
}

// SetSealed flips the seal and propagates it into the registry and ledger so
// they reject mutation even under direct access.
func (r *DailyRecord) SetSealed(sealed bool) {
	r.IsSealed = sealed
	r.Tasks.Sealed = sealed
	r.Entries.Sealed = sealed
}

// Normalize re-establishes the in-memory invariants after deserialization:
// the sub-component seal mirrors and the derived fields.
func (r *DailyRecord) Normalize() {
	r.SetSealed(r.IsSealed)
	r.Refresh()
}

// Refresh recomputes the derived completion rate and, once the ledger is
// non-empty, re-mirrors the legacy journal/mood scalars from the newest
// entry.
func (r *DailyRecord) Refresh() {
	r.CompletionRate = metrics.CompletionRate(r.Tasks.Tasks)
	if newest := r.Entries.Newest(); newest != nil {
		r.Journal = newest.Content
		r.Mood = newest.Mood
	}
}

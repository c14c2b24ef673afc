// Package app provides the daily record controller: the single command
// surface presentation layers call. It owns the active record, enforces the
// seal uniformly, recomputes derived fields, and persists a snapshot after
// every successful mutation.
package app

import (
	"context"
	"errors"
	"time"

	"github.com/0401lucky/daybook/pkg/journal"
	"github.com/0401lucky/daybook/pkg/metrics"
	"github.com/0401lucky/daybook/pkg/record"
	"github.com/0401lucky/daybook/pkg/seal"
	"github.com/0401lucky/daybook/pkg/store"
	"github.com/0401lucky/daybook/pkg/task"
	"github.com/0401lucky/daybook/pkg/timeutil"
)

var (
	// ErrSealed is the uniform mutation-on-sealed-record rejection. The
	// registry and ledger also defend independently, so the invariant holds
	// even under direct sub-component access.
	ErrSealed = errors.New("app: record is sealed")

	ErrNoRecord       = errors.New("app: no active record, call Load first")
	ErrNoPersistence  = errors.New("app: no persistence configured")
	ErrRecordNotFound = errors.New("app: no record for that date")
)

// ReadModel is what presentation layers render: the record plus its derived
// fields, recomputed on every read.
type ReadModel struct {
	Record         *record.DailyRecord
	CompletionRate int
	OverallMood    journal.Mood
}

// Service is the daily record controller. One instance manages one active
// record; callers serialize access (there is no internal locking).
type Service struct {
	Persistence store.Persistence

	// Clock overrides time.Now in tests. Nil means wall clock.
	Clock func() time.Time

	rec *record.DailyRecord
}

func (s *Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

// Load fetches today's record, creating a fresh unsealed one when none is
// stored yet. Legacy-shaped records (non-blank journal, empty ledger) are
// migrated in place; migration is a load-time side effect only.
func (s *Service) Load(ctx context.Context) (*record.DailyRecord, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}

	now := s.now()
	key := timeutil.DateKey(now)
	rec, err := s.Persistence.Load(ctx, key)
	switch {
	case errors.Is(err, store.ErrNotFound):
		rec, err = record.New(key, now)
		if err != nil {
			return nil, err
		}
		if err := s.Persistence.Save(rec); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	default:
		if Migrate(rec) {
			rec.Refresh()
			if err := s.Persistence.Save(rec); err != nil {
				return nil, err
			}
		}
	}
	rec.Normalize()
	s.rec = rec
	return rec, nil
}

// Active returns the record currently open for editing, or nil.
func (s *Service) Active() *record.DailyRecord {
	return s.rec
}

// ReadModel returns the active record with derived fields recomputed.
func (s *Service) ReadModel() (ReadModel, error) {
	if s.rec == nil {
		return ReadModel{}, ErrNoRecord
	}
	return s.readModel(), nil
}

func (s *Service) readModel() ReadModel {
	mood, _ := metrics.OverallMood(s.rec.Entries.Entries)
	return ReadModel{
		Record:         s.rec,
		CompletionRate: metrics.CompletionRate(s.rec.Tasks.Tasks),
		OverallMood:    mood,
	}
}

// commit refreshes derived state and saves a snapshot. A failed save is
// surfaced unmodified; the in-memory mutation is deliberately kept, retry
// policy belongs to the caller.
func (s *Service) commit() (ReadModel, error) {
	s.rec.Refresh()
	rm := s.readModel()
	if err := s.Persistence.Save(s.rec); err != nil {
		return rm, err
	}
	return rm, nil
}

func (s *Service) mutable() error {
	if s.Persistence == nil {
		return ErrNoPersistence
	}
	if s.rec == nil {
		return ErrNoRecord
	}
	if s.rec.IsSealed {
		return ErrSealed
	}
	return nil
}

// AddTask appends a task to the active record.
func (s *Service) AddTask(description string, priority task.Priority, tags []string) (ReadModel, error) {
	if err := s.mutable(); err != nil {
		return ReadModel{}, err
	}
	if _, err := s.rec.Tasks.Add(description, priority, tags, s.now()); err != nil {
		return ReadModel{}, err
	}
	return s.commit()
}

// RemoveTask deletes a task by id.
func (s *Service) RemoveTask(id string) (ReadModel, error) {
	if err := s.mutable(); err != nil {
		return ReadModel{}, err
	}
	if err := s.rec.Tasks.Remove(id); err != nil {
		return ReadModel{}, err
	}
	return s.commit()
}

// ToggleTask flips a task's completion state.
func (s *Service) ToggleTask(id string) (ReadModel, error) {
	if err := s.mutable(); err != nil {
		return ReadModel{}, err
	}
	if _, err := s.rec.Tasks.Toggle(id, s.now()); err != nil {
		return ReadModel{}, err
	}
	return s.commit()
}

// ReorderTasks applies a manual ordering; ids must be exactly the current
// task id set.
func (s *Service) ReorderTasks(ids []string) (ReadModel, error) {
	if err := s.mutable(); err != nil {
		return ReadModel{}, err
	}
	if err := s.rec.Tasks.Reorder(ids); err != nil {
		return ReadModel{}, err
	}
	return s.commit()
}

// AddEntry appends a journal entry.
func (s *Service) AddEntry(content string, mood journal.Mood) (ReadModel, error) {
	if err := s.mutable(); err != nil {
		return ReadModel{}, err
	}
	if _, err := s.rec.Entries.Add(content, mood, s.now()); err != nil {
		return ReadModel{}, err
	}
	return s.commit()
}

// EditEntry replaces an entry's content.
func (s *Service) EditEntry(id string, content string) (ReadModel, error) {
	if err := s.mutable(); err != nil {
		return ReadModel{}, err
	}
	if _, err := s.rec.Entries.Edit(id, content); err != nil {
		return ReadModel{}, err
	}
	return s.commit()
}

// SetEntryMood updates the mood of a specific entry.
func (s *Service) SetEntryMood(id string, mood journal.Mood) (ReadModel, error) {
	if err := s.mutable(); err != nil {
		return ReadModel{}, err
	}
	if _, err := s.rec.Entries.SetMood(id, mood); err != nil {
		return ReadModel{}, err
	}
	return s.commit()
}

// RemoveEntry deletes a journal entry by id.
func (s *Service) RemoveEntry(id string) (ReadModel, error) {
	if err := s.mutable(); err != nil {
		return ReadModel{}, err
	}
	if err := s.rec.Entries.Remove(id); err != nil {
		return ReadModel{}, err
	}
	return s.commit()
}

// UpdateJournal writes the day's journal text. While the ledger is empty the
// legacy scalar is written directly; once entries exist the scalars mirror
// the newest entry, so the edit lands there instead.
func (s *Service) UpdateJournal(text string) (ReadModel, error) {
	if err := s.mutable(); err != nil {
		return ReadModel{}, err
	}
	if newest := s.rec.Entries.Newest(); newest != nil {
		if _, err := s.rec.Entries.Edit(newest.ID, text); err != nil {
			return ReadModel{}, err
		}
	} else {
		s.rec.Journal = text
	}
	return s.commit()
}

// UpdateMood records the day's mood, landing on the newest entry once the
// ledger is non-empty, same as UpdateJournal.
func (s *Service) UpdateMood(mood journal.Mood) (ReadModel, error) {
	if err := s.mutable(); err != nil {
		return ReadModel{}, err
	}
	if !mood.IsValid() {
		return ReadModel{}, errors.New("app: invalid mood")
	}
	if newest := s.rec.Entries.Newest(); newest != nil {
		if _, err := s.rec.Entries.SetMood(newest.ID, mood); err != nil {
			return ReadModel{}, err
		}
	} else {
		s.rec.Mood = mood
	}
	return s.commit()
}

// Seal evaluates the gate and marks the record read-only. Failures return
// the seal.Unmet breakdown without changing state.
func (s *Service) Seal() (ReadModel, error) {
	if s.Persistence == nil {
		return ReadModel{}, ErrNoPersistence
	}
	if s.rec == nil {
		return ReadModel{}, ErrNoRecord
	}
	if err := seal.Seal(s.rec, s.now()); err != nil {
		return ReadModel{}, err
	}
	return s.commit()
}

// Unseal reopens a sealed record for editing. sealedAt and all data are left
// as they were.
func (s *Service) Unseal() (ReadModel, error) {
	if s.Persistence == nil {
		return ReadModel{}, ErrNoPersistence
	}
	if s.rec == nil {
		return ReadModel{}, ErrNoRecord
	}
	if err := seal.Unseal(s.rec); err != nil {
		return ReadModel{}, err
	}
	return s.commit()
}

// Get returns the stored record for an arbitrary date key, read-only.
func (s *Service) Get(ctx context.Context, date string) (*record.DailyRecord, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	rec, err := s.Persistence.Load(ctx, date)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Archive lists every stored record, oldest first.
func (s *Service) Archive(ctx context.Context) ([]*record.DailyRecord, error) {
	if s.Persistence == nil {
		return nil, ErrNoPersistence
	}
	return s.Persistence.List(ctx)
}

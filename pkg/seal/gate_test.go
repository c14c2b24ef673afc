package seal

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/0401lucky/daybook/pkg/journal"
	"github.com/0401lucky/daybook/pkg/record"
	"github.com/0401lucky/daybook/pkg/task"
)

func newRecord(t *testing.T) *record.DailyRecord {
	t.Helper()
	rec, err := record.New("2026-08-23", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return rec
}

func TestSealAllTasksCompleted(t *testing.T) {
	rec := newRecord(t)
	now := time.Now()
	a, _ := rec.Tasks.Add("one", task.PriorityMedium, nil, now)
	b, _ := rec.Tasks.Add("two", task.PriorityMedium, nil, now)
	rec.Tasks.Toggle(a.ID, now)
	rec.Tasks.Toggle(b.ID, now)

	if err := Seal(rec, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rec.IsSealed {
		t.Fatalf("record should be sealed")
	}
	if rec.SealedAt == nil || !rec.SealedAt.Equal(now) {
		t.Fatalf("sealedAt should be the seal time, got %v", rec.SealedAt)
	}
	if !rec.Tasks.Sealed || !rec.Entries.Sealed {
		t.Fatalf("seal should propagate into registry and ledger")
	}
}

func TestSealOpenTasksWithLongJournal(t *testing.T) {
	rec := newRecord(t)
	now := time.Now()
	rec.Tasks.Add("open", task.PriorityMedium, nil, now)
	rec.Journal = strings.Repeat("x", MinJournalLen)

	if err := Seal(rec, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSealOpenTasksWithEntry(t *testing.T) {
	rec := newRecord(t)
	now := time.Now()
	rec.Tasks.Add("open", task.PriorityMedium, nil, now)
	rec.Entries.Add("a short note", journal.MoodNone, now)

	if err := Seal(rec, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSealNoTasksWithJournalActivity(t *testing.T) {
	now := time.Now()

	rec := newRecord(t)
	rec.Journal = "short"
	if err := Seal(rec, now); err != nil {
		t.Fatalf("non-blank journal alone should seal a taskless day: %v", err)
	}

	rec = newRecord(t)
	rec.Mood = journal.MoodHappy
	if err := Seal(rec, now); err != nil {
		t.Fatalf("a mood alone should seal a taskless day: %v", err)
	}

	rec = newRecord(t)
	rec.Entries.Add("an entry", journal.MoodNone, now)
	if err := Seal(rec, now); err != nil {
		t.Fatalf("an entry alone should seal a taskless day: %v", err)
	}
}

func TestSealRejectsEmptyDay(t *testing.T) {
	rec := newRecord(t)

	err := Seal(rec, time.Now())
	var unmet *Unmet
	if !errors.As(err, &unmet) {
		t.Fatalf("expected Unmet, got %v", err)
	}
	if !unmet.NoTasks || !unmet.NoEntries || !unmet.JournalBlank || !unmet.NoMood {
		t.Fatalf("breakdown should flag every missing path: %+v", unmet)
	}
	if unmet.JournalCharsNeeded != MinJournalLen {
		t.Fatalf("expected %d characters needed, got %d", MinJournalLen, unmet.JournalCharsNeeded)
	}
	if rec.IsSealed || rec.SealedAt != nil {
		t.Fatalf("failed seal must not change state")
	}
}

func TestSealRejectsOpenTasksShortJournal(t *testing.T) {
	rec := newRecord(t)
	now := time.Now()
	a, _ := rec.Tasks.Add("done", task.PriorityMedium, nil, now)
	rec.Tasks.Add("open", task.PriorityMedium, nil, now)
	rec.Tasks.Toggle(a.ID, now)
	rec.Journal = "only twenty characters"

	err := Seal(rec, now)
	var unmet *Unmet
	if !errors.As(err, &unmet) {
		t.Fatalf("expected Unmet, got %v", err)
	}
	if unmet.NoTasks {
		t.Fatalf("task list is not empty")
	}
	if unmet.TasksRemaining != 1 {
		t.Fatalf("expected 1 task remaining, got %d", unmet.TasksRemaining)
	}
	if unmet.JournalCharsNeeded != MinJournalLen-22 {
		t.Fatalf("expected %d characters needed, got %d", MinJournalLen-22, unmet.JournalCharsNeeded)
	}
	if !unmet.NoEntries {
		t.Fatalf("ledger is empty; breakdown should say so")
	}
	if rec.IsSealed {
		t.Fatalf("failed seal must not change state")
	}
}

func TestSealJournalLenCountsRunes(t *testing.T) {
	rec := newRecord(t)
	now := time.Now()
	rec.Tasks.Add("open", task.PriorityMedium, nil, now)
	rec.Journal = strings.Repeat("é", MinJournalLen)

	if err := Seal(rec, now); err != nil {
		t.Fatalf("rune count should satisfy the threshold: %v", err)
	}
}

func TestSealAlreadySealed(t *testing.T) {
	rec := newRecord(t)
	now := time.Now()
	rec.Mood = journal.MoodHappy
	if err := Seal(rec, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Seal(rec, now.Add(time.Hour)); !errors.Is(err, ErrAlreadySealed) {
		t.Fatalf("expected ErrAlreadySealed, got %v", err)
	}
}

func TestUnsealKeepsDataAndSealedAt(t *testing.T) {
	rec := newRecord(t)
	now := time.Now()
	a, _ := rec.Tasks.Add("done", task.PriorityMedium, nil, now)
	rec.Tasks.Toggle(a.ID, now)
	rec.Entries.Add("note", journal.MoodNeutral, now)

	if err := Seal(rec, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sealedAt := *rec.SealedAt

	if err := Unseal(rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.IsSealed || rec.Tasks.Sealed || rec.Entries.Sealed {
		t.Fatalf("unseal should clear the seal everywhere")
	}
	if rec.Tasks.Len() != 1 || rec.Entries.Len() != 1 {
		t.Fatalf("unseal must not touch data")
	}
	if rec.SealedAt == nil || !rec.SealedAt.Equal(sealedAt.Time) {
		t.Fatalf("unseal must keep sealedAt, got %v", rec.SealedAt)
	}
}

func TestUnsealNotSealed(t *testing.T) {
	rec := newRecord(t)
	if err := Unseal(rec); !errors.Is(err, ErrNotSealed) {
		t.Fatalf("expected ErrNotSealed, got %v", err)
	}
}

func TestResealIsStrictlyMonotonic(t *testing.T) {
	rec := newRecord(t)
	now := time.Now()
	rec.Mood = journal.MoodHappy

	// A frozen clock: seal, unseal, seal again at the same instant.
	if err := Seal(rec, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := *rec.SealedAt
	if err := Unseal(rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Seal(rec, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rec.SealedAt.After(first.Time) {
		t.Fatalf("second seal must be strictly after the first: %v vs %v", rec.SealedAt, first)
	}

	// With an advanced clock the wall time wins.
	later := now.Add(time.Hour)
	if err := Unseal(rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Seal(rec, later); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rec.SealedAt.Equal(later) {
		t.Fatalf("expected wall time %v, got %v", later, rec.SealedAt)
	}
}

func TestUnmetErrorCitesEveryPath(t *testing.T) {
	rec := newRecord(t)
	err := Seal(rec, time.Now())
	msg := err.Error()
	for _, want := range []string{"task", "entry", "mood"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}
}

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/0401lucky/daybook/pkg/journal"
	"github.com/0401lucky/daybook/pkg/record"
	"github.com/0401lucky/daybook/pkg/store"
	"github.com/0401lucky/daybook/pkg/task"
	"github.com/0401lucky/daybook/pkg/timeutil"
)

// memory is an in-memory Persistence for tests. saveErr, when set, fails the
// next Save.
type memory struct {
	records map[string]*record.DailyRecord
	saves   int
	saveErr error
}

func newMemory() *memory {
	return &memory{records: map[string]*record.DailyRecord{}}
}

func (m *memory) Load(_ context.Context, date string) (*record.DailyRecord, error) {
	rec, ok := m.records[date]
	if !ok {
		return nil, store.ErrNotFound
	}
	return rec, nil
}

func (m *memory) Save(rec *record.DailyRecord) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.records[rec.Date] = rec
	return nil
}

func (m *memory) Delete(date string) error {
	delete(m.records, date)
	return nil
}

func (m *memory) List(_ context.Context) ([]*record.DailyRecord, error) {
	all := make([]*record.DailyRecord, 0, len(m.records))
	for _, rec := range m.records {
		all = append(all, rec)
	}
	return all, nil
}

func (m *memory) Watch(_ context.Context) (<-chan store.Event, error) {
	ch := make(chan store.Event)
	close(ch)
	return ch, nil
}

var clock = time.Date(2026, 8, 23, 9, 0, 0, 0, time.Local)

func newService(m *memory) *Service {
	return &Service{
		Persistence: m,
		Clock:       func() time.Time { return clock },
	}
}

func TestLoadCreatesFreshRecord(t *testing.T) {
	m := newMemory()
	svc := newService(m)

	rec, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Date != timeutil.DateKey(clock) {
		t.Fatalf("expected today's key, got %s", rec.Date)
	}
	if rec.IsSealed || rec.SealedAt != nil {
		t.Fatalf("fresh record must be unsealed")
	}
	if m.saves != 1 {
		t.Fatalf("fresh record should be persisted once, got %d saves", m.saves)
	}
	if svc.Active() != rec {
		t.Fatalf("loaded record should become active")
	}
}

func TestLoadReturnsExistingRecord(t *testing.T) {
	m := newMemory()
	stored, _ := record.New(timeutil.DateKey(clock), clock)
	stored.Tasks.Add("carried over", task.PriorityMedium, nil, clock)
	m.records[stored.Date] = stored

	svc := newService(m)
	rec, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Tasks.Len() != 1 {
		t.Fatalf("expected the stored record, got %d tasks", rec.Tasks.Len())
	}
	if m.saves != 0 {
		t.Fatalf("an up-to-date record should not be rewritten, got %d saves", m.saves)
	}
}

func TestLoadMigratesLegacyRecord(t *testing.T) {
	m := newMemory()
	legacy, _ := record.New(timeutil.DateKey(clock), clock)
	legacy.Journal = "written before entries existed"
	legacy.Mood = journal.MoodNeutral
	m.records[legacy.Date] = legacy

	svc := newService(m)
	rec, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Entries.Len() != 1 {
		t.Fatalf("expected one migrated entry, got %d", rec.Entries.Len())
	}
	e := rec.Entries.Entries[0]
	if e.Content != "written before entries existed" || e.Mood != journal.MoodNeutral {
		t.Fatalf("migrated entry should carry the legacy fields: %+v", e)
	}
	if !e.CreatedAt.Equal(legacy.CreatedAt.Time) {
		t.Fatalf("migrated entry should inherit createdAt, got %v", e.CreatedAt)
	}
	if rec.Journal != "written before entries existed" || rec.Mood != journal.MoodNeutral {
		t.Fatalf("legacy scalars should mirror the migrated entry")
	}
	if m.saves != 1 {
		t.Fatalf("migration should be persisted, got %d saves", m.saves)
	}

	// A second load finds nothing left to lift.
	if _, err := svc.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Entries.Len() != 1 || m.saves != 1 {
		t.Fatalf("migration must be idempotent: %d entries, %d saves", rec.Entries.Len(), m.saves)
	}
}

func TestLoadWithoutPersistence(t *testing.T) {
	svc := &Service{}
	if _, err := svc.Load(context.Background()); !errors.Is(err, ErrNoPersistence) {
		t.Fatalf("expected ErrNoPersistence, got %v", err)
	}
}

func TestMutationsPersistSnapshots(t *testing.T) {
	m := newMemory()
	svc := newService(m)
	if _, err := svc.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	saves := m.saves

	rm, err := svc.AddTask("write tests", task.PriorityHigh, []string{"work"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.saves != saves+1 {
		t.Fatalf("mutation should persist a snapshot")
	}
	if rm.CompletionRate != 0 {
		t.Fatalf("expected 0%% with one open task, got %d", rm.CompletionRate)
	}

	id := rm.Record.Tasks.Tasks[0].ID
	rm, err = svc.ToggleTask(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rm.CompletionRate != 100 || rm.Record.CompletionRate != 100 {
		t.Fatalf("read model and record should agree on 100%%, got %d and %d", rm.CompletionRate, rm.Record.CompletionRate)
	}
}

func TestMutationBeforeLoad(t *testing.T) {
	svc := newService(newMemory())
	if _, err := svc.AddTask("early", task.PriorityMedium, nil); !errors.Is(err, ErrNoRecord) {
		t.Fatalf("expected ErrNoRecord, got %v", err)
	}
}

func TestSaveFailureSurfacesAndKeepsMutation(t *testing.T) {
	m := newMemory()
	svc := newService(m)
	if _, err := svc.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	boom := errors.New("disk full")
	m.saveErr = boom
	_, err := svc.AddTask("unlucky", task.PriorityMedium, nil)
	if !errors.Is(err, boom) {
		t.Fatalf("save failure should surface unmodified, got %v", err)
	}
	if svc.Active().Tasks.Len() != 1 {
		t.Fatalf("in-memory mutation should be kept for retry")
	}
}

func TestSealedRecordRejectsAllMutations(t *testing.T) {
	m := newMemory()
	svc := newService(m)
	if _, err := svc.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rm, err := svc.AddEntry("enough to seal on", journal.MoodNone)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entryID := rm.Record.Entries.Entries[0].ID
	if _, err := svc.Seal(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mutations := map[string]func() error{
		"AddTask":      func() error { _, err := svc.AddTask("t", task.PriorityMedium, nil); return err },
		"RemoveTask":   func() error { _, err := svc.RemoveTask("x"); return err },
		"ToggleTask":   func() error { _, err := svc.ToggleTask("x"); return err },
		"ReorderTasks": func() error { _, err := svc.ReorderTasks(nil); return err },
		"AddEntry":     func() error { _, err := svc.AddEntry("e", journal.MoodNone); return err },
		"EditEntry":    func() error { _, err := svc.EditEntry(entryID, "e"); return err },
		"SetEntryMood": func() error { _, err := svc.SetEntryMood(entryID, journal.MoodHappy); return err },
		"RemoveEntry":  func() error { _, err := svc.RemoveEntry(entryID); return err },
		"UpdateJournal": func() error {
			_, err := svc.UpdateJournal("text")
			return err
		},
		"UpdateMood": func() error { _, err := svc.UpdateMood(journal.MoodHappy); return err },
	}
	for name, mutate := range mutations {
		if err := mutate(); !errors.Is(err, ErrSealed) {
			t.Fatalf("%s on a sealed record: expected ErrSealed, got %v", name, err)
		}
	}
}

func TestSealUnsealRoundTrip(t *testing.T) {
	m := newMemory()
	svc := newService(m)
	if _, err := svc.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.UpdateMood(journal.MoodHappy); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rm, err := svc.Seal()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rm.Record.IsSealed || rm.Record.SealedAt == nil {
		t.Fatalf("seal should mark the record and stamp sealedAt")
	}
	sealedAt := *rm.Record.SealedAt

	rm, err = svc.Unseal()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rm.Record.IsSealed {
		t.Fatalf("unseal should reopen the record")
	}
	if rm.Record.SealedAt == nil || !rm.Record.SealedAt.Equal(sealedAt.Time) {
		t.Fatalf("unseal must keep sealedAt")
	}

	// Reseal under the frozen clock stays strictly monotonic.
	rm, err = svc.Seal()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rm.Record.SealedAt.After(sealedAt.Time) {
		t.Fatalf("reseal must advance sealedAt: %v vs %v", rm.Record.SealedAt, sealedAt)
	}
}

func TestUpdateJournalRoutesToNewestEntry(t *testing.T) {
	m := newMemory()
	svc := newService(m)
	if _, err := svc.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Empty ledger: the scalar is written directly.
	rm, err := svc.UpdateJournal("plain text day")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rm.Record.Journal != "plain text day" || rm.Record.Entries.Len() != 0 {
		t.Fatalf("scalar write should not create entries")
	}

	// Non-empty ledger: the edit lands on the newest entry and mirrors back.
	if _, err := svc.AddEntry("first entry", journal.MoodNone); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rm, err = svc.UpdateJournal("revised entry")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rm.Record.Entries.Entries[0].Content != "revised entry" {
		t.Fatalf("expected newest entry edit, got %q", rm.Record.Entries.Entries[0].Content)
	}
	if rm.Record.Journal != "revised entry" {
		t.Fatalf("scalar should mirror the newest entry, got %q", rm.Record.Journal)
	}
}

func TestUpdateMoodRoutesToNewestEntry(t *testing.T) {
	m := newMemory()
	svc := newService(m)
	if _, err := svc.Load(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rm, err := svc.UpdateMood(journal.MoodTired)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rm.Record.Mood != journal.MoodTired {
		t.Fatalf("expected scalar mood write, got %v", rm.Record.Mood)
	}

	if _, err := svc.AddEntry("entry", journal.MoodNone); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rm, err = svc.UpdateMood(journal.MoodExcited)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rm.Record.Entries.Entries[0].Mood != journal.MoodExcited {
		t.Fatalf("expected newest entry mood, got %v", rm.Record.Entries.Entries[0].Mood)
	}
	if rm.OverallMood != journal.MoodExcited {
		t.Fatalf("read model should reflect the overall mood, got %v", rm.OverallMood)
	}

	if _, err := svc.UpdateMood(journal.Mood("bogus")); err == nil {
		t.Fatalf("expected error for invalid mood")
	}
}

func TestGet(t *testing.T) {
	m := newMemory()
	stored, _ := record.New("2026-08-20", clock)
	m.records[stored.Date] = stored

	svc := newService(m)
	rec, err := svc.Get(context.Background(), "2026-08-20")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Date != "2026-08-20" {
		t.Fatalf("expected the requested date, got %s", rec.Date)
	}

	if _, err := svc.Get(context.Background(), "2026-01-01"); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestArchive(t *testing.T) {
	m := newMemory()
	for _, date := range []string{"2026-08-20", "2026-08-21"} {
		rec, _ := record.New(date, clock)
		m.records[date] = rec
	}
	svc := newService(m)
	all, err := svc.Archive(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 records, got %d", len(all))
	}
}

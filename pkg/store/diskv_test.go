package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/0401lucky/daybook/pkg/journal"
	"github.com/0401lucky/daybook/pkg/record"
	"github.com/0401lucky/daybook/pkg/task"
)

type testConfig struct {
	path string
}

func (c *testConfig) BasePath() string {
	return c.path
}

func newStore(t *testing.T) (Persistence, string) {
	t.Helper()
	dir := t.TempDir()
	p, err := Load(&testConfig{path: dir})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return p, dir
}

func TestSaveLoadRoundTrip(t *testing.T) {
	p, _ := newStore(t)
	now := time.Now()

	rec, _ := record.New("2026-08-23", now)
	rec.Tasks.Add("persist me", task.PriorityHigh, []string{"infra"}, now)
	rec.Entries.Add("a stored note", journal.MoodHappy, now)
	rec.Normalize()

	if err := p.Save(rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := p.Load(context.Background(), "2026-08-23")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Date != "2026-08-23" {
		t.Fatalf("expected the stored date, got %s", got.Date)
	}
	if got.Tasks.Len() != 1 || got.Tasks.Tasks[0].Description != "persist me" {
		t.Fatalf("tasks did not survive: %+v", got.Tasks)
	}
	if got.Entries.Len() != 1 || got.Entries.Entries[0].Mood != journal.MoodHappy {
		t.Fatalf("entries did not survive: %+v", got.Entries)
	}
}

func TestLoadNotFound(t *testing.T) {
	p, _ := newStore(t)
	if _, err := p.Load(context.Background(), "2026-01-01"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadRejectsMalformedKey(t *testing.T) {
	p, _ := newStore(t)
	if _, err := p.Load(context.Background(), "not-a-date"); err == nil {
		t.Fatalf("expected error for malformed key")
	}
}

func TestSaveShardsByYearAndMonth(t *testing.T) {
	p, dir := newStore(t)
	rec, _ := record.New("2026-08-23", time.Now())
	if err := p.Save(rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "2026", "08", "23")); err != nil {
		t.Fatalf("expected record at 2026/08/23: %v", err)
	}
}

func TestSaveRejectsBadRecords(t *testing.T) {
	p, _ := newStore(t)
	if err := p.Save(nil); err == nil {
		t.Fatalf("expected error for nil record")
	}
	if err := p.Save(&record.DailyRecord{Date: "someday"}); err == nil {
		t.Fatalf("expected error for malformed date")
	}
}

func TestDelete(t *testing.T) {
	p, _ := newStore(t)
	rec, _ := record.New("2026-08-23", time.Now())
	if err := p.Save(rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := p.Delete("2026-08-23"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := p.Load(context.Background(), "2026-08-23"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestListSortsByDate(t *testing.T) {
	p, _ := newStore(t)
	now := time.Now()
	for _, date := range []string{"2026-08-23", "2025-12-31", "2026-01-15"} {
		rec, _ := record.New(date, now)
		if err := p.Save(rec); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	all, err := p.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 records, got %d", len(all))
	}
	want := []string{"2025-12-31", "2026-01-15", "2026-08-23"}
	for i, date := range want {
		if all[i].Date != date {
			t.Fatalf("position %d: expected %s, got %s", i, date, all[i].Date)
		}
	}
}

func TestLoadNormalizesSealedRecords(t *testing.T) {
	p, _ := newStore(t)
	now := time.Now()
	rec, _ := record.New("2026-08-23", now)
	rec.Entries.Add("sealable", journal.MoodNone, now)
	rec.SetSealed(true)
	if err := p.Save(rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := p.Load(context.Background(), "2026-08-23")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.IsSealed || !got.Tasks.Sealed || !got.Entries.Sealed {
		t.Fatalf("loaded record should come back with seal mirrors restored")
	}
}

func TestDateTransforms(t *testing.T) {
	pk := dateToPathTransform("2026-08-23")
	if len(pk.Path) != 2 || pk.Path[0] != "2026" || pk.Path[1] != "08" || pk.FileName != "23" {
		t.Fatalf("unexpected path key: %+v", pk)
	}
	if got := pathToDateTransform(pk); got != "2026-08-23" {
		t.Fatalf("transforms should round-trip, got %s", got)
	}
}

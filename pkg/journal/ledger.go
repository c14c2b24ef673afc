package journal

import (
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/0401lucky/daybook/pkg/timeutil"
)

var (
	// ErrSealed rejects mutation of a sealed record's entries. The controller
	// checks the seal first; the ledger defends independently.
	ErrSealed = errors.New("journal: record is sealed")

	ErrBlankContent = errors.New("journal: content is blank")
	ErrNotFound     = errors.New("journal: entry not found")
)

// Entry is one journal entry. Content may carry markup from an external
// rich-text widget and is treated as opaque beyond the blank check.
type Entry struct {
	ID        string             `json:"id"`
	Content   string             `json:"content"`
	Mood      Mood               `json:"mood,omitempty"`
	CreatedAt timeutil.Timestamp `json:"createdAt"`
}

// Ledger owns the ordered journal entries of a daily record. Entries are kept
// in insertion order; reads are newest-first. Sealed is mirrored from the
// owning record and not serialized.
type Ledger struct {
	Sealed  bool
	Entries []Entry
}

func (l *Ledger) MarshalJSON() ([]byte, error) {
	if l.Entries == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.Entries)
}

func (l *Ledger) UnmarshalJSON(b []byte) error {
	l.Entries = nil
	return json.Unmarshal(b, &l.Entries)
}

func (l *Ledger) Len() int {
	return len(l.Entries)
}

func (l *Ledger) Get(id string) (*Entry, bool) {
	for i := range l.Entries {
		if l.Entries[i].ID == id {
			return &l.Entries[i], true
		}
	}
	return nil, false
}

// Add appends an entry. Content must be non-blank after stripping and the
// record unsealed. An invalid mood is rejected before any state changes. The
// returned Entry is a copy; look it up by id for later reads.
func (l *Ledger) Add(content string, mood Mood, now time.Time) (Entry, error) {
	if l.Sealed {
		return Entry{}, ErrSealed
	}
	if IsBlank(content) {
		return Entry{}, ErrBlankContent
	}
	if !mood.IsValid() {
		return Entry{}, errors.New("journal: invalid mood")
	}
	l.Entries = append(l.Entries, Entry{
		ID:        uuid.NewString(),
		Content:   content,
		Mood:      mood,
		CreatedAt: timeutil.Timestamp{Time: now},
	})
	return l.Entries[len(l.Entries)-1], nil
}

// Edit replaces an entry's content. The returned Entry is a copy.
func (l *Ledger) Edit(id string, content string) (Entry, error) {
	if l.Sealed {
		return Entry{}, ErrSealed
	}
	e, ok := l.Get(id)
	if !ok {
		return Entry{}, ErrNotFound
	}
	if IsBlank(content) {
		return Entry{}, ErrBlankContent
	}
	e.Content = content
	return *e, nil
}

// SetMood updates the mood of an existing entry. The returned Entry is a copy.
func (l *Ledger) SetMood(id string, mood Mood) (Entry, error) {
	if l.Sealed {
		return Entry{}, ErrSealed
	}
	e, ok := l.Get(id)
	if !ok {
		return Entry{}, ErrNotFound
	}
	if !mood.IsValid() {
		return Entry{}, errors.New("journal: invalid mood")
	}
	e.Mood = mood
	return *e, nil
}

func (l *Ledger) Remove(id string) error {
	if l.Sealed {
		return ErrSealed
	}
	for i := range l.Entries {
		if l.Entries[i].ID == id {
			l.Entries = append(l.Entries[:i], l.Entries[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// List returns entries newest-first by creation time. Timestamp ties keep the
// later-inserted entry first so the read order is stable.
func (l *Ledger) List() []Entry {
	out := make([]Entry, len(l.Entries))
	for i := range l.Entries {
		out[len(l.Entries)-1-i] = l.Entries[i]
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt.Time)
	})
	return out
}

// Newest returns the most recently created entry, or nil when empty.
func (l *Ledger) Newest() *Entry {
	list := l.List()
	if len(list) == 0 {
		return nil
	}
	e, _ := l.Get(list[0].ID)
	return e
}

// OverallMood is the mood of the most recently created mood-bearing entry.
func (l *Ledger) OverallMood() (Mood, bool) {
	return OverallMood(l.Entries)
}

// OverallMood scans a snapshot of entries for the newest defined mood. Order
// of the input does not matter; creation time (then insertion order) wins.
func OverallMood(entries []Entry) (Mood, bool) {
	mood := MoodNone
	found := false
	var at timeutil.Timestamp
	for i := range entries {
		e := &entries[i]
		if e.Mood == MoodNone {
			continue
		}
		if !found || !e.CreatedAt.Before(at.Time) {
			mood = e.Mood
			at = e.CreatedAt
			found = true
		}
	}
	return mood, found
}

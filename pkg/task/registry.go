package task

import (
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/0401lucky/daybook/pkg/timeutil"
)

var (
	// ErrSealed rejects mutation of a sealed record's tasks. The controller
	// checks the seal first; the registry defends independently.
	ErrSealed = errors.New("task: record is sealed")

	ErrBlankDescription = errors.New("task: description is blank")
	ErrInvalidPriority  = errors.New("task: invalid priority")
	ErrNotFound         = errors.New("task: not found")
)

// PermutationError reports a reorder whose id set does not match the
// registry's id set.
type PermutationError struct {
	Missing []string // ids in the registry but absent from the input
	Unknown []string // ids in the input but absent from the registry
}

func (e *PermutationError) Error() string {
	parts := make([]string, 0, 2)
	if len(e.Missing) > 0 {
		parts = append(parts, "missing "+strings.Join(e.Missing, ", "))
	}
	if len(e.Unknown) > 0 {
		parts = append(parts, "unknown "+strings.Join(e.Unknown, ", "))
	}
	if len(parts) == 0 {
		parts = append(parts, "duplicate ids")
	}
	return "task: reorder is not a permutation: " + strings.Join(parts, "; ")
}

// Registry owns the mutable task list of a daily record. Sealed is mirrored
// from the owning record and is not serialized; the registry marshals as the
// plain task array of the wire shape.
type Registry struct {
	Sealed bool
	Tasks  []Task
}

func (r *Registry) MarshalJSON() ([]byte, error) {
	if r.Tasks == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(r.Tasks)
}

func (r *Registry) UnmarshalJSON(b []byte) error {
	r.Tasks = nil
	return json.Unmarshal(b, &r.Tasks)
}

func (r *Registry) Len() int {
	return len(r.Tasks)
}

// CompletedCount returns how many tasks are done.
func (r *Registry) CompletedCount() int {
	n := 0
	for i := range r.Tasks {
		if r.Tasks[i].Completed {
			n++
		}
	}
	return n
}

// AllCompleted reports whether the registry is non-empty with every task done.
func (r *Registry) AllCompleted() bool {
	return len(r.Tasks) > 0 && r.CompletedCount() == len(r.Tasks)
}

func (r *Registry) Get(id string) (*Task, bool) {
	for i := range r.Tasks {
		if r.Tasks[i].ID == id {
			return &r.Tasks[i], true
		}
	}
	return nil, false
}

// Add appends a task with the next manual order slot. The description must be
// non-blank, the priority valid, and the record unsealed. The returned Task is
// a copy; look it up by id for later reads.
func (r *Registry) Add(description string, priority Priority, tags []string, now time.Time) (Task, error) {
	if r.Sealed {
		return Task{}, ErrSealed
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return Task{}, ErrBlankDescription
	}
	if !priority.IsValid() {
		return Task{}, ErrInvalidPriority
	}

	order := 0
	if len(r.Tasks) > 0 {
		max := r.Tasks[0].Order
		for i := range r.Tasks {
			if r.Tasks[i].Order > max {
				max = r.Tasks[i].Order
			}
		}
		order = max + 1
	}

	r.Tasks = append(r.Tasks, Task{
		ID:          uuid.NewString(),
		Description: description,
		Priority:    priority,
		Tags:        normalizeTags(tags),
		Order:       order,
		CreatedAt:   timeutil.Timestamp{Time: now},
	})
	return r.Tasks[len(r.Tasks)-1], nil
}

func (r *Registry) Remove(id string) error {
	if r.Sealed {
		return ErrSealed
	}
	for i := range r.Tasks {
		if r.Tasks[i].ID == id {
			r.Tasks = append(r.Tasks[:i], r.Tasks[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// Toggle flips completion, keeping CompletedAt in lockstep. The returned Task
// is a copy.
func (r *Registry) Toggle(id string, now time.Time) (Task, error) {
	if r.Sealed {
		return Task{}, ErrSealed
	}
	t, ok := r.Get(id)
	if !ok {
		return Task{}, ErrNotFound
	}
	t.Completed = !t.Completed
	if t.Completed {
		t.CompletedAt = &timeutil.Timestamp{Time: now}
	} else {
		t.CompletedAt = nil
	}
	return *t, nil
}

// Reorder applies a manual ordering. The input must be exactly the current id
// set; the check is explicit rather than assumed.
func (r *Registry) Reorder(ids []string) error {
	if r.Sealed {
		return ErrSealed
	}

	want := make(map[string]struct{}, len(r.Tasks))
	for i := range r.Tasks {
		want[r.Tasks[i].ID] = struct{}{}
	}

	got := make(map[string]struct{}, len(ids))
	unknown := make([]string, 0)
	for _, id := range ids {
		if _, dup := got[id]; dup {
			return &PermutationError{}
		}
		got[id] = struct{}{}
		if _, ok := want[id]; !ok {
			unknown = append(unknown, id)
		}
	}

	missing := make([]string, 0)
	for i := range r.Tasks {
		if _, ok := got[r.Tasks[i].ID]; !ok {
			missing = append(missing, r.Tasks[i].ID)
		}
	}
	if len(missing) > 0 || len(unknown) > 0 {
		sort.Strings(missing)
		sort.Strings(unknown)
		return &PermutationError{Missing: missing, Unknown: unknown}
	}

	position := make(map[string]int, len(ids))
	for i, id := range ids {
		position[id] = i
	}
	for i := range r.Tasks {
		r.Tasks[i].Order = position[r.Tasks[i].ID]
	}
	sort.SliceStable(r.Tasks, func(i, j int) bool {
		return r.Tasks[i].Order < r.Tasks[j].Order
	})
	return nil
}

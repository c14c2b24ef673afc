package task

import (
	"fmt"
	"strings"

	"github.com/0401lucky/daybook/pkg/timeutil"
)

// Priority ranks a task. Unknown values are rejected at the parse edge.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

// ParsePriority converts user input to a Priority. Empty input defaults to
// medium.
func ParsePriority(raw string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(raw)))
	if p == "" {
		return PriorityMedium, nil
	}
	if !p.IsValid() {
		return "", fmt.Errorf("task: unknown priority %q", raw)
	}
	return p, nil
}

type Task struct {
	ID          string              `json:"id"`
	Description string              `json:"description"`
	Completed   bool                `json:"completed"`
	Priority    Priority            `json:"priority"`
	Tags        []string            `json:"tags,omitempty"`
	Order       int                 `json:"order"`
	CreatedAt   timeutil.Timestamp  `json:"createdAt"`
	CompletedAt *timeutil.Timestamp `json:"completedAt,omitempty"`
}

// normalizeTags drops blank tags and duplicates while preserving order.
func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

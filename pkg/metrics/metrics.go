// Package metrics derives read-model values from task and journal snapshots.
// Derived values are recomputed on every read and are never independently
// authoritative.
package metrics

import (
	"math"

	"github.com/0401lucky/daybook/pkg/journal"
	"github.com/0401lucky/daybook/pkg/task"
)

// CompletionRate is round-half-up of 100*completed/total, 0 for an empty
// list (2 of 3 yields 67).
func CompletionRate(tasks []task.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	completed := 0
	for i := range tasks {
		if tasks[i].Completed {
			completed++
		}
	}
	return int(math.Floor(float64(completed)/float64(len(tasks))*100 + 0.5))
}

// OverallMood is the mood of the most recently created mood-bearing entry.
func OverallMood(entries []journal.Entry) (journal.Mood, bool) {
	return journal.OverallMood(entries)
}

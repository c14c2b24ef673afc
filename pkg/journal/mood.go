package journal

import (
	"fmt"
	"strings"
)

// Mood is the feeling attached to a journal entry. The zero value means no
// mood was recorded.
type Mood string

const (
	MoodNone    Mood = ""
	MoodHappy   Mood = "happy"
	MoodNeutral Mood = "neutral"
	MoodSad     Mood = "sad"
	MoodExcited Mood = "excited"
	MoodTired   Mood = "tired"
)

// AllMoods returns the recordable moods.
func AllMoods() []Mood {
	return []Mood{MoodHappy, MoodNeutral, MoodSad, MoodExcited, MoodTired}
}

func (m Mood) IsValid() bool {
	if m == MoodNone {
		return true
	}
	for _, candidate := range AllMoods() {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMood converts user input to a Mood. Empty input means no mood.
func ParseMood(raw string) (Mood, error) {
	m := Mood(strings.ToLower(strings.TrimSpace(raw)))
	if !m.IsValid() {
		return MoodNone, fmt.Errorf("journal: unknown mood %q", raw)
	}
	return m, nil
}

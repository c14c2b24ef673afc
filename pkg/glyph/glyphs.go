package glyph

import "fmt"

// Group buckets glyphs for the key legend.
type Group string

const (
	GroupBullets    Group = "bullets"
	GroupPriorities Group = "priorities"
	GroupMoods      Group = "moods"
)

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
	Group   Group
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 12)

	g = append(g, Glyph{
		Key:     "+",
		Symbol:  "●",
		Meaning: "open task",
		Group:   GroupBullets,
	}, Glyph{
		Key:     "x",
		Symbol:  "✘",
		Meaning: "completed task",
		Group:   GroupBullets,
	}, Glyph{
		Key:     "-",
		Symbol:  "⁃",
		Meaning: "journal entry",
		Group:   GroupBullets,
	}, Glyph{
		Key:     "#",
		Symbol:  "⊠",
		Meaning: "sealed record",
		Group:   GroupBullets,
	}, Glyph{
		Key:     "h",
		Symbol:  "✷",
		Meaning: "high priority",
		Group:   GroupPriorities,
	}, Glyph{
		Key:     "m",
		Symbol:  "·",
		Meaning: "medium priority",
		Group:   GroupPriorities,
	}, Glyph{
		Key:     "l",
		Symbol:  "⌄",
		Meaning: "low priority",
		Group:   GroupPriorities,
	}, Glyph{
		Key:     ":)",
		Symbol:  "☺",
		Meaning: "happy",
		Group:   GroupMoods,
	}, Glyph{
		Key:     ":|",
		Symbol:  "–",
		Meaning: "neutral",
		Group:   GroupMoods,
	}, Glyph{
		Key:     ":(",
		Symbol:  "☹",
		Meaning: "sad",
		Group:   GroupMoods,
	}, Glyph{
		Key:     "!",
		Symbol:  "✶",
		Meaning: "excited",
		Group:   GroupMoods,
	}, Glyph{
		Key:     "~",
		Symbol:  "≈",
		Meaning: "tired",
		Group:   GroupMoods,
	})

	return g
}

func (g Glyph) String() string {
	return g.Symbol
}

// ForTask returns the bullet for a task in the given completion state.
func ForTask(completed bool) string {
	if completed {
		return "✘"
	}
	return "●"
}

// ForPriority returns the signifier for a priority name, or a space for
// unknown values so columns stay aligned.
func ForPriority(priority string) string {
	switch priority {
	case "high":
		return "✷"
	case "medium":
		return "·"
	case "low":
		return "⌄"
	default:
		return " "
	}
}

// ForMood returns the symbol for a mood name, or a space when absent.
func ForMood(mood string) string {
	switch mood {
	case "happy":
		return "☺"
	case "neutral":
		return "–"
	case "sad":
		return "☹"
	case "excited":
		return "✶"
	case "tired":
		return "≈"
	default:
		return " "
	}
}

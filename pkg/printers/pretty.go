package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/0401lucky/daybook/pkg/glyph"
	"github.com/0401lucky/daybook/pkg/journal"
	"github.com/0401lucky/daybook/pkg/task"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" item")
	default:
		_, _ = c.Println(" items")
	}
}

func (pp *PrettyPrint) id(out *color.Color, id string) {
	short := id
	if len(short) > len(spacing)-2 {
		short = short[:len(spacing)-2]
	}
	_, _ = out.Print(short)
	_, _ = out.Print(strings.Repeat(" ", len(spacing)-len(short)))
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Print(" none\n\n")
}

// Tasks renders the task list in manual order.
func (pp *PrettyPrint) Tasks(tasks ...task.Task) {
	if len(tasks) == 0 {
		pp.none()
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for i := range tasks {
		ts := &tasks[i]
		if pp.ShowID {
			pp.id(y, ts.ID)
		}
		line := fmt.Sprintf("%s %s %s", glyph.ForPriority(string(ts.Priority)), glyph.ForTask(ts.Completed), ts.Description)
		if ts.Completed {
			line = glyph.Strike(line)
		}
		if len(ts.Tags) > 0 {
			line += color.New(color.Faint).Sprintf("  [%s]", strings.Join(ts.Tags, ", "))
		}
		_, _ = t.Println(line)
	}
	_, _ = t.Println("")
}

// Entries renders journal entries newest-first, as handed over.
func (pp *PrettyPrint) Entries(entries ...journal.Entry) {
	if len(entries) == 0 {
		pp.none()
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for i := range entries {
		e := &entries[i]
		if pp.ShowID {
			pp.id(y, e.ID)
		}
		_, _ = t.Printf("%s ⁃ %s\n", glyph.ForMood(string(e.Mood)), journal.Strip(e.Content))
	}
	_, _ = t.Println("")
}

// Summary renders the derived read-model fields for a day.
func (pp *PrettyPrint) Summary(date string, sealed bool, completionRate int, mood journal.Mood) {
	tbl := uitable.New()
	tbl.Separator = "  "

	state := "open"
	if sealed {
		state = "sealed ⊠"
	}
	tbl.AddRow(glyph.Bold("Date"), date)
	tbl.AddRow(glyph.Bold("State"), state)
	tbl.AddRow(glyph.Bold("Completion"), fmt.Sprintf("%d%%", completionRate))
	overall := "-"
	if mood != journal.MoodNone {
		overall = fmt.Sprintf("%s %s", glyph.ForMood(string(mood)), mood)
	}
	tbl.AddRow(glyph.Bold("Mood"), overall)

	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

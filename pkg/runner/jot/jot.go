// Package jot provides the runner logic for journal entries.
package jot

import (
	"context"
	"errors"

	"github.com/0401lucky/daybook/pkg/app"
	"github.com/0401lucky/daybook/pkg/journal"
	"github.com/0401lucky/daybook/pkg/printers"
	"github.com/0401lucky/daybook/pkg/store"
)

// Jot adds a new entry, or edits an existing one when ID is set.
type Jot struct {
	ID      string
	Content string
	Mood    string
	ShowID  bool

	Persistence store.Persistence
}

func (n *Jot) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not jot, no persistence")
	}

	mood, err := journal.ParseMood(n.Mood)
	if err != nil {
		return err
	}

	svc := &app.Service{Persistence: n.Persistence}
	if _, err := svc.Load(ctx); err != nil {
		return err
	}

	var rm app.ReadModel
	if n.ID != "" {
		rm, err = svc.EditEntry(n.ID, n.Content)
		if err == nil && mood != journal.MoodNone {
			rm, err = svc.SetEntryMood(n.ID, mood)
		}
	} else {
		rm, err = svc.AddEntry(n.Content, mood)
	}
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.TitleWithCount(rm.Record.Date, rm.Record.Entries.Len())
	pp.Entries(rm.Record.Entries.List()...)
	return nil
}

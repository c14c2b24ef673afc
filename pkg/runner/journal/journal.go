// Package journal provides the runner logic for the legacy journal and mood
// scalars. Once the day has entries these land on the newest entry.
package journal

import (
	"context"
	"errors"

	"github.com/0401lucky/daybook/pkg/app"
	journalpkg "github.com/0401lucky/daybook/pkg/journal"
	"github.com/0401lucky/daybook/pkg/printers"
	"github.com/0401lucky/daybook/pkg/store"
)

// Journal updates the day's journal text and/or mood.
type Journal struct {
	Text    string
	SetText bool
	Mood    string

	Persistence store.Persistence
}

func (n *Journal) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not journal, no persistence")
	}

	svc := &app.Service{Persistence: n.Persistence}
	if _, err := svc.Load(ctx); err != nil {
		return err
	}

	var rm app.ReadModel
	var err error
	if n.SetText {
		rm, err = svc.UpdateJournal(n.Text)
		if err != nil {
			return err
		}
	}
	if n.Mood != "" {
		mood, merr := journalpkg.ParseMood(n.Mood)
		if merr != nil {
			return merr
		}
		rm, err = svc.UpdateMood(mood)
		if err != nil {
			return err
		}
	}
	if rm.Record == nil {
		rm, err = svc.ReadModel()
		if err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title(rm.Record.Date)
	pp.Entries(rm.Record.Entries.List()...)
	pp.Summary(rm.Record.Date, rm.Record.IsSealed, rm.CompletionRate, rm.OverallMood)
	return nil
}

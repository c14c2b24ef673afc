// Package status provides the runner logic for rendering a day's read model.
package status

import (
	"context"
	"errors"

	"github.com/0401lucky/daybook/pkg/app"
	"github.com/0401lucky/daybook/pkg/metrics"
	"github.com/0401lucky/daybook/pkg/printers"
	"github.com/0401lucky/daybook/pkg/record"
	"github.com/0401lucky/daybook/pkg/store"
)

// Status prints tasks, entries, and derived fields for today or, when Date
// is set, an archived day (read-only).
type Status struct {
	Date   string
	ShowID bool

	Persistence store.Persistence
}

func (n *Status) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not get status, no persistence")
	}

	svc := &app.Service{Persistence: n.Persistence}

	var rec *record.DailyRecord
	var err error
	if n.Date != "" {
		rec, err = svc.Get(ctx, n.Date)
	} else {
		rec, err = svc.Load(ctx)
	}
	if err != nil {
		return err
	}

	mood, _ := metrics.OverallMood(rec.Entries.Entries)

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Summary(rec.Date, rec.IsSealed, metrics.CompletionRate(rec.Tasks.Tasks), mood)
	pp.TitleWithCount("Tasks", rec.Tasks.Len())
	pp.Tasks(rec.Tasks.Tasks...)
	pp.TitleWithCount("Journal", rec.Entries.Len())
	pp.Entries(rec.Entries.List()...)
	return nil
}

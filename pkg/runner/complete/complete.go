// Package complete provides the runner logic for toggling task completion.
package complete

import (
	"context"
	"errors"

	"github.com/0401lucky/daybook/pkg/app"
	"github.com/0401lucky/daybook/pkg/printers"
	"github.com/0401lucky/daybook/pkg/store"
)

// Complete toggles the completion state of a task.
type Complete struct {
	ID          string
	Persistence store.Persistence
}

func (n *Complete) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not complete, no persistence")
	}

	svc := &app.Service{Persistence: n.Persistence}
	if _, err := svc.Load(ctx); err != nil {
		return err
	}

	rm, err := svc.ToggleTask(n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.TitleWithCount(rm.Record.Date, rm.Record.Tasks.Len())
	pp.Tasks(rm.Record.Tasks.Tasks...)
	pp.Summary(rm.Record.Date, rm.Record.IsSealed, rm.CompletionRate, rm.OverallMood)
	return nil
}

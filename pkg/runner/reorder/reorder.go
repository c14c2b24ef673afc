// Package reorder provides the runner logic for manual task ordering.
package reorder

import (
	"context"
	"errors"

	"github.com/0401lucky/daybook/pkg/app"
	"github.com/0401lucky/daybook/pkg/printers"
	"github.com/0401lucky/daybook/pkg/store"
)

// Reorder applies a new manual order; IDs must be exactly the current task
// id set.
type Reorder struct {
	IDs         []string
	Persistence store.Persistence
}

func (n *Reorder) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not reorder, no persistence")
	}

	svc := &app.Service{Persistence: n.Persistence}
	if _, err := svc.Load(ctx); err != nil {
		return err
	}

	rm, err := svc.ReorderTasks(n.IDs)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.TitleWithCount(rm.Record.Date, rm.Record.Tasks.Len())
	pp.Tasks(rm.Record.Tasks.Tasks...)
	return nil
}

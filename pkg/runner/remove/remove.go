// Package remove provides the runner logic for deleting tasks and entries.
package remove

import (
	"context"
	"errors"

	"github.com/0401lucky/daybook/pkg/app"
	"github.com/0401lucky/daybook/pkg/printers"
	"github.com/0401lucky/daybook/pkg/store"
)

// Remove deletes the task or journal entry with the given id. The id is
// looked up in the task registry first, then the ledger.
type Remove struct {
	ID          string
	Persistence store.Persistence
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not remove, no persistence")
	}

	svc := &app.Service{Persistence: n.Persistence}
	rec, err := svc.Load(ctx)
	if err != nil {
		return err
	}

	var rm app.ReadModel
	if _, ok := rec.Tasks.Get(n.ID); ok {
		rm, err = svc.RemoveTask(n.ID)
	} else {
		rm, err = svc.RemoveEntry(n.ID)
	}
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.Title(rm.Record.Date)
	pp.Tasks(rm.Record.Tasks.Tasks...)
	pp.Entries(rm.Record.Entries.List()...)
	return nil
}

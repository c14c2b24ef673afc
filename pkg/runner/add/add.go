// Package add provides the runner logic for adding tasks to today's record.
package add

import (
	"context"
	"errors"

	"github.com/0401lucky/daybook/pkg/app"
	"github.com/0401lucky/daybook/pkg/printers"
	"github.com/0401lucky/daybook/pkg/store"
	"github.com/0401lucky/daybook/pkg/task"
)

type Add struct {
	Description string
	Priority    string
	Tags        []string
	ShowID      bool

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not add, no persistence")
	}

	priority, err := task.ParsePriority(n.Priority)
	if err != nil {
		return err
	}

	svc := &app.Service{Persistence: n.Persistence}
	if _, err := svc.Load(ctx); err != nil {
		return err
	}

	rm, err := svc.AddTask(n.Description, priority, n.Tags)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.TitleWithCount(rm.Record.Date, rm.Record.Tasks.Len())
	pp.Tasks(rm.Record.Tasks.Tasks...)
	return nil
}

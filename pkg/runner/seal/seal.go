// Package seal provides the runner logic for sealing and unsealing today's
// record.
package seal

import (
	"context"
	"errors"

	"github.com/0401lucky/daybook/pkg/app"
	"github.com/0401lucky/daybook/pkg/printers"
	"github.com/0401lucky/daybook/pkg/store"
)

// Seal closes today's record into read-only history, or reopens it when
// Undo is set.
type Seal struct {
	Undo        bool
	Persistence store.Persistence
}

func (n *Seal) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not seal, no persistence")
	}

	svc := &app.Service{Persistence: n.Persistence}
	if _, err := svc.Load(ctx); err != nil {
		return err
	}

	var rm app.ReadModel
	var err error
	if n.Undo {
		rm, err = svc.Unseal()
	} else {
		rm, err = svc.Seal()
	}
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Summary(rm.Record.Date, rm.Record.IsSealed, rm.CompletionRate, rm.OverallMood)
	return nil
}

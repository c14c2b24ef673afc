// Package export provides the runner logic for archive export and import.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/0401lucky/daybook/pkg/app"
	exportpkg "github.com/0401lucky/daybook/pkg/export"
	"github.com/0401lucky/daybook/pkg/store"
)

// Export writes the whole archive to File, or stdout when File is empty.
type Export struct {
	File        string
	Persistence store.Persistence
}

func (n *Export) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not export, no persistence")
	}

	svc := &app.Service{Persistence: n.Persistence}
	records, err := svc.Archive(ctx)
	if err != nil {
		return err
	}

	out := os.Stdout
	if n.File != "" {
		f, err := os.Create(n.File)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return exportpkg.Write(out, records)
}

// Import reads an archive file and stores every record it contains,
// overwriting records that share a date.
type Import struct {
	File        string
	Persistence store.Persistence
}

func (n *Import) Do(ctx context.Context) error {
	if n.Persistence == nil {
		return errors.New("can not import, no persistence")
	}

	f, err := os.Open(n.File)
	if err != nil {
		return err
	}
	defer f.Close()

	records, err := exportpkg.Read(f)
	if err != nil {
		return err
	}
	for _, rec := range records {
		if err := n.Persistence.Save(rec); err != nil {
			return err
		}
	}
	fmt.Printf("imported %d record(s)\n", len(records))
	return nil
}

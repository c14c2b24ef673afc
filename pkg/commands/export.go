package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/0401lucky/daybook/pkg/commands/options"
	exportrunner "github.com/0401lucky/daybook/pkg/runner/export"
	"github.com/0401lucky/daybook/pkg/store"
)

func addExport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every record as a JSON archive",
		Example: `
daybook export
daybook export backup.json
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("accepts at most one file")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := exportrunner.Export{
				Persistence: p,
			}
			if len(args) == 1 {
				s.File = args[0]
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)

	imp := &cobra.Command{
		Use:   "import",
		Short: "Import a JSON archive, overwriting records that share a date",
		Example: `
daybook import backup.json
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an archive file")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := exportrunner.Import{
				File:        args[0],
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddOutputArg(imp, output)
	topLevel.AddCommand(imp)
}

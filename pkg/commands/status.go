package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/0401lucky/daybook/pkg/commands/options"
	"github.com/0401lucky/daybook/pkg/runner/status"
	"github.com/0401lucky/daybook/pkg/store"
)

func addStatus(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "status",
		Aliases: []string{"get", "show"},
		Short:   "Show a day's tasks, entries, and derived metrics",
		Example: `
daybook status
daybook status 2026-08-01
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("accepts at most one date (YYYY-MM-DD)")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := status.Status{
				ShowID:      io.ShowID,
				Persistence: p,
			}
			if len(args) == 1 {
				s.Date = args[0]
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

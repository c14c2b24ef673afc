package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/0401lucky/daybook/pkg/commands/options"
	"github.com/0401lucky/daybook/pkg/runner/reorder"
	"github.com/0401lucky/daybook/pkg/store"
)

func addReorder(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "reorder",
		Short: "Reorder tasks; pass every task id in the new order",
		Example: `
daybook reorder <id> <id> <id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires the full list of task ids")
			}
			return nil
		},

		RunE: func(_ *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := reorder.Reorder{
				IDs:         args,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

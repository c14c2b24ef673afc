package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/0401lucky/daybook/pkg/commands/options"
	sealrunner "github.com/0401lucky/daybook/pkg/runner/seal"
	"github.com/0401lucky/daybook/pkg/store"
)

func addSeal(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "seal",
		Short: "Seal today's record into read-only history",
		Long: `Seal today's record. A day seals when all of its tasks are completed, or
when it has tasks plus enough journal (50 characters or an entry), or when it
has no tasks but some journal activity. Failures list what each path still
needs.`,
		Example: `
daybook seal
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := sealrunner.Seal{
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)

	unseal := &cobra.Command{
		Use:   "unseal",
		Short: "Reopen today's sealed record for editing",
		Example: `
daybook unseal
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := sealrunner.Seal{
				Undo:        true,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddOutputArg(unseal, output)
	topLevel.AddCommand(unseal)
}

package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/0401lucky/daybook/pkg/commands/options"
	"github.com/0401lucky/daybook/pkg/runner/add"
	"github.com/0401lucky/daybook/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	ao := &options.AddOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to today's record",
		Example: `
daybook add Buy milk
daybook add -p high -t errand "Pick up the package"
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a task description")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := add.Add{
				Description: strings.Join(args, " "),
				Priority:    ao.Priority,
				Tags:        ao.Tags,
				ShowID:      io.ShowID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddTaskArgs(cmd, ao)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

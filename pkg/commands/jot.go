package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/0401lucky/daybook/pkg/commands/options"
	"github.com/0401lucky/daybook/pkg/runner/jot"
	"github.com/0401lucky/daybook/pkg/store"
)

func addJot(topLevel *cobra.Command) {
	mo := &options.MoodOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "jot",
		Aliases: []string{"entry"},
		Short:   "Add a journal entry, or edit one with --id",
		Example: `
daybook jot Long day, but the release went out.
daybook jot -m happy "Shipped it!"
daybook jot --id <entry id> "Actually, it was fine."
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires entry content")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := jot.Jot{
				ID:          io.ID,
				Content:     strings.Join(args, " "),
				Mood:        mo.Mood,
				ShowID:      io.ShowID,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddMoodArgs(cmd, mo)
	options.AddIDArgs(cmd, io)
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

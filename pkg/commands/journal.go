package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/0401lucky/daybook/pkg/commands/options"
	"github.com/0401lucky/daybook/pkg/runner/journal"
	"github.com/0401lucky/daybook/pkg/store"
)

func addJournal(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Set today's journal text",
		Long: `Set the day's journal text. While the day has no entries this writes the
legacy journal field; once entries exist it edits the newest entry.`,
		Example: `
daybook journal Spent the morning untangling the importer.
`,
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := journal.Journal{
				Text:        strings.Join(args, " "),
				SetText:     true,
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)

	mood := &cobra.Command{
		Use:   "mood",
		Short: "Record today's mood",
		Example: `
daybook mood happy
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly one mood")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := journal.Journal{
				Mood:        args[0],
				Persistence: p,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}
	options.AddOutputArg(mood, output)
	topLevel.AddCommand(mood)
}

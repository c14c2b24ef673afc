package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/0401lucky/daybook/pkg/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Show the legend of bullet, priority, and mood symbols",
		Example: `
daybook key
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			k := key.Key{}
			return k.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}

package options

import (
	"github.com/spf13/cobra"
)

// AddOptions
type AddOptions struct {
	Priority string
	Tags     []string
}

func AddTaskArgs(cmd *cobra.Command, o *AddOptions) {
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "medium",
		"Task priority, one of high, medium, low.")
	cmd.Flags().StringSliceVarP(&o.Tags, "tag", "t", nil,
		"Tag the task; repeatable.")
}

// MoodOptions
type MoodOptions struct {
	Mood string
}

func AddMoodArgs(cmd *cobra.Command, o *MoodOptions) {
	cmd.Flags().StringVarP(&o.Mood, "mood", "m", "",
		"Mood for the entry, one of happy, neutral, sad, excited, tired.")
}

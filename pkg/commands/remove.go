package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mistycrown/zenbullet/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	series := false

	cmd := &cobra.Command{
		Use:     "remove [id]",
		Aliases: []string{"rm", "delete"},
		Short:   "Delete an entry, with a short undo window",
		Long: `Delete an entry. Removing a project also removes its subtasks.
Removing one occurrence of a recurring entry schedules the next one;
pass --series to end the whole series instead.`,
		Example: `
zenbullet remove 4f1c…
zenbullet remove 4f1c… --series
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, _, _, notifier, err := loadJournal()
			if err != nil {
				return err
			}
			s := remove.Remove{
				ID:      args[0],
				Series:  series,
				Journal: j,
				Toasts:  notifier,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&series, "series", false,
		"End the recurring series instead of skipping one occurrence.")

	topLevel.AddCommand(cmd)
}

package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mistycrown/zenbullet/pkg/commands/options"
	"github.com/mistycrown/zenbullet/pkg/entry"
	"github.com/mistycrown/zenbullet/pkg/runner/complete"
)

func addComplete(topLevel *cobra.Command) {
	addStatusChange(topLevel, "complete", entry.StatusDone,
		"Mark an entry done. Completing a recurring entry schedules the next occurrence.")
	addStatusChange(topLevel, "cancel", entry.StatusCanceled,
		"Mark an entry canceled without advancing its series.")
	addStatusChange(topLevel, "reopen", entry.StatusTodo,
		"Set an entry back to todo.")
}

func addStatusChange(topLevel *cobra.Command, use string, status entry.Status, short string) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   use + " [id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, _, _, _, err := loadJournal()
			if err != nil {
				return err
			}
			s := complete.Complete{
				ID:      args[0],
				Status:  status,
				Journal: j,
				ShowID:  io.ShowID,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mistycrown/zenbullet/pkg/commands/options"
	"github.com/mistycrown/zenbullet/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "edit [id]",
		Short: "Change fields on an entry",
		Example: `
zenbullet edit 4f1c… --date 2026-09-01
zenbullet edit 4f1c… --tag Work --priority 4
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, _, _, _, err := loadJournal()
			if err != nil {
				return err
			}

			s := edit.Edit{
				ID:      args[0],
				Journal: j,
				ShowID:  io.ShowID,
			}
			// Patch only what the user set.
			if cmd.Flags().Changed("date") {
				s.Date = &eo.Date
			}
			if cmd.Flags().Changed("tag") {
				s.Tag = &eo.Tag
			}
			if cmd.Flags().Changed("priority") {
				s.Priority = &eo.Priority
			}
			if cmd.Flags().Changed("every") {
				s.Every = &eo.Every
			}
			if cmd.Flags().Changed("until") {
				s.Until = &eo.Until
			}
			if cmd.Flags().Changed("content") {
				content, _ := cmd.Flags().GetString("content")
				s.Content = &content
			}

			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddEntryArgs(cmd, eo)
	cmd.Flags().String("content", "", "Replace the entry's content.")
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

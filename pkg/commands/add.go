package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mistycrown/zenbullet/pkg/commands/options"
	"github.com/mistycrown/zenbullet/pkg/entry"
	"github.com/mistycrown/zenbullet/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an entry to the journal",
		Example: `
zenbullet add task buy milk --date today
zenbullet add event dentist --date 2026-09-03
zenbullet add note remember the hat
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addEntryType(cmd, entry.TypeTask, "task", "A todo with a status.")
	addEntryType(cmd, entry.TypeEvent, "event", "A dated occurrence with no todo state.")
	addEntryType(cmd, entry.TypeNote, "note", "A plain note.")
	addEntryType(cmd, entry.TypeProject, "project", "A container for subtasks.")
	addEntryType(cmd, entry.TypeWeeklyReview, "review", "A weekly review entry.")
	addBatch(cmd)

	topLevel.AddCommand(cmd)
}

func addEntryType(topLevel *cobra.Command, t entry.Type, use, short string) {
	eo := &options.EntryOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   use + " [content]",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, _, _, _, err := loadJournal()
			if err != nil {
				return err
			}
			s := add.Add{
				Journal:  j,
				Type:     t,
				Content:  strings.Join(args, " "),
				Date:     eo.Date,
				Tag:      eo.Tag,
				Priority: eo.Priority,
				Every:    eo.Every,
				Until:    eo.Until,
				Parent:   eo.Parent,
				Color:    eo.Color,
				ShowID:   io.ShowID,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddEntryArgs(cmd, eo)
	if t == entry.TypeProject || t == entry.TypeTask {
		options.AddProjectArgs(cmd, eo)
	}
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

func addBatch(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "Bulk-add entries from a JSON array.",
		Example: `
zenbullet add batch plan.json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, _, _, _, err := loadJournal()
			if err != nil {
				return err
			}
			s := add.Batch{
				Journal: j,
				Path:    args[0],
				ShowID:  io.ShowID,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}

package commands

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mistycrown/zenbullet/pkg/runner/tags"
)

func addTags(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "tags",
		Aliases: []string{"tag"},
		Short:   "Manage the tag collection",
		Example: `
zenbullet tags
zenbullet tags add Garden --color lime --icon flower
zenbullet tags rename Work Office
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, _, _, _, err := loadJournal()
			if err != nil {
				return err
			}
			s := tags.List{Journal: j}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	addTagsAdd(cmd)
	addTagsRename(cmd)
	addTagsRemove(cmd)
	addTagsMove(cmd)

	topLevel.AddCommand(cmd)
}

func addTagsAdd(topLevel *cobra.Command) {
	color := ""
	icon := ""

	cmd := &cobra.Command{
		Use:   "add [name]",
		Short: "Create a tag.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, _, _, _, err := loadJournal()
			if err != nil {
				return err
			}
			s := tags.Add{
				Journal: j,
				Name:    args[0],
				Color:   color,
				Icon:    icon,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&color, "color", "", "Palette color name, e.g. sky, rose, lime.")
	cmd.Flags().StringVar(&icon, "icon", "", "Icon name shown next to the tag.")

	topLevel.AddCommand(cmd)
}

func addTagsRename(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rename [old] [new]",
		Short: "Rename a tag; its entries move along.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, _, _, _, err := loadJournal()
			if err != nil {
				return err
			}
			s := tags.Rename{
				Journal: j,
				OldName: args[0],
				NewName: args[1],
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addTagsRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "remove [name]",
		Aliases: []string{"rm"},
		Short:   "Delete a tag; its entries fall back to Inbox.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, _, _, _, err := loadJournal()
			if err != nil {
				return err
			}
			s := tags.Remove{
				Journal: j,
				Name:    args[0],
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addTagsMove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "move [name] [position]",
		Short: "Move a tag to a 1-based position in the display order.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			j, _, _, _, err := loadJournal()
			if err != nil {
				return err
			}
			s := tags.Move{
				Journal:  j,
				Name:     args[0],
				Position: position,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

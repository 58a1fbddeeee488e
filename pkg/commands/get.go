package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mistycrown/zenbullet/pkg/commands/options"
	"github.com/mistycrown/zenbullet/pkg/runner/get"
	"github.com/mistycrown/zenbullet/pkg/timeutil"
)

func addGet(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "List journal entries by view",
		Example: `
zenbullet get today
zenbullet get week --monday
zenbullet get upcoming --window 1m
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addGetView(cmd, get.ViewToday, "Entries scheduled for today.")
	addGetView(cmd, get.ViewWeek, "This week, one section per day.")
	addGetView(cmd, get.ViewMonth, "This month, one section per day.")
	addGetView(cmd, get.ViewInbox, "Unscheduled entries.")
	addGetView(cmd, get.ViewUpcoming, "The next stretch of days.")
	addGetView(cmd, get.ViewAll, "Every entry in the journal.")

	topLevel.AddCommand(cmd)
}

func addGetView(topLevel *cobra.Command, view get.View, short string) {
	vo := &options.ViewOptions{}

	cmd := &cobra.Command{
		Use:   string(view),
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, _, _, _, err := loadJournal()
			if err != nil {
				return err
			}

			days := 0
			if vo.Window != "" {
				if days, _, err = timeutil.ParseWindow(vo.Window); err != nil {
					return err
				}
			}

			s := get.Get{
				Journal:      j,
				View:         view,
				Tag:          vo.Tag,
				WindowDays:   days,
				Ghosts:       vo.Ghosts,
				StartsMonday: vo.StartsMonday,
				ShowID:       vo.ShowID,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddViewArgs(cmd, vo)
	if view == get.ViewUpcoming {
		cmd.Flags().StringVarP(&vo.Window, "window", "w", timeutil.DefaultWindow,
			"How far ahead to look, e.g. 10d, 2w, 1m.")
	}

	topLevel.AddCommand(cmd)
}

package commands

import (
	"github.com/spf13/cobra"

	"github.com/mistycrown/zenbullet/pkg/commands/options"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "zenbullet",
		Short: options.Wrap80("Bullet journaling on the command line, with recurring entries and cloud sync."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addGet(topLevel)
	addEdit(topLevel)
	addComplete(topLevel)
	addRemove(topLevel)
	addTags(topLevel)
	addSync(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addVersion(topLevel)
}

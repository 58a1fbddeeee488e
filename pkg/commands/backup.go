package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mistycrown/zenbullet/pkg/runner/backup"
)

func addExport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Write the whole journal as a JSON document",
		Example: `
zenbullet export
zenbullet export journal.json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, _, _, _, err := loadJournal()
			if err != nil {
				return err
			}
			s := backup.Export{Journal: j}
			if len(args) == 1 {
				s.Path = args[0]
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Replace the whole journal with a JSON document",
		Long: `Replace every entry and tag with the document's content. A document
that fails to parse leaves the journal untouched.`,
		Example: `
zenbullet import journal.json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			j, _, _, _, err := loadJournal()
			if err != nil {
				return err
			}
			s := backup.Import{
				Journal: j,
				Path:    args[0],
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

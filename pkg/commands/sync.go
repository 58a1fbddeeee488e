package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	runnersync "github.com/mistycrown/zenbullet/pkg/runner/sync"
	remote "github.com/mistycrown/zenbullet/pkg/sync"
)

func addSync(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Reconcile the journal with the configured cloud bucket",
		Long: `Merge the local journal with the remote backup document and write
both sides. Individual entries are kept by most-recent update; the local
copy wins ties. Requires sync.bucket in the config file.`,
		Example: `
zenbullet sync
zenbullet sync push
zenbullet sync pull
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(runnersync.ModeReconcile)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "push",
		Short: "Overwrite the remote document with local state, no merge.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(runnersync.ModePush)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "pull",
		Short: "Merge the remote document into local state without uploading.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(runnersync.ModePull)
		},
	})

	topLevel.AddCommand(cmd)
}

func runSync(mode runnersync.Mode) error {
	j, p, cfg, _, err := loadJournal()
	if err != nil {
		return err
	}

	sc := cfg.Sync()
	if !sc.Configured() {
		return output.HandleError(errors.New("sync is not configured; set sync.bucket in the config file"))
	}

	ctx := context.Background()
	blob, err := remote.NewS3Blob(ctx, sc)
	if err != nil {
		return output.HandleError(err)
	}

	s := runnersync.Sync{
		Journal:     j,
		Reconciler:  remote.NewReconciler(blob, sc.Document),
		Persistence: p,
		Mode:        mode,
	}
	return output.HandleError(s.Do(ctx))
}

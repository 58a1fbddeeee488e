package commands

import (
	"fmt"

	"github.com/mistycrown/zenbullet/pkg/journal"
	"github.com/mistycrown/zenbullet/pkg/store"
	"github.com/mistycrown/zenbullet/pkg/toast"
)

// loadJournal builds the composition root for a command invocation: config,
// local persistence, feedback notifier, and the journal loaded from disk.
func loadJournal() (*journal.Journal, store.Persistence, store.Config, *toast.Notifier, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, nil, nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	notifier := toast.NewNotifier(toast.DefaultWindow)
	notifier.OnShow(func(t toast.Toast) {
		fmt.Printf("· %s\n", t.Message)
	})

	j, err := journal.Open(p, notifier)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return j, p, cfg, notifier, nil
}

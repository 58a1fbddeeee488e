// Package sync provides the runner logic for remote synchronization.
package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mistycrown/zenbullet/pkg/journal"
	"github.com/mistycrown/zenbullet/pkg/printers"
	"github.com/mistycrown/zenbullet/pkg/store"
	remote "github.com/mistycrown/zenbullet/pkg/sync"
)

// Mode selects the sync direction.
type Mode string

const (
	// ModeReconcile merges both ways and republishes.
	ModeReconcile Mode = "reconcile"
	// ModePush overwrites the remote with local, no merge.
	ModePush Mode = "push"
	// ModePull merges remote into local without uploading.
	ModePull Mode = "pull"
)

// Sync runs one sync operation against the configured remote. Any transport
// failure aborts with local state untouched; there is no automatic retry.
type Sync struct {
	Journal     *journal.Journal
	Reconciler  *remote.Reconciler
	Persistence store.Persistence
	Mode        Mode
}

func (n *Sync) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not sync, no journal")
	}
	if n.Reconciler == nil {
		return errors.New("can not sync, no remote configured")
	}

	local := n.Journal.Snapshot()
	snap := remote.Snapshot{Entries: local.Entries, Tags: local.Tags}

	var result string
	switch n.Mode {
	case ModePush:
		if err := n.Reconciler.Upload(ctx, snap); err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}
		result = "local snapshot uploaded"

	case ModePull:
		merged, err := n.Reconciler.Download(ctx, snap)
		if err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}
		if err := n.Journal.ApplyMerged(journal.Snapshot{Entries: merged.Entries, Tags: merged.Tags}); err != nil {
			return err
		}
		result = "remote merged into local"

	default:
		merged, outcome, err := n.Reconciler.Reconcile(ctx, snap)
		if err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}
		if err := n.Journal.ApplyMerged(journal.Snapshot{Entries: merged.Entries, Tags: merged.Tags}); err != nil {
			return err
		}
		result = outcomeText(outcome)
	}

	now := time.Now()
	if n.Persistence != nil {
		if err := n.Persistence.SetLastSync(now); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{}
	pp.SyncStatus([][2]string{
		{"result", result},
		{"entries", fmt.Sprintf("%d", n.Journal.Entries.Len())},
		{"tags", fmt.Sprintf("%d", len(n.Journal.Tags.All()))},
		{"synced", now.Format(time.RFC3339)},
	})
	return nil
}

func outcomeText(outcome remote.Outcome) string {
	switch outcome {
	case remote.OutcomeCloudUpdated:
		return "cloud had newer data; local updated"
	case remote.OutcomeLocalUpdated:
		return "local had newer data; cloud updated"
	default:
		return "already in sync"
	}
}

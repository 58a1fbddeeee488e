// Package backup provides the runner logic for manual export and import.
package backup

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mistycrown/zenbullet/pkg/backup"
	"github.com/mistycrown/zenbullet/pkg/journal"
)

// Export writes the journal as a {tags, entries} JSON document.
type Export struct {
	Journal *journal.Journal
	Path    string
}

func (n *Export) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not export, no journal")
	}

	out := os.Stdout
	if n.Path != "" && n.Path != "-" {
		f, err := os.Create(n.Path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	return backup.Export(out, n.Journal.Snapshot())
}

// Import replaces the entire journal with the document's content. A
// malformed document is rejected without touching local state.
type Import struct {
	Journal *journal.Journal
	Path    string
}

func (n *Import) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not import, no journal")
	}

	f, err := os.Open(n.Path)
	if err != nil {
		return err
	}
	defer f.Close()

	snap, err := backup.Import(f)
	if err != nil {
		return err
	}
	if err := n.Journal.Import(snap); err != nil {
		return err
	}
	fmt.Printf("imported %d entries, %d tags\n", len(snap.Entries), len(snap.Tags))
	return nil
}

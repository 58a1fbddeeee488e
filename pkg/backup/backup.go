// Package backup writes and reads the manual {tags, entries} backup shape.
// Import replaces local state wholesale; there is no merge.
package backup

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mistycrown/zenbullet/pkg/journal"
)

// Export writes the snapshot as indented JSON.
func Export(w io.Writer, snap journal.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("backup: encode: %w", err)
	}
	return nil
}

// Import strictly parses a backup document. A malformed payload is rejected
// as a whole; nothing is partially applied.
func Import(r io.Reader) (journal.Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return journal.Snapshot{}, fmt.Errorf("backup: read: %w", err)
	}
	var snap journal.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return journal.Snapshot{}, fmt.Errorf("backup: malformed document: %w", err)
	}
	return snap, nil
}

package sync

import (
	"time"

	"github.com/mistycrown/zenbullet/pkg/entry"
	"github.com/mistycrown/zenbullet/pkg/tag"
)

// MergeEntries combines two entry sets keyed by id. For ids on both sides
// the strictly later updatedAt (falling back to createdAt) wins wholesale;
// ties keep the local copy. Entries present on only one side always survive.
// There is no field-level diff and no delete propagation: an entry deleted on
// one device reappears from the other's copy on a later sync. That is a
// known, accepted limitation of the document format (no tombstones).
//
// Output order is deterministic: local order first, then remote-only entries
// in remote order.
func MergeEntries(local, remote []*entry.Entry) []*entry.Entry {
	merged := make([]*entry.Entry, len(local))
	index := make(map[string]int, len(local))
	for i, e := range local {
		merged[i] = e
		index[e.ID] = i
	}

	for _, remoteEntry := range remote {
		i, ok := index[remoteEntry.ID]
		if !ok {
			index[remoteEntry.ID] = len(merged)
			merged = append(merged, remoteEntry)
			continue
		}
		if mergeStamp(remoteEntry).After(mergeStamp(merged[i])) {
			merged[i] = remoteEntry
		}
	}
	return merged
}

// MergeTags combines two tag sets keyed by name. Tags carry no timestamp, so
// the remote copy unconditionally overwrites the local one on a name
// collision; otherwise the result is the union. Local order first, remote
// additions appended.
func MergeTags(local, remote []tag.Tag) []tag.Tag {
	merged := make([]tag.Tag, len(local))
	index := make(map[string]int, len(local))
	for i, t := range local {
		merged[i] = t
		index[t.Name] = i
	}

	for _, remoteTag := range remote {
		if i, ok := index[remoteTag.Name]; ok {
			merged[i] = remoteTag
			continue
		}
		index[remoteTag.Name] = len(merged)
		merged = append(merged, remoteTag)
	}
	return merged
}

// mergeStamp is the sync merge key: updatedAt when present, else createdAt.
func mergeStamp(e *entry.Entry) time.Time {
	if !e.UpdatedAt.IsZero() {
		return e.UpdatedAt.Time
	}
	return e.CreatedAt.Time
}

// maxStamp returns the latest merge stamp across entries, used for outcome
// classification.
func maxStamp(entries []*entry.Entry) time.Time {
	var max time.Time
	for _, e := range entries {
		if stamp := mergeStamp(e); stamp.After(max) {
			max = stamp
		}
	}
	return max
}

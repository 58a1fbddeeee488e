package sync

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mistycrown/zenbullet/pkg/entry"
	"github.com/mistycrown/zenbullet/pkg/tag"
)

func stamped(id string, updated time.Time) *entry.Entry {
	return &entry.Entry{
		ID:        id,
		Type:      entry.TypeTask,
		Content:   "content of " + id,
		UpdatedAt: entry.Timestamp{Time: updated},
	}
}

func TestMergeEntriesLastWriteWins(t *testing.T) {
	base := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)

	local := []*entry.Entry{
		stamped("a", base.Add(5*time.Minute)),
		stamped("b", base.Add(3*time.Minute)),
	}
	remote := []*entry.Entry{
		stamped("a", base.Add(2*time.Minute)),
		stamped("c", base.Add(9*time.Minute)),
	}

	merged := MergeEntries(local, remote)

	assert.Len(t, merged, 3)
	assert.Equal(t, "a", merged[0].ID)
	assert.Equal(t, base.Add(5*time.Minute), merged[0].UpdatedAt.Time, "the newer local copy of a must win")
	assert.Equal(t, "b", merged[1].ID)
	assert.Equal(t, "c", merged[2].ID, "remote-only entries are appended")
}

func TestMergeEntriesTieKeepsLocal(t *testing.T) {
	when := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	local := stamped("a", when)
	local.Content = "local"
	remote := stamped("a", when)
	remote.Content = "remote"

	merged := MergeEntries([]*entry.Entry{local}, []*entry.Entry{remote})

	assert.Len(t, merged, 1)
	assert.Equal(t, "local", merged[0].Content)
}

func TestMergeEntriesFallsBackToCreatedAt(t *testing.T) {
	base := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	local := &entry.Entry{ID: "a", Content: "local", CreatedAt: entry.Timestamp{Time: base}}
	remote := &entry.Entry{ID: "a", Content: "remote", CreatedAt: entry.Timestamp{Time: base.Add(time.Minute)}}

	merged := MergeEntries([]*entry.Entry{local}, []*entry.Entry{remote})

	assert.Equal(t, "remote", merged[0].Content)
}

func TestMergeEntriesDisjointSetsUnion(t *testing.T) {
	base := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	local := []*entry.Entry{stamped("a", base)}
	remote := []*entry.Entry{stamped("b", base)}

	merged := MergeEntries(local, remote)

	assert.Len(t, merged, 2)
}

func TestMergeEntriesEmptySides(t *testing.T) {
	base := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	only := []*entry.Entry{stamped("a", base)}

	assert.Len(t, MergeEntries(only, nil), 1)
	assert.Len(t, MergeEntries(nil, only), 1)
	assert.Empty(t, MergeEntries(nil, nil))
}

func TestMergeTagsRemoteOverwritesOnCollision(t *testing.T) {
	local := []tag.Tag{
		{Name: "Work", Color: tag.ColorBlue},
		{Name: "Life", Color: tag.ColorYellow},
	}
	remote := []tag.Tag{
		{Name: "Work", Color: tag.ColorRed},
		{Name: "Health", Color: tag.ColorGreen},
	}

	merged := MergeTags(local, remote)

	assert.Len(t, merged, 3)
	assert.Equal(t, tag.ColorRed, merged[0].Color, "remote copy wins on name collision")
	assert.Equal(t, "Life", merged[1].Name)
	assert.Equal(t, "Health", merged[2].Name)
}

package sync

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mistycrown/zenbullet/pkg/entry"
	"github.com/mistycrown/zenbullet/pkg/tag"
)

// memoryBlob is an in-memory Blob with write counting.
type memoryBlob struct {
	objects map[string][]byte
	puts    int
	getErr  error
	putErr  error
}

func newMemoryBlob() *memoryBlob {
	return &memoryBlob{objects: map[string][]byte{}}
}

func (m *memoryBlob) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	data, ok := m.objects[key]
	if !ok {
		return nil, ErrNotFound
	}
	return data, nil
}

func (m *memoryBlob) Put(ctx context.Context, key string, data []byte) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.objects[key] = data
	m.puts++
	return nil
}

func (m *memoryBlob) seed(t *testing.T, key string, doc Document) {
	t.Helper()
	data, err := json.Marshal(doc)
	require.NoError(t, err)
	m.objects[key] = data
}

func TestReconcileMissingRemoteUploadsLocal(t *testing.T) {
	blob := newMemoryBlob()
	r := NewReconciler(blob, "")

	local := Snapshot{
		Entries: []*entry.Entry{stamped("a", time.Now())},
		Tags:    []tag.Tag{{Name: "Work"}},
	}

	merged, outcome, err := r.Reconcile(context.Background(), local)
	require.NoError(t, err)

	assert.Equal(t, OutcomeLocalUpdated, outcome)
	assert.Len(t, merged.Entries, 1)
	require.Contains(t, blob.objects, DefaultDocument)

	var doc Document
	require.NoError(t, json.Unmarshal(blob.objects[DefaultDocument], &doc))
	assert.Equal(t, 1, doc.Version)
	assert.Len(t, doc.Entries, 1)
	assert.Len(t, doc.Tags, 1)
	assert.NotEmpty(t, doc.Timestamp)
}

func TestReconcileMergesBothSides(t *testing.T) {
	base := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	blob := newMemoryBlob()
	blob.seed(t, "doc.json", Document{
		Version: 1,
		Entries: []*entry.Entry{stamped("remote-only", base.Add(time.Hour))},
	})
	r := NewReconciler(blob, "doc.json")

	local := Snapshot{Entries: []*entry.Entry{stamped("local-only", base)}}
	merged, outcome, err := r.Reconcile(context.Background(), local)
	require.NoError(t, err)

	assert.Len(t, merged.Entries, 2)
	assert.Equal(t, OutcomeCloudUpdated, outcome)
	assert.Equal(t, 1, blob.puts, "the merged result is uploaded")
}

func TestReconcileNoChangeStillUploads(t *testing.T) {
	base := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	blob := newMemoryBlob()
	blob.seed(t, "doc.json", Document{Version: 1, Entries: []*entry.Entry{stamped("a", base)}})
	r := NewReconciler(blob, "doc.json")

	local := Snapshot{Entries: []*entry.Entry{stamped("a", base)}}
	_, outcome, err := r.Reconcile(context.Background(), local)
	require.NoError(t, err)

	assert.Equal(t, OutcomeNoChange, outcome)
	assert.Equal(t, 1, blob.puts)
}

func TestReconcileMalformedRemoteFailsWithoutUpload(t *testing.T) {
	blob := newMemoryBlob()
	blob.objects["doc.json"] = []byte("not json")
	r := NewReconciler(blob, "doc.json")

	_, _, err := r.Reconcile(context.Background(), Snapshot{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed remote document")
	assert.Zero(t, blob.puts, "a failed fetch must not overwrite the remote")
}

func TestReconcileTransportErrorPropagates(t *testing.T) {
	blob := newMemoryBlob()
	blob.getErr = errors.New("boom")
	r := NewReconciler(blob, "doc.json")

	_, _, err := r.Reconcile(context.Background(), Snapshot{})
	require.Error(t, err)
	assert.Zero(t, blob.puts)
}

func TestUploadOverwritesWithoutMerge(t *testing.T) {
	base := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	blob := newMemoryBlob()
	blob.seed(t, "doc.json", Document{Version: 1, Entries: []*entry.Entry{stamped("remote", base.Add(time.Hour))}})
	r := NewReconciler(blob, "doc.json")

	err := r.Upload(context.Background(), Snapshot{Entries: []*entry.Entry{stamped("local", base)}})
	require.NoError(t, err)

	var doc Document
	require.NoError(t, json.Unmarshal(blob.objects["doc.json"], &doc))
	require.Len(t, doc.Entries, 1)
	assert.Equal(t, "local", doc.Entries[0].ID, "push replaces the remote wholesale")
}

func TestDownloadMergesWithoutUpload(t *testing.T) {
	base := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	blob := newMemoryBlob()
	blob.seed(t, "doc.json", Document{Version: 1, Entries: []*entry.Entry{stamped("remote", base)}})
	r := NewReconciler(blob, "doc.json")

	merged, err := r.Download(context.Background(), Snapshot{Entries: []*entry.Entry{stamped("local", base)}})
	require.NoError(t, err)

	assert.Len(t, merged.Entries, 2)
	assert.Zero(t, blob.puts, "pull never writes the remote")
}

func TestDownloadMissingRemoteKeepsLocal(t *testing.T) {
	blob := newMemoryBlob()
	r := NewReconciler(blob, "doc.json")

	local := Snapshot{Entries: []*entry.Entry{stamped("a", time.Now())}}
	merged, err := r.Download(context.Background(), local)
	require.NoError(t, err)
	assert.Len(t, merged.Entries, 1)
}

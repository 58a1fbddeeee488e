package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	gosync "sync"
	"time"

	"github.com/mistycrown/zenbullet/pkg/entry"
	"github.com/mistycrown/zenbullet/pkg/tag"
)

// DefaultDocument is the fixed filename the sync document lives under.
const DefaultDocument = "zenbullet_backup.json"

// Document is the remote sync document: the whole journal, stored wholesale.
// Version is written but never checked on read.
type Document struct {
	Version   int            `json:"version"`
	Timestamp string         `json:"timestamp"`
	Entries   []*entry.Entry `json:"entries"`
	Tags      []tag.Tag      `json:"tags"`
}

// Snapshot is the {entries, tags} state exchanged with the reconciler.
type Snapshot struct {
	Entries []*entry.Entry
	Tags    []tag.Tag
}

// Outcome classifies a reconcile for user feedback text. It carries no
// control-flow meaning.
type Outcome string

const (
	// OutcomeCloudUpdated means the remote side held strictly newer data.
	OutcomeCloudUpdated Outcome = "cloud_updated"
	// OutcomeLocalUpdated means the local snapshot was the newer side.
	OutcomeLocalUpdated Outcome = "local_updated"
	// OutcomeNoChange means the two sides carried the same newest data.
	OutcomeNoChange Outcome = "no_change"
)

// Reconciler merges local and remote snapshots over a Blob. The mutex makes
// mutual exclusion of sync operations an enforced invariant rather than an
// advisory flag: overlapping calls serialize instead of racing on the remote
// document.
type Reconciler struct {
	mu       gosync.Mutex
	blob     Blob
	document string
	now      func() time.Time
}

// NewReconciler builds a reconciler over the given blob store. An empty
// document name falls back to DefaultDocument.
func NewReconciler(blob Blob, document string) *Reconciler {
	if document == "" {
		document = DefaultDocument
	}
	return &Reconciler{blob: blob, document: document, now: time.Now}
}

// Reconcile merges the local snapshot with the remote document and uploads
// the merged result unconditionally, so the remote always reflects at least
// what this call computed. A missing remote document is treated as empty.
// On any transport or parse failure the returned error describes it and the
// caller's local state must be left untouched.
func (r *Reconciler) Reconcile(ctx context.Context, local Snapshot) (Snapshot, Outcome, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	remote, err := r.fetch(ctx)
	if err != nil {
		return Snapshot{}, OutcomeNoChange, err
	}

	merged := Snapshot{
		Entries: MergeEntries(local.Entries, remote.Entries),
		Tags:    MergeTags(local.Tags, remote.Tags),
	}

	if err := r.upload(ctx, merged); err != nil {
		return Snapshot{}, OutcomeNoChange, err
	}

	return merged, classify(local.Entries, remote.Entries), nil
}

// Upload overwrites the remote document with the local snapshot. No merge,
// no download.
func (r *Reconciler) Upload(ctx context.Context, local Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.upload(ctx, local)
}

// Download fetches the remote document and merges it into the local snapshot
// using the same rules as Reconcile, but does not re-upload. A missing
// remote document leaves the local snapshot as-is.
func (r *Reconciler) Download(ctx context.Context, local Snapshot) (Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	remote, err := r.fetch(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Entries: MergeEntries(local.Entries, remote.Entries),
		Tags:    MergeTags(local.Tags, remote.Tags),
	}, nil
}

func (r *Reconciler) fetch(ctx context.Context) (Snapshot, error) {
	data, err := r.blob.Get(ctx, r.document)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Snapshot{}, nil
		}
		return Snapshot{}, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Snapshot{}, fmt.Errorf("sync: malformed remote document: %w", err)
	}
	return Snapshot{Entries: doc.Entries, Tags: doc.Tags}, nil
}

func (r *Reconciler) upload(ctx context.Context, snap Snapshot) error {
	doc := Document{
		Version:   1,
		Timestamp: r.now().UTC().Format(time.RFC3339),
		Entries:   snap.Entries,
		Tags:      snap.Tags,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("sync: encode document: %w", err)
	}
	return r.blob.Put(ctx, r.document, data)
}

// classify compares the newest entry stamp on each side.
func classify(local, remote []*entry.Entry) Outcome {
	localMax := maxStamp(local)
	remoteMax := maxStamp(remote)
	switch {
	case remoteMax.After(localMax):
		return OutcomeCloudUpdated
	case localMax.After(remoteMax):
		return OutcomeLocalUpdated
	default:
		return OutcomeNoChange
	}
}

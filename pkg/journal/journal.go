// Package journal holds the authoritative in-memory entry and tag
// collections and the lifecycle rules that mutate them. A Journal is built
// by the application's composition root and handed to every consumer; there
// are no package-level stores.
package journal

import (
	"fmt"
	"time"

	"github.com/mistycrown/zenbullet/pkg/entry"
	"github.com/mistycrown/zenbullet/pkg/store"
	"github.com/mistycrown/zenbullet/pkg/tag"
	"github.com/mistycrown/zenbullet/pkg/toast"
)

// Snapshot is the full {entries, tags} state handed to sync and backup.
type Snapshot struct {
	Entries []*entry.Entry `json:"entries"`
	Tags    []tag.Tag      `json:"tags"`
}

// Journal wires the entry and tag stores together with persistence and user
// feedback. Every state-changing operation writes the affected blobs back to
// local storage synchronously before returning.
type Journal struct {
	Entries *EntryStore
	Tags    *TagStore

	persist store.Persistence
	toasts  *toast.Notifier
}

// Option customises a Journal, mostly for tests.
type Option func(*Journal)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(j *Journal) { j.Entries.now = now }
}

// WithIDSource overrides id generation.
func WithIDSource(newID func() string) Option {
	return func(j *Journal) { j.Entries.newID = newID }
}

// New builds an empty journal. persist may be nil (nothing is written) and
// notifier may be nil (feedback is dropped).
func New(persist store.Persistence, notifier *toast.Notifier, opts ...Option) *Journal {
	j := &Journal{
		Entries: NewEntryStore(),
		Tags:    NewTagStore(),
		persist: persist,
		toasts:  notifier,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Open builds a journal and loads the persisted state. A journal that has
// never stored tags is seeded with the default set.
func Open(persist store.Persistence, notifier *toast.Notifier, opts ...Option) (*Journal, error) {
	j := New(persist, notifier, opts...)
	if persist == nil {
		return j, nil
	}

	entries, err := persist.LoadEntries()
	if err != nil {
		return nil, fmt.Errorf("journal: load entries: %w", err)
	}
	j.Entries.Replace(entries)

	tags, err := persist.LoadTags()
	if err != nil {
		return nil, fmt.Errorf("journal: load tags: %w", err)
	}
	if len(tags) == 0 {
		tags = tag.DefaultTags()
	}
	j.Tags.Reorder(tags)

	return j, nil
}

// Snapshot returns a copy of the full journal state.
func (j *Journal) Snapshot() Snapshot {
	return Snapshot{Entries: j.Entries.All(), Tags: j.Tags.All()}
}

// AddEntry appends a new entry and persists.
func (j *Journal) AddEntry(partial entry.Entry) (*entry.Entry, error) {
	e := j.Entries.Add(partial)
	if err := j.saveEntries(); err != nil {
		return nil, err
	}
	if e.Content != "" {
		j.show("Entry created", nil)
	}
	return e, nil
}

// BatchAddEntries appends each partial entry with status forced to todo.
func (j *Journal) BatchAddEntries(partials []entry.Entry) ([]*entry.Entry, error) {
	added := j.Entries.BatchAdd(partials)
	if err := j.saveEntries(); err != nil {
		return added, err
	}
	j.show(fmt.Sprintf("%d entries added", len(added)), nil)
	return added, nil
}

// UpdateEntry patches an entry and persists. An unknown id is a no-op.
func (j *Journal) UpdateEntry(id string, patch Patch) error {
	if !j.Entries.Update(id, patch) {
		return nil
	}
	return j.saveEntries()
}

// DeleteEntry removes an entry (cascading for projects, advancing recurring
// series in single mode) and offers a one-shot undo while the toast window
// is open.
func (j *Journal) DeleteEntry(id string, mode RemoveMode) error {
	deleted := j.Entries.Remove(id, mode)
	if len(deleted) == 0 {
		return nil
	}
	if err := j.saveEntries(); err != nil {
		return err
	}

	message := "Entry deleted"
	if len(deleted) > 1 {
		message = fmt.Sprintf("%d items deleted", len(deleted))
	}
	j.show(message, &toast.Action{Label: "Undo", Run: func() {
		_ = j.UndoDelete()
	}})
	return nil
}

// UndoDelete restores the last deleted entries, if any, and persists.
func (j *Journal) UndoDelete() error {
	if j.Entries.Undo() == 0 {
		return nil
	}
	if j.toasts != nil {
		j.toasts.Hide()
	}
	return j.saveEntries()
}

// AddTag appends a tag, refusing duplicates, and persists.
func (j *Journal) AddTag(t tag.Tag) error {
	if err := j.Tags.Add(t); err != nil {
		return err
	}
	if err := j.saveTags(); err != nil {
		return err
	}
	j.show(fmt.Sprintf("Collection %q added", t.Name), nil)
	return nil
}

// RenameTag renames a tag and moves every entry referencing the old name to
// the new one. A name collision refuses the whole operation: zero entries
// change.
func (j *Journal) RenameTag(oldName, newName string) error {
	if err := j.Tags.Rename(oldName, newName); err != nil {
		return err
	}
	j.Entries.RetagAll(oldName, newName)
	if err := j.saveTags(); err != nil {
		return err
	}
	return j.saveEntries()
}

// RemoveTag deletes a tag and reassigns its entries to Inbox; entries are
// never left dangling.
func (j *Journal) RemoveTag(name string) error {
	if !j.Tags.Remove(name) {
		return nil
	}
	j.Entries.ReassignToInbox(name)
	if err := j.saveTags(); err != nil {
		return err
	}
	if err := j.saveEntries(); err != nil {
		return err
	}
	j.show(fmt.Sprintf("Collection %q removed", name), nil)
	return nil
}

// ReorderTags replaces the tag order wholesale.
func (j *Journal) ReorderTags(tags []tag.Tag) error {
	j.Tags.Reorder(tags)
	return j.saveTags()
}

// Import replaces the entire local state. Used by backup restore; there is
// no merge.
func (j *Journal) Import(snap Snapshot) error {
	j.Entries.Replace(snap.Entries)
	j.Tags.Reorder(snap.Tags)
	if err := j.saveEntries(); err != nil {
		return err
	}
	if err := j.saveTags(); err != nil {
		return err
	}
	j.show("Data imported successfully", nil)
	return nil
}

// ApplyMerged installs a sync merge result as the new local state.
func (j *Journal) ApplyMerged(snap Snapshot) error {
	j.Entries.Replace(snap.Entries)
	j.Tags.Reorder(snap.Tags)
	if err := j.saveEntries(); err != nil {
		return err
	}
	return j.saveTags()
}

func (j *Journal) saveEntries() error {
	if j.persist == nil {
		return nil
	}
	return j.persist.SaveEntries(j.Entries.entries)
}

func (j *Journal) saveTags() error {
	if j.persist == nil {
		return nil
	}
	return j.persist.SaveTags(j.Tags.tags)
}

func (j *Journal) show(message string, action *toast.Action) {
	if j.toasts != nil {
		j.toasts.Show(message, action)
	}
}

package journal

import (
	"time"

	"github.com/google/uuid"

	"github.com/mistycrown/zenbullet/pkg/entry"
	"github.com/mistycrown/zenbullet/pkg/tag"
)

// RemoveMode selects how deleting one instance of a recurring series behaves.
type RemoveMode string

const (
	// RemoveSingle deletes one occurrence and advances the series: the next
	// occurrence is generated before this one is removed.
	RemoveSingle RemoveMode = "single"
	// RemoveSeries deletes the occurrence and ends the series; no successor
	// is generated.
	RemoveSeries RemoveMode = "series"
)

// EntryStore is the in-memory authoritative collection of entries. It is
// single-writer: all mutations happen synchronously on the caller's
// goroutine, so no locking is done here.
type EntryStore struct {
	entries []*entry.Entry

	// lastDeleted is a single-slot buffer holding the most recent delete,
	// overwritten by the next one. It feeds the one-shot undo.
	lastDeleted []*entry.Entry

	now   func() time.Time
	newID func() string
}

// NewEntryStore returns an empty store using the real clock and uuid ids.
func NewEntryStore() *EntryStore {
	return &EntryStore{
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// All returns a copy of the committed entry slice in insertion order.
func (s *EntryStore) All() []*entry.Entry {
	all := make([]*entry.Entry, len(s.entries))
	copy(all, s.entries)
	return all
}

// Get returns the entry with the given id, or nil.
func (s *EntryStore) Get(id string) *entry.Entry {
	for _, e := range s.entries {
		if e.ID == id {
			return e
		}
	}
	return nil
}

// Len returns the number of committed entries.
func (s *EntryStore) Len() int {
	return len(s.entries)
}

// Add assigns an id and timestamps to the partial entry and appends it.
// Priority defaults to 2. An entry with empty content is legal; deciding
// whether a blank entry is worth keeping is the caller's business.
func (s *EntryStore) Add(partial entry.Entry) *entry.Entry {
	e := partial.Clone()
	e.ID = s.newID()
	now := entry.Timestamp{Time: s.now()}
	e.CreatedAt = now
	e.UpdatedAt = now
	if e.Priority == 0 {
		e.Priority = entry.DefaultPriority
	}
	e.IsGhost = false
	s.entries = append(s.entries, e)
	return e
}

// BatchAdd appends each partial entry independently with status forced to
// todo; it is the entry point for bulk imports of generated suggestions.
// Partial success is possible and is not an error.
func (s *EntryStore) BatchAdd(partials []entry.Entry) []*entry.Entry {
	added := make([]*entry.Entry, 0, len(partials))
	for _, p := range partials {
		p.Status = entry.StatusTodo
		added = append(added, s.Add(p))
	}
	return added
}

// Update applies the patch to the entry with the given id and stamps
// UpdatedAt. An unknown id is a silent no-op; callers are expected to have
// derived the id from a live read.
//
// Completing a recurring, scheduled entry (status todo -> done) advances the
// series: a successor is synthesized on the next occurrence date unless an
// identical entry already exists or the next date is past recurrenceEnd, and
// the original's recurrence is cleared either way, making it a terminal
// record. Only the todo -> done transition triggers this.
func (s *EntryStore) Update(id string, patch Patch) bool {
	e := s.Get(id)
	if e == nil {
		return false
	}

	prev := e.Clone()
	patch.apply(e)
	e.UpdatedAt = entry.Timestamp{Time: s.now()}

	completing := prev.Status == entry.StatusTodo && e.Status == entry.StatusDone
	if completing && prev.Recurring() && prev.Scheduled() {
		s.advanceSeries(prev)
		e.Recurrence = entry.RecurrenceNone
		e.RecurrenceEnd = ""
	}
	return true
}

// Remove deletes the entry with the given id. An unknown id is a silent
// no-op. Deleting a project cascades to its subtasks. In single mode,
// deleting a pending recurring occurrence skips it: the successor is
// generated before the instance is removed. Series mode suppresses the
// successor, ending the series.
//
// The deleted entries land in the single-slot undo buffer, overwriting its
// previous content. The returned slice is what was deleted.
func (s *EntryStore) Remove(id string, mode RemoveMode) []*entry.Entry {
	e := s.Get(id)
	if e == nil {
		return nil
	}

	deleted := []*entry.Entry{e}
	if e.Type == entry.TypeProject {
		for _, sub := range s.entries {
			if sub.ParentID == id {
				deleted = append(deleted, sub)
			}
		}
	}

	kept := s.entries[:0]
	for _, candidate := range s.entries {
		if candidate.ID == id || (e.Type == entry.TypeProject && candidate.ParentID == id) {
			continue
		}
		kept = append(kept, candidate)
	}
	s.entries = kept

	if mode == RemoveSingle && e.Recurring() && e.Scheduled() && e.Status == entry.StatusTodo {
		s.advanceSeries(e)
	}

	s.lastDeleted = deleted
	return deleted
}

// Undo restores the last deleted entries and clears the buffer. It returns
// how many entries came back.
func (s *EntryStore) Undo() int {
	restored := len(s.lastDeleted)
	s.entries = append(s.entries, s.lastDeleted...)
	s.lastDeleted = nil
	return restored
}

// Replace swaps the whole collection, used by import and sync merge apply.
// The undo buffer is dropped: its entries may no longer be meaningful.
func (s *EntryStore) Replace(entries []*entry.Entry) {
	s.entries = make([]*entry.Entry, len(entries))
	copy(s.entries, entries)
	s.lastDeleted = nil
}

// RetagAll moves every entry tagged old to new and returns how many moved.
func (s *EntryStore) RetagAll(oldName, newName string) int {
	moved := 0
	for _, e := range s.entries {
		if e.Tag == oldName {
			e.Tag = newName
			moved++
		}
	}
	return moved
}

// ReassignToInbox sends every entry tagged name back to Inbox.
func (s *EntryStore) ReassignToInbox(name string) int {
	return s.RetagAll(name, tag.Inbox)
}

// advanceSeries synthesizes the next occurrence of src unless an identical
// entry already exists or the next date falls past the recurrence end. The
// successor keeps the recurrence rule; continuation of the series lives only
// in it.
func (s *EntryStore) advanceSeries(src *entry.Entry) *entry.Entry {
	next := src.Recurrence.NextDate(src.Date)
	if next == "" {
		return nil
	}
	if src.RecurrenceEnd != "" && next > src.RecurrenceEnd {
		return nil
	}
	for _, e := range s.entries {
		if e.Content == src.Content && e.Date == next && e.Tag == src.Tag && e.Type == src.Type {
			return nil
		}
	}

	succ := src.Clone()
	succ.ID = s.newID()
	now := entry.Timestamp{Time: s.now()}
	succ.CreatedAt = now
	succ.UpdatedAt = now
	succ.Date = next
	succ.Status = entry.StatusTodo
	s.entries = append(s.entries, succ)
	return succ
}

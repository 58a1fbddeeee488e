package journal

import (
	"errors"

	"github.com/mistycrown/zenbullet/pkg/tag"
)

// ErrTagExists is returned when a create or rename collides with an existing
// tag name. The operation is refused with no state change.
var ErrTagExists = errors.New("tag name already exists")

// TagStore is the named, user-ordered collection of tags. Order is array
// order; there is no numeric sort field.
type TagStore struct {
	tags []tag.Tag
}

// NewTagStore returns an empty tag store.
func NewTagStore() *TagStore {
	return &TagStore{}
}

// All returns a copy of the tags in display order.
func (s *TagStore) All() []tag.Tag {
	all := make([]tag.Tag, len(s.tags))
	copy(all, s.tags)
	return all
}

// Get looks a tag up by name.
func (s *TagStore) Get(name string) (tag.Tag, bool) {
	for _, t := range s.tags {
		if t.Name == name {
			return t, true
		}
	}
	return tag.Tag{}, false
}

// Add appends a tag, refusing duplicate names.
func (s *TagStore) Add(t tag.Tag) error {
	if _, ok := s.Get(t.Name); ok {
		return ErrTagExists
	}
	s.tags = append(s.tags, t)
	return nil
}

// Rename changes a tag's name in place. It fails with ErrTagExists when the
// new name is already taken by another tag; renaming a name that does not
// exist is a no-op. Entries referencing the old name are not touched here;
// the caller is responsible for moving them (see Journal.RenameTag).
func (s *TagStore) Rename(oldName, newName string) error {
	if oldName == newName {
		return nil
	}
	if _, ok := s.Get(newName); ok {
		return ErrTagExists
	}
	for i := range s.tags {
		if s.tags[i].Name == oldName {
			s.tags[i].Name = newName
			break
		}
	}
	return nil
}

// Remove deletes the tag by name and reports whether it existed.
func (s *TagStore) Remove(name string) bool {
	for i, t := range s.tags {
		if t.Name == name {
			s.tags = append(s.tags[:i], s.tags[i+1:]...)
			return true
		}
	}
	return false
}

// Reorder replaces the stored order wholesale. No merge logic; the last
// writer wins.
func (s *TagStore) Reorder(tags []tag.Tag) {
	s.tags = make([]tag.Tag, len(tags))
	copy(s.tags, tags)
}

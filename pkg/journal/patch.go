package journal

import "github.com/mistycrown/zenbullet/pkg/entry"

// Patch is a partial entry update. Nil fields are left untouched; a pointer
// to the zero value clears the field (an empty *Date unschedules the entry).
type Patch struct {
	Content       *string
	Date          *string
	Type          *entry.Type
	Status        *entry.Status
	Tag           *string
	Recurrence    *entry.Recurrence
	RecurrenceEnd *string
	Priority      *int
	ParentID      *string
	Color         *string
	CustomTitle   *string
}

func (p Patch) apply(e *entry.Entry) {
	if p.Content != nil {
		e.Content = *p.Content
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.Tag != nil {
		e.Tag = *p.Tag
	}
	if p.Recurrence != nil {
		e.Recurrence = *p.Recurrence
	}
	if p.RecurrenceEnd != nil {
		e.RecurrenceEnd = *p.RecurrenceEnd
	}
	if p.Priority != nil {
		e.Priority = *p.Priority
	}
	if p.ParentID != nil {
		e.ParentID = *p.ParentID
	}
	if p.Color != nil {
		e.Color = *p.Color
	}
	if p.CustomTitle != nil {
		e.CustomTitle = *p.CustomTitle
	}
}

// String returns a pointer to s, a convenience for building patches.
func String(s string) *string { return &s }

// Int returns a pointer to i.
func Int(i int) *int { return &i }

// StatusOf returns a pointer to st.
func StatusOf(st entry.Status) *entry.Status { return &st }

// RecurrenceOf returns a pointer to r.
func RecurrenceOf(r entry.Recurrence) *entry.Recurrence { return &r }

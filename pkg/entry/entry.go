// Package entry defines the journal's core record type and its lifecycle
// vocabulary: entry types, statuses, and recurrence rules.
package entry

import "strings"

// Type identifies what kind of record an entry is.
type Type string

const (
	TypeTask         Type = "task"
	TypeEvent        Type = "event"
	TypeNote         Type = "note"
	TypeProject      Type = "project"
	TypeWeeklyReview Type = "weekly-review"
)

// Status is the completion state of an entry. Only meaningful for tasks,
// events, and projects.
type Status string

const (
	StatusTodo     Status = "todo"
	StatusDone     Status = "done"
	StatusCanceled Status = "canceled"
)

// DefaultPriority is assigned when a caller does not supply one.
const DefaultPriority = 2

// Entry is a single task, event, note, project, or weekly-review record.
//
// Date and RecurrenceEnd are date-only "YYYY-MM-DD" strings; an empty Date
// means the entry is unscheduled (inbox). Tag is a soft reference to a tag
// name; dangling references fall back to "Inbox" at display time. The JSON
// field names match the sync document shape.
type Entry struct {
	ID        string    `json:"id"`
	CreatedAt Timestamp `json:"createdAt"`
	UpdatedAt Timestamp `json:"updatedAt,omitempty"`

	Date    string `json:"date,omitempty"`
	Type    Type   `json:"type"`
	Content string `json:"content"`
	Status  Status `json:"status,omitempty"`
	Tag     string `json:"tag,omitempty"`

	Recurrence    Recurrence `json:"recurrence,omitempty"`
	RecurrenceEnd string     `json:"recurrenceEnd,omitempty"`

	Priority int    `json:"priority,omitempty"`
	ParentID string `json:"parentId,omitempty"`
	Color    string `json:"color,omitempty"`

	// IsGhost is true only on synthesized projections, never on a stored
	// entry.
	IsGhost bool `json:"isGhost,omitempty"`

	// CustomTitle is used by weekly-review entries as a header label.
	CustomTitle string `json:"customTitle,omitempty"`
}

// Title returns the first line of the content. By convention the first line
// is the title and the remaining lines are the notes body; the store does
// not enforce this.
func (e *Entry) Title() string {
	title, _, _ := strings.Cut(e.Content, "\n")
	return title
}

// Body returns everything after the first content line.
func (e *Entry) Body() string {
	_, body, _ := strings.Cut(e.Content, "\n")
	return strings.TrimLeft(body, "\n")
}

// Scheduled reports whether the entry is placed on a calendar day.
func (e *Entry) Scheduled() bool {
	return e.Date != ""
}

// Recurring reports whether the entry carries an active recurrence rule.
func (e *Entry) Recurring() bool {
	return e.Recurrence != RecurrenceNone
}

// Clone returns a shallow copy. Recurrence advancement and ghost projection
// both start from a copy of the source entry.
func (e *Entry) Clone() *Entry {
	clone := *e
	return &clone
}

// Package glyph maps entry types, statuses, and priorities to the bullet
// symbols the CLI prints.
package glyph

import (
	"github.com/mistycrown/zenbullet/pkg/entry"
)

const (
	task    = "●"
	event   = "○"
	note    = "⁃"
	project = "▣"
	review  = "◆"

	done     = "✘"
	canceled = "⦵"
	ghost    = "◌"
)

// Bullet returns the symbol for an entry, honoring status over type: a done
// task prints as completed regardless of its kind, and ghosts print hollow.
func Bullet(e *entry.Entry) string {
	if e.IsGhost {
		return ghost
	}
	switch e.Status {
	case entry.StatusDone:
		return done
	case entry.StatusCanceled:
		return canceled
	}
	switch e.Type {
	case entry.TypeEvent:
		return event
	case entry.TypeNote:
		return note
	case entry.TypeProject:
		return project
	case entry.TypeWeeklyReview:
		return review
	default:
		return task
	}
}

// Signifier renders priority as a leading mark: critical and high stand out,
// normal and low stay quiet.
func Signifier(priority int) string {
	switch priority {
	case 4:
		return "‼"
	case 3:
		return "!"
	case 1:
		return "˅"
	default:
		return " "
	}
}

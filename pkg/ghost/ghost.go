// Package ghost derives virtual future occurrences of recurring entries for
// display within a date window. Ghosts are pure projections: they are never
// stored, and re-running a projection over unchanged input yields identical
// output, including ids.
package ghost

import (
	"fmt"
	"time"

	"github.com/mistycrown/zenbullet/pkg/entry"
	"github.com/mistycrown/zenbullet/pkg/timeutil"
)

// maxSteps bounds the forward walk per entry. An unbounded monthly rule
// projected over a multi-year range would otherwise spin; cutting off at 50
// occurrences is an accepted approximation.
const maxSteps = 50

// ID returns the deterministic ghost id for a source entry and projected
// date. Derived ids stay stable across re-projection and cannot collide with
// real ids.
func ID(sourceID, date string) string {
	return fmt.Sprintf("ghost-%s-%s", sourceID, date)
}

// Project emits one ghost per future occurrence of each recurring todo entry
// whose date falls within [rangeStart, rangeEnd]. The walk starts at the
// occurrence after the entry's own date and stops past the range end, past
// recurrenceEnd, or at the step cap. Input order is preserved.
func Project(entries []*entry.Entry, rangeStart, rangeEnd time.Time) []*entry.Entry {
	startISO := timeutil.ISODate(rangeStart)
	endISO := timeutil.ISODate(rangeEnd)

	ghosts := make([]*entry.Entry, 0)
	for _, e := range entries {
		if !e.Recurring() || e.Status != entry.StatusTodo || !e.Scheduled() {
			continue
		}

		cursor := e.Recurrence.NextDate(e.Date)
		for steps := 0; cursor != "" && cursor <= endISO && steps < maxSteps; steps++ {
			if cursor >= startISO {
				if e.RecurrenceEnd != "" && cursor > e.RecurrenceEnd {
					break
				}
				g := e.Clone()
				g.ID = ID(e.ID, cursor)
				g.Date = cursor
				g.IsGhost = true
				g.Status = entry.StatusTodo
				ghosts = append(ghosts, g)
			}
			cursor = e.Recurrence.NextDate(cursor)
		}
	}
	return ghosts
}

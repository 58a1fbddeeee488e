package ghost

import (
	"testing"

	"github.com/mistycrown/zenbullet/pkg/entry"
	"github.com/mistycrown/zenbullet/pkg/timeutil"
)

func TestProjectDailyWithinRange(t *testing.T) {
	src := &entry.Entry{
		ID:         "a",
		Type:       entry.TypeTask,
		Content:    "water plants",
		Date:       "2026-08-28",
		Status:     entry.StatusTodo,
		Recurrence: entry.RecurrenceDaily,
	}
	start, _ := timeutil.ParseISODate("2026-08-28")
	end, _ := timeutil.ParseISODate("2026-08-31")

	ghosts := Project([]*entry.Entry{src}, start, end)
	if len(ghosts) != 3 {
		t.Fatalf("expected 3 ghosts, got %d", len(ghosts))
	}

	dates := []string{"2026-08-29", "2026-08-30", "2026-08-31"}
	for i, g := range ghosts {
		if g.Date != dates[i] {
			t.Errorf("ghost %d date = %s, expected %s", i, g.Date, dates[i])
		}
		if g.ID != ID("a", dates[i]) {
			t.Errorf("ghost %d id = %s", i, g.ID)
		}
		if !g.IsGhost {
			t.Errorf("ghost %d not flagged", i)
		}
		if g.Status != entry.StatusTodo {
			t.Errorf("ghost %d status = %s", i, g.Status)
		}
	}
}

func TestProjectIsIdempotent(t *testing.T) {
	src := &entry.Entry{
		ID:         "a",
		Type:       entry.TypeTask,
		Content:    "x",
		Date:       "2026-08-28",
		Status:     entry.StatusTodo,
		Recurrence: entry.RecurrenceWeekly,
	}
	start, _ := timeutil.ParseISODate("2026-09-01")
	end, _ := timeutil.ParseISODate("2026-09-30")

	first := Project([]*entry.Entry{src}, start, end)
	second := Project([]*entry.Entry{src}, start, end)
	if len(first) != len(second) {
		t.Fatalf("projection changed size: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID || first[i].Date != second[i].Date {
			t.Fatalf("projection is not deterministic at %d", i)
		}
	}
}

func TestProjectSkipsNonCandidates(t *testing.T) {
	start, _ := timeutil.ParseISODate("2026-08-28")
	end, _ := timeutil.ParseISODate("2026-09-30")

	entries := []*entry.Entry{
		// Not recurring.
		{ID: "a", Type: entry.TypeTask, Date: "2026-08-28", Status: entry.StatusTodo},
		// Done.
		{ID: "b", Type: entry.TypeTask, Date: "2026-08-28", Status: entry.StatusDone, Recurrence: entry.RecurrenceDaily},
		// Unscheduled.
		{ID: "c", Type: entry.TypeTask, Status: entry.StatusTodo, Recurrence: entry.RecurrenceDaily},
	}
	if ghosts := Project(entries, start, end); len(ghosts) != 0 {
		t.Fatalf("expected no ghosts, got %d", len(ghosts))
	}
}

func TestProjectEmptyInput(t *testing.T) {
	start, _ := timeutil.ParseISODate("2026-08-28")
	end, _ := timeutil.ParseISODate("2026-09-30")
	if ghosts := Project(nil, start, end); len(ghosts) != 0 {
		t.Fatalf("expected no ghosts, got %d", len(ghosts))
	}
}

func TestProjectStopsAtRecurrenceEnd(t *testing.T) {
	src := &entry.Entry{
		ID:            "a",
		Type:          entry.TypeTask,
		Content:       "x",
		Date:          "2026-08-28",
		Status:        entry.StatusTodo,
		Recurrence:    entry.RecurrenceDaily,
		RecurrenceEnd: "2026-08-30",
	}
	start, _ := timeutil.ParseISODate("2026-08-28")
	end, _ := timeutil.ParseISODate("2026-09-30")

	ghosts := Project([]*entry.Entry{src}, start, end)
	if len(ghosts) != 2 {
		t.Fatalf("expected ghosts up to the end date only, got %d", len(ghosts))
	}
	if last := ghosts[len(ghosts)-1].Date; last != "2026-08-30" {
		t.Fatalf("last ghost date = %s", last)
	}
}

func TestProjectCapsTheWalk(t *testing.T) {
	src := &entry.Entry{
		ID:         "a",
		Type:       entry.TypeTask,
		Content:    "x",
		Date:       "2026-01-01",
		Status:     entry.StatusTodo,
		Recurrence: entry.RecurrenceDaily,
	}
	start, _ := timeutil.ParseISODate("2026-01-01")
	end, _ := timeutil.ParseISODate("2027-01-01")

	ghosts := Project([]*entry.Entry{src}, start, end)
	if len(ghosts) != maxSteps {
		t.Fatalf("expected the walk to stop at %d, got %d", maxSteps, len(ghosts))
	}
}

func TestProjectOnlyInsideRange(t *testing.T) {
	src := &entry.Entry{
		ID:         "a",
		Type:       entry.TypeTask,
		Content:    "x",
		Date:       "2026-08-01",
		Status:     entry.StatusTodo,
		Recurrence: entry.RecurrenceWeekly,
	}
	// Occurrences land on 08-08, 08-15, 08-22, 08-29, ...
	start, _ := timeutil.ParseISODate("2026-08-14")
	end, _ := timeutil.ParseISODate("2026-08-23")

	ghosts := Project([]*entry.Entry{src}, start, end)
	if len(ghosts) != 2 {
		t.Fatalf("expected 2 ghosts in the window, got %d", len(ghosts))
	}
	if ghosts[0].Date != "2026-08-15" || ghosts[1].Date != "2026-08-22" {
		t.Fatalf("unexpected dates: %s, %s", ghosts[0].Date, ghosts[1].Date)
	}
}

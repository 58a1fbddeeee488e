// Package get provides the runner logic for listing journal views.
package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mistycrown/zenbullet/pkg/entry"
	"github.com/mistycrown/zenbullet/pkg/ghost"
	"github.com/mistycrown/zenbullet/pkg/journal"
	"github.com/mistycrown/zenbullet/pkg/printers"
	"github.com/mistycrown/zenbullet/pkg/timeutil"
)

// View selects which slice of the journal to list.
type View string

const (
	ViewToday    View = "today"
	ViewWeek     View = "week"
	ViewMonth    View = "month"
	ViewInbox    View = "inbox"
	ViewUpcoming View = "upcoming"
	ViewAll      View = "all"
)

// Get lists entries for a view, overlaying ghost projections of recurring
// entries on date-ranged views.
type Get struct {
	Journal *journal.Journal

	View         View
	Tag          string
	WindowDays   int
	Ghosts       bool
	StartsMonday bool
	ShowID       bool

	// Now is the reference time; zero means the wall clock.
	Now time.Time
}

func (n *Get) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not get, no journal")
	}

	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}

	all := n.Journal.Entries.All()
	if n.Tag != "" {
		all = filter(all, func(e *entry.Entry) bool { return e.Tag == n.Tag })
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}

	switch n.View {
	case ViewInbox:
		inbox := filter(all, func(e *entry.Entry) bool { return e.Date == "" })
		pp.TitleWithCount("Inbox", len(inbox))
		pp.Entries(inbox...)

	case ViewToday:
		n.printRange(pp, all, now, now, timeutil.ISODate(now))

	case ViewWeek:
		days := timeutil.WeekDays(now, n.StartsMonday)
		n.printRange(pp, all, days[0], days[len(days)-1], fmt.Sprintf("Week %d", timeutil.WeekNumber(now)))

	case ViewMonth:
		var first, last time.Time
		for _, d := range timeutil.MonthDays(now, n.StartsMonday) {
			if d.IsZero() {
				continue
			}
			if first.IsZero() {
				first = d
			}
			last = d
		}
		n.printRange(pp, all, first, last, now.Format("January 2006"))

	case ViewUpcoming:
		days := n.WindowDays
		if days <= 0 {
			days = 14
		}
		n.printRange(pp, all, now, timeutil.AddDays(now, days),
			fmt.Sprintf("Next %s", timeutil.FormatWindow(days)))

	case ViewAll:
		pp.TitleWithCount("Journal", len(all))
		pp.Entries(all...)

	default:
		return fmt.Errorf("unknown view %q", n.View)
	}
	return nil
}

// printRange prints one section per day in [start, end], including ghost
// occurrences when enabled.
func (n *Get) printRange(pp printers.PrettyPrint, all []*entry.Entry, start, end time.Time, header string) {
	visible := all
	if n.Ghosts {
		visible = append(visible, ghost.Project(all, start, end)...)
	}

	pp.Title(header)
	pp.NewLine()
	for d := start; !d.After(end); d = timeutil.AddDays(d, 1) {
		day := timeutil.ISODate(d)
		todays := filter(visible, func(e *entry.Entry) bool { return e.Date == day })
		if len(todays) == 0 {
			continue
		}
		pp.Title(d.Format("Mon January 2"))
		pp.Entries(todays...)
	}
}

func filter(entries []*entry.Entry, keep func(*entry.Entry) bool) []*entry.Entry {
	out := make([]*entry.Entry, 0, len(entries))
	for _, e := range entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

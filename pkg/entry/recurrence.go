package entry

import (
	"fmt"
	"strings"

	"github.com/mistycrown/zenbullet/pkg/timeutil"
)

// Recurrence is the repeat rule attached to an entry. The zero value means
// the entry does not repeat.
type Recurrence string

const (
	RecurrenceNone    Recurrence = ""
	RecurrenceDaily   Recurrence = "daily"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
)

// ParseRecurrence converts user input to a Recurrence.
func ParseRecurrence(raw string) (Recurrence, error) {
	switch r := Recurrence(strings.ToLower(strings.TrimSpace(raw))); r {
	case RecurrenceNone, RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly:
		return r, nil
	default:
		return RecurrenceNone, fmt.Errorf("entry: unknown recurrence %q", raw)
	}
}

// NextDate computes the occurrence following date ("YYYY-MM-DD"): daily adds
// one day, weekly seven, monthly one calendar month. Monthly rolls forward on
// overflow (Jan 31 lands in early March); that is accepted, not corrected.
// An unparsable date or an empty rule returns "".
func (r Recurrence) NextDate(date string) string {
	t, err := timeutil.ParseISODate(date)
	if err != nil {
		return ""
	}
	switch r {
	case RecurrenceDaily:
		return timeutil.ISODate(timeutil.AddDays(t, 1))
	case RecurrenceWeekly:
		return timeutil.ISODate(timeutil.AddDays(t, 7))
	case RecurrenceMonthly:
		return timeutil.ISODate(timeutil.AddMonths(t, 1))
	default:
		return ""
	}
}

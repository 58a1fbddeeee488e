// Package edit provides the runner logic for patching an existing entry.
package edit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mistycrown/zenbullet/pkg/entry"
	"github.com/mistycrown/zenbullet/pkg/journal"
	"github.com/mistycrown/zenbullet/pkg/printers"
	"github.com/mistycrown/zenbullet/pkg/timeutil"
)

// Edit applies a partial update to one entry. Only flags the user actually
// set are patched; everything else is left alone.
type Edit struct {
	ID      string
	Journal *journal.Journal
	ShowID  bool

	Content  *string
	Date     *string
	Tag      *string
	Priority *int
	Every    *string
	Until    *string
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not edit, no journal")
	}
	if n.Journal.Entries.Get(n.ID) == nil {
		return fmt.Errorf("no entry with id %s", n.ID)
	}

	patch := journal.Patch{
		Content:  n.Content,
		Tag:      n.Tag,
		Priority: n.Priority,
	}

	if n.Date != nil {
		date := *n.Date
		if date == "today" {
			date = timeutil.ISODate(time.Now())
		}
		if date != "" {
			if _, err := timeutil.ParseISODate(date); err != nil {
				return fmt.Errorf("invalid date %q: %w", *n.Date, err)
			}
		}
		patch.Date = &date
	}
	if n.Every != nil {
		recurrence, err := entry.ParseRecurrence(*n.Every)
		if err != nil {
			return err
		}
		patch.Recurrence = &recurrence
	}
	if n.Until != nil {
		if *n.Until != "" {
			if _, err := timeutil.ParseISODate(*n.Until); err != nil {
				return fmt.Errorf("invalid end date %q: %w", *n.Until, err)
			}
		}
		patch.RecurrenceEnd = n.Until
	}

	if err := n.Journal.UpdateEntry(n.ID, patch); err != nil {
		return err
	}

	e := n.Journal.Entries.Get(n.ID)
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	day := e.Date
	if day == "" {
		day = "Inbox"
	}
	pp.Title(day)
	pp.Entries(e)
	return nil
}

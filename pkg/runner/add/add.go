// Package add provides the runner logic for creating entries.
package add

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mistycrown/zenbullet/pkg/entry"
	"github.com/mistycrown/zenbullet/pkg/journal"
	"github.com/mistycrown/zenbullet/pkg/printers"
	"github.com/mistycrown/zenbullet/pkg/tag"
	"github.com/mistycrown/zenbullet/pkg/timeutil"
)

// Add creates a single entry.
type Add struct {
	Journal *journal.Journal

	Type     entry.Type
	Content  string
	Date     string
	Tag      string
	Priority int
	Every    string
	Until    string
	Parent   string
	Color    string

	ShowID bool
}

func (n *Add) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not add, no journal")
	}

	date := n.Date
	if date == "today" {
		date = timeutil.ISODate(time.Now())
	}
	if date != "" {
		if _, err := timeutil.ParseISODate(date); err != nil {
			return fmt.Errorf("invalid date %q: %w", n.Date, err)
		}
	}

	recurrence, err := entry.ParseRecurrence(n.Every)
	if err != nil {
		return err
	}
	if n.Until != "" {
		if _, err := timeutil.ParseISODate(n.Until); err != nil {
			return fmt.Errorf("invalid end date %q: %w", n.Until, err)
		}
	}

	tagName := n.Tag
	if tagName == "" {
		tagName = tag.Inbox
	}

	e, err := n.Journal.AddEntry(entry.Entry{
		Type:          n.Type,
		Content:       n.Content,
		Date:          date,
		Status:        entry.StatusTodo,
		Tag:           tagName,
		Recurrence:    recurrence,
		RecurrenceEnd: n.Until,
		Priority:      n.Priority,
		ParentID:      n.Parent,
		Color:         n.Color,
	})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title(titleFor(e))
	pp.Entries(sameDay(n.Journal, e)...)
	return nil
}

// Batch bulk-imports partial entries from a JSON file, the shape an
// assistant generator produces: an array of entries lacking id/createdAt.
type Batch struct {
	Journal *journal.Journal
	Path    string
	ShowID  bool
}

func (n *Batch) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not add, no journal")
	}

	data, err := os.ReadFile(n.Path)
	if err != nil {
		return err
	}
	var partials []entry.Entry
	if err := json.Unmarshal(data, &partials); err != nil {
		return fmt.Errorf("invalid batch file %s: %w", n.Path, err)
	}

	added, err := n.Journal.BatchAddEntries(partials)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.TitleWithCount("Imported", len(added))
	pp.Entries(added...)
	return nil
}

func titleFor(e *entry.Entry) string {
	if e.Date == "" {
		return tag.Inbox
	}
	return e.Date
}

// sameDay lists the committed entries sharing the new entry's day (or the
// inbox), so the user sees the updated context after adding.
func sameDay(j *journal.Journal, added *entry.Entry) []*entry.Entry {
	all := j.Entries.All()
	peers := make([]*entry.Entry, 0, len(all))
	for _, e := range all {
		if e.Date == added.Date {
			peers = append(peers, e)
		}
	}
	return peers
}

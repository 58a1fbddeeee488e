// Package complete provides the runner logic for changing an entry's status.
package complete

import (
	"context"
	"errors"
	"fmt"

	"github.com/mistycrown/zenbullet/pkg/entry"
	"github.com/mistycrown/zenbullet/pkg/journal"
	"github.com/mistycrown/zenbullet/pkg/printers"
)

// Complete moves an entry to the given status. Completing a recurring entry
// advances its series as a side effect of the store's update rule.
type Complete struct {
	ID      string
	Status  entry.Status
	Journal *journal.Journal
	ShowID  bool
}

func (n *Complete) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not complete, no journal")
	}

	e := n.Journal.Entries.Get(n.ID)
	if e == nil {
		return fmt.Errorf("no entry with id %s", n.ID)
	}

	if err := n.Journal.UpdateEntry(n.ID, journal.Patch{Status: journal.StatusOf(n.Status)}); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	day := e.Date
	if day == "" {
		day = "Inbox"
	}
	pp.Title(day)
	all := n.Journal.Entries.All()
	sameDay := make([]*entry.Entry, 0, len(all))
	for _, candidate := range all {
		if candidate.Date == e.Date {
			sameDay = append(sameDay, candidate)
		}
	}
	pp.Entries(sameDay...)
	return nil
}

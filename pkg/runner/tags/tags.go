// Package tags provides the runner logic for managing the tag collection.
package tags

import (
	"context"
	"errors"
	"fmt"

	"github.com/mistycrown/zenbullet/pkg/journal"
	"github.com/mistycrown/zenbullet/pkg/printers"
	"github.com/mistycrown/zenbullet/pkg/tag"
)

// List prints the tags in display order with entry counts.
type List struct {
	Journal *journal.Journal
}

func (n *List) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not list tags, no journal")
	}
	counts := make(map[string]int)
	for _, e := range n.Journal.Entries.All() {
		counts[e.Tag]++
	}
	pp := printers.PrettyPrint{}
	pp.Tags(n.Journal.Tags.All(), counts)
	return nil
}

// Add creates a tag.
type Add struct {
	Journal *journal.Journal
	Name    string
	Color   string
	Icon    string
}

func (n *Add) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not add tag, no journal")
	}
	color, err := tag.ParseColor(n.Color)
	if err != nil {
		return err
	}
	return n.Journal.AddTag(tag.Tag{Name: n.Name, Color: color, Icon: n.Icon})
}

// Rename renames a tag and moves its entries along.
type Rename struct {
	Journal *journal.Journal
	OldName string
	NewName string
}

func (n *Rename) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not rename tag, no journal")
	}
	if _, ok := n.Journal.Tags.Get(n.OldName); !ok {
		return fmt.Errorf("no tag named %q", n.OldName)
	}
	return n.Journal.RenameTag(n.OldName, n.NewName)
}

// Remove deletes a tag; its entries fall back to Inbox.
type Remove struct {
	Journal *journal.Journal
	Name    string
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not remove tag, no journal")
	}
	if _, ok := n.Journal.Tags.Get(n.Name); !ok {
		return fmt.Errorf("no tag named %q", n.Name)
	}
	return n.Journal.RemoveTag(n.Name)
}

// Move reorders a tag to a 1-based position.
type Move struct {
	Journal  *journal.Journal
	Name     string
	Position int
}

func (n *Move) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not move tag, no journal")
	}
	all := n.Journal.Tags.All()
	index := -1
	for i, t := range all {
		if t.Name == n.Name {
			index = i
			break
		}
	}
	if index < 0 {
		return fmt.Errorf("no tag named %q", n.Name)
	}
	if n.Position < 1 || n.Position > len(all) {
		return fmt.Errorf("position out of range 1-%d", len(all))
	}

	moved := all[index]
	all = append(all[:index], all[index+1:]...)
	at := n.Position - 1
	all = append(all[:at], append([]tag.Tag{moved}, all[at:]...)...)
	return n.Journal.ReorderTags(all)
}

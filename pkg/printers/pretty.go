package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/mistycrown/zenbullet/pkg/entry"
	"github.com/mistycrown/zenbullet/pkg/glyph"
	"github.com/mistycrown/zenbullet/pkg/tag"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

// Entries prints one line per entry: signifier, bullet, title, and a faint
// tag marker. Ghosts render entirely faint.
func (pp *PrettyPrint) Entries(entries ...*entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	g := color.New(color.Faint, color.Italic)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	m := color.New(color.Faint)

	for _, e := range entries {
		if pp.ShowID {
			id := e.ID
			if len(id) >= len(spacing) {
				id = id[:len(spacing)-2]
			}
			_, _ = y.Print(id)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(id)))
		}
		line := t
		if e.IsGhost {
			line = g
		}
		_, _ = line.Printf("%s %s  %s", glyph.Signifier(e.Priority), glyph.Bullet(e), e.Title())
		marker := displayTag(e)
		if e.Date != "" {
			marker = e.Date + " " + marker
		}
		_, _ = m.Printf("  (%s)\n", marker)
	}
	_, _ = t.Println("")
}

// Tags prints the tag table in display order.
func (pp *PrettyPrint) Tags(tags []tag.Tag, counts map[string]int) {
	table := uitable.New()
	table.AddRow("#", "NAME", "COLOR", "ICON", "ENTRIES")
	for i, t := range tags {
		table.AddRow(i+1, t.Name, string(t.Color), t.Icon, counts[t.Name])
	}
	fmt.Println(table)
}

// SyncStatus prints a two-column summary after a sync operation.
func (pp *PrettyPrint) SyncStatus(rows [][2]string) {
	table := uitable.New()
	for _, row := range rows {
		table.AddRow(row[0], row[1])
	}
	fmt.Println(table)
}

// displayTag resolves the entry's tag for display, falling back to Inbox for
// empty references.
func displayTag(e *entry.Entry) string {
	if e.Tag == "" {
		return tag.Inbox
	}
	return e.Tag
}

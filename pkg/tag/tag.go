// Package tag defines the named categories entries are classified under.
package tag

import (
	"fmt"
	"strings"
)

// Inbox is the sentinel tag name. Entries whose tag is removed are reassigned
// here, and dangling references render as Inbox.
const Inbox = "Inbox"

// Color is one of the fixed palette colors.
type Color string

const (
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorRed    Color = "red"
	ColorYellow Color = "yellow"
	ColorPurple Color = "purple"
	ColorOrange Color = "orange"
	ColorStone  Color = "stone"
	ColorTeal   Color = "teal"
	ColorPink   Color = "pink"
)

// Palette returns the supported colors in display order.
func Palette() []Color {
	return []Color{
		ColorBlue,
		ColorGreen,
		ColorRed,
		ColorYellow,
		ColorPurple,
		ColorOrange,
		ColorStone,
		ColorTeal,
		ColorPink,
	}
}

// ParseColor converts user input to a palette Color. Empty input defaults to
// stone.
func ParseColor(raw string) (Color, error) {
	c := Color(strings.ToLower(strings.TrimSpace(raw)))
	if c == "" {
		return ColorStone, nil
	}
	for _, candidate := range Palette() {
		if candidate == c {
			return candidate, nil
		}
	}
	return ColorStone, fmt.Errorf("tag: unknown color %q", raw)
}

// Tag is a named, user-ordered category. Name acts as the key; entries
// reference tags by name, not by id. Icon is a symbolic icon name and is
// purely cosmetic.
type Tag struct {
	Name  string `json:"name"`
	Color Color  `json:"color"`
	Icon  string `json:"icon,omitempty"`
}

// DefaultTags returns the starter set a fresh journal is seeded with.
func DefaultTags() []Tag {
	return []Tag{
		{Name: "Work", Color: ColorBlue, Icon: "Briefcase"},
		{Name: "Life", Color: ColorYellow, Icon: "Smile"},
		{Name: "Health", Color: ColorGreen, Icon: "Activity"},
		{Name: "Office", Color: ColorStone, Icon: "Building"},
		{Name: "Idea", Color: ColorPurple, Icon: "Lightbulb"},
	}
}

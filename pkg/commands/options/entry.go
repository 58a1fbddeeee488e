package options

import "github.com/spf13/cobra"

// EntryOptions captures the common flags for creating or editing an entry.
type EntryOptions struct {
	Date     string
	Tag      string
	Priority int
	Every    string
	Until    string
	Parent   string
	Color    string
}

// AddEntryArgs wires entry-shaping flags on the provided command.
func AddEntryArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVarP(&o.Date, "date", "d", "",
		"Schedule on a day (YYYY-MM-DD, or 'today').")
	cmd.Flags().StringVarP(&o.Tag, "tag", "t", "",
		"Tag name the entry belongs to.")
	cmd.Flags().IntVarP(&o.Priority, "priority", "p", 0,
		"Priority 1-4 (1=low, 4=critical). Defaults to 2.")
	cmd.Flags().StringVar(&o.Every, "every", "",
		"Recurrence: daily, weekly, or monthly.")
	cmd.Flags().StringVar(&o.Until, "until", "",
		"Last day the recurrence generates occurrences (YYYY-MM-DD).")
}

// AddProjectArgs wires flags only project entries carry.
func AddProjectArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVar(&o.Parent, "project", "",
		"Parent project entry id, making this a subtask.")
	cmd.Flags().StringVar(&o.Color, "color", "",
		"Custom project color from the tag palette.")
}

// IDOptions captures id selection and display flags.
type IDOptions struct {
	ID     string
	ShowID bool
}

// AddShowIDArgs registers the id display flag.
func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "id", "i", false,
		"Show entry ids.")
}

// ViewOptions captures the listing view flags.
type ViewOptions struct {
	Tag          string
	Window       string
	Ghosts       bool
	StartsMonday bool
	ShowID       bool
}

// AddViewArgs wires listing flags on the provided command.
func AddViewArgs(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().StringVarP(&o.Tag, "tag", "t", "",
		"Only entries with this tag.")
	cmd.Flags().BoolVarP(&o.Ghosts, "ghosts", "g", true,
		"Project upcoming occurrences of recurring entries.")
	cmd.Flags().BoolVar(&o.StartsMonday, "monday", false,
		"Weeks start on Monday.")
	cmd.Flags().BoolVarP(&o.ShowID, "id", "i", false,
		"Show entry ids.")
}

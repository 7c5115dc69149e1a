// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// EntryOptions captures the manual entry fields for add and edit.
type EntryOptions struct {
	Title    string
	Category string
	Date     string
	Rating   int
	Thoughts string
	Summary  string
	Tags     []string
}

// AddEntryArgs wires entry field flags on the provided command.
func AddEntryArgs(cmd *cobra.Command, o *EntryOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"Title of the work.")
	cmd.Flags().StringVarP(&o.Category, "category", "c", "Movie",
		"Category: Movie, TV, Book or Music.")
	cmd.Flags().StringVarP(&o.Date, "date", "d", "",
		"Date consumed, YYYY-MM-DD. Defaults to today.")
	cmd.Flags().IntVarP(&o.Rating, "rating", "r", 3,
		"Rating from 1 to 5.")
	cmd.Flags().StringVar(&o.Thoughts, "thoughts", "",
		"Your thoughts or first impressions.")
	cmd.Flags().StringVar(&o.Summary, "summary", "",
		"One-sentence objective summary.")
	cmd.Flags().StringSliceVar(&o.Tags, "tags", nil,
		"Tags (genre, mood, etc.).")
}

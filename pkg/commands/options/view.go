package options

import (
	"github.com/spf13/cobra"

	"github.com/Copper-J/Worldtree/pkg/timeline"
)

// ViewOptions captures the filter and zoom selection for listing.
type ViewOptions struct {
	Category string
	Scale    string
	Table    bool
}

// AddViewArgs wires view selection flags on the provided command.
func AddViewArgs(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", timeline.FilterAll,
		"Filter to a category: All, Movie, TV, Book or Music.")
	cmd.Flags().StringVarP(&o.Scale, "scale", "s", string(timeline.ScaleDetail),
		"Timeline scale: detail, month or year.")
	cmd.Flags().BoolVar(&o.Table, "table", false,
		"Render as a table instead of cards.")
}

// IDOptions captures the id display toggle.
type IDOptions struct {
	ShowID bool
}

// AddShowIDArgs wires the id display flag on the provided command.
func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "id", "i", false,
		"Show entry ids.")
}

// ImageOptions captures an optional cover image attachment.
type ImageOptions struct {
	Path string
}

// AddImageArgs wires the image flag on the provided command.
func AddImageArgs(cmd *cobra.Command, o *ImageOptions) {
	cmd.Flags().StringVar(&o.Path, "image", "",
		"Path to an image to analyze and attach as the cover.")
}

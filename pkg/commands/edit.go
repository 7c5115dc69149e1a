package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/Copper-J/Worldtree/pkg/commands/options"
	"github.com/Copper-J/Worldtree/pkg/media"
	"github.com/Copper-J/Worldtree/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	ido := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an entry (full-record replace)",
		Example: `
worldtree edit 9b2f... --rating 4 --thoughts "Holds up on rewatch."
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("exactly one entry id required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return oo.HandleError(err)
			}

			flags := cmd.Flags()
			var category media.Category
			if flags.Changed("category") {
				category, err = media.ParseCategory(eo.Category)
				if err != nil {
					return oo.HandleError(err)
				}
			}
			apply := func(item media.Item) media.Item {
				if flags.Changed("title") {
					item.Title = eo.Title
				}
				if flags.Changed("category") {
					item.Category = category
				}
				if flags.Changed("date") {
					item.Date = eo.Date
				}
				if flags.Changed("rating") {
					item.Rating = eo.Rating
				}
				if flags.Changed("thoughts") {
					item.Thoughts = eo.Thoughts
				}
				if flags.Changed("summary") {
					item.Summary = eo.Summary
				}
				if flags.Changed("tags") {
					item.Tags = eo.Tags
				}
				return item
			}

			r := &edit.Edit{ID: args[0], Apply: apply, ShowID: ido.ShowID, Service: svc}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}
	options.AddEntryArgs(cmd, eo)
	options.AddShowIDArgs(cmd, ido)

	topLevel.AddCommand(cmd)
}

package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Copper-J/Worldtree/pkg/commands/options"
	"github.com/Copper-J/Worldtree/pkg/media"
	"github.com/Copper-J/Worldtree/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	eo := &options.EntryOptions{}
	ido := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add an entry manually",
		Example: `
worldtree add Inception --category Movie --rating 5 --tags Sci-Fi,Thriller
worldtree add --title "OK Computer" --category Music
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return oo.HandleError(err)
			}

			item := media.NewDraft()
			item.Title = eo.Title
			if len(args) > 0 && item.Title == "" {
				item.Title = strings.Join(args, " ")
			}
			category, err := media.ParseCategory(eo.Category)
			if err != nil {
				return oo.HandleError(err)
			}
			item.Category = category
			if eo.Date != "" {
				item.Date = eo.Date
			}
			item.Rating = eo.Rating
			item.Thoughts = eo.Thoughts
			item.Summary = eo.Summary
			item.Tags = eo.Tags

			r := &add.Add{Item: item, ShowID: ido.ShowID, Service: svc}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}
	options.AddEntryArgs(cmd, eo)
	options.AddShowIDArgs(cmd, ido)

	topLevel.AddCommand(cmd)
}

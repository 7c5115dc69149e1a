package commands

import (
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/Copper-J/Worldtree/pkg/commands/options"
	"github.com/Copper-J/Worldtree/pkg/media"
	"github.com/Copper-J/Worldtree/pkg/runner/get"
	"github.com/Copper-J/Worldtree/pkg/timeline"
)

func addGet(topLevel *cobra.Command) {
	vo := &options.ViewOptions{}
	ido := &options.IDOptions{}

	validArgs := []string{strings.ToLower(timeline.FilterAll)}
	for _, c := range media.Categories() {
		validArgs = append(validArgs, strings.ToLower(string(c)))
	}

	cmd := &cobra.Command{
		Use:   "get [category]",
		Short: "List entries as a category grid or zoomable timeline",
		Example: `
worldtree get
worldtree get movie --scale month
worldtree get --scale year
worldtree get book --table
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			if strings.EqualFold(args[0], timeline.FilterAll) {
				vo.Category = timeline.FilterAll
				return nil
			}
			category, err := media.ParseCategory(args[0])
			if err != nil {
				return err
			}
			vo.Category = string(category)
			return nil
		},
		ValidArgs: validArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scale, err := timeline.ParseScale(vo.Scale)
			if err != nil {
				return oo.HandleError(err)
			}

			svc, err := newService()
			if err != nil {
				return oo.HandleError(err)
			}

			r := &get.Get{
				Category: vo.Category,
				Scale:    scale,
				Table:    vo.Table,
				JSON:     oo.JSON,
				ShowID:   ido.ShowID,
				Service:  svc,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}
	options.AddViewArgs(cmd, vo)
	options.AddShowIDArgs(cmd, ido)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

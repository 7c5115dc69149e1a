package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Copper-J/Worldtree/pkg/commands/options"
	"github.com/Copper-J/Worldtree/pkg/runner/ingest"
)

func addLog(topLevel *cobra.Command) {
	io := &options.ImageOptions{}
	ido := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "log [free text]",
		Short: "Analyze free text or an image into a structured entry",
		Example: `
worldtree log finally watched Inception, the ending still haunts me
worldtree log --image cover.jpg
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return oo.HandleError(err)
			}

			r := &ingest.Ingest{
				Prompt:    strings.Join(args, " "),
				ImagePath: io.Path,
				ShowID:    ido.ShowID,
				Service:   svc,
			}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}
	options.AddImageArgs(cmd, io)
	options.AddShowIDArgs(cmd, ido)

	topLevel.AddCommand(cmd)
}

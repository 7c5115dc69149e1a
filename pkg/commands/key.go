package commands

import (
	"github.com/spf13/cobra"

	"github.com/Copper-J/Worldtree/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Show the category legend",
		Example: `
worldtree key
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			k := &key.Key{}
			return oo.HandleError(k.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}

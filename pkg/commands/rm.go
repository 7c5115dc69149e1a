package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/Copper-J/Worldtree/pkg/runner/remove"
)

func addRm(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove an entry",
		Example: `
worldtree rm 9b2f...
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

			r := &remove.Remove{ID: args[0], Service: svc}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}

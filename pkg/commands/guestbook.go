package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Copper-J/Worldtree/pkg/commands/options"
	"github.com/Copper-J/Worldtree/pkg/runner/guestbook"
)

func addGuestbook(topLevel *cobra.Command) {
	ido := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "guestbook",
		Short: "Show guestbook messages",
		Example: `
worldtree guestbook
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return oo.HandleError(err)
			}

			r := &guestbook.List{ShowID: ido.ShowID, Service: svc}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}
	options.AddShowIDArgs(cmd, ido)
	topLevel.AddCommand(cmd)

	sign := &cobra.Command{
		Use:   "sign <text>",
		Short: "Sign the guestbook",
		Example: `
worldtree sign thanks for stopping by
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("message text required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return oo.HandleError(err)
			}

			r := &guestbook.Sign{Text: strings.Join(args, " "), Service: svc}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}
	topLevel.AddCommand(sign)

	unsign := &cobra.Command{
		Use:   "unsign <id>",
		Short: "Delete a guestbook message",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("exactly one message id required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return oo.HandleError(err)
			}

			r := &guestbook.Delete{ID: args[0], Service: svc}
			return oo.HandleError(r.Do(cmd.Context()))
		},
	}
	topLevel.AddCommand(unsign)
}

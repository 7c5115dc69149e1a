package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"github.com/Copper-J/Worldtree/pkg/app"
	"github.com/Copper-J/Worldtree/pkg/ingest"
	"github.com/Copper-J/Worldtree/pkg/store"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "worldtree",
		Short: base.Wrap80("A personal cultural footprint log for movies, TV, books and music."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addKey(topLevel)
	addLog(topLevel)
	addAdd(topLevel)
	addGet(topLevel)
	addEdit(topLevel)
	addRm(topLevel)
	addGuestbook(topLevel)
	addVersion(topLevel)
}

// newService wires the store, guestbook and ingestion client from the
// discovered config. A missing API key leaves the parser unset; only
// the log command needs it.
func newService() (*app.Service, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	st, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}
	gb, err := store.LoadGuestbook(cfg)
	if err != nil {
		return nil, err
	}

	svc := &app.Service{Persistence: st, Guestbook: gb}
	if cfg.APIKey() != "" {
		parser, err := ingest.New(cfg.APIKey(), cfg.Model())
		if err != nil {
			return nil, err
		}
		svc.Parser = parser
	}
	return svc, nil
}

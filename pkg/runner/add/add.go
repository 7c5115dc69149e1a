package add

import (
	"context"
	"errors"

	"github.com/Copper-J/Worldtree/pkg/app"
	"github.com/Copper-J/Worldtree/pkg/media"
	"github.com/Copper-J/Worldtree/pkg/printers"
)

// Add stores a manually entered item.
type Add struct {
	Item   media.Item
	ShowID bool

	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}

	saved, err := n.Service.Save(n.Item)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("Added")
	pp.Entries(saved)
	return nil
}

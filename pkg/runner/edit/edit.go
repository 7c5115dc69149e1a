package edit

import (
	"context"
	"errors"
	"fmt"

	"github.com/Copper-J/Worldtree/pkg/app"
	"github.com/Copper-J/Worldtree/pkg/media"
	"github.com/Copper-J/Worldtree/pkg/printers"
)

// Edit replaces an existing entry whole. Apply maps the stored record
// to its edited form; the id never changes.
type Edit struct {
	ID     string
	Apply  func(media.Item) media.Item
	ShowID bool

	Service *app.Service
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}

	entries, err := n.Service.Entries()
	if err != nil {
		return err
	}

	for _, item := range entries {
		if item.ID != n.ID {
			continue
		}
		edited := n.Apply(item)
		edited.ID = item.ID

		saved, err := n.Service.Save(edited)
		if err != nil {
			return err
		}
		pp := printers.PrettyPrint{ShowID: n.ShowID}
		pp.Title("Edited")
		pp.Entries(saved)
		return nil
	}

	return fmt.Errorf("no entry with id %q", n.ID)
}

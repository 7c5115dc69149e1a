package remove

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/Copper-J/Worldtree/pkg/app"
)

// Remove deletes an entry by id. Removing an absent id is a no-op.
type Remove struct {
	ID string

	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}

	if err := n.Service.Remove(n.ID); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(color.Output, "removed %s\n", n.ID)
	return nil
}

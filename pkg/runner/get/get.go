package get

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/Copper-J/Worldtree/pkg/app"
	"github.com/Copper-J/Worldtree/pkg/printers"
	"github.com/Copper-J/Worldtree/pkg/timeline"
)

// Get renders the filtered, aggregated log at the requested scale.
type Get struct {
	Category string
	Scale    timeline.Scale
	Table    bool
	JSON     bool
	ShowID   bool

	Service *app.Service
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	groups, err := n.Service.Timeline(n.Category, n.Scale)
	if err != nil {
		return err
	}

	if n.JSON {
		b, err := json.Marshal(groups)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if n.Table && n.Scale == timeline.ScaleDetail {
		pp.List(groups[0].Items)
		return nil
	}

	pp.Groups(groups)
	return nil
}

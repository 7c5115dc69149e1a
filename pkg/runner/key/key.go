package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/Copper-J/Worldtree/pkg/media"
)

// Key prints the category legend.
type Key struct{}

func (k *Key) Do(ctx context.Context) error {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Category"), bold.Sprint("Symbol"), bold.Sprint("Label"))
	for _, c := range media.Categories() {
		meta := media.MetaFor(c)
		tbl.AddRow(string(c), meta.Symbol, meta.Label)
	}

	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}

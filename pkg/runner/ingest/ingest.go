package ingest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/Copper-J/Worldtree/pkg/app"
	"github.com/Copper-J/Worldtree/pkg/printers"
)

// Ingest analyzes free text and an optional image into a new entry.
type Ingest struct {
	Prompt    string
	ImagePath string
	ShowID    bool

	Service *app.Service
}

func (n *Ingest) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not ingest, no service")
	}

	var image []byte
	var mimeType string
	if n.ImagePath != "" {
		data, err := os.ReadFile(n.ImagePath)
		if err != nil {
			return fmt.Errorf("read image: %w", err)
		}
		image = data
		mimeType = http.DetectContentType(data)
	}

	item, err := n.Service.Ingest(ctx, n.Prompt, image, mimeType)
	if err != nil {
		if errors.Is(err, app.ErrGenerating) {
			return err
		}
		return fmt.Errorf("could not analyze the entry automatically, add it manually with 'worldtree add': %w", err)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("Logged")
	pp.Entries(item)
	return nil
}

package guestbook

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"github.com/Copper-J/Worldtree/pkg/app"
	"github.com/Copper-J/Worldtree/pkg/printers"
)

// Sign appends a message to the guestbook.
type Sign struct {
	Text string

	Service *app.Service
}

func (n *Sign) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not sign, no service")
	}

	msg, err := n.Service.Sign(n.Text)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(color.Output, "signed %s\n", msg.ID)
	return nil
}

// List prints the guestbook, newest first.
type List struct {
	ShowID bool

	Service *app.Service
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no service")
	}

	messages, err := n.Service.Messages()
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.TitleWithCount("Guestbook", len(messages))
	pp.Guestbook(messages)
	return nil
}

// Delete removes a message by id.
type Delete struct {
	ID string

	Service *app.Service
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no service")
	}

	if err := n.Service.DeleteMessage(n.ID); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(color.Output, "deleted %s\n", n.ID)
	return nil
}

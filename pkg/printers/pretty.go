package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/Copper-J/Worldtree/pkg/guestbook"
	"github.com/Copper-J/Worldtree/pkg/media"
	"github.com/Copper-J/Worldtree/pkg/timeline"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

// Entries renders items as cards: symbol, title, stars, date, tags.
func (pp *PrettyPrint) Entries(items ...media.Item) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	d := color.New(color.Faint)

	for _, item := range items {
		meta := media.MetaFor(item.Category)
		c := color.New(meta.Color)

		if pp.ShowID {
			_, _ = y.Print(item.ID)
			pad := len(spacing) - len(item.ID)
			if pad > 0 {
				_, _ = y.Print(strings.Repeat(" ", pad))
			}
		}
		_, _ = c.Printf("%s %s", meta.Symbol, item.Title)
		_, _ = d.Printf("  %s  %s", Stars(item), item.Date)
		if len(item.Tags) > 0 {
			_, _ = d.Printf("  [%s]", strings.Join(item.Tags, ", "))
		}
		fmt.Println("")
	}
	fmt.Println("")
}

// Groups renders a grouped timeline: each group key as a heading with
// its entries beneath, preserving the aggregator's order.
func (pp *PrettyPrint) Groups(groups []timeline.Group) {
	for _, group := range groups {
		if group.Key == "" {
			pp.Entries(group.Items...)
			continue
		}
		pp.TitleWithCount(group.Key, len(group.Items))
		pp.Entries(group.Items...)
	}
}

// List renders items in tabular form.
func (pp *PrettyPrint) List(items []media.Item) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 48

	if pp.ShowID {
		tbl.AddRow("ID", "Date", "Type", "Title", "Rating", "Tags")
	} else {
		tbl.AddRow("Date", "Type", "Title", "Rating", "Tags")
	}
	for _, item := range items {
		meta := media.MetaFor(item.Category)
		kind := fmt.Sprintf("%s %s", meta.Symbol, meta.Label)
		tags := strings.Join(item.Tags, ", ")
		if pp.ShowID {
			tbl.AddRow(item.ID, item.Date, kind, item.Title, Stars(item), tags)
		} else {
			tbl.AddRow(item.Date, kind, item.Title, Stars(item), tags)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Guestbook renders messages newest first.
func (pp *PrettyPrint) Guestbook(messages []guestbook.Message) {
	if len(messages) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no messages yet\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	d := color.New(color.Faint)
	t := color.New()

	for _, msg := range messages {
		if pp.ShowID {
			_, _ = y.Printf("%s  ", msg.ID)
		}
		_, _ = t.Print(msg.Text)
		if when := msg.When(); !when.IsZero() {
			_, _ = d.Printf("  (%s)", when.Local().Format("2006-01-02 15:04"))
		}
		fmt.Println("")
	}
	fmt.Println("")
}

// Stars renders the clamped rating as a five-star gauge.
func Stars(item media.Item) string {
	filled := item.ClampedRating()
	return strings.Repeat("★", filled) + strings.Repeat("☆", 5-filled)
}

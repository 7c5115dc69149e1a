package media

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Category classifies a consumed work. The set is closed: every entry
// is exactly one of Movie, TV, Book or Music.
type Category string

const (
	Movie Category = "Movie"
	TV    Category = "TV"
	Book  Category = "Book"
	Music Category = "Music"
)

// Categories returns the closed category set in display order.
func Categories() []Category {
	return []Category{Movie, TV, Book, Music}
}

// ParseCategory resolves a case-insensitive category name.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("media: unknown category %q", s)
}

// Valid reports whether c is a member of the closed set.
func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Meta carries the display metadata associated with a category.
type Meta struct {
	Label  string
	Symbol string
	Color  color.Attribute
}

var metas = map[Category]Meta{
	Movie: {Label: "电影", Symbol: "🎬", Color: color.FgBlue},
	TV:    {Label: "剧集", Symbol: "📺", Color: color.FgMagenta},
	Book:  {Label: "书籍", Symbol: "📖", Color: color.FgYellow},
	Music: {Label: "音乐", Symbol: "🎵", Color: color.FgGreen},
}

// MetaFor returns the display metadata for a category. Unrecognized
// categories get a neutral meta rather than an error so tolerated
// legacy values still render.
func MetaFor(c Category) Meta {
	if m, ok := metas[c]; ok {
		return m
	}
	return Meta{Label: string(c), Symbol: "•", Color: color.FgWhite}
}

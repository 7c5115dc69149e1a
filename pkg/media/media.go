package media

import (
	"strings"
	"time"
)

const layoutISO = "2006-01-02"

// Item is one record of the cultural footprint log. The json tags
// match the persisted blob layout, so a saved collection round-trips
// byte-for-byte on content.
type Item struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Category   Category `json:"type"`
	Date       string   `json:"date"`
	Thoughts   string   `json:"thoughts"`
	Tags       []string `json:"tags"`
	Rating     int      `json:"rating"`
	Summary    string   `json:"summary"`
	CoverImage string   `json:"coverImage,omitempty"`
}

// NewDraft returns a blank manual draft: default category Movie,
// today's date, a middle rating and empty text fields. The id is left
// for the caller to assign on save.
func NewDraft() Item {
	return Item{
		Category: Movie,
		Date:     time.Now().Format(layoutISO),
		Rating:   3,
		Tags:     []string{},
	}
}

// ParsedDate parses the item's date as YYYY-MM-DD. Unparseable dates
// are tolerated, never rejected; ok is false and the zero time is
// returned so callers sort them as the consistent minimum.
func (i Item) ParsedDate() (time.Time, bool) {
	t, err := time.Parse(layoutISO, strings.TrimSpace(i.Date))
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// CleanTags returns the tags with empty and whitespace-only members
// stripped. Order and duplicates are preserved.
func (i Item) CleanTags() []string {
	cleaned := make([]string, 0, len(i.Tags))
	for _, tag := range i.Tags {
		if strings.TrimSpace(tag) == "" {
			continue
		}
		cleaned = append(cleaned, tag)
	}
	return cleaned
}

// ClampedRating maps the stored rating into [1,5] for display. The
// stored value is left as-is; out-of-range ratings are accepted data.
func (i Item) ClampedRating() int {
	switch {
	case i.Rating < 1:
		return 1
	case i.Rating > 5:
		return 5
	default:
		return i.Rating
	}
}

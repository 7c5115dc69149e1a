package timeline

import (
	"fmt"
	"sort"

	"github.com/Copper-J/Worldtree/pkg/media"
)

// Scale is the timeline zoom level.
type Scale string

const (
	ScaleDetail Scale = "detail"
	ScaleMonth  Scale = "month"
	ScaleYear   Scale = "year"
)

// ParseScale resolves a scale name.
func ParseScale(s string) (Scale, error) {
	switch Scale(s) {
	case ScaleDetail, ScaleMonth, ScaleYear:
		return Scale(s), nil
	}
	return "", fmt.Errorf("timeline: unknown scale %q", s)
}

// UnknownKey is the group bucket for entries whose date does not parse.
const UnknownKey = "Unknown"

// Group is a named partition of date-sorted entries.
type Group struct {
	Key   string
	Items []media.Item
}

// SortByDate returns a new slice sorted by date descending. Entries
// whose date fails to parse get the zero time, so they compare as the
// consistent minimum and land at the tail.
func SortByDate(items []media.Item) []media.Item {
	sorted := make([]media.Item, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, _ := sorted[i].ParsedDate()
		tj, _ := sorted[j].ParsedDate()
		return ti.After(tj)
	})
	return sorted
}

// Aggregate derives the display view for a scale. Detail yields one
// unkeyed group holding the flat date-sorted sequence; month and year
// partition it into keyed groups ordered by key descending.
func Aggregate(items []media.Item, scale Scale) []Group {
	sorted := SortByDate(items)
	if scale == ScaleDetail {
		return []Group{{Items: sorted}}
	}

	keys := make([]string, 0)
	byKey := make(map[string][]media.Item)
	for _, item := range sorted {
		key := groupKey(item, scale)
		if _, seen := byKey[key]; !seen {
			keys = append(keys, key)
		}
		byKey[key] = append(byKey[key], item)
	}

	// Plain lexicographic descending keeps the Unknown bucket wherever
	// its literal text falls among the numeric keys.
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	groups := make([]Group, 0, len(keys))
	for _, key := range keys {
		groups = append(groups, Group{Key: key, Items: byKey[key]})
	}
	return groups
}

func groupKey(item media.Item, scale Scale) string {
	t, ok := item.ParsedDate()
	if !ok {
		return UnknownKey
	}
	if scale == ScaleYear {
		return fmt.Sprintf("%04d", t.Year())
	}
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// Package timeline derives sorted, filtered and grouped views of the
// media log. Every function here is a pure transform over a snapshot;
// views are recomputed on demand, never cached incrementally.
package timeline

import "github.com/Copper-J/Worldtree/pkg/media"

// FilterAll is the category sentinel that selects every entry.
const FilterAll = "All"

// Filter narrows items to the given category. The sentinel FilterAll
// returns the input unchanged; otherwise relative order is preserved.
func Filter(items []media.Item, category string) []media.Item {
	if category == FilterAll {
		return items
	}
	kept := make([]media.Item, 0, len(items))
	for _, item := range items {
		if string(item.Category) == category {
			kept = append(kept, item)
		}
	}
	return kept
}

// Package catalog provides the media catalog client and the search and
// selection logic over its items.
package catalog

import (
	"math/rand/v2"
	"strings"
)

// Item is one shareable media entry from the catalog service.
// URL is a relative path/slug used both as the display name and as the
// suffix joined onto the media base address. Tags is a free-text keyword
// string and may be empty. Width and height are carried through from the
// catalog but unused by the response builders.
type Item struct {
	ID     int64  `json:"id"`
	URL    string `json:"url"`
	Tags   string `json:"tags"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Search returns the items whose path or tag string contains term,
// case-insensitively. A blank term matches everything. Input order is
// preserved; callers that need randomness shuffle afterwards.
func Search(items []Item, term string) []Item {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return items
	}

	var matches []Item
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Tags), term) ||
			strings.Contains(strings.ToLower(item.URL), term) {
			matches = append(matches, item)
		}
	}
	return matches
}

// Shuffle returns a uniformly shuffled copy of items. The input is not
// modified.
func Shuffle(items []Item) []Item {
	shuffled := make([]Item, len(items))
	copy(shuffled, items)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// PickRandom selects one item uniformly at random.
// The second return value is false when items is empty.
func PickRandom(items []Item) (Item, bool) {
	if len(items) == 0 {
		return Item{}, false
	}
	return items[rand.IntN(len(items))], true
}

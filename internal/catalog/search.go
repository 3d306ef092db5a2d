package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/hbollon/go-edlib"

	"github.com/vmunix/frameflux/internal/content"
)

// Search returns the items whose title, description or any genre contains
// query, ignoring case and accents. Matches are ordered by Jaro-Winkler
// similarity of the title to the query; equal scores keep catalog order.
func Search(items []*content.Item, query string) []*content.Item {
	q := fold(strings.TrimSpace(query))
	if q == "" {
		return []*content.Item{}
	}

	type hit struct {
		item  *content.Item
		score float64
	}
	var hits []hit
	for _, item := range items {
		if !matches(item, q) {
			continue
		}
		hits = append(hits, hit{
			item:  item,
			score: float64(edlib.JaroWinklerSimilarity(q, fold(item.Title))),
		})
	}
	slices.SortStableFunc(hits, func(a, b hit) int {
		return cmp.Compare(b.score, a.score)
	})

	out := make([]*content.Item, len(hits))
	for i, h := range hits {
		out[i] = h.item
	}
	return out
}

func matches(item *content.Item, q string) bool {
	if strings.Contains(fold(item.Title), q) || strings.Contains(fold(item.Description), q) {
		return true
	}
	for _, g := range item.Genres {
		if strings.Contains(fold(g), q) {
			return true
		}
	}
	return false
}

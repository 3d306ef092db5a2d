// Package catalog aggregates resolved titles and implements the browse,
// filter and search operations over them.
package catalog

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/vmunix/frameflux/internal/content"
)

// All matches every value of a filter dimension.
const All = "all"

const (
	heroCount    = 5
	popularCount = 8
	// LatestPageSize is the page size of the latest listing.
	LatestPageSize = 8
)

// Filter specifies criteria for listing catalog items. Empty or "all"
// fields match everything.
type Filter struct {
	Type  string `json:"type,omitempty"` // "movie", "anime", "webseries"
	Genre string `json:"genre,omitempty"`
	Year  string `json:"year,omitempty"`
}

// IsZero reports whether the filter matches everything.
func (f Filter) IsZero() bool {
	return isAll(f.Type) && isAll(f.Genre) && isAll(f.Year)
}

// Match reports whether item satisfies every dimension of the filter.
func (f Filter) Match(item *content.Item) bool {
	if !isAll(f.Type) && !strings.EqualFold(string(item.Type), f.Type) {
		return false
	}
	if !isAll(f.Genre) && !item.HasGenre(f.Genre) {
		return false
	}
	if !isAll(f.Year) && strconv.Itoa(item.Year) != f.Year {
		return false
	}
	return true
}

// Apply returns the matching items in input order.
func (f Filter) Apply(items []*content.Item) []*content.Item {
	out := make([]*content.Item, 0, len(items))
	for _, item := range items {
		if f.Match(item) {
			out = append(out, item)
		}
	}
	return out
}

func isAll(v string) bool {
	return v == "" || strings.EqualFold(v, All)
}

// GenreCount is one genre and the number of items carrying it.
type GenreCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// GenreCounts tallies genres, most common first, ties by name.
func GenreCounts(items []*content.Item) []GenreCount {
	counts := make(map[string]int)
	for _, item := range items {
		for _, g := range item.Genres {
			counts[g]++
		}
	}

	out := make([]GenreCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, GenreCount{Name: name, Count: n})
	}
	slices.SortFunc(out, func(a, b GenreCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}

// Years returns "all" followed by the distinct years, newest first.
func Years(items []*content.Item) []string {
	seen := make(map[int]bool)
	var years []int
	for _, item := range items {
		if !seen[item.Year] {
			seen[item.Year] = true
			years = append(years, item.Year)
		}
	}
	slices.SortFunc(years, func(a, b int) int { return cmp.Compare(b, a) })

	out := make([]string, 0, len(years)+1)
	out = append(out, All)
	for _, y := range years {
		out = append(out, strconv.Itoa(y))
	}
	return out
}

// Hero returns the highest rated items of the whole catalog.
func Hero(items []*content.Item) []*content.Item {
	return topBy(items, heroCount, byRating)
}

// Popular returns the highest rated items of a (filtered) set.
func Popular(items []*content.Item) []*content.Item {
	return topBy(items, popularCount, byRating)
}

// Latest orders items newest first. Ties keep input order.
func Latest(items []*content.Item) []*content.Item {
	return topBy(items, len(items), func(a, b *content.Item) int {
		return cmp.Compare(b.Year, a.Year)
	})
}

// Page is one page of a listing.
type Page struct {
	Items      []*content.Item `json:"items"`
	Page       int             `json:"page"`
	TotalPages int             `json:"total_pages"`
	Total      int             `json:"total"`
}

// Paginate returns the 1-based page of items. Out of range pages are
// clamped.
func Paginate(items []*content.Item, page, size int) Page {
	if size <= 0 {
		size = LatestPageSize
	}
	if items == nil {
		items = []*content.Item{}
	}
	total := len(items)
	pages := (total + size - 1) / size
	page = max(1, min(page, pages))

	start := min((page-1)*size, total)
	end := min(start+size, total)
	return Page{
		Items:      items[start:end],
		Page:       page,
		TotalPages: pages,
		Total:      total,
	}
}

func byRating(a, b *content.Item) int {
	return cmp.Compare(b.Rating, a.Rating)
}

func topBy(items []*content.Item, n int, cmpFn func(a, b *content.Item) int) []*content.Item {
	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, cmpFn)
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

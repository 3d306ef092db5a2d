package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/frameflux/internal/content"
)

func titles(items []*content.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Title
	}
	return out
}

func TestFilter_TypeMovieOverFallback(t *testing.T) {
	items := Fallback()

	got := Filter{Type: "movie", Genre: "all", Year: "all"}.Apply(items)

	var want []*content.Item
	for _, item := range items {
		if item.Type == content.TypeMovie {
			want = append(want, item)
		}
	}
	require.Len(t, got, 10)
	assert.Equal(t, want, got, "same members in input order")
	for _, item := range got {
		assert.Equal(t, content.TypeMovie, item.Type)
	}
}

func TestFilter_Match(t *testing.T) {
	items := Fallback()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"zero matches all", Filter{}, titles(items)},
		{"all literal", Filter{Type: "All", Genre: "all", Year: "all"}, titles(items)},
		{"type case-insensitive", Filter{Type: "ANIME", Genre: "Shounen"}, []string{"Demon Slayer", "Jujutsu Kaisen"}},
		{"genre and year", Filter{Genre: "Crime", Year: "2021"}, []string{"Parasite"}},
		{"unknown year", Filter{Year: "1900"}, []string{}},
		{"genre is exact", Filter{Genre: "crime"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, titles(tt.filter.Apply(items)))
		})
	}
}

func TestFilter_IsZero(t *testing.T) {
	assert.True(t, Filter{}.IsZero())
	assert.True(t, Filter{Type: "all", Genre: "ALL"}.IsZero())
	assert.False(t, Filter{Year: "2020"}.IsZero())
}

func TestGenreCounts(t *testing.T) {
	counts := GenreCounts(Fallback())

	require.GreaterOrEqual(t, len(counts), 6)
	assert.Equal(t, []GenreCount{
		{Name: "Action", Count: 6},
		{Name: "Drama", Count: 6},
		{Name: "Sci-Fi", Count: 6},
		{Name: "Fantasy", Count: 5},
		{Name: "Thriller", Count: 4},
		{Name: "Crime", Count: 3},
	}, counts[:6])
}

func TestYears(t *testing.T) {
	years := Years(Fallback())

	require.Len(t, years, 16)
	assert.Equal(t, "all", years[0])
	assert.Equal(t, "2024", years[1])
	assert.Equal(t, "2010", years[15])

	assert.Equal(t, []string{"all"}, Years(nil))
}

func TestHero(t *testing.T) {
	assert.Equal(t,
		[]string{"Parasite", "Naruto: Shippuden", "Forrest Gump", "Jujutsu Kaisen", "The Godfather"},
		titles(Hero(Fallback())))
}

func TestPopular_UsesFilteredSet(t *testing.T) {
	movies := Filter{Type: "movie"}.Apply(Fallback())

	popular := Popular(movies)

	require.Len(t, popular, 8)
	assert.Equal(t, "Parasite", popular[0].Title)
	assert.NotContains(t, titles(popular), "Inception")
	assert.NotContains(t, titles(popular), "Spirited Away")
	for i := 1; i < len(popular); i++ {
		assert.GreaterOrEqual(t, popular[i-1].Rating, popular[i].Rating)
	}
}

func TestLatest_DoesNotReorderInput(t *testing.T) {
	items := Fallback()
	first := items[0]

	latest := Latest(items)

	assert.Same(t, first, items[0])
	assert.Equal(t, "Inception", latest[0].Title)
	assert.Equal(t, "Your Name", latest[1].Title, "equal years keep input order")
	for i := 1; i < len(latest); i++ {
		assert.GreaterOrEqual(t, latest[i-1].Year, latest[i].Year)
	}
}

func TestPaginate(t *testing.T) {
	latest := Latest(Fallback())

	tests := []struct {
		name      string
		page      int
		wantPage  int
		wantItems int
	}{
		{"first", 1, 1, 8},
		{"last partial", 3, 3, 4},
		{"past end clamps", 9, 3, 4},
		{"zero clamps", 0, 1, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paginate(latest, tt.page, LatestPageSize)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Len(t, p.Items, tt.wantItems)
			assert.Equal(t, 3, p.TotalPages)
			assert.Equal(t, 20, p.Total)
		})
	}

	empty := Paginate(nil, 1, 0)
	assert.NotNil(t, empty.Items)
	assert.Empty(t, empty.Items)
	assert.Equal(t, 1, empty.Page)
	assert.Zero(t, empty.TotalPages)
}

package content

import (
	"sort"
	"strings"

	"github.com/vmunix/frameflux/internal/tmdb"
	"github.com/vmunix/frameflux/pkg/omdb"
)

// Placeholder images used when a source has no poster.
const (
	PlaceholderPoster       = "https://placehold.co/500x750.png"
	PlaceholderSearchPoster = "https://placehold.co/600x900.png"
)

const animationGenre = "Animation"

// Record is a raw record from one metadata source. The set of
// implementations is closed; Normalize is the only way to turn a Record into
// an Item.
type Record interface {
	source() string
}

// OMDbRecord is a full OMDb title.
type OMDbRecord struct {
	Title *omdb.Title
}

// TMDbRecord is a TMDB series plus the season details that were fetched.
// Seasons is keyed by season number; a summary without an entry is a season
// whose fetch failed.
type TMDbRecord struct {
	IMDBID  string
	Series  *tmdb.Series
	Seasons map[int]*tmdb.Season
}

// SearchRecord is one OMDb search row.
type SearchRecord struct {
	Item omdb.SearchItem
}

func (OMDbRecord) source() string   { return "omdb" }
func (TMDbRecord) source() string   { return "tmdb" }
func (SearchRecord) source() string { return "omdb-search" }

// Normalize converts a source record into the canonical Item.
func Normalize(rec Record) *Item {
	switch r := rec.(type) {
	case OMDbRecord:
		return fromOMDb(r.Title)
	case TMDbRecord:
		return fromTMDb(r)
	case SearchRecord:
		return fromSearch(r.Item)
	default:
		return nil
	}
}

func fromOMDb(t *omdb.Title) *Item {
	genres := t.Genres()
	item := &Item{
		ID:              t.IMDBID,
		Title:           t.Title,
		Description:     t.Plot,
		Type:            classify(t.Type == omdb.KindMovie, genres),
		Genres:          genres,
		Year:            t.YearValue(),
		Rating:          Rating(t.Rating()),
		ImageURL:        orPlaceholder(t.PosterURL(), PlaceholderPoster),
		Slug:            t.IMDBID,
		DurationMinutes: t.RuntimeMinutes(),
	}
	if item.Type != TypeMovie {
		item.TotalSeasons = t.Seasons()
	}
	if item.Description == "N/A" {
		item.Description = ""
	}
	return item
}

func fromTMDb(r TMDbRecord) *Item {
	s := r.Series
	genres := s.GenreNames()
	defaultRuntime := s.DefaultRuntime()

	var seasons []Season
	seen := make(map[int]bool, len(s.Seasons))
	for _, summary := range s.Seasons {
		if summary.SeasonNumber < 1 || seen[summary.SeasonNumber] {
			continue // specials, repeats
		}
		seen[summary.SeasonNumber] = true
		detail, ok := r.Seasons[summary.SeasonNumber]
		if !ok || detail == nil {
			seasons = append(seasons, Season{
				Number:       summary.SeasonNumber,
				Name:         summary.Name,
				EpisodeCount: summary.EpisodeCount,
				Episodes:     []Episode{},
			})
			continue
		}
		episodes := normalizeEpisodes(detail.Episodes, defaultRuntime)
		seasons = append(seasons, Season{
			Number:       summary.SeasonNumber,
			Name:         detail.Name,
			EpisodeCount: len(episodes),
			Episodes:     episodes,
		})
	}
	sort.SliceStable(seasons, func(i, j int) bool { return seasons[i].Number < seasons[j].Number })

	tmdbID := s.ID
	item := &Item{
		ID:              r.IMDBID,
		TMDBID:          &tmdbID,
		Title:           s.Name,
		Description:     s.Overview,
		Type:            classify(false, genres),
		Genres:          genres,
		Year:            s.Year(),
		Rating:          Rating(s.VoteAverage),
		ImageURL:        orPlaceholder(s.PosterURL("w500"), PlaceholderPoster),
		Slug:            r.IMDBID,
		DurationMinutes: defaultRuntime,
		TotalSeasons:    s.NumberOfSeasons,
		Seasons:         seasons,
	}
	if len(seasons) > 0 {
		item.TotalSeasons = len(seasons)
	}
	return item
}

// normalizeEpisodes sorts by episode number and drops repeated numbers,
// keeping the first occurrence.
func normalizeEpisodes(in []tmdb.Episode, defaultRuntime int) []Episode {
	out := make([]Episode, 0, len(in))
	seen := make(map[int]bool, len(in))
	for _, ep := range in {
		if seen[ep.EpisodeNumber] {
			continue
		}
		seen[ep.EpisodeNumber] = true

		runtime := defaultRuntime
		if ep.Runtime != nil && *ep.Runtime > 0 {
			runtime = *ep.Runtime
		}
		out = append(out, Episode{
			Number:         ep.EpisodeNumber,
			Name:           ep.Name,
			Overview:       ep.Overview,
			RuntimeMinutes: runtime,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

func fromSearch(s omdb.SearchItem) *Item {
	typ := TypeWebseries
	if s.Type == omdb.KindMovie {
		typ = TypeMovie
	}
	image := PlaceholderSearchPoster
	if p := s.PosterURL(); p != "" {
		image = strings.Replace(p, "SX300", "SX600", 1)
	}
	return &Item{
		ID:       s.IMDBID,
		Title:    s.Title,
		Type:     typ,
		Genres:   []string{},
		Year:     omdb.ParseYear(s.Year),
		ImageURL: image,
		Slug:     s.IMDBID,
	}
}

func classify(movie bool, genres []string) Type {
	if movie {
		return TypeMovie
	}
	for _, g := range genres {
		if g == animationGenre {
			return TypeAnime
		}
	}
	return TypeWebseries
}

func orPlaceholder(url, placeholder string) string {
	if url == "" {
		return placeholder
	}
	return url
}

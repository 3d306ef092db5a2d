// Package content defines the unified content model and resolves titles
// from the primary (OMDb) and enrichment (TMDb) metadata sources.
package content

import (
	"math"
	"strings"
)

// Type classifies a title.
type Type string

const (
	TypeMovie     Type = "Movie"
	TypeAnime     Type = "Anime"
	TypeWebseries Type = "Webseries"
)

// ParseType maps a routing segment such as "movie" or "anime" to a Type.
func ParseType(s string) (Type, bool) {
	switch strings.ToLower(s) {
	case "movie":
		return TypeMovie, true
	case "anime":
		return TypeAnime, true
	case "webseries":
		return TypeWebseries, true
	default:
		return "", false
	}
}

// Segment returns the lowercase routing segment for the type.
func (t Type) Segment() string {
	return strings.ToLower(string(t))
}

// IsSeries reports whether the type carries seasons.
func (t Type) IsSeries() bool {
	return t == TypeAnime || t == TypeWebseries
}

// Rating is a score on the canonical 0-10 scale.
// Convert with Stars only at presentation boundaries.
type Rating float64

// Stars returns the 0-5 display value rounded to one decimal.
func (r Rating) Stars() float64 {
	return round1(float64(r) / 2)
}

// SchemaOrg returns the 0-10 value rounded to one decimal.
func (r Rating) SchemaOrg() float64 {
	return round1(float64(r))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Item is one title (movie, anime or webseries).
type Item struct {
	ID              string   `json:"id"` // IMDb id, e.g. "tt1375666"
	TMDBID          *int64   `json:"tmdb_id,omitempty"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Type            Type     `json:"type"`
	Genres          []string `json:"genres"`
	Year            int      `json:"year"`
	Rating          Rating   `json:"rating_10"`
	ImageURL        string   `json:"image_url"`
	Slug            string   `json:"slug"`
	DurationMinutes int      `json:"duration_minutes"` // per-episode for series
	TotalSeasons    int      `json:"total_seasons,omitempty"`
	Seasons         []Season `json:"seasons,omitempty"`
}

// HasGenre reports whether name is one of the item's genres.
func (i *Item) HasGenre(name string) bool {
	for _, g := range i.Genres {
		if g == name {
			return true
		}
	}
	return false
}

// Season looks up a season by number.
func (i *Item) Season(number int) (*Season, bool) {
	for idx := range i.Seasons {
		if i.Seasons[idx].Number == number {
			return &i.Seasons[idx], true
		}
	}
	return nil, false
}

// Season is one season of a series.
type Season struct {
	Number       int       `json:"season_number"`
	Name         string    `json:"name"`
	EpisodeCount int       `json:"episode_count"`
	Episodes     []Episode `json:"episodes"`
}

// Episode looks up an episode by number within the season.
func (s *Season) Episode(number int) (*Episode, bool) {
	for idx := range s.Episodes {
		if s.Episodes[idx].Number == number {
			return &s.Episodes[idx], true
		}
	}
	return nil, false
}

// Episode is one episode. Its season is implied by the containing Season.
type Episode struct {
	Number         int    `json:"episode_number"`
	Name           string `json:"name"`
	Overview       string `json:"overview"`
	RuntimeMinutes int    `json:"runtime"`
}

// CurrentEpisode is an episode re-attached to its season number.
type CurrentEpisode struct {
	Episode
	SeasonNumber int `json:"season_number"`
}

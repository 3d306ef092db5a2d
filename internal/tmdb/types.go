// Package tmdb provides a client for The Movie Database API.
package tmdb

import "strconv"

// findResponse is the body of /3/find/{external_id}.
type findResponse struct {
	TVResults []struct {
		ID int64 `json:"id"`
	} `json:"tv_results"`
}

// Series represents TMDB tv series metadata.
type Series struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Overview        string          `json:"overview"`
	PosterPath      string          `json:"poster_path"`
	FirstAirDate    string          `json:"first_air_date"`
	Genres          []Genre         `json:"genres"`
	VoteAverage     float64         `json:"vote_average"`
	NumberOfSeasons int             `json:"number_of_seasons"`
	EpisodeRunTime  []int           `json:"episode_run_time"`
	Seasons         []SeasonSummary `json:"seasons"`
}

// Genre represents a series genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SeasonSummary is the per-season entry embedded in Series.
type SeasonSummary struct {
	SeasonNumber int    `json:"season_number"` // 0 is "Specials"
	EpisodeCount int    `json:"episode_count"`
	Name         string `json:"name"`
}

// Season is the body of /3/tv/{id}/season/{n}.
type Season struct {
	SeasonNumber int       `json:"season_number"`
	Name         string    `json:"name"`
	Episodes     []Episode `json:"episodes"`
}

// Episode is one episode of a Season.
type Episode struct {
	EpisodeNumber int    `json:"episode_number"`
	Name          string `json:"name"`
	Overview      string `json:"overview"`
	Runtime       *int   `json:"runtime"` // null when unknown
}

// Year extracts the year from FirstAirDate.
func (s *Series) Year() int {
	if len(s.FirstAirDate) < 4 {
		return 0
	}
	year, err := strconv.Atoi(s.FirstAirDate[:4])
	if err != nil {
		return 0
	}
	return year
}

// DefaultRuntime returns the first listed episode runtime, or 0.
func (s *Series) DefaultRuntime() int {
	if len(s.EpisodeRunTime) == 0 {
		return 0
	}
	return s.EpisodeRunTime[0]
}

// GenreNames returns the genre names in order.
func (s *Series) GenreNames() []string {
	names := make([]string, len(s.Genres))
	for i, g := range s.Genres {
		names[i] = g.Name
	}
	return names
}

// PosterURL returns the full poster image URL.
// Size can be: w92, w154, w185, w342, w500, w780, original
func (s *Series) PosterURL(size string) string {
	if s.PosterPath == "" {
		return ""
	}
	return "https://image.tmdb.org/t/p/" + size + s.PosterPath
}

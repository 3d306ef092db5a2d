package omdb

import (
	"strconv"
	"strings"
)

// Title is a full OMDb record returned by an id lookup.
type Title struct {
	Title        string   `json:"Title"`
	Year         string   `json:"Year"` // "2010" or "2008–2013"
	Rated        string   `json:"Rated"`
	Released     string   `json:"Released"`
	Runtime      string   `json:"Runtime"` // "148 min"
	Genre        string   `json:"Genre"`   // "Action, Adventure, Sci-Fi"
	Director     string   `json:"Director"`
	Writer       string   `json:"Writer"`
	Actors       string   `json:"Actors"`
	Plot         string   `json:"Plot"`
	Language     string   `json:"Language"`
	Country      string   `json:"Country"`
	Awards       string   `json:"Awards"`
	Poster       string   `json:"Poster"`
	Ratings      []Source `json:"Ratings"`
	Metascore    string   `json:"Metascore"`
	IMDBRating   string   `json:"imdbRating"` // "8.8"
	IMDBVotes    string   `json:"imdbVotes"`
	IMDBID       string   `json:"imdbID"`
	Type         Kind     `json:"Type"`
	TotalSeasons string   `json:"totalSeasons,omitempty"`
	Response     string   `json:"Response"`
	Error        string   `json:"Error,omitempty"`
}

// Source is one entry of the Ratings list.
type Source struct {
	Source string `json:"Source"`
	Value  string `json:"Value"`
}

// Kind is the OMDb record type.
type Kind string

const (
	KindMovie   Kind = "movie"
	KindSeries  Kind = "series"
	KindEpisode Kind = "episode"
)

// SearchItem is one row of a free-text search.
type SearchItem struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	IMDBID string `json:"imdbID"`
	Type   Kind   `json:"Type"`
	Poster string `json:"Poster"`
}

type searchResponse struct {
	Search       []SearchItem `json:"Search"`
	TotalResults string       `json:"totalResults"`
	Response     string       `json:"Response"`
	Error        string       `json:"Error,omitempty"`
}

// notAvailable is OMDb's placeholder for missing fields.
const notAvailable = "N/A"

// ParseYear returns the first four-digit year of an OMDb year field.
// Returns 0 when the field has no leading year.
func ParseYear(s string) int {
	if len(s) < 4 {
		return 0
	}
	year, err := strconv.Atoi(s[:4])
	if err != nil {
		return 0
	}
	return year
}

// YearValue parses Year.
func (t *Title) YearValue() int {
	return ParseYear(t.Year)
}

// RuntimeMinutes parses Runtime ("148 min"). Returns 0 if unknown.
func (t *Title) RuntimeMinutes() int {
	fields := strings.Fields(t.Runtime)
	if len(fields) == 0 {
		return 0
	}
	mins, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}
	return mins
}

// Genres splits the comma separated Genre field.
func (t *Title) Genres() []string {
	if t.Genre == "" || t.Genre == notAvailable {
		return nil
	}
	parts := strings.Split(t.Genre, ",")
	genres := make([]string, 0, len(parts))
	for _, p := range parts {
		if g := strings.TrimSpace(p); g != "" {
			genres = append(genres, g)
		}
	}
	return genres
}

// Rating parses imdbRating on its native 0-10 scale. Returns 0 if unknown.
func (t *Title) Rating() float64 {
	v, err := strconv.ParseFloat(t.IMDBRating, 64)
	if err != nil {
		return 0
	}
	return v
}

// Seasons parses totalSeasons. Returns 0 if unknown.
func (t *Title) Seasons() int {
	n, err := strconv.Atoi(t.TotalSeasons)
	if err != nil {
		return 0
	}
	return n
}

// PosterURL returns the poster URL, or "" when OMDb has none.
func (t *Title) PosterURL() string {
	return posterURL(t.Poster)
}

// PosterURL returns the poster URL, or "" when OMDb has none.
func (s *SearchItem) PosterURL() string {
	return posterURL(s.Poster)
}

func posterURL(p string) string {
	if p == "" || p == notAvailable {
		return ""
	}
	return p
}

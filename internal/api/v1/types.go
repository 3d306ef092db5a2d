// internal/api/v1/types.go
package v1

import (
	"github.com/vmunix/frameflux/internal/catalog"
	"github.com/vmunix/frameflux/internal/content"
)

// catalogResponse is the response for GET /catalog.
type catalogResponse struct {
	Filter  catalog.Filter       `json:"filter"`
	Genres  []catalog.GenreCount `json:"genres"`
	Years   []string             `json:"years"`
	Hero    []*content.Item      `json:"hero"`
	Popular []*content.Item      `json:"popular"`
	Latest  catalog.Page         `json:"latest"`
}

// contentResponse is the response for GET /content/{slug}.
type contentResponse struct {
	Item         *content.Item   `json:"item"`
	Rating       float64         `json:"rating"`        // 0-5 stars
	SchemaRating float64         `json:"schema_rating"` // 0-10, one decimal
	DetailPath   string          `json:"detail_path"`
	WatchPath    string          `json:"watch_path"`
	Related      []*content.Item `json:"related"`
}

// searchResponse is the response for GET /search.
type searchResponse struct {
	Query  string          `json:"query"`
	Local  []*content.Item `json:"local"`
	Remote []*content.Item `json:"remote"`
}

type progressResponse struct {
	Key      string  `json:"key"`
	Position float64 `json:"position"`
	Found    bool    `json:"found"`
}

type progressRequest struct {
	Position *float64 `json:"position"`
}

type statusResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Titles   int    `json:"titles"`
	Searcher bool   `json:"searcher"`
}

package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/vmunix/frameflux/internal/catalog"
	"github.com/vmunix/frameflux/internal/content"
	"github.com/vmunix/frameflux/internal/watch"
)

func (s *Server) getCatalog(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := catalog.Filter{
		Type:  strings.ToLower(q.Get("type")),
		Genre: q.Get("genre"),
		Year:  q.Get("year"),
	}
	if filter.Type != "" && filter.Type != catalog.All {
		if _, ok := content.ParseType(filter.Type); !ok {
			writeError(w, http.StatusBadRequest, "INVALID_TYPE", "type must be one of movie, anime, webseries")
			return
		}
	}

	items := s.deps.Catalog.Items(r.Context())
	// Genre and year choices reflect the selected type only.
	byType := catalog.Filter{Type: filter.Type}.Apply(items)
	matched := filter.Apply(items)

	writeJSON(w, http.StatusOK, catalogResponse{
		Filter:  filter,
		Genres:  catalog.GenreCounts(byType),
		Years:   catalog.Years(byType),
		Hero:    catalog.Hero(items),
		Popular: catalog.Popular(matched),
		Latest:  catalog.Paginate(catalog.Latest(matched), queryInt(r, "page", 1), catalog.LatestPageSize),
	})
}

func (s *Server) getContent(w http.ResponseWriter, r *http.Request) {
	item, ok := s.lookup(w, r, r.PathValue("slug"))
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, contentResponse{
		Item:         item,
		Rating:       item.Rating.Stars(),
		SchemaRating: item.Rating.SchemaOrg(),
		DetailPath:   watch.DetailPath(item),
		WatchPath:    watch.Path(item, nil),
		Related:      s.deps.Catalog.Related(r.Context(), item),
	})
}

// search matches the query against the loaded catalog and, when a remote
// searcher is configured, against OMDb.
func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	resp := searchResponse{
		Query:  query,
		Local:  []*content.Item{},
		Remote: []*content.Item{},
	}
	if query == "" {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	resp.Local = catalog.Search(s.deps.Catalog.Items(r.Context()), query)
	if s.deps.Searcher != nil {
		resp.Remote = s.deps.Searcher.Search(r.Context(), query)
	}
	writeJSON(w, http.StatusOK, resp)
}

// lookup resolves slug, writing the error response when it fails.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request, slug string) (*content.Item, bool) {
	item, err := s.deps.Catalog.Lookup(r.Context(), slug)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Content not found")
			return nil, false
		}
		s.log.Error("lookup failed", "slug", slug, "error", err)
		writeError(w, http.StatusInternalServerError, "LOOKUP_ERROR", err.Error())
		return nil, false
	}
	return item, true
}

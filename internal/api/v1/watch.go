package v1

import (
	"encoding/json"
	"net/http"

	"github.com/vmunix/frameflux/internal/content"
	"github.com/vmunix/frameflux/internal/playback"
	"github.com/vmunix/frameflux/internal/watch"
)

func (s *Server) getWatch(w http.ResponseWriter, r *http.Request) {
	typ, ok := content.ParseType(r.PathValue("type"))
	if !ok {
		writeError(w, http.StatusBadRequest, "INVALID_TYPE", "type must be one of movie, anime, webseries")
		return
	}
	item, ok := s.lookup(w, r, r.PathValue("slug"))
	if !ok {
		return
	}
	if item.Type != typ {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "Content not found")
		return
	}

	season, episode := queryIntPtr(r, "season"), queryIntPtr(r, "episode")
	key := watch.ProgressKey(item, season, episode)

	resume, found, err := s.deps.Positions.Get(r.Context(), key)
	if err != nil {
		s.log.Warn("resume position unavailable", "key", key, "error", err)
	}
	if !found {
		resume = 0
	}

	related := s.deps.Catalog.Related(r.Context(), item)
	writeJSON(w, http.StatusOK, watch.Build(item, season, episode, resume, related))
}

func (s *Server) getProgress(w http.ResponseWriter, r *http.Request) {
	key, ok := progressKey(w, r)
	if !ok {
		return
	}

	pos, found, err := s.deps.Positions.Get(r.Context(), key)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, progressResponse{Key: key, Position: pos, Found: found})
}

func (s *Server) putProgress(w http.ResponseWriter, r *http.Request) {
	key, ok := progressKey(w, r)
	if !ok {
		return
	}

	var req progressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", err.Error())
		return
	}
	if req.Position == nil || *req.Position < 0 {
		writeError(w, http.StatusBadRequest, "INVALID_POSITION", "position must be a non-negative number of seconds")
		return
	}

	if err := s.deps.Positions.Set(r.Context(), key, *req.Position); err != nil {
		writeError(w, http.StatusInternalServerError, "DB_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, progressResponse{Key: key, Position: *req.Position, Found: true})
}

func progressKey(w http.ResponseWriter, r *http.Request) (string, bool) {
	key := r.PathValue("key")
	if !playback.IsKey(key) {
		writeError(w, http.StatusBadRequest, "INVALID_KEY", "key must start with video-progress-")
		return "", false
	}
	return key, true
}

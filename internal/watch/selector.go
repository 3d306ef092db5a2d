// Package watch builds the watch document: which episode plays, where it
// resumes, and how to switch seasons.
package watch

import "github.com/vmunix/frameflux/internal/content"

// SelectEpisode resolves the requested season and episode of item. nil
// requests default to 1. When the pair does not exist the first episode of
// the first listed season is used instead, whichever half was missing.
// ok is false for movies and for series without any playable episode there.
func SelectEpisode(item *content.Item, season, episode *int) (content.CurrentEpisode, bool) {
	if item == nil || item.Type == content.TypeMovie || len(item.Seasons) == 0 {
		return content.CurrentEpisode{}, false
	}

	wantSeason, wantEpisode := 1, 1
	if season != nil {
		wantSeason = *season
	}
	if episode != nil {
		wantEpisode = *episode
	}

	if s, ok := item.Season(wantSeason); ok {
		if ep, ok := s.Episode(wantEpisode); ok {
			return content.CurrentEpisode{Episode: *ep, SeasonNumber: s.Number}, true
		}
	}

	first := item.Seasons[0]
	if len(first.Episodes) == 0 {
		return content.CurrentEpisode{}, false
	}
	return content.CurrentEpisode{Episode: first.Episodes[0], SeasonNumber: first.Number}, true
}

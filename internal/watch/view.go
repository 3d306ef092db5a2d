package watch

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/vmunix/frameflux/internal/content"
	"github.com/vmunix/frameflux/internal/playback"
)

// Document is everything a player needs to start one title.
type Document struct {
	Item    *content.Item           `json:"item"`
	Rating  float64                 `json:"rating"` // 0-5 stars
	Current *content.CurrentEpisode `json:"current_episode,omitempty"`
	// Playlist is the season listed next to the player.
	Playlist *content.Season `json:"playlist,omitempty"`
	Seasons  []SeasonLink    `json:"seasons,omitempty"`
	// SeasonsUnavailable is set when some season came back without episodes.
	SeasonsUnavailable bool `json:"seasons_unavailable,omitempty"`

	DetailPath     string  `json:"detail_path"`
	ProgressKey    string  `json:"progress_key"`
	ResumePosition float64 `json:"resume_position"`
	VideoURL       string  `json:"video_url"`

	Related []*content.Item `json:"related"`
}

// SeasonLink switches the player to the first episode of a season.
type SeasonLink struct {
	Number       int    `json:"season_number"`
	Name         string `json:"name"`
	EpisodeCount int    `json:"episode_count"`
	Path         string `json:"path"`
	Current      bool   `json:"current"`
}

// DetailPath is the detail page of item.
func DetailPath(item *content.Item) string {
	return fmt.Sprintf("/%s/%s", item.Type.Segment(), item.Slug)
}

// Path is the watch page of item, for one episode when ep is set.
func Path(item *content.Item, ep *content.CurrentEpisode) string {
	p := fmt.Sprintf("/watch/%s/%s", item.Type.Segment(), item.Slug)
	if ep == nil {
		return p
	}
	q := url.Values{}
	q.Set("season", strconv.Itoa(ep.SeasonNumber))
	q.Set("episode", strconv.Itoa(ep.Number))
	return p + "?" + q.Encode()
}

// ProgressKey is the resume key for the episode SelectEpisode picks.
func ProgressKey(item *content.Item, season, episode *int) string {
	if ep, ok := SelectEpisode(item, season, episode); ok {
		return playback.Key(item.Slug, &ep)
	}
	return playback.Key(item.Slug, nil)
}

// Build assembles the watch document. resume is the stored position for the
// selected episode's ProgressKey.
func Build(item *content.Item, season, episode *int, resume float64, related []*content.Item) Document {
	doc := Document{
		Item:           item,
		Rating:         item.Rating.Stars(),
		DetailPath:     DetailPath(item),
		ResumePosition: resume,
		VideoURL:       playback.SampleVideoURL,
		Related:        related,
	}
	if doc.Related == nil {
		doc.Related = []*content.Item{}
	}

	var current *content.CurrentEpisode
	if ep, ok := SelectEpisode(item, season, episode); ok {
		current = &ep
	}
	doc.Current = current
	doc.ProgressKey = playback.Key(item.Slug, current)

	if !item.Type.IsSeries() || len(item.Seasons) == 0 {
		return doc
	}

	playlistNumber := item.Seasons[0].Number
	if current != nil {
		playlistNumber = current.SeasonNumber
	}

	for i := range item.Seasons {
		s := &item.Seasons[i]
		if s.Number == playlistNumber {
			doc.Playlist = s
		}
		if len(s.Episodes) == 0 {
			doc.SeasonsUnavailable = true
		}

		first := content.CurrentEpisode{Episode: content.Episode{Number: 1}, SeasonNumber: s.Number}
		if len(s.Episodes) > 0 {
			first.Episode = s.Episodes[0]
		}
		doc.Seasons = append(doc.Seasons, SeasonLink{
			Number:       s.Number,
			Name:         s.Name,
			EpisodeCount: s.EpisodeCount,
			Path:         Path(item, &first),
			Current:      s.Number == playlistNumber,
		})
	}
	return doc
}

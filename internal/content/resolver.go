package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vmunix/frameflux/internal/tmdb"
	"github.com/vmunix/frameflux/pkg/omdb"
)

//go:generate mockgen -destination=mocks/mock_sources.go -package=mocks . PrimarySource,SeriesSource

// ErrNotFound is returned when the primary source has no usable record.
var ErrNotFound = errors.New("content not found")

// errNoSeriesSource marks enrichment as unavailable when no TMDB client is wired.
var errNoSeriesSource = errors.New("no series source configured")

const defaultSeasonConcurrency = 4

// PrimarySource is the core title metadata API (OMDb).
type PrimarySource interface {
	GetByID(ctx context.Context, imdbID string) (*omdb.Title, error)
	Search(ctx context.Context, query string) ([]omdb.SearchItem, error)
}

// SeriesSource is the season/episode metadata API (TMDB).
type SeriesSource interface {
	FindByIMDB(ctx context.Context, imdbID string) (int64, error)
	GetSeries(ctx context.Context, tvID int64) (*tmdb.Series, error)
	GetSeason(ctx context.Context, tvID int64, seasonNumber int) (*tmdb.Season, error)
}

// Resolver turns an IMDb id into an Item, enriching series with TMDB
// season data when available. Every call re-fetches; put a
// metadata.CachedResolver in front for caching.
type Resolver struct {
	primary     PrimarySource
	series      SeriesSource
	log         *slog.Logger
	concurrency int
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithSeasonConcurrency bounds the number of season fetches in flight.
func WithSeasonConcurrency(n int) ResolverOption {
	return func(r *Resolver) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

// NewResolver creates a resolver. series may be nil, in which case every
// series falls back to its OMDb record.
func NewResolver(primary PrimarySource, series SeriesSource, log *slog.Logger, opts ...ResolverOption) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	r := &Resolver{
		primary:     primary,
		series:      series,
		log:         log,
		concurrency: defaultSeasonConcurrency,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve fetches one title. The returned error wraps ErrNotFound when the
// primary lookup fails for any reason; enrichment failures are never
// returned.
func (r *Resolver) Resolve(ctx context.Context, id string) (*Item, error) {
	title, err := r.primary.GetByID(ctx, id)
	if err != nil {
		r.logPrimaryFailure(id, err)
		return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, id, err)
	}

	if title.Type == omdb.KindMovie {
		return Normalize(OMDbRecord{Title: title}), nil
	}

	rec, err := r.enrich(ctx, id)
	if err != nil {
		if errors.Is(err, tmdb.ErrMissingAPIKey) {
			r.log.Error("TMDB API key is missing, serving series without episodes", "imdb_id", id)
		} else {
			r.log.Debug("series enrichment failed, using primary record", "imdb_id", id, "error", err)
		}
		return Normalize(OMDbRecord{Title: title}), nil
	}
	return Normalize(rec), nil
}

// Search runs a free-text search against the primary source. Failures and
// an empty query yield an empty result.
func (r *Resolver) Search(ctx context.Context, query string) []*Item {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*Item{}
	}

	results, err := r.primary.Search(ctx, query)
	if err != nil {
		if errors.Is(err, omdb.ErrMissingAPIKey) {
			r.log.Error("OMDb API key is missing, search disabled")
		} else {
			r.log.Error("search failed", "query", query, "error", err)
		}
		return []*Item{}
	}

	items := make([]*Item, 0, len(results))
	for _, res := range results {
		items = append(items, Normalize(SearchRecord{Item: res}))
	}
	return items
}

func (r *Resolver) enrich(ctx context.Context, imdbID string) (TMDbRecord, error) {
	if r.series == nil {
		return TMDbRecord{}, errNoSeriesSource
	}

	tvID, err := r.series.FindByIMDB(ctx, imdbID)
	if err != nil {
		return TMDbRecord{}, fmt.Errorf("find: %w", err)
	}

	series, err := r.series.GetSeries(ctx, tvID)
	if err != nil {
		return TMDbRecord{}, fmt.Errorf("get series %d: %w", tvID, err)
	}

	return TMDbRecord{
		IMDBID:  imdbID,
		Series:  series,
		Seasons: r.fetchSeasons(ctx, imdbID, series),
	}, nil
}

// fetchSeasons loads every non-special season concurrently. A failed season
// is absent from the result and normalizes to an empty episode list.
func (r *Resolver) fetchSeasons(ctx context.Context, imdbID string, series *tmdb.Series) map[int]*tmdb.Season {
	var (
		mu      sync.Mutex
		seasons = make(map[int]*tmdb.Season, len(series.Seasons))
		g       errgroup.Group
	)
	g.SetLimit(r.concurrency)

	for _, summary := range series.Seasons {
		if summary.SeasonNumber < 1 {
			continue
		}
		number := summary.SeasonNumber
		g.Go(func() error {
			season, err := r.series.GetSeason(ctx, series.ID, number)
			if err != nil {
				r.log.Warn("season fetch failed",
					"imdb_id", imdbID,
					"tmdb_id", series.ID,
					"season", number,
					"error", err)
				return nil
			}
			mu.Lock()
			seasons[number] = season
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return seasons
}

func (r *Resolver) logPrimaryFailure(id string, err error) {
	switch {
	case errors.Is(err, omdb.ErrMissingAPIKey):
		r.log.Error("OMDb API key is missing", "imdb_id", id)
	case errors.Is(err, omdb.ErrNotFound):
		r.log.Debug("title not found", "imdb_id", id)
	default:
		r.log.Warn("primary lookup failed", "imdb_id", id, "error", err)
	}
}

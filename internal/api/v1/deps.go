package v1

import (
	"context"
	"errors"

	"github.com/vmunix/frameflux/internal/content"
	"github.com/vmunix/frameflux/internal/playback"
)

// ErrMissingDependency is returned when a required dependency is nil.
var ErrMissingDependency = errors.New("missing required dependency")

//go:generate mockgen -destination=mocks/mock_deps.go -package=mocks . Catalog,Searcher

// Catalog is the browsable set of titles.
type Catalog interface {
	Items(ctx context.Context) []*content.Item
	Lookup(ctx context.Context, slug string) (*content.Item, error)
	Related(ctx context.Context, item *content.Item) []*content.Item
}

// Searcher runs free-text searches against the remote metadata source.
type Searcher interface {
	Search(ctx context.Context, query string) []*content.Item
}

// ServerDeps contains all dependencies for the API server.
// Required dependencies must be non-nil; optional dependencies may be nil.
type ServerDeps struct {
	// Required dependencies
	Catalog   Catalog
	Positions playback.PositionStore

	// Optional: remote search (nil when OMDb is not configured)
	Searcher Searcher
}

// Validate checks that all required dependencies are provided.
func (d ServerDeps) Validate() error {
	if d.Catalog == nil {
		return errors.New("catalog is required")
	}
	if d.Positions == nil {
		return errors.New("position store is required")
	}
	return nil
}

package catalog

import (
	"context"
	"log/slog"
	"slices"

	"github.com/sourcegraph/conc/pool"

	"github.com/vmunix/frameflux/internal/content"
)

const defaultConcurrency = 8

// ItemResolver resolves one id into an item.
type ItemResolver interface {
	Resolve(ctx context.Context, id string) (*content.Item, error)
}

// Aggregator resolves a batch of ids, dropping the ones that fail.
type Aggregator struct {
	resolver    ItemResolver
	log         *slog.Logger
	concurrency int
}

// NewAggregator creates an aggregator running at most concurrency
// resolutions at once (0 picks a default).
func NewAggregator(resolver ItemResolver, log *slog.Logger, concurrency int) *Aggregator {
	if log == nil {
		log = slog.Default()
	}
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	return &Aggregator{resolver: resolver, log: log, concurrency: concurrency}
}

// ResolveAll resolves every id concurrently and returns the successes in
// input order. It never fails as a whole.
func (a *Aggregator) ResolveAll(ctx context.Context, ids []string) []*content.Item {
	type indexed struct {
		idx  int
		item *content.Item
	}

	p := pool.NewWithResults[indexed]().
		WithContext(ctx).
		WithMaxGoroutines(a.concurrency)

	for i, id := range ids {
		p.Go(func(ctx context.Context) (indexed, error) {
			item, err := a.resolver.Resolve(ctx, id)
			if err != nil {
				a.log.Debug("dropping unresolved id", "id", id, "error", err)
				return indexed{}, err
			}
			return indexed{idx: i, item: item}, nil
		})
	}

	// Errored results are excluded; the combined error is already logged per id.
	results, _ := p.Wait()

	slices.SortFunc(results, func(x, y indexed) int { return x.idx - y.idx })
	items := make([]*content.Item, 0, len(results))
	for _, r := range results {
		if r.item != nil {
			items = append(items, r.item)
		}
	}
	return items
}

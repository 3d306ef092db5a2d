package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/vmunix/frameflux/internal/content"
)

const defaultRelatedCount = 10

// Shuffler permutes n elements through swap. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// NewShuffler returns a seeded shuffler.
func NewShuffler(seed uint64) Shuffler {
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

// Related returns up to n items of the same type as item, excluding item
// itself, in shuffled order. A nil shuffler keeps catalog order.
func Related(items []*content.Item, item *content.Item, n int, shuffler Shuffler) []*content.Item {
	candidates := make([]*content.Item, 0, len(items))
	for _, other := range items {
		if other.Type == item.Type && other.ID != item.ID {
			candidates = append(candidates, other)
		}
	}
	if shuffler != nil {
		shuffler.Shuffle(len(candidates), func(i, j int) {
			candidates[i], candidates[j] = candidates[j], candidates[i]
		})
	}
	if n >= 0 && len(candidates) > n {
		candidates = candidates[:n]
	}
	return candidates
}

// Config configures a Service.
type Config struct {
	IDs          []string
	Fallback     bool // serve the built-in dataset when nothing resolves
	RelatedCount int
	Concurrency  int
}

// Service is the catalog: the curated id list resolved through a resolver,
// with the built-in dataset as a fallback.
type Service struct {
	resolver   ItemResolver
	aggregator *Aggregator
	cfg        Config
	log        *slog.Logger

	mu       sync.Mutex // guards shuffler
	shuffler Shuffler
}

// ServiceOption configures a Service.
type ServiceOption func(*Service)

// WithShuffler sets the shuffler used for related titles.
func WithShuffler(s Shuffler) ServiceOption {
	return func(svc *Service) {
		svc.shuffler = s
	}
}

// NewService creates a catalog service.
func NewService(resolver ItemResolver, cfg Config, log *slog.Logger, opts ...ServiceOption) *Service {
	if log == nil {
		log = slog.Default()
	}
	if len(cfg.IDs) == 0 {
		cfg.IDs = DefaultIDs
	}
	if cfg.RelatedCount <= 0 {
		cfg.RelatedCount = defaultRelatedCount
	}
	s := &Service{
		resolver:   resolver,
		aggregator: NewAggregator(resolver, log, cfg.Concurrency),
		cfg:        cfg,
		log:        log,
		shuffler:   NewShuffler(uint64(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Items resolves the curated list. When nothing resolves and the fallback is
// enabled, the built-in dataset is returned instead.
func (s *Service) Items(ctx context.Context) []*content.Item {
	items := s.aggregator.ResolveAll(ctx, s.cfg.IDs)
	if len(items) == 0 && s.cfg.Fallback {
		s.log.Warn("catalog resolved no titles, serving fallback dataset", "ids", len(s.cfg.IDs))
		return Fallback()
	}
	return items
}

// Lookup finds one title by slug. Built-in slugs are answered from the
// fallback dataset when it is enabled; anything else goes to the resolver.
func (s *Service) Lookup(ctx context.Context, slug string) (*content.Item, error) {
	if s.cfg.Fallback {
		if item, ok := fallbackBySlug(slug); ok {
			return item, nil
		}
	}
	item, err := s.resolver.Resolve(ctx, slug)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %w", content.ErrNotFound, slug, err)
	}
	return item, nil
}

// Related picks titles like item from the current catalog.
func (s *Service) Related(ctx context.Context, item *content.Item) []*content.Item {
	items := s.Items(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	return Related(items, item, s.cfg.RelatedCount, s.shuffler)
}

func fallbackBySlug(slug string) (*content.Item, bool) {
	for _, item := range Fallback() {
		if item.Slug == slug {
			return item, true
		}
	}
	return nil, false
}

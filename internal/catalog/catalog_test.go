package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/frameflux/internal/content"
)

func TestService_ItemsFallsBack(t *testing.T) {
	svc := NewService(newFakeResolver(), Config{IDs: []string{"tt1"}, Fallback: true}, testLogger())

	items := svc.Items(context.Background())

	assert.Len(t, items, 20)
}

func TestService_ItemsWithoutFallback(t *testing.T) {
	svc := NewService(newFakeResolver(), Config{IDs: []string{"tt1"}}, testLogger())

	assert.Empty(t, svc.Items(context.Background()))
}

func TestService_ItemsPrefersResolved(t *testing.T) {
	r := newFakeResolver(&content.Item{ID: "tt1", Title: "Remote"})
	svc := NewService(r, Config{IDs: []string{"tt1", "tt2"}, Fallback: true}, testLogger())

	items := svc.Items(context.Background())

	require.Len(t, items, 1)
	assert.Equal(t, "Remote", items[0].Title)
}

func TestService_Lookup(t *testing.T) {
	r := newFakeResolver(&content.Item{ID: "tt1375666", Slug: "tt1375666", Title: "Inception"})
	svc := NewService(r, Config{Fallback: true}, testLogger())

	item, err := svc.Lookup(context.Background(), "tt1375666")
	require.NoError(t, err)
	assert.Equal(t, "Inception", item.Title)

	item, err = svc.Lookup(context.Background(), "death-note")
	require.NoError(t, err)
	assert.Equal(t, "12", item.ID)
	assert.Equal(t, int32(1), r.calls.Load(), "fallback slugs skip the resolver")

	_, err = svc.Lookup(context.Background(), "tt0000000")
	assert.True(t, errors.Is(err, content.ErrNotFound))
}

func TestService_LookupFallbackDisabled(t *testing.T) {
	svc := NewService(newFakeResolver(), Config{}, testLogger())

	_, err := svc.Lookup(context.Background(), "death-note")
	assert.ErrorIs(t, err, content.ErrNotFound)
}

func TestRelated(t *testing.T) {
	items := Fallback()
	item := items[0] // Inception

	related := Related(items, item, 4, NewShuffler(42))

	require.Len(t, related, 4)
	for _, r := range related {
		assert.Equal(t, content.TypeMovie, r.Type)
		assert.NotEqual(t, item.ID, r.ID)
	}

	again := Related(items, item, 4, NewShuffler(42))
	assert.Equal(t, titles(related), titles(again), "same seed, same order")
}

func TestRelated_NilShufflerKeepsOrder(t *testing.T) {
	items := Fallback()

	related := Related(items, items[10], 100, nil)

	require.Len(t, related, 9)
	assert.Equal(t, "Death Note", related[0].Title)
}

func TestService_Related(t *testing.T) {
	svc := NewService(newFakeResolver(), Config{Fallback: true, RelatedCount: 3}, testLogger(),
		WithShuffler(NewShuffler(7)))
	items := Fallback()

	related := svc.Related(context.Background(), items[12])

	require.Len(t, related, 3)
	for _, r := range related {
		assert.Equal(t, content.TypeAnime, r.Type)
		assert.NotEqual(t, items[12].ID, r.ID)
	}
}

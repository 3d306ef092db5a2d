package main

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/frameflux/internal/content"
	"github.com/vmunix/frameflux/internal/playback"
	"github.com/vmunix/frameflux/internal/watch"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func movieDoc() *watch.Document {
	item := &content.Item{ID: "tt1375666", Title: "Inception", Type: content.TypeMovie, Slug: "inception", Rating: 8.8}
	doc := watch.Build(item, nil, nil, 0, nil)
	return &doc
}

func fastPlay(d time.Duration) playOptions {
	return playOptions{For: d, Interval: time.Millisecond, Speed: 1000}
}

func TestPlay_ResumesAndSaves(t *testing.T) {
	ctx := context.Background()
	store := playback.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "video-progress-inception", 10))

	var ticks []float64
	opts := fastPlay(5 * time.Second)
	opts.Progress = func(s playback.State) { ticks = append(ticks, s.Position) }

	final, err := play(ctx, store, movieDoc(), opts, testLogger())
	require.NoError(t, err)

	assert.Equal(t, playback.PhasePaused, final.Phase)
	assert.Equal(t, 15.0, final.Position)
	assert.Equal(t, []float64{11, 12, 13, 14, 15}, ticks)

	pos, ok, err := store.Get(ctx, "video-progress-inception")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 15.0, pos)
}

func TestPlay_StopsAtEnd(t *testing.T) {
	ctx := context.Background()
	store := playback.NewMemoryStore()
	require.NoError(t, store.Set(ctx, "video-progress-inception", playback.SampleVideoDuration-2))

	final, err := play(ctx, store, movieDoc(), fastPlay(time.Minute), testLogger())
	require.NoError(t, err)
	assert.Equal(t, playback.SampleVideoDuration, final.Position)
}

func TestPlay_CanceledSavesPosition(t *testing.T) {
	store := playback.NewMemoryStore()
	require.NoError(t, store.Set(context.Background(), "video-progress-inception", 42))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	final, err := play(ctx, store, movieDoc(), playOptions{For: time.Minute, Interval: time.Hour}, testLogger())
	require.NoError(t, err)
	assert.Equal(t, playback.PhasePaused, final.Phase)
	assert.Equal(t, 42.0, final.Position)

	pos, ok, _ := store.Get(context.Background(), "video-progress-inception")
	assert.True(t, ok)
	assert.Equal(t, 42.0, pos)
}

func TestPlay_EpisodeKey(t *testing.T) {
	item := &content.Item{
		ID:   "tt0903747",
		Type: content.TypeWebseries,
		Slug: "tt0903747",
		Seasons: []content.Season{
			{Number: 1, EpisodeCount: 2, Episodes: []content.Episode{{Number: 1}, {Number: 2}}},
		},
	}
	episode := 2
	doc := watch.Build(item, nil, &episode, 0, nil)

	store := playback.NewMemoryStore()
	final, err := play(context.Background(), store, &doc, fastPlay(2*time.Second), testLogger())
	require.NoError(t, err)
	assert.Equal(t, "video-progress-tt0903747-1-2", final.Key)

	pos, ok, _ := store.Get(context.Background(), "video-progress-tt0903747-1-2")
	assert.True(t, ok)
	assert.Equal(t, 2.0, pos)

	_, ok, _ = store.Get(context.Background(), "video-progress-tt0903747-1-1")
	assert.False(t, ok)
}

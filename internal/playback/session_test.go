package playback

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/frameflux/internal/content"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func episode(season, number int) *content.CurrentEpisode {
	return &content.CurrentEpisode{Episode: content.Episode{Number: number}, SeasonNumber: season}
}

// countingStore wraps a MemoryStore and counts reads.
type countingStore struct {
	*MemoryStore
	gets   int
	getErr error
	setErr error
}

func (c *countingStore) Get(ctx context.Context, key string) (float64, bool, error) {
	c.gets++
	if c.getErr != nil {
		return 0, false, c.getErr
	}
	return c.MemoryStore.Get(ctx, key)
}

func (c *countingStore) Set(ctx context.Context, key string, seconds float64) error {
	if c.setErr != nil {
		return c.setErr
	}
	return c.MemoryStore.Set(ctx, key, seconds)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "video-progress-tt123", Key("tt123", nil))
	assert.Equal(t, "video-progress-tt123-1-3", Key("tt123", episode(1, 3)))
}

func TestIsKey(t *testing.T) {
	assert.True(t, IsKey(Key("tt0111161", nil)))
	assert.True(t, IsKey(Key("tt0903747", episode(2, 3))))
	assert.False(t, IsKey("video-progress-"))
	assert.False(t, IsKey("progress-tt0111161"))
}

func TestSession_ResumeRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewSQLiteStore(setupTestDB(t))

	first := NewSession(store, testLogger())
	first.Load(ctx, "tt123", episode(1, 3))
	first.Dispatch(Play{})
	_, err := first.Tick(ctx, 137.5)
	require.NoError(t, err)
	first.Unmount()

	stored, ok, err := store.Get(ctx, "video-progress-tt123-1-3")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 137.5, stored)

	same := NewSession(store, testLogger())
	s := same.Load(ctx, "tt123", episode(1, 3))
	assert.Equal(t, 137.5, s.Position)
	assert.Equal(t, PhaseLoaded, s.Phase)

	next := NewSession(store, testLogger())
	s = next.Load(ctx, "tt123", episode(1, 4))
	assert.Zero(t, s.Position, "other episodes are isolated")
}

func TestSession_LoadSameKeyOnce(t *testing.T) {
	ctx := context.Background()
	store := &countingStore{MemoryStore: NewMemoryStore()}
	require.NoError(t, store.Set(ctx, "video-progress-tt1", 20))

	s := NewSession(store, testLogger())
	s.Load(ctx, "tt1", nil)
	s.Dispatch(Play{})
	_, err := s.Tick(ctx, 45)
	require.NoError(t, err)

	state := s.Load(ctx, "tt1", nil)

	assert.Equal(t, 1, store.gets, "stored position read once per key")
	assert.Equal(t, 45.0, state.Position, "no re-seek")
	assert.Equal(t, PhasePlaying, state.Phase)

	s.Load(ctx, "tt2", nil)
	assert.Equal(t, 2, store.gets)
}

func TestSession_LoadStoreError(t *testing.T) {
	store := &countingStore{MemoryStore: NewMemoryStore(), getErr: errors.New("disk gone")}

	state := NewSession(store, testLogger()).Load(context.Background(), "tt1", nil)

	assert.Equal(t, PhaseLoaded, state.Phase)
	assert.Zero(t, state.Position)
}

func TestSession_TickErrors(t *testing.T) {
	ctx := context.Background()
	store := &countingStore{MemoryStore: NewMemoryStore(), setErr: errors.New("read-only")}
	s := NewSession(store, testLogger())

	state, err := s.Tick(ctx, 5)
	assert.NoError(t, err, "idle ticks are ignored")
	assert.Equal(t, PhaseIdle, state.Phase)

	s.Load(ctx, "tt1", nil)
	state, err = s.Tick(ctx, 5)
	assert.Error(t, err)
	assert.Equal(t, 5.0, state.Position)
}

func TestSession_Tick_ProgressPercent(t *testing.T) {
	ctx := context.Background()
	s := NewSession(NewMemoryStore(), testLogger())
	s.Load(ctx, "tt1", nil)

	state, err := s.Tick(ctx, 10)
	require.NoError(t, err)
	assert.Zero(t, state.ProgressPercent(), "unknown duration")

	s.Dispatch(MetadataLoaded{Duration: 40})
	state, err = s.Tick(ctx, 10)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, state.ProgressPercent(), 1e-9)
}

func TestSession_SeekByClick(t *testing.T) {
	ctx := context.Background()
	s := NewSession(NewMemoryStore(), testLogger())

	assert.Equal(t, PhaseIdle, s.SeekByClick(50, 0, 100).Phase)

	s.Load(ctx, "tt1", nil)
	s.Dispatch(MetadataLoaded{Duration: 200})
	s.Dispatch(Play{})

	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"middle", 150, 100},
		{"left of bar", 10, 0},
		{"right of bar", 400, 200},
		{"quarter", 100, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := s.SeekByClick(tt.x, 50, 200)
			assert.Equal(t, tt.want, state.Position)
			assert.Equal(t, PhasePlaying, state.Phase)
		})
	}

	before := s.State()
	assert.Equal(t, before, s.SeekByClick(10, 0, 0), "zero width bar")
}

func TestSession_SeekByClickBeforeDuration(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Set(ctx, "video-progress-tt123-1-3", 137.5))

	s := NewSession(store, testLogger())
	s.Load(ctx, "tt123", &content.CurrentEpisode{Episode: content.Episode{Number: 3}, SeasonNumber: 1})

	state := s.SeekByClick(75, 0, 100)
	assert.Equal(t, 137.5, state.Position)
	assert.Equal(t, PhaseLoaded, state.Phase)

	_, err := s.Tick(ctx, state.Position)
	require.NoError(t, err)
	pos, ok, err := store.Get(ctx, "video-progress-tt123-1-3")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 137.5, pos)
}

type fakeDisplay struct {
	fullscreen bool
	requestErr error
}

func (d *fakeDisplay) IsFullscreen() bool { return d.fullscreen }

func (d *fakeDisplay) RequestFullscreen() error {
	if d.requestErr != nil {
		return d.requestErr
	}
	d.fullscreen = true
	return nil
}

func (d *fakeDisplay) ExitFullscreen() error {
	d.fullscreen = false
	return nil
}

func TestSession_ToggleFullscreen(t *testing.T) {
	s := NewSession(NewMemoryStore(), testLogger())
	d := &fakeDisplay{}

	require.NoError(t, s.ToggleFullscreen(d))
	assert.True(t, d.fullscreen)
	require.NoError(t, s.ToggleFullscreen(d))
	assert.False(t, d.fullscreen)

	d.requestErr = errors.New("not allowed")
	err := s.ToggleFullscreen(d)
	assert.ErrorIs(t, err, ErrFullscreen)
	assert.Contains(t, err.Error(), "not allowed")
}

package playback

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/vmunix/frameflux/internal/content"
)

// SampleVideoURL is the file played for every title.
const SampleVideoURL = "https://storage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4"

// SampleVideoDuration is the length of SampleVideoURL in seconds.
const SampleVideoDuration = 596.5

const keyPrefix = "video-progress-"

// ErrFullscreen is returned when the display refuses to enter fullscreen.
var ErrFullscreen = errors.New("fullscreen request failed")

// Key returns the resume position key for a title, and for one episode of it
// when ep is set.
func Key(slug string, ep *content.CurrentEpisode) string {
	if ep == nil {
		return keyPrefix + slug
	}
	return fmt.Sprintf("%s%s-%d-%d", keyPrefix, slug, ep.SeasonNumber, ep.Number)
}

// IsKey reports whether key is a resume position key.
func IsKey(key string) bool {
	return len(key) > len(keyPrefix) && key[:len(keyPrefix)] == keyPrefix
}

// Display is the surface the player is rendered on.
type Display interface {
	IsFullscreen() bool
	RequestFullscreen() error
	ExitFullscreen() error
}

// Session drives one player. It is not safe for concurrent use.
type Session struct {
	store PositionStore
	log   *slog.Logger
	state State
}

// NewSession creates an idle session persisting to store.
func NewSession(store PositionStore, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	return &Session{store: store, log: log, state: Initial()}
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Dispatch applies ev.
func (s *Session) Dispatch(ev Event) State {
	s.state = Reduce(s.state, ev)
	return s.state
}

// Load attaches the player to slug and ep. Loading the key that is already
// loaded does nothing; otherwise the stored position is read once and the
// player starts there, or at 0.
func (s *Session) Load(ctx context.Context, slug string, ep *content.CurrentEpisode) State {
	key := Key(slug, ep)
	if s.state.Phase != PhaseIdle && s.state.Key == key {
		return s.state
	}

	pos, ok, err := s.store.Get(ctx, key)
	if err != nil {
		s.log.Warn("resume position unavailable", "key", key, "error", err)
	}
	if !ok {
		pos = 0
	}
	return s.Dispatch(Loaded{Key: key, Position: pos})
}

// Tick records playback reaching elapsed seconds and persists it.
func (s *Session) Tick(ctx context.Context, elapsed float64) (State, error) {
	if s.state.Phase == PhaseIdle {
		return s.state, nil
	}
	s.Dispatch(TimeUpdate{Elapsed: elapsed})
	if err := s.store.Set(ctx, s.state.Key, s.state.Position); err != nil {
		return s.state, fmt.Errorf("save position: %w", err)
	}
	return s.state, nil
}

// SeekByClick maps a click at x on a progress bar spanning [left, left+width]
// to a position and seeks there. Clicks outside the bar clamp to its ends.
// Until the duration is known a click does nothing.
func (s *Session) SeekByClick(x, left, width float64) State {
	if width <= 0 || s.state.Phase == PhaseIdle || s.state.Duration <= 0 {
		return s.state
	}
	frac := math.Max(0, math.Min(1, (x-left)/width))
	s.Dispatch(SeekStart{To: frac * s.state.Duration})
	return s.Dispatch(SeekEnd{})
}

// ToggleFullscreen enters fullscreen on d, or leaves it when already there.
// A refused request wraps ErrFullscreen for the caller to show.
func (s *Session) ToggleFullscreen(d Display) error {
	if !d.IsFullscreen() {
		if err := d.RequestFullscreen(); err != nil {
			return fmt.Errorf("%w: %w", ErrFullscreen, err)
		}
		return nil
	}
	if err := d.ExitFullscreen(); err != nil {
		return fmt.Errorf("exit fullscreen: %w", err)
	}
	return nil
}

// Unmount releases the player.
func (s *Session) Unmount() {
	s.Dispatch(Unmount{})
}

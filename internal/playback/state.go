// Package playback implements the player session: a pure state reducer,
// resume position persistence and the pointer/fullscreen helpers around it.
package playback

import "math"

// Phase is the player lifecycle phase.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoaded
	PhasePlaying
	PhasePaused
	PhaseSeeking
)

func (p Phase) String() string {
	switch p {
	case PhaseLoaded:
		return "loaded"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseSeeking:
		return "seeking"
	default:
		return "idle"
	}
}

// MarshalText renders the phase name in JSON documents.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// State is a snapshot of the player.
type State struct {
	Phase    Phase   `json:"phase"`
	Key      string  `json:"key,omitempty"`      // resume position key
	Position float64 `json:"position"`           // seconds
	Duration float64 `json:"duration,omitempty"` // 0 until metadata is loaded
	Volume   float64 `json:"volume"`             // 0..1, 0 while muted
	Muted    bool    `json:"muted"`

	// SavedVolume is the level restored on unmute.
	SavedVolume float64 `json:"-"`
	// ResumePhase is the phase a pending seek settles into.
	ResumePhase Phase `json:"-"`
}

// Initial returns the idle state with full volume.
func Initial() State {
	return State{Phase: PhaseIdle, Volume: 1, SavedVolume: 1}
}

// ProgressPercent is the elapsed share of the duration, 0 when unknown.
func (s State) ProgressPercent() float64 {
	if s.Duration <= 0 || math.IsNaN(s.Duration) || math.IsInf(s.Duration, 0) {
		return 0
	}
	return s.Position / s.Duration * 100
}

// Event is an input to Reduce.
type Event interface {
	event()
}

// Loaded attaches media identified by Key, starting at Position.
type Loaded struct {
	Key      string
	Position float64
}

// MetadataLoaded reports the media duration.
type MetadataLoaded struct {
	Duration float64
}

type (
	Play       struct{}
	Pause      struct{}
	TogglePlay struct{}
	SeekEnd    struct{}
	ToggleMute struct{}
	Unmount    struct{}
)

// TimeUpdate is a playback tick.
type TimeUpdate struct {
	Elapsed float64
}

// SeekStart begins a seek to To seconds.
type SeekStart struct {
	To float64
}

// VisibilityChanged reports the page (or terminal) being hidden or shown.
type VisibilityChanged struct {
	Hidden bool
}

// SetVolume sets the level, clamped to [0,1].
type SetVolume struct {
	Volume float64
}

func (Loaded) event()            {}
func (MetadataLoaded) event()    {}
func (Play) event()              {}
func (Pause) event()             {}
func (TogglePlay) event()        {}
func (TimeUpdate) event()        {}
func (SeekStart) event()         {}
func (SeekEnd) event()           {}
func (VisibilityChanged) event() {}
func (SetVolume) event()         {}
func (ToggleMute) event()        {}
func (Unmount) event()           {}

// Reduce applies ev to s and returns the next state. It has no side effects.
func Reduce(s State, ev Event) State {
	switch e := ev.(type) {
	case Loaded:
		s.Phase = PhaseLoaded
		s.Key = e.Key
		s.Position = nonNegative(e.Position)
		s.Duration = 0
		s.ResumePhase = PhaseIdle

	case MetadataLoaded:
		if s.Phase == PhaseIdle {
			return s
		}
		s.Duration = nonNegative(e.Duration)
		s.Position = s.clamp(s.Position)

	case Play:
		s = s.settle(PhasePlaying)

	case Pause:
		s = s.settle(PhasePaused)

	case TogglePlay:
		next := PhasePlaying
		if s.Phase == PhasePlaying || (s.Phase == PhaseSeeking && s.ResumePhase == PhasePlaying) {
			next = PhasePaused
		}
		s = s.settle(next)

	case TimeUpdate:
		if s.Phase == PhaseIdle || s.Phase == PhaseSeeking {
			return s
		}
		s.Position = s.clamp(e.Elapsed)

	case SeekStart:
		if s.Phase == PhaseIdle {
			return s
		}
		if s.Phase != PhaseSeeking {
			s.ResumePhase = PhasePaused
			if s.Phase == PhasePlaying {
				s.ResumePhase = PhasePlaying
			}
		}
		s.Phase = PhaseSeeking
		s.Position = s.clamp(e.To)

	case SeekEnd:
		if s.Phase == PhaseSeeking {
			s.Phase = s.ResumePhase
			s.ResumePhase = PhaseIdle
		}

	case VisibilityChanged:
		// Hiding always pauses; a pending seek lands at its target.
		if e.Hidden && s.Phase != PhaseIdle {
			s.Phase = PhasePaused
			s.ResumePhase = PhaseIdle
		}

	case SetVolume:
		v := math.Max(0, math.Min(1, e.Volume))
		if math.IsNaN(v) {
			return s
		}
		s.Volume = v
		s.Muted = v == 0
		if v > 0 {
			s.SavedVolume = v
		}

	case ToggleMute:
		if s.Muted || s.Volume == 0 {
			s.Volume = s.SavedVolume
			if s.Volume <= 0 {
				s.Volume = 1
			}
			s.Muted = false
		} else {
			s.SavedVolume = s.Volume
			s.Volume = 0
			s.Muted = true
		}

	case Unmount:
		return Initial()
	}
	return s
}

// settle moves a loaded player to phase, or retargets a pending seek.
func (s State) settle(phase Phase) State {
	switch s.Phase {
	case PhaseIdle:
	case PhaseSeeking:
		s.ResumePhase = phase
	default:
		s.Phase = phase
	}
	return s
}

func (s State) clamp(pos float64) float64 {
	pos = nonNegative(pos)
	if s.Duration > 0 && pos > s.Duration {
		return s.Duration
	}
	return pos
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}

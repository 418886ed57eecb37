package player

import (
	"errors"
	"math"

	"github.com/handiism/deskwidgets/internal/model"
)

// ErrEmptyPlaylist is returned when a player is built without tracks.
var ErrEmptyPlaylist = errors.New("playlist has no tracks")

// TickIncrement is how far one tick moves the playback position, in seconds.
const TickIncrement = 1.0

// Effects tells the owner of a State what to do after a transition.
type Effects uint8

const (
	// EffectStartTicking asks for the periodic tick to be (re)started.
	// When combined with EffectStopTicking the old tick source is cancelled first.
	EffectStartTicking Effects = 1 << iota

	// EffectStopTicking asks for the periodic tick to be cancelled.
	EffectStopTicking

	// EffectTrackChanged signals that a different track is now loaded.
	EffectTrackChanged

	// EffectTrackEnded signals that the loaded track ran to its end.
	EffectTrackEnded
)

// Has reports whether all bits of e are set.
func (f Effects) Has(e Effects) bool {
	return f&e == e
}

// VolumeTier is the indicator shown next to the volume slider.
type VolumeTier int

const (
	VolumeMuted VolumeTier = iota
	VolumeLow
	VolumeNormal
)

// String returns a short glyph for the tier.
func (v VolumeTier) String() string {
	switch v {
	case VolumeMuted:
		return "🔇"
	case VolumeLow:
		return "🔉"
	default:
		return "🔊"
	}
}

// TierFor returns the indicator tier for a volume level in [0,1].
func TierFor(level float64) VolumeTier {
	switch {
	case level <= 0:
		return VolumeMuted
	case level < 0.5:
		return VolumeLow
	default:
		return VolumeNormal
	}
}

// State is the simulated playback state. Transitions are pure: they return
// the next State together with the Effects the owner must carry out.
type State struct {
	Playlist []model.Track
	Index    int
	Playing  bool
	Autoplay bool

	// Elapsed is the simulated playback position in seconds, always within
	// [0, Track().Duration].
	Elapsed float64

	// Volume is the slider level in [0,1].
	Volume float64
}

// NewState creates a stopped state positioned at the first track.
func NewState(playlist []model.Track) (State, error) {
	if len(playlist) == 0 {
		return State{}, ErrEmptyPlaylist
	}
	tracks := make([]model.Track, len(playlist))
	copy(tracks, playlist)
	return State{Playlist: tracks, Volume: 1}, nil
}

// Track returns the loaded track.
func (s State) Track() model.Track {
	if len(s.Playlist) == 0 {
		return model.Track{}
	}
	return s.Playlist[s.Index]
}

// Load makes index the current track and rewinds it. An out-of-range index
// leaves the state unchanged.
func (s State) Load(index int) (State, Effects) {
	if index < 0 || index >= len(s.Playlist) {
		return s, 0
	}
	s.Index = index
	s.Elapsed = 0
	return s, EffectTrackChanged
}

// Play starts playback. Playing an already playing state has no effects.
func (s State) Play() (State, Effects) {
	if s.Playing || len(s.Playlist) == 0 {
		return s, 0
	}
	s.Playing = true
	return s, EffectStartTicking
}

// Pause stops playback, keeping the position.
func (s State) Pause() (State, Effects) {
	if !s.Playing {
		return s, 0
	}
	s.Playing = false
	return s, EffectStopTicking
}

// TogglePlay flips between Play and Pause.
func (s State) TogglePlay() (State, Effects) {
	if s.Playing {
		return s.Pause()
	}
	return s.Play()
}

// Prev moves to the previous track, wrapping to the last one.
func (s State) Prev() (State, Effects) {
	n := len(s.Playlist)
	if n == 0 {
		return s, 0
	}
	return s.Select((s.Index - 1 + n) % n)
}

// Next moves to the next track, wrapping to the first one.
func (s State) Next() (State, Effects) {
	n := len(s.Playlist)
	if n == 0 {
		return s, 0
	}
	return s.Select((s.Index + 1) % n)
}

// Select jumps to a playlist entry. If playback was active it continues on
// the new track from the start, with a fresh tick source.
func (s State) Select(index int) (State, Effects) {
	next, fx := s.Load(index)
	if fx == 0 {
		return s, 0
	}
	if next.Playing {
		fx |= EffectStopTicking | EffectStartTicking
	}
	return next, fx
}

// Seek moves the position to fraction × duration. The fraction is clamped to [0,1].
func (s State) Seek(fraction float64) State {
	if math.IsNaN(fraction) {
		return s
	}
	fraction = math.Max(0, math.Min(1, fraction))
	s.Elapsed = fraction * s.Track().Duration
	return s
}

// SetVolume sets the slider level, clamped to [0,1].
func (s State) SetVolume(level float64) State {
	if math.IsNaN(level) {
		return s
	}
	s.Volume = math.Max(0, math.Min(1, level))
	return s
}

// VolumeTier returns the indicator tier for the current volume.
func (s State) VolumeTier() VolumeTier {
	return TierFor(s.Volume)
}

// ToggleAutoplay flips whether a finished track advances to the next one.
func (s State) ToggleAutoplay() State {
	s.Autoplay = !s.Autoplay
	return s
}

// Tick advances the position by TickIncrement. A tick on a paused state is
// ignored. When the position reaches the duration the track ends.
func (s State) Tick() (State, Effects) {
	if !s.Playing || len(s.Playlist) == 0 {
		return s, 0
	}
	s.Elapsed += TickIncrement
	if s.Elapsed >= s.Track().Duration {
		return s.End()
	}
	return s, 0
}

// End performs end-of-track handling: the tick stops and the position
// rewinds. With autoplay the next track is loaded and playback resumes,
// otherwise the player pauses.
func (s State) End() (State, Effects) {
	fx := EffectStopTicking | EffectTrackEnded
	s.Elapsed = 0
	if !s.Autoplay {
		s.Playing = false
		return s, fx
	}

	n := len(s.Playlist)
	s.Index = (s.Index + 1) % n
	s.Playing = true
	return s, fx | EffectTrackChanged | EffectStartTicking
}

// Progress returns the position as a fraction of the duration in [0,1].
func (s State) Progress() float64 {
	d := s.Track().Duration
	if d <= 0 {
		return 0
	}
	return math.Min(1, s.Elapsed/d)
}

// View is a render-ready snapshot of a State.
type View struct {
	Title    string
	Artist   string
	Artwork  string
	TimeText string
	Progress float64
	Playing  bool
	Autoplay bool
	Volume   float64
	Tier     VolumeTier
	Index    int
	Playlist []model.Track
}

// View builds the snapshot the renderer consumes.
func (s State) View() View {
	t := s.Track()
	return View{
		Title:    t.Title,
		Artist:   t.Artist,
		Artwork:  t.Artwork,
		TimeText: model.FormatClock(s.Elapsed) + " / " + model.FormatClock(t.Duration),
		Progress: s.Progress(),
		Playing:  s.Playing,
		Autoplay: s.Autoplay,
		Volume:   s.Volume,
		Tier:     s.VolumeTier(),
		Index:    s.Index,
		Playlist: s.Playlist,
	}
}

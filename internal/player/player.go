package player

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/handiism/deskwidgets/internal/model"
)

// Renderer receives a snapshot after every state change.
//
// Render is called with the player's lock held and must not call back into
// the Player.
type Renderer interface {
	Render(v View)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(v View)

// Render implements Renderer.
func (f RendererFunc) Render(v View) { f(v) }

// Option configures a Player.
type Option func(*Player)

// WithScheduler replaces the default TimeScheduler.
func WithScheduler(s Scheduler) Option {
	return func(p *Player) {
		p.scheduler = s
	}
}

// WithTickPeriod sets the real time between ticks. The default is one second,
// so one simulated second passes per real second.
func WithTickPeriod(d time.Duration) Option {
	return func(p *Player) {
		if d > 0 {
			p.period = d
		}
	}
}

// WithAutoplay sets the initial autoplay flag.
func WithAutoplay(enabled bool) Option {
	return func(p *Player) {
		p.state.Autoplay = enabled
	}
}

// WithVolume sets the initial volume level.
func WithVolume(level float64) Option {
	return func(p *Player) {
		p.state = p.state.SetVolume(level)
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(p *Player) {
		if l != nil {
			p.logger = l
		}
	}
}

// Player owns a playback State, the tick task that drives it, and the
// renderer that displays it.
//
// At most one tick task is alive at a time. Every task carries a generation
// number and ticks from a cancelled generation are dropped, so a tick that
// was already in flight when the task was stopped cannot advance the new track.
//
// Example:
//
//	p, err := player.New(player.DefaultPlaylist(), renderer, player.WithAutoplay(true))
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//	p.Play()
type Player struct {
	mu        sync.Mutex
	state     State
	renderer  Renderer
	scheduler Scheduler
	period    time.Duration
	task      Task
	gen       uint64
	logger    *slog.Logger
}

// New creates a Player on the first track of playlist and renders it.
func New(playlist []model.Track, renderer Renderer, opts ...Option) (*Player, error) {
	state, err := NewState(playlist)
	if err != nil {
		return nil, err
	}

	p := &Player{
		state:     state,
		renderer:  renderer,
		scheduler: TimeScheduler{},
		period:    time.Second,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.apply(p.state.Load(0))
	return p, nil
}

// State returns a copy of the current state.
func (p *Player) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Ticking reports whether a tick task is alive.
func (p *Player) Ticking() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.task != nil
}

func (p *Player) LoadTrack(index int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.apply(p.state.Load(index))
}

func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.apply(p.state.Play())
}

func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.apply(p.state.Pause())
}

func (p *Player) TogglePlay() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.apply(p.state.TogglePlay())
}

func (p *Player) PrevTrack() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.apply(p.state.Prev())
}

func (p *Player) NextTrack() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.apply(p.state.Next())
}

func (p *Player) SelectTrack(index int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.apply(p.state.Select(index))
}

// Seek moves to a normalised position in [0,1].
func (p *Player) Seek(fraction float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.apply(p.state.Seek(fraction), 0)
}

// SeekOffset seeks from a pointer offset over a bar of the given width.
func (p *Player) SeekOffset(offset, width float64) {
	if width <= 0 {
		return
	}
	p.Seek(offset / width)
}

// SetVolume sets the volume level in [0,1].
func (p *Player) SetVolume(level float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.apply(p.state.SetVolume(level), 0)
}

func (p *Player) ToggleAutoplay() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.apply(p.state.ToggleAutoplay(), 0)
}

// Close stops the tick task.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stopTicking()
}

func (p *Player) onTick(gen uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen || p.task == nil {
		return
	}
	p.apply(p.state.Tick())
}

// apply installs the next state and carries out its effects. Caller holds mu.
func (p *Player) apply(next State, fx Effects) {
	prev := p.state
	p.state = next

	if fx.Has(EffectStopTicking) {
		p.stopTicking()
	}
	if fx.Has(EffectTrackEnded) {
		p.logger.Debug("track ended", slog.String("track", prev.Track().DisplayName()))
	}
	if fx.Has(EffectTrackChanged) {
		p.logger.Debug("track loaded",
			slog.Int("index", next.Index),
			slog.String("track", next.Track().DisplayName()))
	}
	if fx.Has(EffectStartTicking) {
		p.startTicking()
	}

	if p.renderer != nil {
		p.renderer.Render(next.View())
	}
}

func (p *Player) startTicking() {
	p.stopTicking()
	p.gen++
	gen := p.gen
	p.task = p.scheduler.Every(p.period, func() { p.onTick(gen) })
}

func (p *Player) stopTicking() {
	if p.task == nil {
		return
	}
	p.task.Stop()
	p.task = nil
	p.gen++
}

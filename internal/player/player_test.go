package player

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// manualScheduler keeps every task and fires them on demand.
type manualScheduler struct {
	tasks []*manualTask
}

type manualTask struct {
	fn      func()
	stopped bool
}

func (t *manualTask) Stop() { t.stopped = true }

func (s *manualScheduler) Every(_ time.Duration, fn func()) Task {
	t := &manualTask{fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

func (s *manualScheduler) active() []*manualTask {
	var out []*manualTask
	for _, t := range s.tasks {
		if !t.stopped {
			out = append(out, t)
		}
	}
	return out
}

// tick fires every live task once.
func (s *manualScheduler) tick() {
	for _, t := range s.active() {
		t.fn()
	}
}

type recordingRenderer struct {
	views []View
}

func (r *recordingRenderer) Render(v View) { r.views = append(r.views, v) }

func newTestPlayer(t *testing.T, durations ...float64) (*Player, *manualScheduler, *recordingRenderer) {
	t.Helper()
	sched := &manualScheduler{}
	rec := &recordingRenderer{}
	p, err := New(twoTracks(durations[0], durations[1]), rec, WithScheduler(sched))
	require.NoError(t, err)
	return p, sched, rec
}

func TestPlayer_RendersOnCreate(t *testing.T) {
	_, _, rec := newTestPlayer(t, 10, 10)
	require.Len(t, rec.views, 1)
	assert.Equal(t, "first", rec.views[0].Title)
	assert.Equal(t, "0:00 / 0:10", rec.views[0].TimeText)
}

func TestPlayer_SingleTickSource(t *testing.T) {
	p, sched, _ := newTestPlayer(t, 100, 100)

	p.Play()
	p.Play()
	p.Play()

	assert.Len(t, sched.active(), 1)
	assert.Len(t, sched.tasks, 1)

	p.NextTrack()
	p.PrevTrack()
	assert.Len(t, sched.active(), 1)

	sched.tick()
	assert.Equal(t, 1.0, p.State().Elapsed)
}

func TestPlayer_PauseCancelsTick(t *testing.T) {
	p, sched, _ := newTestPlayer(t, 100, 100)

	p.Play()
	sched.tick()
	p.Pause()

	assert.Empty(t, sched.active())
	assert.False(t, p.Ticking())
	assert.Equal(t, 1.0, p.State().Elapsed)
}

func TestPlayer_StaleTickIgnored(t *testing.T) {
	p, sched, _ := newTestPlayer(t, 100, 100)

	p.Play()
	stale := sched.tasks[0].fn
	p.NextTrack()

	stale()
	assert.Zero(t, p.State().Elapsed)

	sched.tick()
	assert.Equal(t, 1.0, p.State().Elapsed)
}

func TestPlayer_TicksUntilEnd(t *testing.T) {
	p, sched, _ := newTestPlayer(t, 4, 10)

	p.Play()
	for n := 1; n < 4; n++ {
		sched.tick()
		assert.Equal(t, float64(n), p.State().Elapsed)
	}

	sched.tick()
	s := p.State()
	assert.Zero(t, s.Elapsed)
	assert.False(t, s.Playing)
	assert.Empty(t, sched.active())
}

func TestPlayer_AutoplayEndToEnd(t *testing.T) {
	p, sched, rec := newTestPlayer(t, 3, 10)
	p.ToggleAutoplay()
	p.Play()

	for i := 0; i < 3; i++ {
		sched.tick()
	}

	s := p.State()
	assert.Equal(t, 1, s.Index)
	assert.True(t, s.Playing)
	assert.Zero(t, s.Elapsed)
	assert.Len(t, sched.active(), 1)
	assert.Equal(t, "second", rec.views[len(rec.views)-1].Title)
}

func TestPlayer_SeekOffset(t *testing.T) {
	p, _, rec := newTestPlayer(t, 120, 10)

	p.SeekOffset(30, 120)
	assert.Equal(t, 30.0, p.State().Elapsed)
	assert.Equal(t, "0:30 / 2:00", rec.views[len(rec.views)-1].TimeText)

	p.SeekOffset(10, 0)
	assert.Equal(t, 30.0, p.State().Elapsed)
}

func TestPlayer_Volume(t *testing.T) {
	p, _, rec := newTestPlayer(t, 10, 10)

	p.SetVolume(0)
	assert.Equal(t, VolumeMuted, rec.views[len(rec.views)-1].Tier)

	p.SetVolume(0.3)
	assert.Equal(t, VolumeLow, rec.views[len(rec.views)-1].Tier)
}

func TestPlayer_SelectTrack(t *testing.T) {
	p, _, _ := newTestPlayer(t, 10, 10)
	p.SelectTrack(1)
	assert.Equal(t, 1, p.State().Index)

	p.LoadTrack(0)
	assert.Equal(t, 0, p.State().Index)
}

func TestPlayer_TimeScheduler(t *testing.T) {
	var mu sync.Mutex
	var ticks int
	task := TimeScheduler{}.Every(time.Millisecond, func() {
		mu.Lock()
		ticks++
		mu.Unlock()
	})

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return ticks >= 3
	}, time.Second, time.Millisecond)

	task.Stop()
	task.Stop()
}

func TestPlayer_CloseStopsTicking(t *testing.T) {
	p, sched, _ := newTestPlayer(t, 10, 10)
	p.Play()
	p.Close()
	assert.Empty(t, sched.active())
}

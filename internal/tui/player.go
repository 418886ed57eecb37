package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/handiism/deskwidgets/internal/model"
	"github.com/handiism/deskwidgets/internal/player"
)

// Screen rows of the player view, used to map mouse clicks.
const (
	playerBarRow      = 5
	playerPlaylistRow = 9
)

const (
	volumeStep = 0.1
	seekStep   = 0.1
)

// playerTickMsg is one simulated second. Ticks from an older generation
// were scheduled before the last stop and are dropped.
type playerTickMsg struct {
	gen uint64
}

type playerModel struct {
	state   player.State
	title   string
	period  time.Duration
	gen     uint64
	ticking bool

	bar    progress.Model
	keys   playerKeyMap
	help   help.Model
	logger *slog.Logger
}

func newPlayerModel(playlist model.Playlist, autoplay bool, volume float64, period time.Duration, logger *slog.Logger) (playerModel, error) {
	st, err := player.NewState(playlist.Tracks)
	if err != nil {
		return playerModel{}, err
	}
	st.Autoplay = autoplay
	st = st.SetVolume(volume)
	st, _ = st.Load(0)

	if period <= 0 {
		period = time.Second
	}

	bar := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	bar.Width = 40

	return playerModel{
		state:  st,
		title:  playlist.Title,
		period: period,
		bar:    bar,
		keys:   newPlayerKeyMap(),
		help:   help.New(),
		logger: logger,
	}, nil
}

func (m playerModel) update(msg tea.Msg) (playerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.Width = min(max(msg.Width-4, 20), 80)
		m.help.Width = msg.Width

	case playerTickMsg:
		if !m.ticking || msg.gen != m.gen {
			return m, nil
		}
		next, fx := m.state.Tick()
		if fx == 0 {
			m.state = next
			return m, m.tick()
		}
		return m.apply(next, fx)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Play):
			return m.apply(m.state.TogglePlay())
		case key.Matches(msg, m.keys.Prev):
			return m.apply(m.state.Prev())
		case key.Matches(msg, m.keys.Next):
			return m.apply(m.state.Next())
		case key.Matches(msg, m.keys.Select):
			return m.apply(m.state.Select(int(msg.String()[0] - '1')))
		case key.Matches(msg, m.keys.SeekBack):
			m.state = m.state.Seek(m.state.Progress() - seekStep)
		case key.Matches(msg, m.keys.SeekFwd):
			m.state = m.state.Seek(m.state.Progress() + seekStep)
		case key.Matches(msg, m.keys.VolDown):
			m.state = m.state.SetVolume(m.state.Volume - volumeStep)
		case key.Matches(msg, m.keys.VolUp):
			m.state = m.state.SetVolume(m.state.Volume + volumeStep)
		case key.Matches(msg, m.keys.Autoplay):
			m.state = m.state.ToggleAutoplay()
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		switch {
		case msg.Y == playerBarRow && msg.X < m.bar.Width:
			m.state = m.state.Seek(float64(msg.X) / float64(m.bar.Width))
		case msg.Y >= playerPlaylistRow && msg.Y < playerPlaylistRow+len(m.state.Playlist):
			return m.apply(m.state.Select(msg.Y - playerPlaylistRow))
		}
	}
	return m, nil
}

// apply installs the next state and turns its effects into commands.
func (m playerModel) apply(next player.State, fx player.Effects) (playerModel, tea.Cmd) {
	prev := m.state
	m.state = next

	if fx.Has(player.EffectStopTicking) {
		m.ticking = false
		m.gen++
	}
	if fx.Has(player.EffectTrackEnded) {
		m.logger.Debug("track ended", slog.String("track", prev.Track().DisplayName()))
	}
	if fx.Has(player.EffectTrackChanged) {
		m.logger.Debug("track loaded",
			slog.Int("index", next.Index),
			slog.String("track", next.Track().DisplayName()))
	}
	if fx.Has(player.EffectStartTicking) {
		m.ticking = true
		m.gen++
		return m, m.tick()
	}
	return m, nil
}

func (m playerModel) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(m.period, func(_ time.Time) tea.Msg {
		return playerTickMsg{gen: gen}
	})
}

func (m playerModel) view() string {
	v := m.state.View()
	var b strings.Builder

	title := "🎵 Player"
	if m.title != "" {
		title += " · " + m.title
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	b.WriteString(v.Artwork + "  " + highlightStyle.Render(v.Title))
	b.WriteString("\n")
	b.WriteString("   " + dimStyle.Render(v.Artist))
	b.WriteString("\n\n")

	b.WriteString(m.bar.ViewAs(v.Progress))
	b.WriteString("\n")

	status := "⏸ paused"
	if v.Playing {
		status = "▶ playing"
	}
	autoplay := "autoplay off"
	if v.Autoplay {
		autoplay = "autoplay on"
	}
	b.WriteString(infoStyle.Render(fmt.Sprintf("%s  %s  %s %3d%%  %s",
		v.TimeText, status, v.Tier, int(v.Volume*100+0.5), autoplay)))
	b.WriteString("\n\n")

	b.WriteString(subtitleStyle.Render("Playlist"))
	b.WriteString("\n")
	for i, t := range v.Playlist {
		line := fmt.Sprintf("%d. %s %s  %s", i+1, t.Artwork, t.DisplayName(), t.DurationText())
		if i == v.Index {
			b.WriteString(highlightStyle.Render("› " + line))
		} else {
			b.WriteString(dimStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

package tui

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/handiism/deskwidgets/internal/gallery"
	"github.com/handiism/deskwidgets/internal/loader"
	"github.com/handiism/deskwidgets/internal/model"
)

// swipeCellWidth converts terminal columns to pointer pixels for the
// swipe threshold.
const swipeCellWidth = 8

// Message types
type (
	// thumbsLoadedMsg carries the result of the initial load.
	thumbsLoadedMsg struct {
		thumbs []loader.Thumbnail
		err    error
	}

	// thumbLoadedMsg carries one image added at runtime.
	thumbLoadedMsg struct {
		thumb loader.Thumbnail
	}

	// loadTickMsg polls the loader while images are loading.
	loadTickMsg struct{}
)

type galleryModel struct {
	g      *gallery.Gallery
	loader *loader.Loader
	ctx    context.Context

	thumbs  map[string]*image.RGBA
	failed  map[string]error
	loading int
	loaded  int32
	total   int32

	cursor  int
	adding  bool
	input   textinput.Model
	spinner spinner.Model
	alert   string

	pressed bool
	pressX  int

	keys   galleryKeyMap
	help   help.Model
	logger *slog.Logger
}

func newGalleryModel(ctx context.Context, g *gallery.Gallery, l *loader.Loader, logger *slog.Logger) galleryModel {
	ti := textinput.New()
	ti.Placeholder = "path/or/https://url.jpg  alt text"
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	m := galleryModel{
		g:       g,
		loader:  l,
		ctx:     ctx,
		thumbs:  make(map[string]*image.RGBA),
		failed:  make(map[string]error),
		input:   ti,
		spinner: sp,
		keys:    newGalleryKeyMap(),
		help:    help.New(),
		logger:  logger,
	}
	if l != nil && g.State().Len() > 0 {
		m.loading = 1
	}
	return m
}

// init starts loading every image of the collection.
func (m galleryModel) init() tea.Cmd {
	if m.loading == 0 {
		return nil
	}
	return tea.Batch(m.loadAll(m.g.State().Images), m.spinner.Tick, m.tickProgress())
}

func (m galleryModel) loadAll(images []model.Image) tea.Cmd {
	ctx, l := m.ctx, m.loader
	return func() tea.Msg {
		thumbs, err := l.Load(ctx, images)
		return thumbsLoadedMsg{thumbs: thumbs, err: err}
	}
}

func (m galleryModel) loadOne(img model.Image) tea.Cmd {
	ctx, l := m.ctx, m.loader
	return func() tea.Msg {
		return thumbLoadedMsg{thumb: l.LoadOne(ctx, img)}
	}
}

// tickProgress returns a command to poll loader progress.
func (m galleryModel) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return loadTickMsg{}
	})
}

func (m galleryModel) update(msg tea.Msg) (galleryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case spinner.TickMsg:
		if m.loading == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loadTickMsg:
		if m.loading == 0 || m.loader == nil {
			return m, nil
		}
		m.refreshProgress()
		return m, m.tickProgress()

	case thumbsLoadedMsg:
		m.loading = max(m.loading-1, 0)
		m.refreshProgress()
		for _, t := range msg.thumbs {
			m.store(t)
		}
		if msg.err != nil {
			m.logger.Warn("image loading interrupted", slog.String("error", msg.err.Error()))
		}
		return m, nil

	case thumbLoadedMsg:
		m.loading = max(m.loading-1, 0)
		m.refreshProgress()
		m.store(msg.thumb)
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg), nil

	case tea.KeyMsg:
		if m.adding {
			return m.updateInput(msg)
		}
		return m.updateKey(msg)
	}

	if m.adding {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// refreshProgress copies the loader counters. Failed images count as done.
func (m *galleryModel) refreshProgress() {
	if m.loader == nil {
		return
	}
	loaded, failed, total := m.loader.GetProgress()
	m.loaded, m.total = loaded+failed, total
}

func (m *galleryModel) store(t loader.Thumbnail) {
	if t.Err != nil {
		m.failed[t.Image.Source] = t.Err
		return
	}
	delete(m.failed, t.Image.Source)
	m.thumbs[t.Image.Source] = t.Pixels
}

// updateMouse treats a press/release pair inside the open lightbox as a swipe.
func (m galleryModel) updateMouse(msg tea.MouseMsg) galleryModel {
	if !m.g.State().Open {
		m.pressed = false
		return m
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			m.pressed = true
			m.pressX = msg.X
		}
	case tea.MouseActionRelease:
		if m.pressed {
			m.pressed = false
			m.g.HandleSwipe(float64(m.pressX*swipeCellWidth), float64(msg.X*swipeCellWidth))
		}
	}
	return m
}

func (m galleryModel) updateKey(msg tea.KeyMsg) (galleryModel, tea.Cmd) {
	m.alert = ""
	st := m.g.State()

	switch {
	case key.Matches(msg, m.keys.Add):
		m.adding = true
		m.input.Reset()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Remove):
		index := m.cursor
		if st.Open {
			index = st.Current
		}
		if err := m.g.RemoveImage(index); err != nil {
			m.alert = err.Error()
		}
		m.cursor = min(m.cursor, max(m.g.State().Len()-1, 0))
		return m, nil
	}

	if st.Open {
		m.g.HandleKey(msg.String())
		m.cursor = m.g.State().Current
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < st.Len()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Open):
		m.g.Open(m.cursor)
	}
	return m, nil
}

func (m galleryModel) updateInput(msg tea.KeyMsg) (galleryModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.adding = false
		m.input.Blur()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		m.adding = false
		m.input.Blur()
		src, alt := parseImageInput(m.input.Value())
		if src == "" {
			return m, nil
		}
		m.g.AddImage(src, alt)
		if m.loader == nil {
			return m, nil
		}
		m.loading++
		m.total++
		cmd := m.loadOne(model.Image{Source: src, Alt: alt})
		if m.loading == 1 {
			cmd = tea.Batch(cmd, m.spinner.Tick, m.tickProgress())
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// parseImageInput splits "source alt text". A missing alt text is derived
// from the file name.
func parseImageInput(value string) (src, alt string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", ""
	}
	src, alt, _ = strings.Cut(value, " ")
	alt = strings.TrimSpace(alt)
	if alt == "" {
		alt = model.TitleFromPath(src)
	}
	return src, alt
}

func (m galleryModel) view() string {
	var b strings.Builder
	v := m.g.State().View()

	b.WriteString(titleStyle.Render("🖼  Gallery"))
	b.WriteString("\n\n")

	if v.Open {
		b.WriteString(m.viewLightbox(v))
	} else {
		b.WriteString(m.viewList(v))
	}

	if m.adding {
		b.WriteString("\n")
		b.WriteString(subtitleStyle.Render("Add image:"))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	if m.alert != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("✗ " + m.alert))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(galleryHelp{keys: m.keys, open: v.Open, adding: m.adding, controls: v.ShowControls}))
	return b.String()
}

func (m galleryModel) viewList(v gallery.View) string {
	var b strings.Builder

	if m.loading > 0 {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(subtitleStyle.Render(fmt.Sprintf("Loading images... %d/%d", m.loaded, m.total)))
		b.WriteString("\n\n")
	}

	if len(v.Images) == 0 {
		b.WriteString(dimStyle.Render("No images. Press a to add one."))
		b.WriteString("\n")
		return b.String()
	}

	for i, img := range v.Images {
		line := fmt.Sprintf("%d. %s %s", i+1, m.status(img), img.Label())
		if i == m.cursor {
			b.WriteString(highlightStyle.Render("› " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m galleryModel) viewLightbox(v gallery.View) string {
	var b strings.Builder

	header := infoStyle.Render(v.Counter)
	if v.ShowControls {
		header = dimStyle.Render("‹ prev  ") + header + dimStyle.Render("  next ›")
	}
	b.WriteString(header)
	b.WriteString("\n\n")

	switch {
	case m.thumbs[v.Image.Source] != nil:
		b.WriteString(renderHalfBlocks(m.thumbs[v.Image.Source]))
	case m.failed[v.Image.Source] != nil:
		b.WriteString(errorStyle.Render("✗ " + m.failed[v.Image.Source].Error()))
	default:
		b.WriteString(m.spinner.View() + " " + dimStyle.Render("loading "+v.Image.Source))
	}
	b.WriteString("\n\n")

	b.WriteString(subtitleStyle.Render(v.Image.Label()))
	b.WriteString("\n")
	return b.String()
}

func (m galleryModel) status(img model.Image) string {
	switch {
	case m.thumbs[img.Source] != nil:
		return successStyle.Render("✓")
	case m.failed[img.Source] != nil:
		return errorStyle.Render("✗")
	default:
		return warningStyle.Render("…")
	}
}

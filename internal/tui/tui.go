package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/handiism/deskwidgets/internal/config"
	"github.com/handiism/deskwidgets/internal/gallery"
	"github.com/handiism/deskwidgets/internal/loader"
	"github.com/handiism/deskwidgets/internal/logging"
	"github.com/handiism/deskwidgets/internal/model"
	"github.com/handiism/deskwidgets/internal/player"
)

// Screen is the widget currently shown.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenCalculator
	ScreenPlayer
	ScreenGallery
)

var menuItems = []struct {
	screen Screen
	name   string
	desc   string
}{
	{ScreenCalculator, "Calculator", "four operations, keyboard driven"},
	{ScreenPlayer, "Player", "simulated playback of a playlist"},
	{ScreenGallery, "Gallery", "image lightbox with swipe navigation"},
}

// ParseScreen maps an -app flag value to a Screen. Empty selects the menu.
func ParseScreen(name string) (Screen, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "menu":
		return ScreenMenu, nil
	case "calc", "calculator":
		return ScreenCalculator, nil
	case "player", "music":
		return ScreenPlayer, nil
	case "gallery", "images":
		return ScreenGallery, nil
	}
	return ScreenMenu, fmt.Errorf("unknown app %q (want calculator, player or gallery)", name)
}

// Options configures the TUI.
type Options struct {
	Screen   Screen
	Settings *config.Settings
	Playlist model.Playlist
	Images   []model.Image
	Logger   *slog.Logger
}

// Model is the Bubble Tea model for the TUI. It owns one model per widget;
// the player keeps running while another screen is shown.
type Model struct {
	screen Screen
	cursor int

	calc    calcModel
	player  playerModel
	gallery galleryModel

	keys menuKeyMap
	help help.Model

	ctx    context.Context
	cancel context.CancelFunc
	logger *slog.Logger
}

// NewModel creates a new TUI model.
func NewModel(opts Options) (Model, error) {
	settings := opts.Settings
	if settings == nil {
		settings = config.DefaultSettings()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	playlist := opts.Playlist
	if len(playlist.Tracks) == 0 {
		playlist = model.Playlist{Title: "Demo", Tracks: player.DefaultPlaylist()}
	}
	pm, err := newPlayerModel(playlist, settings.Autoplay, settings.Volume, settings.TickPeriod(), logger)
	if err != nil {
		return Model{}, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	g := gallery.New(opts.Images, nil, settings.GalleryOptions(logger)...)
	l := loader.NewLoader(settings, loader.LogProgress(logger))

	return Model{
		screen:  opts.Screen,
		calc:    newCalcModel(logger),
		player:  pm,
		gallery: newGalleryModel(ctx, g, l, logger),
		keys:    newMenuKeyMap(),
		help:    help.New(),
		ctx:     ctx,
		cancel:  cancel,
		logger:  logger,
	}, nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.gallery.init()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.calc.help.Width = msg.Width
		m.player, _ = m.player.update(msg)
		m.gallery, _ = m.gallery.update(msg)
		return m, nil

	case playerTickMsg:
		m.player, cmd = m.player.update(msg)
		return m, cmd

	case thumbsLoadedMsg, thumbLoadedMsg, loadTickMsg, spinner.TickMsg:
		m.gallery, cmd = m.gallery.update(msg)
		return m, cmd

	case tea.KeyMsg:
		if key.Matches(msg, globalKeys.Quit) {
			m.cancel()
			return m, tea.Quit
		}
		if key.Matches(msg, globalKeys.Back) && m.screen != ScreenMenu {
			m.screen = ScreenMenu
			return m, nil
		}
	}

	switch m.screen {
	case ScreenCalculator:
		m.calc, cmd = m.calc.update(msg)
	case ScreenPlayer:
		m.player, cmd = m.player.update(msg)
	case ScreenGallery:
		m.gallery, cmd = m.gallery.update(msg)
	default:
		return m.updateMenu(msg)
	}
	return m, cmd
}

func (m Model) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.cancel()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(menuItems)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Choose):
			if s := msg.String(); s >= "1" && s <= "3" {
				m.cursor = int(s[0] - '1')
			}
			m.screen = menuItems[m.cursor].screen
		}
	}
	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	switch m.screen {
	case ScreenCalculator:
		return m.calc.view()
	case ScreenPlayer:
		return m.player.view()
	case ScreenGallery:
		return m.gallery.view()
	}
	return m.viewMenu()
}

func (m Model) viewMenu() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("✨ Desk Widgets"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Pick a widget"))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := fmt.Sprintf("%d. %-12s", i+1, item.name)
		if i == m.cursor {
			b.WriteString(highlightStyle.Render("› "+line) + " " + infoStyle.Render(item.desc))
		} else {
			b.WriteString("  " + line + " " + dimStyle.Render(item.desc))
		}
		b.WriteString("\n")
	}

	if m.player.state.Playing {
		b.WriteString("\n")
		b.WriteString(successStyle.Render("▶ " + m.player.state.Track().DisplayName()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Run starts the TUI application.
func Run(opts Options) error {
	m, err := NewModel(opts)
	if err != nil {
		return err
	}
	defer m.cancel()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

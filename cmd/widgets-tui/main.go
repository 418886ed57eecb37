package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/handiism/deskwidgets/internal/audio"
	"github.com/handiism/deskwidgets/internal/catalog"
	"github.com/handiism/deskwidgets/internal/config"
	"github.com/handiism/deskwidgets/internal/http"
	"github.com/handiism/deskwidgets/internal/logging"
	"github.com/handiism/deskwidgets/internal/model"
	"github.com/handiism/deskwidgets/internal/tui"
)

func main() {
	var (
		appFlag      = flag.String("app", "", "Widget to open: calculator, player or gallery (default: menu)")
		configFlag   = flag.String("config", "", "Path to config file")
		musicFlag    = flag.String("music", "", "Directory of MP3 files (overrides config)")
		playlistFlag = flag.String("playlist", "", "JSON playlist manifest (overrides config)")
		imagesFlag   = flag.String("images", "", "Gallery source: directory, HTML file or URL (overrides config)")
		logFlag      = flag.String("log", "", "Log file (overrides config)")
		logLevelFlag = flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	)
	flag.Parse()

	if err := run(*appFlag, *configFlag, *musicFlag, *playlistFlag, *imagesFlag, *logFlag, *logLevelFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(app, configPath, music, manifest, images, logPath, logLevel string) error {
	screen, err := tui.ParseScreen(app)
	if err != nil {
		return err
	}

	if configPath == "" {
		configPath = config.DefaultPath()
	}
	settings := config.DefaultSettings()
	if configPath != "" {
		settings, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	if music != "" {
		settings.MusicDir = music
		settings.PlaylistManifest = ""
	}
	if manifest != "" {
		settings.PlaylistManifest = manifest
	}
	if images != "" {
		settings.ImagesSource = images
	}

	logger, closeLog, err := logging.New(
		logging.Resolve(logPath, settings.LogFile),
		logging.Resolve(logLevel, settings.LogLevel),
	)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx := context.Background()
	playlist, err := catalog.LoadPlaylist(ctx, settings.PlaylistManifest, settings.MusicDir, audio.NewTagReader(settings.ToTagConfig()))
	if err != nil {
		return fmt.Errorf("failed to load playlist: %w", err)
	}

	var gallery []model.Image
	if settings.ImagesSource != "" {
		client := http.NewClient(http.WithTimeout(settings.HTTPTimeout()))
		gallery, err = catalog.LoadImagesFrom(ctx, client, settings.ImagesSource)
		if err != nil {
			return fmt.Errorf("failed to load images: %w", err)
		}
	}

	logger.Info("starting",
		"screen", app,
		"tracks", len(playlist.Tracks),
		"images", len(gallery))

	return tui.Run(tui.Options{
		Screen:   screen,
		Settings: settings,
		Playlist: playlist,
		Images:   gallery,
		Logger:   logger,
	})
}

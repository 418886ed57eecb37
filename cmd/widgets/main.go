package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/handiism/deskwidgets/internal/audio"
	"github.com/handiism/deskwidgets/internal/calculator"
	"github.com/handiism/deskwidgets/internal/catalog"
	"github.com/handiism/deskwidgets/internal/config"
	"github.com/handiism/deskwidgets/internal/http"
	ioutils "github.com/handiism/deskwidgets/internal/io"
	"github.com/handiism/deskwidgets/internal/loader"
	"github.com/handiism/deskwidgets/internal/logging"
	"github.com/handiism/deskwidgets/internal/model"
	"github.com/handiism/deskwidgets/internal/player"
)

func main() {
	// Command line flags
	var (
		configFlag   = flag.String("config", "", "Path to config file")
		writeFlag    = flag.String("write-config", "", `Write the effective settings to this file ("-" for the -config path)`)
		calcFlag     = flag.String("calc", "", `Key sequence to replay on the calculator, e.g. "5+3*2="`)
		exportFlag   = flag.String("export", "", `Write the playlist to this file ("-" for stdout)`)
		formatFlag   = flag.String("format", "", "Playlist format: m3u, pls, wpl, zpl (overrides config)")
		musicFlag    = flag.String("music", "", "Directory of MP3 files (overrides config)")
		playlistFlag = flag.String("playlist", "", "JSON playlist manifest (overrides config)")
		imagesFlag   = flag.String("list-images", "", "List the gallery order of a directory, HTML file or URL")
		loadFlag     = flag.Bool("load", false, "With -list-images, load every image and report failures")
		simulateFlag = flag.Int("simulate", 0, "Play the playlist headless for this many simulated seconds")
		tickFlag     = flag.Duration("tick", 50*time.Millisecond, "Real time per simulated second for -simulate")
		verboseFlag  = flag.Bool("verbose", false, "Show verbose output")
		logFlag      = flag.String("log", "", "Log file (overrides config)")
		logLevelFlag = flag.String("log-level", "", "Log level: debug, info, warn, error (overrides config)")
	)

	flag.Parse()

	if *calcFlag == "" && *exportFlag == "" && *imagesFlag == "" && *simulateFlag <= 0 && *writeFlag == "" {
		fmt.Println("Desk Widgets - calculator, playback simulator and gallery")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println(`  widgets -calc "12+7*2="`)
		fmt.Println("  widgets -export playlist.m3u [-music DIR | -playlist FILE] [-format m3u]")
		fmt.Println("  widgets -list-images DIR|FILE|URL [-load]")
		fmt.Println("  widgets -simulate 30 [-tick 50ms]")
		fmt.Println("  widgets -write-config - [-music DIR] [-format pls]")
		fmt.Println()
		fmt.Println("For interactive mode, use: widgets-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Load config
	configPath := *configFlag
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	settings := config.DefaultSettings()
	if configPath != "" {
		var err error
		settings, err = config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *formatFlag != "" {
		if _, err := model.ParsePlaylistFormat(*formatFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		settings.PlaylistFormat = *formatFlag
	}
	if *musicFlag != "" {
		settings.MusicDir = *musicFlag
		settings.PlaylistManifest = ""
	}
	if *playlistFlag != "" {
		settings.PlaylistManifest = *playlistFlag
	}

	if *writeFlag != "" {
		path := *writeFlag
		if path == "-" {
			path = configPath
		}
		if err := writeConfig(settings, path); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing config: %v\n", err)
			os.Exit(1)
		}
	}

	logger, closeLog, err := logging.New(
		logging.Resolve(*logFlag, settings.LogFile),
		logging.Resolve(*logLevelFlag, settings.LogLevel),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	// Handle interrupts
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	status := 0
	if *calcFlag != "" {
		if err := runCalc(*calcFlag, logger); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			status = 1
		}
	}

	if *exportFlag != "" || *simulateFlag > 0 {
		playlist, err := loadPlaylist(ctx, settings)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading playlist: %v\n", err)
			os.Exit(1)
		}

		if *exportFlag != "" {
			if err := exportPlaylist(ctx, settings, playlist, *exportFlag); err != nil {
				fmt.Fprintf(os.Stderr, "Error exporting playlist: %v\n", err)
				status = 1
			}
		}
		if *simulateFlag > 0 {
			if err := simulate(ctx, settings, playlist, *simulateFlag, *tickFlag, logger); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				status = 1
			}
		}
	}

	if *imagesFlag != "" {
		if err := listImages(ctx, settings, *imagesFlag, *loadFlag, *verboseFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error listing images: %v\n", err)
			status = 1
		}
	}

	if ctx.Err() != nil {
		fmt.Println("\nInterrupted.")
		status = 130
	}
	if status != 0 {
		closeLog()
		os.Exit(status)
	}
}

// writeConfig saves settings, including flag overrides, as a config file.
func writeConfig(settings *config.Settings, path string) error {
	if path == "" {
		return errors.New("no config path")
	}
	if err := settings.Save(path); err != nil {
		return err
	}
	fmt.Printf("✓ Wrote settings to %s\n", path)
	return nil
}

// runCalc replays keys and prints the final display. A failed computation
// is returned after the display is printed.
func runCalc(keys string, logger *slog.Logger) error {
	var failure error
	calc := calculator.New(nil,
		calculator.WithLogger(logger),
		calculator.WithNotifier(calculator.NotifierFunc(func(err error) {
			failure = err
		})),
	)
	fmt.Println(calc.Keys(keys))
	return failure
}

func loadPlaylist(ctx context.Context, settings *config.Settings) (model.Playlist, error) {
	reader := audio.NewTagReader(settings.ToTagConfig())
	playlist, err := catalog.LoadPlaylist(ctx, settings.PlaylistManifest, settings.MusicDir, reader)
	if err != nil {
		return model.Playlist{}, err
	}
	if len(playlist.Tracks) == 0 {
		playlist = model.Playlist{Title: "Demo", Tracks: player.DefaultPlaylist()}
	}
	return playlist, nil
}

func exportPlaylist(ctx context.Context, settings *config.Settings, playlist model.Playlist, path string) error {
	creator := audio.NewPlaylistCreator(settings.Format(), settings.M3UExtended)
	content := creator.CreatePlaylist(playlist)

	if path == "-" {
		fmt.Print(content)
		return nil
	}
	if filepath.Ext(path) == "" {
		path += creator.Extension()
	}
	if err := ioutils.WriteFile(ctx, path, []byte(content)); err != nil {
		return err
	}
	fmt.Printf("✓ Wrote %d track(s) to %s\n", len(playlist.Tracks), path)
	return nil
}

// countingScheduler stops the simulation after a number of ticks.
type countingScheduler struct {
	player.TimeScheduler
	limit int64
	ticks atomic.Int64
	done  chan struct{}
	once  sync.Once
}

func (s *countingScheduler) Every(period time.Duration, fn func()) player.Task {
	return s.TimeScheduler.Every(period, func() {
		fn()
		if s.ticks.Add(1) == s.limit {
			s.once.Do(func() { close(s.done) })
		}
	})
}

func simulate(ctx context.Context, settings *config.Settings, playlist model.Playlist, seconds int, tick time.Duration, logger *slog.Logger) error {
	scheduler := &countingScheduler{limit: int64(seconds), done: make(chan struct{})}
	var last string

	renderer := player.RendererFunc(func(v player.View) {
		line := fmt.Sprintf("%s %-24s %s  %s", v.Artwork, v.Title, v.TimeText, v.Tier)
		if line != last {
			fmt.Println(line)
			last = line
		}
	})

	opts := append(settings.PlayerOptions(logger),
		player.WithScheduler(scheduler),
		player.WithTickPeriod(tick),
		player.WithAutoplay(true),
	)
	p, err := player.New(playlist.Tracks, renderer, opts...)
	if err != nil {
		return err
	}
	defer p.Close()

	p.Play()
	select {
	case <-scheduler.done:
	case <-ctx.Done():
	}
	return nil
}

func listImages(ctx context.Context, settings *config.Settings, source string, load, verbose bool) error {
	client := http.NewClient(http.WithTimeout(settings.HTTPTimeout()))
	images, err := catalog.LoadImagesFrom(ctx, client, source)
	if err != nil {
		return err
	}

	for i, img := range images {
		fmt.Printf("%3d. %s\n     %s\n", i+1, img.Label(), img.Source)
	}
	if !load {
		return nil
	}

	fmt.Println()
	l := loader.NewLoader(settings, func(event loader.ProgressEvent) {
		if event.Level == loader.LevelVerbose && !verbose {
			return
		}

		prefix := ""
		switch event.Level {
		case loader.LevelError:
			prefix = "✗ "
		case loader.LevelWarning:
			prefix = "! "
		case loader.LevelSuccess:
			prefix = "✓ "
		case loader.LevelInfo:
			prefix = "› "
		default:
			prefix = "  "
		}

		fmt.Println(prefix + event.Message)
	})

	thumbs, err := l.Load(ctx, images)
	if err != nil {
		return err
	}
	for _, t := range thumbs {
		if t.Err != nil {
			return errors.New("some images could not be loaded")
		}
	}
	return nil
}

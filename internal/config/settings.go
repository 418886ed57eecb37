package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/handiism/deskwidgets/internal/audio"
	"github.com/handiism/deskwidgets/internal/gallery"
	"github.com/handiism/deskwidgets/internal/model"
	"github.com/handiism/deskwidgets/internal/player"
)

// Settings holds all configuration options.
type Settings struct {
	// Player settings
	Autoplay              bool    `json:"autoplay"`
	Volume                float64 `json:"volume"`
	TickPeriodMillis      int     `json:"tick_period_ms"`
	MusicDir              string  `json:"music_dir"`
	PlaylistManifest      string  `json:"playlist_manifest"`
	DefaultArtist         string  `json:"default_artist"`
	AssumedBitrate        int     `json:"assumed_bitrate"`
	MaxConcurrentTagReads int     `json:"max_concurrent_tag_reads"`

	// Gallery settings
	ImagesSource            string  `json:"images_source"` // directory, HTML file or http(s) URL
	SwipeThreshold          float64 `json:"swipe_threshold"`
	ThumbnailMaxWidth       int     `json:"thumbnail_max_width"`
	ThumbnailMaxHeight      int     `json:"thumbnail_max_height"`
	MaxConcurrentImageLoads int     `json:"max_concurrent_image_loads"`
	MaxImageBytes           int64   `json:"max_image_bytes"`
	LoadMaxRetries          int     `json:"load_max_retries"`
	LoadRetryCooldown       float64 `json:"load_retry_cooldown"`
	LoadRetryExponent       float64 `json:"load_retry_exponent"`
	HTTPTimeoutSeconds      float64 `json:"http_timeout_seconds"`

	// Playlist export settings
	PlaylistFormat string `json:"playlist_format"` // m3u, pls, wpl, zpl
	M3UExtended    bool   `json:"m3u_extended"`

	// Logging settings
	LogLevel string `json:"log_level"` // debug, info, warn, error
	LogFile  string `json:"log_file"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		Autoplay:              false,
		Volume:                1,
		TickPeriodMillis:      1000,
		DefaultArtist:         "Unknown Artist",
		AssumedBitrate:        128000,
		MaxConcurrentTagReads: 4,

		SwipeThreshold:          gallery.SwipeThreshold,
		ThumbnailMaxWidth:       64,
		ThumbnailMaxHeight:      48,
		MaxConcurrentImageLoads: 4,
		MaxImageBytes:           20 << 20,
		LoadMaxRetries:          3,
		LoadRetryCooldown:       0.2,
		LoadRetryExponent:       4.0,
		HTTPTimeoutSeconds:      30,

		PlaylistFormat: "m3u",
		M3UExtended:    true,

		LogLevel: "info",
	}
}

// DefaultPath returns the settings file location under the user config
// directory, or an empty string if that directory is unknown.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "deskwidgets", "settings.json")
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// TickPeriod returns the real time between player ticks.
func (s *Settings) TickPeriod() time.Duration {
	if s.TickPeriodMillis <= 0 {
		return time.Second
	}
	return time.Duration(s.TickPeriodMillis) * time.Millisecond
}

// HTTPTimeout returns the per-request timeout for remote images.
func (s *Settings) HTTPTimeout() time.Duration {
	return time.Duration(s.HTTPTimeoutSeconds * float64(time.Second))
}

// Format returns the configured playlist export format, falling back to M3U
// for unknown values.
func (s *Settings) Format() model.PlaylistFormat {
	pf, err := model.ParsePlaylistFormat(s.PlaylistFormat)
	if err != nil {
		return model.PlaylistFormatM3U
	}
	return pf
}

// ToTagConfig converts settings to TagConfig.
func (s *Settings) ToTagConfig() *audio.TagConfig {
	cfg := audio.DefaultTagConfig()
	if s.DefaultArtist != "" {
		cfg.DefaultArtist = s.DefaultArtist
	}
	if s.AssumedBitrate > 0 {
		cfg.Bitrate = s.AssumedBitrate
	}
	if s.MaxConcurrentTagReads > 0 {
		cfg.Concurrency = s.MaxConcurrentTagReads
	}
	return cfg
}

// PlayerOptions converts settings to player options.
func (s *Settings) PlayerOptions(logger *slog.Logger) []player.Option {
	return []player.Option{
		player.WithAutoplay(s.Autoplay),
		player.WithVolume(s.Volume),
		player.WithTickPeriod(s.TickPeriod()),
		player.WithLogger(logger),
	}
}

// GalleryOptions converts settings to gallery options.
func (s *Settings) GalleryOptions(logger *slog.Logger) []gallery.Option {
	return []gallery.Option{
		gallery.WithSwipeThreshold(s.SwipeThreshold),
		gallery.WithLogger(logger),
	}
}

// Package config provides configuration management for deskwidgets.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Conversion to options for the player, gallery and tag reader
//
// # Loading from File
//
//	settings, err := config.Load(config.DefaultPath())
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.Autoplay = true
//	err := settings.Save(path)
//
// # Configuration Options
//
// Settings includes options for:
//   - Player autoplay, volume and tick period
//   - Music directory or JSON playlist manifest
//   - Gallery source, swipe threshold and thumbnail size
//   - Image loading concurrency and retry behavior
//   - Playlist export format
//   - Log level and log file
package config

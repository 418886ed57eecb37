package model

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
)

// Track describes one entry of the player's playlist.
//
// A Track is static: once loaded from a manifest, an MP3 tag, or the built-in
// demo list it is never mutated. Playback position lives in the player state,
// not here.
//
// Example:
//
//	track := NewTrack("Midnight Drive", "Neon Lights", 210, "🌃", "")
//	fmt.Println(track.DurationText()) // "3:30"
type Track struct {
	// Title is the track title shown in the player header.
	Title string

	// Artist is the performing artist.
	Artist string

	// Duration is the track length in seconds.
	Duration float64

	// Artwork is a short glyph displayed in place of cover art.
	Artwork string

	// Path is the local file the track was read from, if any.
	// Empty for tracks that only exist in a manifest or the demo list.
	Path string
}

// DefaultArtwork is used for tracks that carry no artwork glyph.
const DefaultArtwork = "♪"

// NewTrack creates a Track, filling in the default artwork glyph and
// clamping a negative duration to zero.
func NewTrack(title, artist string, duration float64, artwork, path string) Track {
	if artwork == "" {
		artwork = DefaultArtwork
	}
	if duration < 0 || math.IsNaN(duration) {
		duration = 0
	}
	return Track{
		Title:    title,
		Artist:   artist,
		Duration: duration,
		Artwork:  artwork,
		Path:     path,
	}
}

// DurationText returns the duration formatted as m:ss.
func (t Track) DurationText() string {
	return FormatClock(t.Duration)
}

// DisplayName returns "Artist - Title", or just the title when the artist is unknown.
func (t Track) DisplayName() string {
	if t.Artist == "" {
		return t.Title
	}
	return t.Artist + " - " + t.Title
}

// TitleFromPath derives a readable title from a file name, dropping the
// extension and turning underscores into spaces.
func TitleFromPath(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.ReplaceAll(name, "_", " ")
	return strings.TrimSpace(name)
}

// FormatClock renders a number of seconds as m:ss. Fractions are truncated.
func FormatClock(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

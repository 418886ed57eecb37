package audio

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/bogem/id3v2"
	"golang.org/x/sync/errgroup"

	ioutils "github.com/handiism/deskwidgets/internal/io"
	"github.com/handiism/deskwidgets/internal/model"
)

// genreArtwork maps common genres to the glyph shown as artwork. The first
// entry contained in the genre wins.
var genreArtwork = []struct {
	genre string
	glyph string
}{
	{"rock", "🎸"},
	{"jazz", "🎷"},
	{"classical", "🎻"},
	{"electronic", "🎛"},
	{"hip-hop", "🎤"},
	{"pop", "🎤"},
	{"ambient", "🌌"},
}

// TagConfig holds the fallbacks used when a file lacks tags.
type TagConfig struct {
	// DefaultArtist is used when the TPE1 frame is missing.
	DefaultArtist string

	// Bitrate in bits per second, used to estimate the duration from the
	// file size when the TLEN frame is missing.
	Bitrate int

	// Concurrency limits how many files ReadDir opens at once.
	Concurrency int
}

// DefaultTagConfig returns the default tag configuration.
func DefaultTagConfig() *TagConfig {
	return &TagConfig{
		DefaultArtist: "Unknown Artist",
		Bitrate:       128000,
		Concurrency:   4,
	}
}

// TagReader builds playlist tracks from the ID3v2 tags of MP3 files.
//
// Only metadata is read; the audio itself is never decoded.
//
// Example:
//
//	reader := NewTagReader(DefaultTagConfig())
//	tracks, err := reader.ReadDir(ctx, "/music/roadtrip")
type TagReader struct {
	config *TagConfig
}

// NewTagReader creates a new TagReader with the given configuration.
//
// If config is nil, DefaultTagConfig() is used.
func NewTagReader(config *TagConfig) *TagReader {
	if config == nil {
		config = DefaultTagConfig()
	}
	return &TagReader{config: config}
}

// ReadTrack reads the tags of one MP3 file.
//
// Frames used:
//   - TIT2 (title), falling back to the file name
//   - TPE1 (artist), falling back to DefaultArtist
//   - TLEN (length in milliseconds), falling back to a size/bitrate estimate
//   - TCON (genre), mapped to an artwork glyph
func (r *TagReader) ReadTrack(path string) (model.Track, error) {
	tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return model.Track{}, fmt.Errorf("read tags of %s: %w", path, err)
	}
	defer tag.Close()

	title := strings.TrimSpace(tag.Title())
	if title == "" {
		title = model.TitleFromPath(path)
	}

	artist := strings.TrimSpace(tag.Artist())
	if artist == "" {
		artist = r.config.DefaultArtist
	}

	duration, ok := parseTLEN(tag.GetTextFrame("TLEN").Text)
	if !ok {
		duration, err = r.estimateDuration(path, tag.Size())
		if err != nil {
			return model.Track{}, err
		}
	}

	return model.NewTrack(title, artist, duration, artworkFor(tag.Genre()), path), nil
}

// ReadDir reads every .mp3 file of dir, in file name order.
//
// Files are opened concurrently, limited by TagConfig.Concurrency. The first
// unreadable file aborts the scan.
func (r *TagReader) ReadDir(ctx context.Context, dir string) ([]model.Track, error) {
	paths, err := ioutils.ListFiles(dir, ".mp3")
	if err != nil {
		return nil, err
	}

	tracks := make([]model.Track, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(r.config.Concurrency, 1))

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			track, err := r.ReadTrack(path)
			if err != nil {
				return err
			}
			tracks[i] = track
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tracks, nil
}

// parseTLEN parses a TLEN frame value (milliseconds) into seconds.
func parseTLEN(text string) (float64, bool) {
	ms, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || ms <= 0 {
		return 0, false
	}
	return ms / 1000, true
}

// estimateDuration guesses the length of a constant bitrate file from its
// size minus the tag.
func (r *TagReader) estimateDuration(path string, tagSize int) (float64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if r.config.Bitrate <= 0 {
		return 0, nil
	}
	audioBytes := info.Size() - int64(tagSize)
	if audioBytes < 0 {
		audioBytes = 0
	}
	return float64(audioBytes*8) / float64(r.config.Bitrate), nil
}

func artworkFor(genre string) string {
	genre = strings.ToLower(strings.TrimSpace(genre))
	for _, g := range genreArtwork {
		if strings.Contains(genre, g.genre) {
			return g.glyph
		}
	}
	return model.DefaultArtwork
}

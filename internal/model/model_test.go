package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00"},
		{9.9, "0:09"},
		{60, "1:00"},
		{210, "3:30"},
		{3725, "62:05"},
		{-4, "0:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatClock(tt.seconds))
		})
	}
}

func TestNewTrack_Defaults(t *testing.T) {
	track := NewTrack("Title", "", -3, "", "")

	assert.Equal(t, DefaultArtwork, track.Artwork)
	assert.Zero(t, track.Duration)
	assert.Equal(t, "Title", track.DisplayName())
}

func TestTrack_DisplayName(t *testing.T) {
	track := NewTrack("Come Together", "The Beatles", 259, "🎸", "")
	assert.Equal(t, "The Beatles - Come Together", track.DisplayName())
	assert.Equal(t, "4:19", track.DurationText())
}

func TestTitleFromPath(t *testing.T) {
	assert.Equal(t, "01 Night Walk", TitleFromPath("/music/01_Night_Walk.mp3"))
	assert.Equal(t, "song", TitleFromPath("song.mp3"))
}

func TestPlaylist_TotalDuration(t *testing.T) {
	p := Playlist{Tracks: []Track{
		NewTrack("a", "", 100, "", ""),
		NewTrack("b", "", 50.5, "", ""),
	}}
	assert.InDelta(t, 150.5, p.TotalDuration(), 1e-9)
}

func TestParsePlaylistFormat(t *testing.T) {
	tests := []struct {
		in   string
		want PlaylistFormat
		ext  string
	}{
		{"m3u", PlaylistFormatM3U, ".m3u"},
		{"PLS", PlaylistFormatPLS, ".pls"},
		{" wpl ", PlaylistFormatWPL, ".wpl"},
		{"zpl", PlaylistFormatZPL, ".zpl"},
		{"", PlaylistFormatM3U, ".m3u"},
	}

	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			got, err := ParsePlaylistFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.ext, got.Extension())
		})
	}

	_, err := ParsePlaylistFormat("xspf")
	assert.Error(t, err)
}

func TestImage_IsRemote(t *testing.T) {
	assert.True(t, Image{Source: "https://example.com/a.jpg"}.IsRemote())
	assert.True(t, Image{Source: "http://example.com/a.jpg"}.IsRemote())
	assert.False(t, Image{Source: "/tmp/a.jpg"}.IsRemote())
	assert.Equal(t, "/tmp/a.jpg", Image{Source: "/tmp/a.jpg"}.Label())
	assert.Equal(t, "Cat", Image{Source: "/tmp/a.jpg", Alt: "Cat"}.Label())
}

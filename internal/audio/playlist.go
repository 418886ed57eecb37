package audio

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	ioutils "github.com/handiism/deskwidgets/internal/io"
	"github.com/handiism/deskwidgets/internal/model"
)

// PlaylistCreator exports the player's playlist in various formats.
//
// Each format has different features and compatibility:
//   - M3U: Simple text format, widely supported
//   - PLS: INI-style format, used by Winamp
//   - WPL: XML format, Windows Media Player
//   - ZPL: XML format, Zune/Groove Music
//
// Tracks without a file (manifest-only or demo tracks) are written by title
// so the exported list still reads correctly.
//
// Example:
//
//	creator := NewPlaylistCreator(model.PlaylistFormatM3U, true)
//	content := creator.CreatePlaylist(playlist)
//
//	// Result:
//	// #EXTM3U
//	// #EXTINF:210,Neon Lights - Midnight Drive
//	// 01 Midnight Drive.mp3
type PlaylistCreator struct {
	format   model.PlaylistFormat
	extended bool // For M3U: include EXTINF lines with duration/title
}

// NewPlaylistCreator creates a new PlaylistCreator.
//
// Parameters:
//   - format: The playlist format to generate
//   - extended: For M3U format, whether to include #EXTINF lines
//     (ignored for other formats)
func NewPlaylistCreator(format model.PlaylistFormat, extended bool) *PlaylistCreator {
	return &PlaylistCreator{
		format:   format,
		extended: extended,
	}
}

// Extension returns the file extension of the configured format.
func (p *PlaylistCreator) Extension() string {
	return p.format.Extension()
}

// CreatePlaylist generates playlist content.
//
// Returns the playlist as a string, ready to be written to a file.
// Track paths in the playlist are reduced to the file name, assuming the
// playlist file is saved next to the tracks.
func (p *PlaylistCreator) CreatePlaylist(playlist model.Playlist) string {
	switch p.format {
	case model.PlaylistFormatPLS:
		return p.createPLS(playlist)
	case model.PlaylistFormatWPL:
		return p.createWPL(playlist)
	case model.PlaylistFormatZPL:
		return p.createZPL(playlist)
	default:
		return p.createM3U(playlist)
	}
}

// createM3U generates an M3U playlist.
//
// Extended M3U format (when extended=true):
//
//	#EXTM3U
//	#EXTINF:180,Artist - Title
//	filename1.mp3
func (p *PlaylistCreator) createM3U(playlist model.Playlist) string {
	var sb strings.Builder

	if p.extended {
		sb.WriteString("#EXTM3U\n")
		if playlist.Title != "" {
			sb.WriteString("#PLAYLIST:" + playlist.Title + "\n")
		}
	}

	for _, track := range playlist.Tracks {
		if p.extended {
			sb.WriteString(fmt.Sprintf("#EXTINF:%d,%s\n", int(track.Duration), track.DisplayName()))
		}
		sb.WriteString(entryName(track) + "\n")
	}

	return sb.String()
}

// createPLS generates a PLS playlist.
//
//	[playlist]
//	File1=filename1.mp3
//	Title1=Song Title
//	Length1=180
//	NumberOfEntries=1
//	Version=2
func (p *PlaylistCreator) createPLS(playlist model.Playlist) string {
	var sb strings.Builder

	sb.WriteString("[playlist]\n")

	for i, track := range playlist.Tracks {
		idx := i + 1
		sb.WriteString(fmt.Sprintf("File%d=%s\n", idx, entryName(track)))
		sb.WriteString(fmt.Sprintf("Title%d=%s\n", idx, track.DisplayName()))
		sb.WriteString(fmt.Sprintf("Length%d=%d\n", idx, int(track.Duration)))
	}

	sb.WriteString(fmt.Sprintf("NumberOfEntries=%d\n", len(playlist.Tracks)))
	sb.WriteString("Version=2\n")

	return sb.String()
}

// createWPL generates a Windows Media Player playlist.
func (p *PlaylistCreator) createWPL(playlist model.Playlist) string {
	var sb strings.Builder

	sb.WriteString("<?wpl version=\"1.0\"?>\n")
	sb.WriteString("<smil>\n")
	sb.WriteString("  <head>\n")
	sb.WriteString(fmt.Sprintf("    <title>%s</title>\n", escapeXML(playlist.Title)))
	sb.WriteString("  </head>\n")
	sb.WriteString("  <body>\n")
	sb.WriteString("    <seq>\n")

	for _, track := range playlist.Tracks {
		sb.WriteString(fmt.Sprintf("      <media src=\"%s\"/>\n", escapeXML(entryName(track))))
	}

	sb.WriteString("    </seq>\n")
	sb.WriteString("  </body>\n")
	sb.WriteString("</smil>\n")

	return sb.String()
}

// createZPL generates a Zune/Groove Music playlist with per-track metadata.
func (p *PlaylistCreator) createZPL(playlist model.Playlist) string {
	var sb strings.Builder

	sb.WriteString("<?zpl version=\"2.0\"?>\n")
	sb.WriteString("<smil>\n")
	sb.WriteString("  <head>\n")
	sb.WriteString(fmt.Sprintf("    <title>%s</title>\n", escapeXML(playlist.Title)))
	sb.WriteString("    <meta name=\"Generator\" content=\"deskwidgets\"/>\n")
	sb.WriteString(fmt.Sprintf("    <meta name=\"ItemCount\" content=\"%d\"/>\n", len(playlist.Tracks)))
	sb.WriteString("  </head>\n")
	sb.WriteString("  <body>\n")
	sb.WriteString("    <seq>\n")

	for _, track := range playlist.Tracks {
		duration := time.Duration(track.Duration * float64(time.Second))
		sb.WriteString(fmt.Sprintf("      <media src=\"%s\" trackTitle=\"%s\" trackArtist=\"%s\" duration=\"%d\"/>\n",
			escapeXML(entryName(track)),
			escapeXML(track.Title),
			escapeXML(track.Artist),
			duration.Milliseconds()))
	}

	sb.WriteString("    </seq>\n")
	sb.WriteString("  </body>\n")
	sb.WriteString("</smil>\n")

	return sb.String()
}

// entryName is the file name of a track, or its sanitized title when it has
// no file.
func entryName(track model.Track) string {
	if track.Path != "" {
		return filepath.Base(track.Path)
	}
	return ioutils.SanitizeFileName(track.Title)
}

// escapeXML escapes special XML characters in a string.
//
// Replaces: & < > " '
// With:     &amp; &lt; &gt; &quot; &apos;
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}

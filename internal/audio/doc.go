// Package audio reads track metadata from MP3 files and exports playlists.
//
// No audio is decoded or played; the player only simulates time.
//
// # Reading tags
//
// Use the TagReader to build tracks from ID3v2 tags:
//
//	reader := audio.NewTagReader(audio.DefaultTagConfig())
//	tracks, err := reader.ReadDir(ctx, "/music/roadtrip")
//
// The reader uses:
//   - Title (TIT2) and Artist (TPE1)
//   - Length (TLEN), or an estimate from the file size
//   - Genre (TCON), mapped to an artwork glyph
//
// # Playlist Export
//
// Export the player's playlist in various formats:
//
//	creator := audio.NewPlaylistCreator(model.PlaylistFormatM3U, true) // extended M3U
//	content := creator.CreatePlaylist(playlist)
//
// Supported formats:
//   - M3U (with optional extended info)
//   - PLS
//   - WPL (Windows Media Player)
//   - ZPL (Zune Media Player)
package audio

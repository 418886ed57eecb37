// Package model defines the data shared by the widgets and their loaders.
//
// # Track and Playlist
//
// Track is a static descriptor (title, artist, duration, artwork glyph) that
// the player moves through; Playlist groups tracks under a title:
//
//	track := model.NewTrack("Song Title", "Artist", 180, "🎸", "")
//	fmt.Println(track.DurationText()) // "3:00"
//
// # Image
//
// Image is a gallery entry with a source (path or URL) and alt text:
//
//	img := model.Image{Source: "photos/beach.jpg", Alt: "Beach"}
//
// # Playlist formats
//
// PlaylistFormat selects the export format used by the audio package:
//
//	format, err := model.ParsePlaylistFormat("pls")
//	fmt.Println(format.Extension()) // ".pls"
package model

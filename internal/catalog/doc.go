// Package catalog loads the fixed collections the widgets work on.
//
// # Gallery images
//
// ImagesFromHTML walks an HTML document and returns its <img> tags in
// document order, the same order a browser gallery would present:
//
//	images, err := catalog.LoadImages("photos/index.html")
//	if errors.Is(err, catalog.ErrNoImagesFound) {
//	    fmt.Println("nothing to show")
//	}
//
// A directory works too; its image files are listed by name.
//
// # Playlist manifests
//
// A playlist manifest is a small JSON document (see dto.JSONPlaylist):
//
//	playlist, err := catalog.LoadManifest("music/playlist.json")
//
// Durations may be written as seconds or as "m:ss".
package catalog

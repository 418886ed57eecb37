package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"

	"github.com/handiism/deskwidgets/internal/audio"
	"github.com/handiism/deskwidgets/internal/http"
	"github.com/handiism/deskwidgets/internal/model"
)

// ErrNoTracks is returned when a music directory holds no MP3 files.
var ErrNoTracks = errors.New("no tracks found")

// LoadPlaylist resolves the player's playlist. A manifest takes precedence
// over a music directory. With neither set the playlist is empty and the
// caller falls back to its demo tracks.
func LoadPlaylist(ctx context.Context, manifest, musicDir string, reader *audio.TagReader) (model.Playlist, error) {
	switch {
	case manifest != "":
		return LoadManifest(manifest)
	case musicDir != "":
		tracks, err := reader.ReadDir(ctx, musicDir)
		if err != nil {
			return model.Playlist{}, err
		}
		if len(tracks) == 0 {
			return model.Playlist{}, fmt.Errorf("%s: %w", musicDir, ErrNoTracks)
		}
		return model.Playlist{Title: filepath.Base(musicDir), Tracks: tracks}, nil
	}
	return model.Playlist{}, nil
}

// LoadImagesFrom loads a gallery from a directory, an HTML file or an
// http(s) page. Relative sources of a remote page are resolved against the
// page URL.
func LoadImagesFrom(ctx context.Context, client *http.Client, source string) ([]model.Image, error) {
	if !(model.Image{Source: source}).IsRemote() {
		return LoadImages(source)
	}

	page, err := url.Parse(source)
	if err != nil {
		return nil, err
	}
	doc, err := client.GetString(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", source, err)
	}
	images, err := ImagesFromHTML(doc)
	if err != nil {
		return nil, err
	}

	for i, img := range images {
		ref, err := url.Parse(img.Source)
		if err != nil {
			continue
		}
		images[i].Source = page.ResolveReference(ref).String()
	}
	return images, nil
}

package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/handiism/deskwidgets/internal/catalog/dto"
	"github.com/handiism/deskwidgets/internal/model"
)

// ErrEmptyManifest is returned when a manifest lists no tracks.
var ErrEmptyManifest = errors.New("manifest has no tracks")

// ParseManifest decodes a JSON playlist manifest. Relative track files are
// resolved against baseDir.
//
// Example:
//
//	playlist, err := catalog.ParseManifest(data, "/music/roadtrip")
//	if err != nil {
//	    return fmt.Errorf("failed to read manifest: %w", err)
//	}
func ParseManifest(data []byte, baseDir string) (model.Playlist, error) {
	var manifest dto.JSONPlaylist
	if err := json.Unmarshal(data, &manifest); err != nil {
		return model.Playlist{}, fmt.Errorf("failed to parse manifest JSON: %w", err)
	}
	if len(manifest.Tracks) == 0 {
		return model.Playlist{}, ErrEmptyManifest
	}

	playlist := model.Playlist{Title: manifest.Title}
	for i := range manifest.Tracks {
		playlist.Tracks = append(playlist.Tracks, manifest.Tracks[i].ToTrack(baseDir))
	}
	return playlist, nil
}

// LoadManifest reads and decodes a manifest file.
func LoadManifest(path string) (model.Playlist, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Playlist{}, err
	}
	return ParseManifest(data, filepath.Dir(path))
}

package dto

import (
	"path/filepath"

	"github.com/handiism/deskwidgets/internal/model"
)

// JSONTrack is one manifest entry.
type JSONTrack struct {
	Title    string  `json:"title"`
	Artist   string  `json:"artist"`
	Duration Seconds `json:"duration"`
	Artwork  string  `json:"artwork"`
	File     string  `json:"file"`
}

// ToTrack converts JSONTrack to a model.Track. A relative file is resolved
// against baseDir; a missing title falls back to the file name.
func (jt *JSONTrack) ToTrack(baseDir string) model.Track {
	path := jt.File
	if path != "" && !filepath.IsAbs(path) && baseDir != "" {
		path = filepath.Join(baseDir, path)
	}

	title := jt.Title
	if title == "" && path != "" {
		title = model.TitleFromPath(path)
	}

	return model.NewTrack(title, jt.Artist, float64(jt.Duration), jt.Artwork, path)
}

package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ioutils "github.com/handiism/deskwidgets/internal/io"
	"github.com/handiism/deskwidgets/internal/model"
)

// ImageExtensions lists the file types picked up from a directory.
var ImageExtensions = []string{".jpg", ".jpeg", ".png", ".gif"}

// ImagesFromDir lists the images of a directory in file name order, using
// the file name (without extension) as alt text.
func ImagesFromDir(dir string) ([]model.Image, error) {
	paths, err := ioutils.ListFiles(dir, ImageExtensions...)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoImagesFound)
	}

	images := make([]model.Image, len(paths))
	for i, p := range paths {
		images[i] = model.Image{Source: p, Alt: model.TitleFromPath(p)}
	}
	return images, nil
}

// LoadImages loads a gallery from a directory or an HTML file.
func LoadImages(path string) ([]model.Image, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return ImagesFromDir(path)
	}
	return LoadHTML(path)
}

// resolveSources makes relative local sources absolute against base.
func resolveSources(images []model.Image, base string) []model.Image {
	out := make([]model.Image, len(images))
	for i, img := range images {
		if !img.IsRemote() && !filepath.IsAbs(img.Source) && !strings.HasPrefix(img.Source, "data:") {
			img.Source = filepath.Join(base, filepath.FromSlash(img.Source))
		}
		out[i] = img
	}
	return out
}

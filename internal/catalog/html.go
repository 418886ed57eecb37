package catalog

import (
	"errors"
	"html"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/handiism/deskwidgets/internal/model"
)

// ErrNoImagesFound is returned when a document contains no usable <img> tags.
var ErrNoImagesFound = errors.New("no images found in document")

var (
	imgTagRe  = regexp.MustCompile(`(?is)<img\b[^>]*>`)
	srcAttrRe = regexp.MustCompile(`(?is)\bsrc\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'>]+))`)
	altAttrRe = regexp.MustCompile(`(?is)\balt\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'>]+))`)
)

// ImagesFromHTML extracts the gallery images of an HTML document.
//
// Every <img> tag with a non-empty src becomes one Image, in document order.
// Attribute values are HTML-unescaped. Duplicates are kept: a page that shows
// the same picture twice has two gallery slots.
//
// Returns ErrNoImagesFound if the document has no image with a source.
//
// Example:
//
//	images, err := catalog.ImagesFromHTML(`<img src="a.jpg" alt="A"><img src='b.png'>`)
//	// images = [{a.jpg A} {b.png }]
func ImagesFromHTML(doc string) ([]model.Image, error) {
	var images []model.Image
	for _, tag := range imgTagRe.FindAllString(doc, -1) {
		src := attrValue(srcAttrRe, tag)
		if src == "" {
			continue
		}
		images = append(images, model.Image{
			Source: src,
			Alt:    attrValue(altAttrRe, tag),
		})
	}

	if len(images) == 0 {
		return nil, ErrNoImagesFound
	}
	return images, nil
}

// LoadHTML reads an HTML file and extracts its images. Relative sources are
// resolved against the file's directory.
func LoadHTML(path string) ([]model.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	images, err := ImagesFromHTML(string(data))
	if err != nil {
		return nil, err
	}
	return resolveSources(images, filepath.Dir(path)), nil
}

// attrValue returns the first match of an attribute regex, whichever quoting
// style matched.
func attrValue(re *regexp.Regexp, tag string) string {
	m := re.FindStringSubmatch(tag)
	if m == nil {
		return ""
	}
	for _, v := range m[1:] {
		if v != "" {
			return strings.TrimSpace(html.UnescapeString(v))
		}
	}
	return ""
}

package model

import "strings"

// Image is one gallery entry: where to load it from and its alternative text.
//
// Source is either a local file path or an http(s) URL. Loading and caching
// the pixels is the host's job; the gallery only moves a cursor over Images.
type Image struct {
	Source string
	Alt    string
}

// IsRemote reports whether the image must be fetched over HTTP.
func (i Image) IsRemote() bool {
	return strings.HasPrefix(i.Source, "http://") || strings.HasPrefix(i.Source, "https://")
}

// Label returns the alt text, falling back to the source.
func (i Image) Label() string {
	if i.Alt != "" {
		return i.Alt
	}
	return i.Source
}

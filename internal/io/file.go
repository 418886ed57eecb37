// Package ioutils provides file system utilities for the widgets.
//
// This package contains functions for:
//   - File writing
//   - Filename sanitization
//   - Directory creation and listing
package ioutils

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

var (
	invalidCharsRe    = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDotsRe    = regexp.MustCompile(`\.+$`)
	multiWhitespaceRe = regexp.MustCompile(`\s+`)
)

// WriteFile writes data to a file, creating parent directories if necessary.
//
// The file is created with mode 0644. If the file already exists,
// it is truncated before writing.
//
// Parameters:
//   - ctx: Context for cancellation, checked before writing
//   - path: File path to write to
//   - data: Bytes to write
//
// Example:
//
//	playlistContent := []byte("#EXTM3U\n...")
//	err := WriteFile(ctx, "/music/playlist.m3u", playlistContent)
func WriteFile(ctx context.Context, path string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// SanitizeFileName removes or replaces characters that are invalid in file/folder names.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed (Windows limitation)
//   - Multiple whitespace → single space
//   - Trailing whitespace → removed
//
// Example:
//
//	SanitizeFileName("Road Trip: Vol 1/2") // Returns "Road Trip_ Vol 1_2"
//	SanitizeFileName("Mix...")             // Returns "Mix"
func SanitizeFileName(name string) string {
	name = invalidCharsRe.ReplaceAllString(name, "_")
	name = trailingDotsRe.ReplaceAllString(name, "")
	name = multiWhitespaceRe.ReplaceAllString(name, " ")
	return strings.TrimRight(name, " ")
}

// EnsureDir creates a directory and all parent directories if they don't exist.
//
// Directories are created with mode 0755 (rwxr-xr-x).
// If the directory already exists, no error is returned.
func EnsureDir(path string) error {
	if path == "" || path == "." {
		return nil
	}
	return os.MkdirAll(path, 0755)
}

// ListFiles returns the regular files of dir whose extension matches one of
// exts (case-insensitive), sorted by name. Subdirectories are not descended.
//
// Example:
//
//	mp3s, err := ListFiles("/music/roadtrip", ".mp3")
func ListFiles(dir string, exts ...string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !hasExtension(e.Name(), exts) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

func hasExtension(name string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range exts {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}

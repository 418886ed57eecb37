// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - File writing with parent directory creation
//   - Filename sanitization for cross-platform compatibility
//   - Directory creation and listing by extension
//   - Image decoding and thumbnail scaling
//
// # File Operations
//
//	// Write data to file
//	err := ioutils.WriteFile(ctx, "/path/to/file.m3u", []byte("content"))
//
//	// List images of a folder
//	paths, err := ioutils.ListFiles("/photos", ".jpg", ".png")
//
// # Filename Sanitization
//
// Use SanitizeFileName to remove invalid characters from filenames:
//
//	safe := ioutils.SanitizeFileName("Song: Part 1/2") // Returns "Song_ Part 1_2"
//
// # Image Processing
//
// The ImageService prepares gallery images for the terminal:
//
//	svc := ioutils.NewImageService()
//	img, _, _ := svc.Decode(data)
//	thumb := svc.Thumbnail(ctx, img, 64, 48)
package ioutils

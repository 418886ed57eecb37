package ioutils

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder registration
	_ "image/jpeg" // JPEG decoder registration
	_ "image/png"  // PNG decoder registration

	"golang.org/x/image/draw"
)

// ImageService decodes gallery images and scales them down for display.
//
// Example usage:
//
//	svc := NewImageService()
//
//	img, err := svc.Decode(data)
//	if err != nil {
//	    return err
//	}
//
//	// Fit into 64x48 terminal pixels
//	thumb := svc.Thumbnail(ctx, img, 64, 48)
type ImageService struct {
	scaler draw.Scaler
}

// NewImageService creates a new ImageService using Catmull-Rom scaling.
func NewImageService() *ImageService {
	return &ImageService{scaler: draw.CatmullRom}
}

// Decode decodes JPEG, PNG or GIF data.
//
// Returns the decoded image and the format name reported by the decoder.
func (s *ImageService) Decode(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return img, format, nil
}

// FitSize returns the largest size with the aspect ratio of width×height that
// fits within maxWidth×maxHeight. Sizes already inside the box are returned
// unchanged. Neither dimension drops below 1.
//
// Example:
//
//	FitSize(1500, 1000, 1000, 1000) // 1000, 666
//	FitSize(800, 600, 1000, 1000)   // 800, 600
func FitSize(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= 0 || height <= 0 || maxWidth <= 0 || maxHeight <= 0 {
		return 0, 0
	}
	if width <= maxWidth && height <= maxHeight {
		return width, height
	}

	ratio := float64(width) / float64(height)
	if float64(maxWidth)/float64(maxHeight) > ratio {
		// Height is the limiting factor
		width = int(float64(maxHeight) * ratio)
		height = maxHeight
	} else {
		// Width is the limiting factor
		height = int(float64(maxWidth) / ratio)
		width = maxWidth
	}
	return max(width, 1), max(height, 1)
}

// Thumbnail scales img to fit within maxWidth×maxHeight, preserving the
// aspect ratio. Images that already fit are copied without scaling.
//
// The context is checked before the (potentially slow) scaling step; a
// cancelled context yields nil.
func (s *ImageService) Thumbnail(ctx context.Context, img image.Image, maxWidth, maxHeight int) *image.RGBA {
	if ctx.Err() != nil {
		return nil
	}

	bounds := img.Bounds()
	width, height := FitSize(bounds.Dx(), bounds.Dy(), maxWidth, maxHeight)
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if width == 0 || height == 0 {
		return dst
	}

	if width == bounds.Dx() && height == bounds.Dy() {
		draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
		return dst
	}

	s.scaler.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}

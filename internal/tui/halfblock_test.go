package tui

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderHalfBlocks_Dimensions(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 5, 3))

	out := renderHalfBlocks(img)
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, 5, strings.Count(line, upperHalf))
	}
}

func TestRenderHalfBlocks_Nil(t *testing.T) {
	assert.Empty(t, renderHalfBlocks(nil))
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, "#ff8000", string(hexColor(color.RGBA{R: 255, G: 128, B: 0, A: 255})))
	assert.Equal(t, "#000000", string(hexColor(color.Black)))
}

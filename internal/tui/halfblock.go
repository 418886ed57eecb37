package tui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// upperHalf draws the top pixel as foreground and the bottom one as
// background, so each cell holds two vertically stacked pixels.
const upperHalf = "▀"

// renderHalfBlocks renders img as rows of half-block cells. An odd last row
// is paired with the terminal background.
func renderHalfBlocks(img image.Image) string {
	if img == nil {
		return ""
	}
	b := img.Bounds()
	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			style := lipgloss.NewStyle().Foreground(hexColor(img.At(x, y)))
			if y+1 < b.Max.Y {
				style = style.Background(hexColor(img.At(x, y+1)))
			}
			sb.WriteString(style.Render(upperHalf))
		}
		if y+2 < b.Max.Y {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// hexColor converts a pixel to a lipgloss colour, ignoring alpha.
func hexColor(c color.Color) lipgloss.Color {
	r, g, b, _ := c.RGBA()
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8))
}

package gallery

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/handiism/deskwidgets/internal/model"
)

func images(n int) []model.Image {
	out := make([]model.Image, n)
	for i := range out {
		out[i] = model.Image{Source: fmt.Sprintf("img%d.jpg", i), Alt: fmt.Sprintf("Image %d", i)}
	}
	return out
}

func TestOpenAt(t *testing.T) {
	s := NewState(images(3)).OpenAt(2)
	assert.True(t, s.Open)
	assert.Equal(t, 2, s.Current)
	assert.Equal(t, "3 / 3", s.Counter())

	img, ok := s.Image()
	assert.True(t, ok)
	assert.Equal(t, "img2.jpg", img.Source)
}

func TestOpenAt_OutOfRangeIgnored(t *testing.T) {
	s := NewState(images(3))
	assert.Equal(t, s, s.OpenAt(3))
	assert.Equal(t, s, s.OpenAt(-1))
}

func TestClose(t *testing.T) {
	s := NewState(images(3)).OpenAt(1).Close()
	assert.False(t, s.Open)
	assert.Equal(t, 1, s.Current)
}

func TestNextPrev_Wraparound(t *testing.T) {
	s := NewState(images(3)).OpenAt(2)
	assert.Equal(t, 0, s.Next().Current)

	s = s.OpenAt(0)
	assert.Equal(t, 2, s.Prev().Current)
	assert.Equal(t, "3 / 3", s.Prev().Counter())
}

func TestNextPrev_MutualInverses(t *testing.T) {
	for n := 2; n <= 6; n++ {
		for i := 0; i < n; i++ {
			s := NewState(images(n)).OpenAt(i)
			assert.Equal(t, i, s.Next().Prev().Current, "n=%d i=%d", n, i)
			assert.Equal(t, i, s.Prev().Next().Current, "n=%d i=%d", n, i)
		}
	}
}

func TestNavigation_EmptyIsNoop(t *testing.T) {
	s := NewState(nil)
	assert.Equal(t, s, s.Next())
	assert.Equal(t, s, s.Prev())
	assert.Equal(t, "0 / 0", s.Counter())
}

func TestSwipe(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		want       int
	}{
		{"leading edge goes next", 300, 200, 2},
		{"trailing edge goes prev", 100, 200, 0},
		{"below threshold", 100, 140, 1},
		{"exactly threshold", 100, 150, 1},
		{"just over threshold", 100, 49.5, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(images(3)).OpenAt(1)
			assert.Equal(t, tt.want, s.Swipe(tt.start, tt.end, SwipeThreshold).Current)
		})
	}
}

func TestControlsVisible(t *testing.T) {
	assert.False(t, NewState(nil).ControlsVisible())
	assert.False(t, NewState(images(1)).ControlsVisible())
	assert.True(t, NewState(images(2)).ControlsVisible())
}

func TestRebuild_ClampsCursor(t *testing.T) {
	s := NewState(images(3)).OpenAt(2).Rebuild(images(2))
	assert.Equal(t, 1, s.Current)
	assert.True(t, s.Open)

	s = s.Rebuild(nil)
	assert.Zero(t, s.Current)
	assert.False(t, s.Open)
}

func TestView(t *testing.T) {
	v := NewState(images(2)).OpenAt(1).View()
	assert.True(t, v.Open)
	assert.Equal(t, "Image 1", v.Image.Alt)
	assert.Equal(t, "2 / 2", v.Counter)
	assert.True(t, v.ShowControls)
	assert.Len(t, v.Images, 2)
}

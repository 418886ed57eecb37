package gallery

import (
	"fmt"
	"math"

	"github.com/handiism/deskwidgets/internal/model"
)

// SwipeThreshold is the minimum horizontal travel, in pointer units, for a
// touch gesture to count as a swipe.
const SwipeThreshold = 50.0

// State is the lightbox: the ordered images, the cursor and whether the
// viewer is showing. Transitions are pure and return the next State.
type State struct {
	Images  []model.Image
	Current int
	Open    bool
}

// NewState builds a closed lightbox over images, keeping their order.
func NewState(images []model.Image) State {
	list := make([]model.Image, len(images))
	copy(list, images)
	return State{Images: list}
}

// Len returns the number of images.
func (s State) Len() int {
	return len(s.Images)
}

// OpenAt shows the image at index. Out-of-range indices are ignored.
func (s State) OpenAt(index int) State {
	if index < 0 || index >= len(s.Images) {
		return s
	}
	s.Current = index
	s.Open = true
	return s
}

// Close hides the viewer. The cursor is kept.
func (s State) Close() State {
	s.Open = false
	return s
}

// Next moves the cursor forward, wrapping from the last image to the first.
func (s State) Next() State {
	n := len(s.Images)
	if n == 0 {
		return s
	}
	s.Current = (s.Current + 1) % n
	return s
}

// Prev moves the cursor backward, wrapping from the first image to the last.
func (s State) Prev() State {
	n := len(s.Images)
	if n == 0 {
		return s
	}
	s.Current = (s.Current - 1 + n) % n
	return s
}

// Swipe interprets a horizontal gesture from startX to endX using threshold.
// Travel toward the leading edge (startX > endX) goes to the next image,
// the opposite direction to the previous one. Short gestures do nothing.
func (s State) Swipe(startX, endX, threshold float64) State {
	if math.Abs(startX-endX) <= threshold {
		return s
	}
	if startX > endX {
		return s.Next()
	}
	return s.Prev()
}

// Image returns the image under the cursor.
func (s State) Image() (model.Image, bool) {
	if s.Current < 0 || s.Current >= len(s.Images) {
		return model.Image{}, false
	}
	return s.Images[s.Current], true
}

// Counter renders the "position / total" label.
func (s State) Counter() string {
	if len(s.Images) == 0 {
		return "0 / 0"
	}
	return fmt.Sprintf("%d / %d", s.Current+1, len(s.Images))
}

// ControlsVisible reports whether the prev/next controls are shown. They are
// hidden when there is nothing to navigate to.
func (s State) ControlsVisible() bool {
	return len(s.Images) > 1
}

// Rebuild replaces the image list wholesale, clamping the cursor into range.
// An empty list closes the viewer.
func (s State) Rebuild(images []model.Image) State {
	s.Images = make([]model.Image, len(images))
	copy(s.Images, images)

	switch {
	case len(s.Images) == 0:
		s.Current = 0
		s.Open = false
	case s.Current >= len(s.Images):
		s.Current = len(s.Images) - 1
	case s.Current < 0:
		s.Current = 0
	}
	return s
}

// View is a render-ready snapshot of a State.
type View struct {
	Open         bool
	Image        model.Image
	Index        int
	Counter      string
	ShowControls bool
	Images       []model.Image
}

// View builds the snapshot the renderer consumes.
func (s State) View() View {
	img, _ := s.Image()
	return View{
		Open:         s.Open,
		Image:        img,
		Index:        s.Current,
		Counter:      s.Counter(),
		ShowControls: s.ControlsVisible(),
		Images:       s.Images,
	}
}

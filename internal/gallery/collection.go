package gallery

import (
	"fmt"

	"github.com/handiism/deskwidgets/internal/model"
)

// Collection is the backing list of gallery items in display order. The
// navigator's image list is always derived from it in full.
type Collection struct {
	items []model.Image
}

// NewCollection creates a collection holding a copy of images.
func NewCollection(images []model.Image) *Collection {
	c := &Collection{items: make([]model.Image, len(images))}
	copy(c.items, images)
	return c
}

// Append adds an item at the end.
func (c *Collection) Append(img model.Image) {
	c.items = append(c.items, img)
}

// RemoveAt deletes the item at index.
func (c *Collection) RemoveAt(index int) error {
	if index < 0 || index >= len(c.items) {
		return fmt.Errorf("remove image %d: index out of range [0,%d)", index, len(c.items))
	}
	c.items = append(c.items[:index], c.items[index+1:]...)
	return nil
}

// Len returns the number of items.
func (c *Collection) Len() int {
	return len(c.items)
}

// Images returns a copy of the items in order.
func (c *Collection) Images() []model.Image {
	out := make([]model.Image, len(c.items))
	copy(out, c.items)
	return out
}

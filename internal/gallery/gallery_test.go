package gallery

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/deskwidgets/internal/model"
)

type recordingRenderer struct {
	views []View
}

func (r *recordingRenderer) Render(v View) { r.views = append(r.views, v) }

func (r *recordingRenderer) last() View { return r.views[len(r.views)-1] }

func TestGallery_OpenNavigateClose(t *testing.T) {
	rec := &recordingRenderer{}
	g := New(images(3), rec)
	require.Len(t, rec.views, 1)
	assert.False(t, rec.last().Open)

	g.Open(0)
	assert.Equal(t, "1 / 3", rec.last().Counter)

	g.Prev()
	assert.Equal(t, "img2.jpg", rec.last().Image.Source)

	g.Next()
	g.Next()
	assert.Equal(t, "2 / 3", rec.last().Counter)

	g.Close()
	assert.False(t, rec.last().Open)
}

func TestGallery_HandleKey(t *testing.T) {
	g := New(images(3), nil)

	assert.False(t, g.HandleKey("ArrowRight"), "keys are ignored while closed")

	g.Open(1)
	assert.True(t, g.HandleKey("ArrowRight"))
	assert.Equal(t, 2, g.State().Current)
	assert.True(t, g.HandleKey("left"))
	assert.Equal(t, 1, g.State().Current)
	assert.False(t, g.HandleKey("Enter"))
	assert.True(t, g.HandleKey("Escape"))
	assert.False(t, g.State().Open)
}

func TestGallery_HandleSwipe(t *testing.T) {
	g := New(images(3), nil)
	g.Open(0)

	g.HandleSwipe(400, 100)
	assert.Equal(t, 1, g.State().Current)

	g.HandleSwipe(100, 400)
	assert.Equal(t, 0, g.State().Current)

	g.HandleSwipe(100, 120)
	assert.Equal(t, 0, g.State().Current)
}

func TestGallery_CustomSwipeThreshold(t *testing.T) {
	g := New(images(3), nil, WithSwipeThreshold(5))
	g.Open(0)
	g.HandleSwipe(20, 10)
	assert.Equal(t, 1, g.State().Current)
}

func TestGallery_AddImageRebuilds(t *testing.T) {
	rec := &recordingRenderer{}
	g := New(images(1), rec)
	assert.False(t, rec.last().ShowControls)

	g.AddImage("new.png", "New")
	v := rec.last()
	assert.True(t, v.ShowControls)
	require.Len(t, v.Images, 2)
	assert.Equal(t, model.Image{Source: "new.png", Alt: "New"}, v.Images[1])
}

func TestGallery_RemoveImageRebuilds(t *testing.T) {
	rec := &recordingRenderer{}
	g := New(images(3), rec)
	g.Open(2)

	require.NoError(t, g.RemoveImage(0))
	v := rec.last()
	require.Len(t, v.Images, 2)
	assert.Equal(t, "img1.jpg", v.Images[0].Source)
	assert.Equal(t, "2 / 2", v.Counter)

	assert.Error(t, g.RemoveImage(5))

	require.NoError(t, g.RemoveImage(1))
	require.NoError(t, g.RemoveImage(0))
	assert.False(t, g.State().Open)
	assert.False(t, rec.last().ShowControls)
}

func TestGallery_ControlsVisibility(t *testing.T) {
	rec := &recordingRenderer{}
	New(images(1), rec)
	assert.False(t, rec.last().ShowControls)

	New(images(2), rec)
	assert.True(t, rec.last().ShowControls)
}

func TestCollection(t *testing.T) {
	c := NewCollection(images(2))
	c.Append(model.Image{Source: "c.jpg"})
	assert.Equal(t, 3, c.Len())

	got := c.Images()
	got[0].Source = "changed"
	assert.Equal(t, "img0.jpg", c.Images()[0].Source)

	require.NoError(t, c.RemoveAt(1))
	assert.Equal(t, []string{"img0.jpg", "c.jpg"}, []string{c.Images()[0].Source, c.Images()[1].Source})
}

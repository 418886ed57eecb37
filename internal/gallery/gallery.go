package gallery

import (
	"io"
	"log/slog"

	"github.com/handiism/deskwidgets/internal/model"
)

// Renderer receives a snapshot after every state change.
type Renderer interface {
	Render(v View)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(v View)

// Render implements Renderer.
func (f RendererFunc) Render(v View) { f(v) }

// Option configures a Gallery.
type Option func(*Gallery)

// WithSwipeThreshold overrides SwipeThreshold.
func WithSwipeThreshold(threshold float64) Option {
	return func(g *Gallery) {
		if threshold > 0 {
			g.threshold = threshold
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(g *Gallery) {
		if l != nil {
			g.logger = l
		}
	}
}

// Gallery binds a lightbox State to its backing Collection and a Renderer.
//
// Example:
//
//	g := gallery.New(images, renderer)
//	g.Open(2)
//	g.Next()
//	g.HandleSwipe(300, 120) // another Next
type Gallery struct {
	state      State
	collection *Collection
	renderer   Renderer
	threshold  float64
	logger     *slog.Logger
}

// New creates a closed Gallery over images and renders it.
func New(images []model.Image, renderer Renderer, opts ...Option) *Gallery {
	collection := NewCollection(images)
	g := &Gallery{
		state:      NewState(collection.Images()),
		collection: collection,
		renderer:   renderer,
		threshold:  SwipeThreshold,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.render()
	return g
}

// State returns a copy of the current state.
func (g *Gallery) State() State {
	return g.state
}

// Open shows the image at index.
func (g *Gallery) Open(index int) {
	g.apply(g.state.OpenAt(index))
}

func (g *Gallery) Close() {
	g.apply(g.state.Close())
}

func (g *Gallery) Next() {
	g.apply(g.state.Next())
}

func (g *Gallery) Prev() {
	g.apply(g.state.Prev())
}

// HandleSwipe interprets a touch start/end pair.
func (g *Gallery) HandleSwipe(startX, endX float64) {
	g.apply(g.state.Swipe(startX, endX, g.threshold))
}

// HandleKey handles lightbox keys: ArrowLeft/ArrowRight navigate and Escape
// closes. Keys are only honoured while the viewer is open.
func (g *Gallery) HandleKey(key string) bool {
	if !g.state.Open {
		return false
	}
	switch key {
	case "ArrowLeft", "left":
		g.Prev()
	case "ArrowRight", "right":
		g.Next()
	case "Escape", "esc":
		g.Close()
	default:
		return false
	}
	return true
}

// AddImage appends an image to the collection and rebuilds the list.
func (g *Gallery) AddImage(src, alt string) {
	g.collection.Append(model.Image{Source: src, Alt: alt})
	g.logger.Debug("image added", slog.String("source", src), slog.Int("count", g.collection.Len()))
	g.rebuild()
}

// RemoveImage removes the image at index from the collection and rebuilds
// the list.
func (g *Gallery) RemoveImage(index int) error {
	if err := g.collection.RemoveAt(index); err != nil {
		return err
	}
	g.logger.Debug("image removed", slog.Int("index", index), slog.Int("count", g.collection.Len()))
	g.rebuild()
	return nil
}

func (g *Gallery) rebuild() {
	g.apply(g.state.Rebuild(g.collection.Images()))
}

func (g *Gallery) apply(next State) {
	g.state = next
	g.render()
}

func (g *Gallery) render() {
	if g.renderer != nil {
		g.renderer.Render(g.state.View())
	}
}

// Package chart builds the view model consumed by the rendering collaborator
// and manages the drawing-context lifecycle.
package chart

import (
	"errors"
	"fmt"
	"sync"

	"github.com/conecast/backend/internal/regression"
)

// Point is a single chart coordinate
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// View is everything a renderer needs for one draw: the sample scatter, the
// two fitted-line endpoints spanning [min(x), max(x)], and a label embedding
// the two-decimal coefficients.
type View struct {
	Scatter []Point `json:"scatter"`
	Line    []Point `json:"line,omitempty"`
	Label   string  `json:"label"`
}

// Build assembles a View from paired samples and fitted coefficients.
// With an unusable model the line is omitted and the label says so.
func Build(xs, ys []float64, c regression.Coefficients) View {
	view := View{
		Scatter: make([]Point, 0, len(xs)),
		Label:   c.Formula(),
	}
	for i := range xs {
		view.Scatter = append(view.Scatter, Point{X: xs[i], Y: ys[i]})
	}

	if !c.Valid() || len(xs) == 0 {
		return view
	}

	minX, maxX := xs[0], xs[0]
	for _, x := range xs[1:] {
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
	}

	view.Line = []Point{
		{X: minX, Y: c.Predict(minX)},
		{X: maxX, Y: c.Predict(maxX)},
	}
	return view
}

// Renderer draws a View and owns a drawing resource
type Renderer interface {
	Render(view View) error
	Close() error
}

// RendererFactory acquires a fresh drawing context
type RendererFactory func() Renderer

// Handle manages a renderer's lifecycle. The previous drawing context is
// always destroyed before a new one is acquired, so redraws never leak
// drawing handles.
type Handle struct {
	factory RendererFactory

	mu       sync.Mutex
	renderer Renderer
	view     View
}

// NewHandle creates a handle around the given renderer factory
func NewHandle(factory RendererFactory) *Handle {
	return &Handle{factory: factory}
}

// Refresh destroys the current renderer, acquires a new one, and draws view
func (h *Handle) Refresh(view View) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.renderer != nil {
		if err := h.renderer.Close(); err != nil {
			return fmt.Errorf("chart: failed to destroy renderer: %w", err)
		}
		h.renderer = nil
	}

	r := h.factory()
	if err := r.Render(view); err != nil {
		return fmt.Errorf("chart: failed to render view: %w", err)
	}

	h.renderer = r
	h.view = view
	return nil
}

// View returns the most recently rendered view
func (h *Handle) View() View {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.view
}

// Close destroys the current renderer, if any
func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.renderer == nil {
		return nil
	}
	err := h.renderer.Close()
	h.renderer = nil
	return err
}

// MemoryRenderer records the rendered view in memory. Used in demo mode and
// tests, where no browser canvas exists.
type MemoryRenderer struct {
	mu     sync.Mutex
	view   View
	drawn  bool
	closed bool
}

// NewMemoryRenderer creates a new in-memory renderer
func NewMemoryRenderer() *MemoryRenderer {
	return &MemoryRenderer{}
}

// Render stores the view
func (m *MemoryRenderer) Render(view View) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return errors.New("chart: render on destroyed renderer")
	}
	m.view = view
	m.drawn = true
	return nil
}

// Close releases the renderer; further renders fail
func (m *MemoryRenderer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Rendered reports whether a view has been drawn
func (m *MemoryRenderer) Rendered() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.drawn
}

// Closed reports whether the renderer has been destroyed
func (m *MemoryRenderer) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// LastView returns the most recently drawn view
func (m *MemoryRenderer) LastView() View {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.view
}

package chart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/conecast/backend/internal/regression"
)

var (
	testTemps = []float64{20, 22, 18, 25, 23, 19}
	testSales = []float64{100, 120, 80, 150, 130, 90}
)

// TestBuildView verifies scatter points and line endpoints spanning the x range.
func TestBuildView(t *testing.T) {
	c := regression.Coefficients{Slope: 10, Intercept: -100}

	view := Build(testTemps, testSales, c)

	require.Len(t, view.Scatter, 6)
	require.Equal(t, Point{X: 20, Y: 100}, view.Scatter[0])

	require.Len(t, view.Line, 2)
	require.Equal(t, Point{X: 18, Y: 80}, view.Line[0])
	require.Equal(t, Point{X: 25, Y: 150}, view.Line[1])

	require.Equal(t, "y = 10.00x -100.00", view.Label)
}

// TestBuildViewUnusableModel verifies the line is omitted when no model exists.
func TestBuildViewUnusableModel(t *testing.T) {
	c := regression.Coefficients{Slope: math.NaN(), Intercept: math.NaN()}

	view := Build(testTemps, testSales, c)

	require.Len(t, view.Scatter, 6)
	require.Empty(t, view.Line)
	require.Equal(t, "no usable model", view.Label)
}

func TestBuildViewEmptySamples(t *testing.T) {
	view := Build(nil, nil, regression.Coefficients{Slope: 1, Intercept: 0})

	require.Empty(t, view.Scatter)
	require.Empty(t, view.Line)
}

// TestHandleRefreshDestroysPrevious verifies the drawing context is released
// before a new one is acquired on every refresh.
func TestHandleRefreshDestroysPrevious(t *testing.T) {
	var renderers []*MemoryRenderer
	handle := NewHandle(func() Renderer {
		r := NewMemoryRenderer()
		renderers = append(renderers, r)
		return r
	})

	first := Build(testTemps, testSales, regression.Coefficients{Slope: 10, Intercept: -100})
	require.NoError(t, handle.Refresh(first))
	require.Len(t, renderers, 1)
	require.True(t, renderers[0].Rendered())

	second := Build(testTemps, testSales, regression.Coefficients{Slope: 12.66, Intercept: -147.59})
	require.NoError(t, handle.Refresh(second))
	require.Len(t, renderers, 2)

	require.True(t, renderers[0].Closed(), "previous renderer must be destroyed before re-acquisition")
	require.False(t, renderers[1].Closed())
	require.Equal(t, second, renderers[1].LastView())
	require.Equal(t, second, handle.View())
}

func TestHandleClose(t *testing.T) {
	handle := NewHandle(func() Renderer { return NewMemoryRenderer() })

	require.NoError(t, handle.Refresh(View{Label: "empty"}))
	require.NoError(t, handle.Close())
	// Closing twice is a no-op
	require.NoError(t, handle.Close())
}

// TestRenderAfterClose verifies a destroyed renderer rejects further draws.
func TestRenderAfterClose(t *testing.T) {
	r := NewMemoryRenderer()

	require.NoError(t, r.Close())
	require.Error(t, r.Render(View{}))
}

package regression

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
)

var (
	historicalTemps = []float64{20, 22, 18, 25, 23, 19}
	historicalSales = []float64{100, 120, 80, 150, 130, 90}
)

// TestFitHistoricalDataset verifies the coefficients for the built-in dataset.
// The data is exactly linear: sales = 10*temp - 100.
func TestFitHistoricalDataset(t *testing.T) {
	c, err := Fit(historicalTemps, historicalSales)
	require.NoError(t, err)

	require.InDelta(t, 10.0, c.Slope, 1e-9)
	require.InDelta(t, -100.0, c.Intercept, 1e-9)
	require.True(t, c.Valid())
}

// TestFitMatchesGonum cross-checks the sum-formula fit against gonum's
// linear regression on the same samples.
func TestFitMatchesGonum(t *testing.T) {
	c, err := Fit(historicalTemps, historicalSales)
	require.NoError(t, err)

	alpha, beta := stat.LinearRegression(historicalTemps, historicalSales, nil, false)
	require.InDelta(t, beta, c.Slope, 1e-9)
	require.InDelta(t, alpha, c.Intercept, 1e-9)
}

// TestFitDegenerate verifies the NaN sentinel for zero x-variance.
func TestFitDegenerate(t *testing.T) {
	c, err := Fit([]float64{5, 5, 5}, []float64{1, 2, 3})
	require.ErrorIs(t, err, ErrDegenerateModel)

	require.True(t, math.IsNaN(c.Slope))
	require.True(t, math.IsNaN(c.Intercept))
	require.False(t, c.Valid())
	require.True(t, math.IsNaN(c.Predict(20)))
}

// TestFitSinglePoint verifies that one sample collapses to a degenerate model.
func TestFitSinglePoint(t *testing.T) {
	c, err := Fit([]float64{7}, []float64{3})
	require.ErrorIs(t, err, ErrDegenerateModel)
	require.False(t, c.Valid())
}

func TestFitMismatchedLengths(t *testing.T) {
	c, err := Fit([]float64{1, 2, 3}, []float64{1, 2})
	require.ErrorIs(t, err, ErrMismatchedLengths)
	require.False(t, c.Valid())
}

func TestFitEmpty(t *testing.T) {
	c, err := Fit(nil, nil)
	require.ErrorIs(t, err, ErrNoSamples)
	require.False(t, c.Valid())
}

// TestFitTwoPoints verifies the boundary case: the fitted line passes
// exactly through both points.
func TestFitTwoPoints(t *testing.T) {
	x := []float64{2, 6}
	y := []float64{10, 22}

	c, err := Fit(x, y)
	require.NoError(t, err)

	wantSlope := (y[1] - y[0]) / (x[1] - x[0])
	wantIntercept := y[0] - wantSlope*x[0]
	require.InDelta(t, wantSlope, c.Slope, 1e-12)
	require.InDelta(t, wantIntercept, c.Intercept, 1e-12)

	require.InDelta(t, y[0], c.Predict(x[0]), 1e-12)
	require.InDelta(t, y[1], c.Predict(x[1]), 1e-12)
}

// TestFitIdempotent verifies the fit is a pure function with no hidden state.
func TestFitIdempotent(t *testing.T) {
	first, err := Fit(historicalTemps, historicalSales)
	require.NoError(t, err)

	second, err := Fit(historicalTemps, historicalSales)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestPredict(t *testing.T) {
	c := Coefficients{Slope: 10, Intercept: -100}

	require.InDelta(t, 100.0, c.Predict(20), 1e-12)
	require.InDelta(t, -100.0, c.Predict(0), 1e-12)
}

func TestFormula(t *testing.T) {
	c := Coefficients{Slope: 10, Intercept: -100}
	require.Equal(t, "y = 10.00x -100.00", c.Formula())

	c = Coefficients{Slope: 12.66, Intercept: -147.59}
	require.Equal(t, "y = 12.66x -147.59", c.Formula())

	c = Coefficients{Slope: 2, Intercept: 3}
	require.Equal(t, "y = 2.00x +3.00", c.Formula())

	require.Equal(t, "no usable model", Coefficients{Slope: math.NaN(), Intercept: math.NaN()}.Formula())
}

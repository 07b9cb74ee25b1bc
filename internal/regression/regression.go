// Package regression fits an ordinary least-squares line y = slope*x + intercept
// to paired samples.
package regression

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrMismatchedLengths is returned when x and y differ in length.
	ErrMismatchedLengths = errors.New("regression: mismatched sample lengths")
	// ErrNoSamples is returned when the input is empty.
	ErrNoSamples = errors.New("regression: no samples")
	// ErrDegenerateModel is returned when the x-values have zero variance,
	// leaving the slope mathematically undefined.
	ErrDegenerateModel = errors.New("regression: degenerate model: zero variance in x")
)

// Coefficients holds a fitted line. Both fields are NaN when no usable
// model exists; any prediction made through such coefficients is NaN.
type Coefficients struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}

// undefined is the sentinel for "no usable model".
func undefined() Coefficients {
	return Coefficients{Slope: math.NaN(), Intercept: math.NaN()}
}

// Fit computes ordinary least-squares coefficients for y = slope*x + intercept.
//
// It is a pure function: deterministic, no side effects, standard IEEE-754
// double-precision arithmetic. On failure it returns NaN sentinel
// coefficients together with the error, so callers may log the diagnostic
// and carry the unusable model instead of aborting.
func Fit(x, y []float64) (Coefficients, error) {
	if len(x) != len(y) {
		return undefined(), fmt.Errorf("%w: %d x vs %d y", ErrMismatchedLengths, len(x), len(y))
	}
	if len(x) == 0 {
		return undefined(), ErrNoSamples
	}

	n := float64(len(x))
	var sumX, sumY, sumXY, sumXX float64
	for i := range x {
		sumX += x[i]
		sumY += y[i]
		sumXY += x[i] * y[i]
		sumXX += x[i] * x[i]
	}

	meanX := sumX / n
	meanY := sumY / n

	numerator := sumXY - n*meanX*meanY
	denominator := sumXX - n*meanX*meanX
	if denominator == 0 {
		return undefined(), ErrDegenerateModel
	}

	slope := numerator / denominator
	return Coefficients{
		Slope:     slope,
		Intercept: meanY - slope*meanX,
	}, nil
}

// Predict evaluates the line at x
func (c Coefficients) Predict(x float64) float64 {
	return c.Slope*x + c.Intercept
}

// Valid reports whether the coefficients describe a usable model
func (c Coefficients) Valid() bool {
	return !math.IsNaN(c.Slope) && !math.IsNaN(c.Intercept)
}

// Formula returns a human-readable representation of the line
func (c Coefficients) Formula() string {
	if !c.Valid() {
		return "no usable model"
	}
	return fmt.Sprintf("y = %.2fx %+.2f", c.Slope, c.Intercept)
}

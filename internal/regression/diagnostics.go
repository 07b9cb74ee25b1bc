package regression

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Diagnostics summarizes goodness of fit over a sample set
type Diagnostics struct {
	// RSquared is the coefficient of determination (0-1, higher is better).
	RSquared float64 `json:"r_squared"`
	// RMSE is the root mean square error (lower is better).
	RMSE float64 `json:"rmse"`
}

// Evaluate computes R² and RMSE of c against the given samples.
// Returns NaN diagnostics when the model is unusable or the samples are
// empty or mismatched.
func Evaluate(c Coefficients, x, y []float64) Diagnostics {
	if !c.Valid() || len(x) == 0 || len(x) != len(y) {
		return Diagnostics{RSquared: math.NaN(), RMSE: math.NaN()}
	}

	predicted := make([]float64, len(x))
	for i := range x {
		predicted[i] = c.Predict(x[i])
	}

	var sumSq float64
	for i := range y {
		d := y[i] - predicted[i]
		sumSq += d * d
	}

	return Diagnostics{
		RSquared: stat.RSquaredFrom(predicted, y, nil),
		RMSE:     math.Sqrt(sumSq / float64(len(y))),
	}
}

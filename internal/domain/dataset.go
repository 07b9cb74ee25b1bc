package domain

import "fmt"

// Historical observations: daily peak temperature (°C) paired by index with
// ice-cream cones sold that day.
var (
	DefaultTemperatures = []float64{20, 22, 18, 25, 23, 19}
	DefaultSales        = []float64{100, 120, 80, 150, 130, 90}
)

// Dataset holds paired temperature/sales samples
type Dataset struct {
	Temperatures []float64 `json:"temperatures"`
	Sales        []float64 `json:"sales"`
}

// DefaultDataset returns a copy of the built-in historical dataset
func DefaultDataset() Dataset {
	temps := make([]float64, len(DefaultTemperatures))
	sales := make([]float64, len(DefaultSales))
	copy(temps, DefaultTemperatures)
	copy(sales, DefaultSales)
	return Dataset{Temperatures: temps, Sales: sales}
}

// Len returns the number of samples
func (d Dataset) Len() int {
	return len(d.Temperatures)
}

// Validate checks the pairing invariants: equal lengths, at least 2 samples
func (d Dataset) Validate() error {
	if len(d.Temperatures) != len(d.Sales) {
		return fmt.Errorf("dataset: mismatched lengths: %d temperatures vs %d sales",
			len(d.Temperatures), len(d.Sales))
	}
	if len(d.Temperatures) < 2 {
		return fmt.Errorf("dataset: need at least 2 samples, got %d", len(d.Temperatures))
	}
	return nil
}

// DatasetResponse wraps the dataset with metadata
type DatasetResponse struct {
	Data    Dataset `json:"data"`
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
}

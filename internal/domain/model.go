package domain

import "time"

// Coefficient modes: fit the displayed dataset, or use externally supplied
// slope/intercept while still displaying the original samples.
const (
	ModelModeComputed = "computed"
	ModelModeFixed    = "fixed"
)

// PredictionState tracks the display shell's state machine
type PredictionState string

const (
	StateIdle          PredictionState = "idle"
	StateHasPrediction PredictionState = "has_prediction"
	StateHasError      PredictionState = "has_error"
)

// ModelInfo describes the fitted (or supplied) line
type ModelInfo struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	Mode      string  `json:"mode"`
	Formula   string  `json:"formula"`
	RSquared  float64 `json:"r_squared"`
	RMSE      float64 `json:"rmse"`
	Usable    bool    `json:"usable"`
}

// PredictionResult is the outcome of a single predict request
type PredictionResult struct {
	State   PredictionState `json:"state"`
	Input   string          `json:"input"`
	Value   float64         `json:"-"` // raw prediction; excluded from JSON (may be NaN)
	Display string          `json:"prediction,omitempty"`
	Message string          `json:"message,omitempty"`
}

// PredictionResponse wraps a prediction result with metadata
type PredictionResponse struct {
	Data    PredictionResult `json:"data"`
	Success bool             `json:"success"`
	Message string           `json:"message,omitempty"`
}

// PredictionLog is a persisted record of one successful prediction
type PredictionLog struct {
	ID          string    `json:"id"`
	RawInput    string    `json:"raw_input"`
	Temperature float64   `json:"temperature"`
	Prediction  float64   `json:"prediction"`
	Display     string    `json:"display"`
	Slope       float64   `json:"slope"`
	Intercept   float64   `json:"intercept"`
	Mode        string    `json:"mode"`
	CreatedAt   time.Time `json:"created_at"`
}

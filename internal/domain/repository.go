package domain

import (
	"context"
)

// PredictionRepository defines the interface for prediction log persistence
// This follows the Dependency Inversion Principle - domain defines the interface
type PredictionRepository interface {
	// SavePredictionLog persists a single prediction record
	SavePredictionLog(ctx context.Context, entry PredictionLog) error

	// GetRecentPredictions retrieves the most recent prediction records
	GetRecentPredictions(ctx context.Context, limit int) ([]PredictionLog, error)

	// Health checks database connectivity
	Health(ctx context.Context) error
}

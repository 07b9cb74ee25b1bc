package postgres

import (
	"context"
	"sync"

	"github.com/conecast/backend/internal/domain"
)

// mockCapacity bounds how many records the in-memory log retains.
const mockCapacity = 100

// MockRepository implements domain.PredictionRepository in memory for
// demo mode (no DATABASE_URL) and tests
type MockRepository struct {
	mu      sync.Mutex
	entries []domain.PredictionLog
}

// NewMockRepository creates a new mock repository
func NewMockRepository() *MockRepository {
	return &MockRepository{}
}

// SavePredictionLog stores the record in memory, newest first
func (r *MockRepository) SavePredictionLog(ctx context.Context, entry domain.PredictionLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append([]domain.PredictionLog{entry}, r.entries...)
	if len(r.entries) > mockCapacity {
		r.entries = r.entries[:mockCapacity]
	}
	return nil
}

// GetRecentPredictions returns up to limit stored records, newest first
func (r *MockRepository) GetRecentPredictions(ctx context.Context, limit int) ([]domain.PredictionLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > len(r.entries) {
		limit = len(r.entries)
	}
	out := make([]domain.PredictionLog, limit)
	copy(out, r.entries[:limit])
	return out, nil
}

// Health always succeeds in mock mode
func (r *MockRepository) Health(ctx context.Context) error {
	return nil
}

package service

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/conecast/backend/internal/chart"
	"github.com/conecast/backend/internal/domain"
	"github.com/conecast/backend/internal/regression"
	"github.com/conecast/backend/pkg/utils"
)

// invalidInputMessage is shown when the temperature text does not parse.
const invalidInputMessage = "Please enter a valid number for temperature."

// Predictor owns the historical dataset and the model coefficients, answers
// prediction requests, and publishes the chart view whenever coefficients
// are set. Coefficients are computed once at construction and immutable
// afterwards; predictions are O(1) and never cached.
type Predictor struct {
	dataset domain.Dataset
	coeffs  regression.Coefficients
	diags   regression.Diagnostics
	mode    string

	repo  PredictionRepository
	chart *chart.Handle

	mu    sync.Mutex
	state domain.PredictionState

	wgBg sync.WaitGroup // tracks background save goroutines for graceful shutdown
}

// NewPredictor builds the prediction shell.
//
// In computed mode the coefficients are fit from the dataset; in fixed mode
// the supplied coefficients are used while the dataset is still displayed.
// A degenerate fit is logged and kept as an unusable NaN model rather than
// failing construction, so downstream predictions are NaN as well.
func NewPredictor(
	dataset domain.Dataset,
	mode string,
	fixed regression.Coefficients,
	repo PredictionRepository,
	chartHandle *chart.Handle,
) (*Predictor, error) {
	if err := dataset.Validate(); err != nil {
		return nil, fmt.Errorf("predictor: %w", err)
	}

	var coeffs regression.Coefficients
	switch mode {
	case domain.ModelModeFixed:
		coeffs = fixed
	case domain.ModelModeComputed:
		var err error
		coeffs, err = regression.Fit(dataset.Temperatures, dataset.Sales)
		if err != nil {
			// NaN sentinel model: predictions stay NaN, nothing crashes
			log.Printf("Degenerate regression model: %v", err)
		}
	default:
		return nil, fmt.Errorf("predictor: unknown model mode %q", mode)
	}

	p := &Predictor{
		dataset: dataset,
		coeffs:  coeffs,
		diags:   regression.Evaluate(coeffs, dataset.Temperatures, dataset.Sales),
		mode:    mode,
		repo:    repo,
		chart:   chartHandle,
		state:   domain.StateIdle,
	}

	// Coefficients just changed: publish the chart view explicitly
	if err := p.redraw(); err != nil {
		log.Printf("Chart redraw failed: %v", err)
	}

	return p, nil
}

// redraw pushes the current dataset and coefficients to the chart handle
func (p *Predictor) redraw() error {
	view := chart.Build(p.dataset.Temperatures, p.dataset.Sales, p.coeffs)
	return p.chart.Refresh(view)
}

// Predict parses raw as a temperature and evaluates the model.
//
// Invalid input yields a HasError result carrying the validation message and
// no prediction value. Valid input yields slope*value+intercept formatted to
// two decimals. Successful predictions from a usable model are persisted
// asynchronously; an unusable model yields a NaN result that is never logged.
func (p *Predictor) Predict(ctx context.Context, raw string) domain.PredictionResult {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		p.setState(domain.StateHasError)
		return domain.PredictionResult{
			State:   domain.StateHasError,
			Input:   raw,
			Message: invalidInputMessage,
		}
	}

	prediction := p.coeffs.Predict(value)
	result := domain.PredictionResult{
		State:   domain.StateHasPrediction,
		Input:   raw,
		Value:   prediction,
		Display: fmt.Sprintf("%.2f cones", prediction),
	}
	p.setState(domain.StateHasPrediction)

	// An unusable model yields a NaN prediction; NaN is not representable in
	// JSON, and nothing worth logging happened anyway
	if !p.coeffs.Valid() {
		return result
	}

	// Log prediction to the repository asynchronously (tracked for shutdown)
	entry := domain.PredictionLog{
		ID:          uuid.NewString(),
		RawInput:    raw,
		Temperature: value,
		Prediction:  prediction,
		Display:     result.Display,
		Slope:       p.coeffs.Slope,
		Intercept:   p.coeffs.Intercept,
		Mode:        p.mode,
		CreatedAt:   time.Now(),
	}
	p.wgBg.Add(1)
	go func() {
		defer p.wgBg.Done()
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if saveErr := p.repo.SavePredictionLog(bgCtx, entry); saveErr != nil {
			log.Printf("Failed to save prediction log: %v", saveErr)
		}
	}()

	return result
}

// Reset clears the display state back to idle, as on an input edit
func (p *Predictor) Reset() {
	p.setState(domain.StateIdle)
}

// State returns the shell's current display state
func (p *Predictor) State() domain.PredictionState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Predictor) setState(s domain.PredictionState) {
	p.mu.Lock()
	p.state = s
	p.mu.Unlock()
}

// Dataset returns a copy of the displayed sample set
func (p *Predictor) Dataset() domain.Dataset {
	temps := make([]float64, len(p.dataset.Temperatures))
	sales := make([]float64, len(p.dataset.Sales))
	copy(temps, p.dataset.Temperatures)
	copy(sales, p.dataset.Sales)
	return domain.Dataset{Temperatures: temps, Sales: sales}
}

// ModelInfo describes the current model
func (p *Predictor) ModelInfo() domain.ModelInfo {
	return domain.ModelInfo{
		Slope:     p.coeffs.Slope,
		Intercept: p.coeffs.Intercept,
		Mode:      p.mode,
		Formula:   p.coeffs.Formula(),
		RSquared:  utils.RoundTo(p.diags.RSquared, 4),
		RMSE:      utils.RoundTo(p.diags.RMSE, 4),
		Usable:    p.coeffs.Valid(),
	}
}

// Coefficients returns the model coefficients
func (p *Predictor) Coefficients() regression.Coefficients {
	return p.coeffs
}

// ChartView returns the most recently published chart view
func (p *Predictor) ChartView() chart.View {
	return p.chart.View()
}

// RecentPredictions returns the latest persisted prediction records
func (p *Predictor) RecentPredictions(ctx context.Context, limit int) ([]domain.PredictionLog, error) {
	return p.repo.GetRecentPredictions(ctx, limit)
}

// WaitBackground blocks until all background save goroutines complete.
// Call during graceful shutdown to avoid dropped writes.
func (p *Predictor) WaitBackground() {
	p.wgBg.Wait()
}

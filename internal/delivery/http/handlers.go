package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/conecast/backend/internal/domain"
	"github.com/conecast/backend/internal/service"
	"github.com/conecast/backend/pkg/utils"
)

// Handler contains all HTTP handlers
type Handler struct {
	predictor *service.Predictor
	repo      service.PredictionRepository
}

// NewHandler creates a new handler
func NewHandler(predictor *service.Predictor, repo service.PredictionRepository) *Handler {
	return &Handler{
		predictor: predictor,
		repo:      repo,
	}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := h.repo.Health(c.Context()); err != nil {
		dbStatus = "unavailable"
	}

	return c.JSON(fiber.Map{
		"status":   "ok",
		"service":  "conecast-backend",
		"version":  "1.0.0",
		"database": dbStatus,
	})
}

// GetDataset returns the historical sample set
func (h *Handler) GetDataset(c *fiber.Ctx) error {
	return c.JSON(domain.DatasetResponse{
		Data:    h.predictor.Dataset(),
		Success: true,
	})
}

// GetModel returns the current model coefficients and fit diagnostics
func (h *Handler) GetModel(c *fiber.Ctx) error {
	info := h.predictor.ModelInfo()
	if !info.Usable {
		// NaN coefficients are not representable in JSON
		return c.JSON(fiber.Map{
			"success": false,
			"message": "Model is degenerate; no usable coefficients",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    info,
	})
}

// GetChart returns the current chart view (scatter, fitted line, label)
func (h *Handler) GetChart(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data":    h.predictor.ChartView(),
	})
}

// predictRequest carries the raw temperature text, exactly as typed
type predictRequest struct {
	Temperature string `json:"temperature"`
}

// Predict parses the submitted temperature and returns a prediction
func (h *Handler) Predict(c *fiber.Ctx) error {
	var req predictRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	result := h.predictor.Predict(c.Context(), req.Temperature)
	if result.State == domain.StateHasError {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(domain.PredictionResponse{
			Data:    result,
			Success: false,
			Message: result.Message,
		})
	}

	return c.JSON(domain.PredictionResponse{
		Data:    result,
		Success: true,
	})
}

// GetPredictions returns recent prediction log entries
func (h *Handler) GetPredictions(c *fiber.Ctx) error {
	limit := utils.ClampInt(c.QueryInt("limit", 20), 1, 100)

	data, err := h.predictor.RecentPredictions(c.Context(), limit)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch prediction history")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    data,
		"count":   len(data),
	})
}

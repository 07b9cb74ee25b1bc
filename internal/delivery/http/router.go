package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/conecast/backend/internal/service"
)

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, predictor *service.Predictor, repo service.PredictionRepository) {
	handler := NewHandler(predictor, repo)

	// Health check
	app.Get("/health", handler.HealthCheck)

	// API v1 routes
	api := app.Group("/api/v1")
	{
		// Dataset and model endpoints
		api.Get("/dataset", handler.GetDataset)
		api.Get("/model", handler.GetModel)
		api.Get("/chart", handler.GetChart)

		// Prediction endpoints
		api.Post("/predict", handler.Predict)
		api.Get("/predictions", handler.GetPredictions)
	}
}

package api

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"neurosync/internal/models"
)

// HealthHandler reports service liveness.
type HealthHandler struct {
	startedAt time.Time
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(startedAt time.Time) *HealthHandler {
	return &HealthHandler{startedAt: startedAt}
}

// Check returns liveness and uptime.
func (h *HealthHandler) Check(c fiber.Ctx) error {
	return jsonSuccess(c, models.HealthResponse{
		Status:    "healthy",
		StartedAt: h.startedAt,
		Uptime:    time.Since(h.startedAt).Round(time.Second).String(),
	})
}

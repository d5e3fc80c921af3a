package api

import (
	"github.com/gofiber/fiber/v3"

	"neurosync/internal/analytics"
)

// AdminHandler serves anonymous dashboard analytics via JSON API.
type AdminHandler struct {
	tally *analytics.Tally
}

// NewAdminHandler creates a new API admin handler.
func NewAdminHandler(tally *analytics.Tally) *AdminHandler {
	return &AdminHandler{tally: tally}
}

// Analytics returns the dashboard summary.
func (h *AdminHandler) Analytics(c fiber.Ctx) error {
	return jsonSuccess(c, analytics.Summarize(h.tally))
}

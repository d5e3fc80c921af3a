package api

import (
	"github.com/gofiber/fiber/v3"

	"neurosync/internal/models"
	"neurosync/internal/triage"
)

// TriageHandler classifies messages via JSON API.
type TriageHandler struct {
	classifier *triage.Classifier
	observe    func(triage.Tier)
}

// NewTriageHandler creates a new API triage handler. observe may be nil.
func NewTriageHandler(classifier *triage.Classifier, observe func(triage.Tier)) *TriageHandler {
	return &TriageHandler{classifier: classifier, observe: observe}
}

// Classify returns the severity tier and canned response for a message.
// An empty message is valid and classifies as low.
func (h *TriageHandler) Classify(c fiber.Ctx) error {
	var body struct {
		Message string `json:"message"`
	}
	if err := decodeBody(c, &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	result := h.classifier.Classify(body.Message)
	if h.observe != nil {
		h.observe(result.Tier)
	}

	return jsonSuccess(c, models.NewClassifyResponse(result))
}

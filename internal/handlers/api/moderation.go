package api

import (
	"errors"
	"slices"

	"github.com/gofiber/fiber/v3"

	"neurosync/internal/community"
	"neurosync/internal/triage"
)

// ModerationHandler reviews community posts held for high or crisis content.
type ModerationHandler struct {
	board *community.Board
}

// NewModerationHandler creates a new API moderation handler.
func NewModerationHandler(board *community.Board) *ModerationHandler {
	return &ModerationHandler{board: board}
}

// ListHeld returns the posts waiting on review, optionally only those of one
// severity tier (?tier=crisis).
func (h *ModerationHandler) ListHeld(c fiber.Ctx) error {
	held := h.board.Held()

	if raw := c.Query("tier", ""); raw != "" {
		tier, err := triage.ParseTier(raw)
		if err != nil {
			return jsonError(c, fiber.StatusBadRequest, err.Error())
		}
		held = slices.DeleteFunc(held, func(p community.Post) bool {
			return p.Severity != tier
		})
	}

	// Ensure non-null arrays in JSON
	if held == nil {
		held = []community.Post{}
	}
	return jsonSuccess(c, held)
}

// Approve publishes a held post.
func (h *ModerationHandler) Approve(c fiber.Ctx) error {
	post, err := h.board.Approve(c.Params("id"))
	if err != nil {
		if errors.Is(err, community.ErrPostNotFound) {
			return jsonError(c, fiber.StatusNotFound, "post not found or already processed")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to approve post")
	}
	return jsonSuccess(c, post)
}

// Reject removes a held post.
func (h *ModerationHandler) Reject(c fiber.Ctx) error {
	id := c.Params("id")
	if err := h.board.Reject(id); err != nil {
		if errors.Is(err, community.ErrPostNotFound) {
			return jsonError(c, fiber.StatusNotFound, "post not found or already processed")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to reject post")
	}
	return jsonSuccess(c, fiber.Map{
		"message": "post rejected",
		"post_id": id,
	})
}

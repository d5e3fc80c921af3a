package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"neurosync/internal/community"
	"neurosync/internal/models"
)

// PostNotifier is told about posts held for moderator review.
type PostNotifier interface {
	NotifyPostHeld(sub *community.Submission)
}

// CommunityHandler handles the peer support board via JSON API.
type CommunityHandler struct {
	board    *community.Board
	notifier PostNotifier
	clock    func() time.Time
}

// NewCommunityHandler creates a new API community handler. notifier may be nil.
func NewCommunityHandler(board *community.Board, notifier PostNotifier) *CommunityHandler {
	return &CommunityHandler{board: board, notifier: notifier, clock: time.Now}
}

// Posts lists published posts, filtered by q and category.
func (h *CommunityHandler) Posts(c fiber.Ctx) error {
	return jsonSuccess(c, h.board.Posts(community.Query{
		Search:   c.Query("q", ""),
		Category: c.Query("category", ""),
	}))
}

// Create submits a new post. Posts flagged high or crisis are held for review
// and the response includes support suggestions.
func (h *CommunityHandler) Create(c fiber.Ctx) error {
	var draft community.Draft
	if err := decodeBody(c, &draft); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	sub, err := h.board.Submit(draft, h.clock())
	if err != nil {
		if errors.Is(err, community.ErrInvalidPost) {
			return jsonError(c, fiber.StatusBadRequest, strings.TrimPrefix(err.Error(), community.ErrInvalidPost.Error()+": "))
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to submit post")
	}

	if sub.Held {
		if h.notifier != nil {
			h.notifier.NotifyPostHeld(sub)
		}
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
			"status": "ok",
			"data":   sub,
		})
	}
	return jsonCreated(c, sub)
}

// Like increments a post's like count.
func (h *CommunityHandler) Like(c fiber.Ctx) error {
	id := c.Params("id")
	likes, err := h.board.Like(id)
	if err != nil {
		if errors.Is(err, community.ErrPostNotFound) {
			return jsonError(c, fiber.StatusNotFound, "post not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to like post")
	}
	return jsonSuccess(c, models.LikeResponse{PostID: id, Likes: likes})
}

// Groups lists the support groups.
func (h *CommunityHandler) Groups(c fiber.Ctx) error {
	return jsonSuccess(c, h.board.Groups())
}

package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"neurosync/internal/chat"
	"neurosync/internal/config"
	"neurosync/internal/models"
)

// ChatHandler answers chat messages via JSON API. The client owns the
// conversation and sends it back with every message.
type ChatHandler struct {
	assistant *chat.Assistant
	cfg       *config.Config
	clock     func() time.Time
}

// NewChatHandler creates a new API chat handler.
func NewChatHandler(assistant *chat.Assistant, cfg *config.Config) *ChatHandler {
	return &ChatHandler{assistant: assistant, cfg: cfg, clock: time.Now}
}

// Send appends a message to the supplied conversation and returns the reply.
func (h *ChatHandler) Send(c fiber.Ctx) error {
	var body struct {
		Message      string             `json:"message"`
		Conversation *chat.Conversation `json:"conversation"`
	}
	if err := decodeBody(c, &body); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	conv := body.Conversation
	if conv != nil && len(conv.Messages) == 0 {
		conv = nil
	}

	conv, reply, err := h.assistant.Reply(conv, body.Message, h.clock())
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			return jsonError(c, fiber.StatusBadRequest, "message is required")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to reply")
	}

	return jsonSuccess(c, models.ChatResponse{
		Conversation:  conv,
		Reply:         reply,
		TypingDelayMS: h.cfg.ChatTypingDelay.Milliseconds(),
	})
}

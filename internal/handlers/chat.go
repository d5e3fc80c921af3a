package handlers

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"neurosync/internal/chat"
	"neurosync/internal/config"
)

// conversationKey is the session key holding the JSON-encoded conversation.
const conversationKey = "conversation"

// ChatHandler renders the support chat page. The conversation lives in the
// visitor's session.
type ChatHandler struct {
	assistant *chat.Assistant
	cfg       *config.Config
	clock     func() time.Time
}

// NewChatHandler creates a new chat page handler.
func NewChatHandler(assistant *chat.Assistant, cfg *config.Config) *ChatHandler {
	return &ChatHandler{assistant: assistant, cfg: cfg, clock: time.Now}
}

// Show renders the conversation so far.
func (h *ChatHandler) Show(c fiber.Ctx) error {
	conv := h.load(c)
	last, _ := conv.Last()

	return c.Render("chat", MergeBranding(fiber.Map{
		"Title":         "Support Chat",
		"Messages":      conv.Messages,
		"Urgent":        last.Urgent(),
		"TypingDelayMS": h.cfg.ChatTypingDelay.Milliseconds(),
	}, h.cfg))
}

// Send classifies the posted message, stores the exchange and redirects back
// to the chat page.
func (h *ChatHandler) Send(c fiber.Ctx) error {
	conv, _, err := h.assistant.Reply(h.load(c), c.FormValue("message"), h.clock())
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			return c.Redirect().Status(fiber.StatusSeeOther).To("/chat")
		}
		return err
	}

	if err := h.save(c, conv); err != nil {
		return err
	}
	return c.Redirect().Status(fiber.StatusSeeOther).To("/chat")
}

// Reset clears the conversation.
func (h *ChatHandler) Reset(c fiber.Ctx) error {
	if sess := session.FromContext(c); sess != nil {
		sess.Delete(conversationKey)
	}
	return c.Redirect().Status(fiber.StatusSeeOther).To("/chat")
}

func (h *ChatHandler) load(c fiber.Ctx) *chat.Conversation {
	sess := session.FromContext(c)
	if sess == nil {
		return chat.NewConversation(h.clock())
	}

	raw, ok := sess.Get(conversationKey).(string)
	if !ok {
		return chat.NewConversation(h.clock())
	}

	var conv chat.Conversation
	if err := json.Unmarshal([]byte(raw), &conv); err != nil || len(conv.Messages) == 0 {
		return chat.NewConversation(h.clock())
	}
	return &conv
}

func (h *ChatHandler) save(c fiber.Ctx, conv *chat.Conversation) error {
	sess := session.FromContext(c)
	if sess == nil {
		return fiber.NewError(fiber.StatusInternalServerError, "session unavailable")
	}

	raw, err := json.Marshal(conv)
	if err != nil {
		return err
	}
	sess.Set(conversationKey, string(raw))
	return nil
}

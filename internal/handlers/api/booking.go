package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"

	"neurosync/internal/booking"
)

// BookingNotifier is told about every confirmed booking.
type BookingNotifier interface {
	NotifyBookingConfirmed(conf *booking.Confirmation)
}

// BookingHandler handles the counselor booking flow via JSON API.
type BookingHandler struct {
	directory *booking.Directory
	notifier  BookingNotifier
	clock     func() time.Time
}

// NewBookingHandler creates a new API booking handler. notifier may be nil.
func NewBookingHandler(directory *booking.Directory, notifier BookingNotifier) *BookingHandler {
	return &BookingHandler{directory: directory, notifier: notifier, clock: time.Now}
}

// Counselors lists counselors, optionally filtered by type and language.
func (h *BookingHandler) Counselors(c fiber.Ctx) error {
	filter := booking.Filter{
		Type:     c.Query("type", ""),
		Language: c.Query("language", ""),
	}
	return jsonSuccess(c, h.directory.Counselors(filter))
}

// Slots lists the daily time slots.
func (h *BookingHandler) Slots(c fiber.Ctx) error {
	return jsonSuccess(c, h.directory.Slots())
}

// Create validates a booking request and returns its confirmation.
func (h *BookingHandler) Create(c fiber.Ctx) error {
	var req booking.Request
	if err := decodeBody(c, &req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}

	conf, err := h.directory.Book(req, h.clock())
	if err != nil {
		var verr *booking.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"status": "error",
				"error":  verr.Message,
				"field":  verr.Field,
				"step":   verr.Step,
			})
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to book session")
	}

	if h.notifier != nil {
		h.notifier.NotifyBookingConfirmed(conf)
	}
	return jsonCreated(c, conf)
}

package email

import (
	"go.uber.org/zap"

	"neurosync/internal/booking"
	"neurosync/internal/community"
	"neurosync/internal/config"
)

// Notifier sends email for booking and moderation events.
type Notifier struct {
	service    *Service
	templates  *Templates
	moderators []string
	log        *zap.Logger
}

// NewNotifier creates a new email notifier.
func NewNotifier(cfg *config.Config, log *zap.Logger) *Notifier {
	return &Notifier{
		service:    NewService(cfg, log),
		templates:  NewTemplates(cfg),
		moderators: cfg.ModeratorEmails,
		log:        log,
	}
}

// NotifyBookingConfirmed emails the confirmation to the student.
func (n *Notifier) NotifyBookingConfirmed(conf *booking.Confirmation) {
	if n == nil || !n.service.IsEnabled() || conf == nil || conf.Email == "" {
		return
	}

	subject, htmlBody, textBody := n.templates.BookingConfirmed(conf)
	n.service.SendAsync([]string{conf.Email}, subject, htmlBody, textBody)
}

// NotifyPostHeld alerts moderators that a post is waiting for review.
func (n *Notifier) NotifyPostHeld(sub *community.Submission) {
	if n == nil || !n.service.IsEnabled() || sub == nil || !sub.Held {
		return
	}
	if len(n.moderators) == 0 {
		n.log.Warn("post held but no moderator emails configured", zap.String("post", sub.Post.ID))
		return
	}

	subject, htmlBody, textBody := n.templates.PostHeld(sub)
	n.service.SendAsync(n.moderators, subject, htmlBody, textBody)
}

package email

import (
	"fmt"
	"html"
	"strings"

	"neurosync/internal/booking"
	"neurosync/internal/community"
	"neurosync/internal/config"
	"neurosync/internal/triage"
)

// Templates renders email subjects and bodies.
type Templates struct {
	cfg *config.Config
}

// NewTemplates creates a new templates instance.
func NewTemplates(cfg *config.Config) *Templates {
	return &Templates{cfg: cfg}
}

// baseHTML wraps content in the shared email layout. content must already be escaped.
func (t *Templates) baseHTML(title, content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>%[1]s</title>
    <style>
        body { font-family: -apple-system, 'Segoe UI', sans-serif; line-height: 1.6; color: #1e293b; max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #4f46e5; color: #fff; padding: 16px; border-radius: 8px 8px 0 0; }
        .content { background: #f8fafc; padding: 20px; border: 1px solid #e2e8f0; }
        .footer { padding: 12px; font-size: 12px; color: #64748b; text-align: center; }
        .label { font-weight: 600; }
        .crisis { color: #dc2626; font-weight: 600; }
    </style>
</head>
<body>
    <div class="header"><h1>%[1]s</h1></div>
    <div class="content">%[2]s</div>
    <div class="footer">
        <p>%[3]s</p>
        <p>If you are in immediate danger, %[4]s</p>
        <p><a href="%[5]s">%[5]s</a></p>
    </div>
</body>
</html>`,
		html.EscapeString(title),
		content,
		html.EscapeString(t.cfg.SiteTitle),
		html.EscapeString(triage.CrisisHelpline),
		html.EscapeString(t.cfg.BaseURL),
	)
}

// sessionLabel returns the display name and location note for a session type.
func sessionLabel(sessionType string) (string, string) {
	switch sessionType {
	case booking.SessionVideo:
		return "Video Call", "A link will be sent before your session"
	case booking.SessionPhone:
		return "Phone Call", "Your counselor will call the number you provided"
	default:
		return "In-Person", "Campus Counseling Center"
	}
}

// BookingConfirmed is sent to the student after a successful booking.
func (t *Templates) BookingConfirmed(conf *booking.Confirmation) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("Your counseling session on %s at %s", conf.Date, conf.Time)
	kind, where := sessionLabel(conf.SessionType)

	htmlBody = t.baseHTML("Appointment Confirmed", fmt.Sprintf(`
        <p>Hi %s,</p>
        <p>Your confidential counseling session has been scheduled.</p>
        <p><span class="label">Counselor:</span> %s (%s)</p>
        <p><span class="label">When:</span> %s at %s</p>
        <p><span class="label">Session:</span> %s, %s</p>
        <p><span class="label">Reference:</span> %s</p>
        <p>All sessions are completely confidential. You can reschedule or cancel up to 2 hours before.</p>`,
		html.EscapeString(conf.Name),
		html.EscapeString(conf.Counselor.Name),
		html.EscapeString(strings.Join(conf.Counselor.Specializations, ", ")),
		html.EscapeString(conf.Date), html.EscapeString(conf.Time),
		kind, where,
		conf.Reference,
	))

	textBody = fmt.Sprintf(`Hi %s,

Your confidential counseling session has been scheduled.

Counselor: %s (%s)
When: %s at %s
Session: %s, %s
Reference: %s

All sessions are completely confidential. You can reschedule or cancel up to 2 hours before.

If you are in immediate danger, %s
`,
		conf.Name,
		conf.Counselor.Name, strings.Join(conf.Counselor.Specializations, ", "),
		conf.Date, conf.Time,
		kind, where,
		conf.Reference,
		triage.CrisisHelpline,
	)

	return subject, htmlBody, textBody
}

// PostHeld alerts moderators that a community post was held for review.
func (t *Templates) PostHeld(sub *community.Submission) (subject, htmlBody, textBody string) {
	subject = fmt.Sprintf("[%s] Community post held for review", strings.ToUpper(sub.Severity.String()))
	reviewNote := "Please review it and reach out to the student if needed."
	if sub.Severity == triage.TierCrisis {
		reviewNote = "This post was classified as crisis. Please review it now."
	}

	htmlBody = t.baseHTML("Post Held for Review", fmt.Sprintf(`
        <p class="%s">%s</p>
        <p><span class="label">Title:</span> %s</p>
        <p><span class="label">Category:</span> %s</p>
        <p><span class="label">Author:</span> %s</p>
        <p><span class="label">Post ID:</span> %s</p>
        <blockquote>%s</blockquote>`,
		html.EscapeString(string(sub.Severity)), html.EscapeString(reviewNote),
		html.EscapeString(sub.Post.Title),
		html.EscapeString(sub.Post.Category),
		html.EscapeString(sub.Post.Author.Name),
		html.EscapeString(sub.Post.ID),
		html.EscapeString(sub.Post.Content),
	))

	textBody = fmt.Sprintf(`%s

Title: %s
Category: %s
Author: %s
Post ID: %s

%s
`,
		reviewNote,
		sub.Post.Title,
		sub.Post.Category,
		sub.Post.Author.Name,
		sub.Post.ID,
		sub.Post.Content,
	)

	return subject, htmlBody, textBody
}

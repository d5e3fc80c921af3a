// Package booking implements the counselor appointment flow: pick a
// counselor, pick a date, slot and session type, then submit contact details.
// Confirmed bookings are returned to the caller and not stored.
package booking

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"neurosync/internal/validation"
)

// Counselor types.
const (
	TypeCampus   = "campus"
	TypeExternal = "external"
)

// Session types.
const (
	SessionVideo    = "video"
	SessionPhone    = "phone"
	SessionInPerson = "in-person"
)

// Urgency levels a student can report on the intake form.
const (
	UrgencyLow    = "low"
	UrgencyMedium = "medium"
	UrgencyHigh   = "high"
)

// MaxAdvanceDays is how far ahead a session can be booked.
const MaxAdvanceDays = 60

var (
	ErrCounselorNotFound = errors.New("counselor not found")
	ErrSlotUnavailable   = errors.New("time slot unavailable")
)

// Counselor is a bookable campus or external counselor.
type Counselor struct {
	ID              string   `json:"id" yaml:"id"`
	Name            string   `json:"name" yaml:"name"`
	Specializations []string `json:"specializations" yaml:"specializations"`
	Languages       []string `json:"languages" yaml:"languages"`
	Availability    []string `json:"availability" yaml:"availability"` // weekday abbreviations, "Mon".."Sun"
	Type            string   `json:"type" yaml:"type"`
	Rating          float64  `json:"rating" yaml:"rating"`
	Experience      string   `json:"experience" yaml:"experience"`
}

// AvailableOn reports whether the counselor works on d's weekday.
func (c Counselor) AvailableOn(d time.Time) bool {
	day := d.Weekday().String()[:3]
	return slices.ContainsFunc(c.Availability, func(a string) bool {
		return strings.EqualFold(a, day)
	})
}

// SpeaksLanguage reports whether the counselor lists lang.
func (c Counselor) SpeaksLanguage(lang string) bool {
	return slices.ContainsFunc(c.Languages, func(l string) bool {
		return strings.EqualFold(l, lang)
	})
}

// TimeSlot is a daily appointment slot.
type TimeSlot struct {
	Time      string `json:"time" yaml:"time"`
	Available bool   `json:"available" yaml:"available"`
}

// Filter narrows the counselor list. Empty fields match everything.
type Filter struct {
	Type     string
	Language string
}

// Request is a completed booking form.
type Request struct {
	CounselorID     string `json:"counselor_id"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	SessionType     string `json:"session_type"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Concern         string `json:"concern"`
	Urgency         string `json:"urgency"`
	PreviousTherapy string `json:"previous_therapy"`
}

// Confirmation is returned for a valid booking.
type Confirmation struct {
	Reference   uuid.UUID `json:"reference"`
	Counselor   Counselor `json:"counselor"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	SessionType string    `json:"session_type"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Urgency     string    `json:"urgency,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ValidationError names the form field that failed and the step it belongs to.
type ValidationError struct {
	Step    int
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("step %d: %s: %s", e.Step, e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(step int, field, msg string) *ValidationError {
	return &ValidationError{Step: step, Field: field, Message: msg}
}

// Directory holds the counselors and daily slots. It is read-only after
// construction.
type Directory struct {
	counselors []Counselor
	slots      []TimeSlot
}

// NewDirectory builds a directory. Nil arguments fall back to the sample data.
func NewDirectory(counselors []Counselor, slots []TimeSlot) *Directory {
	if counselors == nil {
		counselors = DefaultCounselors()
	}
	if slots == nil {
		slots = DefaultTimeSlots()
	}
	return &Directory{
		counselors: slices.Clone(counselors),
		slots:      slices.Clone(slots),
	}
}

// Counselors returns counselors matching filter.
func (d *Directory) Counselors(filter Filter) []Counselor {
	out := make([]Counselor, 0, len(d.counselors))
	for _, c := range d.counselors {
		if filter.Type != "" && !strings.EqualFold(c.Type, filter.Type) {
			continue
		}
		if filter.Language != "" && !c.SpeaksLanguage(filter.Language) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Counselor looks up a counselor by id.
func (d *Directory) Counselor(id string) (Counselor, error) {
	for _, c := range d.counselors {
		if c.ID == id {
			return c, nil
		}
	}
	return Counselor{}, ErrCounselorNotFound
}

// Slots returns the daily time slots.
func (d *Directory) Slots() []TimeSlot {
	return slices.Clone(d.slots)
}

// Book validates req step by step and returns a confirmation.
func (d *Directory) Book(req Request, now time.Time) (*Confirmation, error) {
	// Step 1: counselor.
	counselor, err := d.Counselor(strings.TrimSpace(req.CounselorID))
	if err != nil {
		return nil, &ValidationError{Step: 1, Field: "counselor_id", Message: "Select a counselor", Err: err}
	}

	// Step 2: date, time and session type.
	date, ok, msg := validation.ParseDate(req.Date, now.Location())
	if !ok {
		return nil, invalid(2, "date", msg)
	}
	tomorrow := startOfDay(now).AddDate(0, 0, 1)
	if date.Before(tomorrow) {
		return nil, invalid(2, "date", "Date must be tomorrow or later")
	}
	if date.After(tomorrow.AddDate(0, 0, MaxAdvanceDays)) {
		return nil, invalid(2, "date", fmt.Sprintf("Date must be within %d days", MaxAdvanceDays))
	}
	if !counselor.AvailableOn(date) {
		return nil, invalid(2, "date", counselor.Name+" is not available on "+date.Weekday().String())
	}
	if err := d.checkSlot(req.Time); err != nil {
		return nil, &ValidationError{Step: 2, Field: "time", Message: "Select an available time slot", Err: err}
	}
	if !validSessionType(req.SessionType) {
		return nil, invalid(2, "session_type", "Session type must be video, phone or in-person")
	}

	// Step 3: contact form.
	if ok, msg := validation.ValidateRequired("Name", req.Name); !ok {
		return nil, invalid(3, "name", msg)
	}
	if ok, msg := validation.ValidateEmail(req.Email); !ok {
		return nil, invalid(3, "email", msg)
	}
	if ok, msg := validation.ValidatePhone(req.Phone); !ok {
		return nil, invalid(3, "phone", msg)
	}
	if ok, msg := validation.ValidateRequired("Concern", req.Concern); !ok {
		return nil, invalid(3, "concern", msg)
	}
	if req.Urgency != "" && !validUrgency(req.Urgency) {
		return nil, invalid(3, "urgency", "Urgency must be low, medium or high")
	}

	return &Confirmation{
		Reference:   uuid.New(),
		Counselor:   counselor,
		Date:        date.Format(validation.DateLayout),
		Time:        req.Time,
		SessionType: req.SessionType,
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Urgency:     req.Urgency,
		CreatedAt:   now,
	}, nil
}

func (d *Directory) checkSlot(t string) error {
	for _, s := range d.slots {
		if s.Time == t {
			if !s.Available {
				return ErrSlotUnavailable
			}
			return nil
		}
	}
	return ErrSlotUnavailable
}

func validSessionType(s string) bool {
	return s == SessionVideo || s == SessionPhone || s == SessionInPerson
}

func validUrgency(s string) bool {
	return s == UrgencyLow || s == UrgencyMedium || s == UrgencyHigh
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

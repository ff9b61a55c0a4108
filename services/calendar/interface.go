package calendar

import (
	"context"

	"telecare/models"

	"golang.org/x/oauth2"
)

// EventResult is the calendar-side identity of a synced appointment.
type EventResult struct {
	EventID  string `json:"eventId"`
	HTMLLink string `json:"htmlLink"`
}

// CalendarService syncs appointments to an external calendar. Failures here
// are reported but never block the appointment lifecycle.
type CalendarService interface {
	AuthURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	SetCredentials(token *oauth2.Token)
	Connected() bool

	CreateEvent(ctx context.Context, appt *models.Appointment, doctorName, doctorEmail, userEmail string) (*EventResult, error)
	UpdateEvent(ctx context.Context, eventID string, appt *models.Appointment, doctorName string) (*EventResult, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

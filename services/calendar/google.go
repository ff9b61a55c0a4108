package calendar

import (
	"context"
	"fmt"
	"sync"
	"time"

	"telecare/config"
	"telecare/models"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// GoogleCalendarService implements CalendarService against the Google
// Calendar API. Credentials are obtained through the OAuth consent flow and
// held in memory; until Exchange or SetCredentials runs, event calls fail
// with NotConnectedError.
type GoogleCalendarService struct {
	oauthConfig *oauth2.Config
	calendarID  string

	mu    sync.RWMutex
	token *oauth2.Token
}

// NewGoogleCalendarService builds the service from the app configuration.
func NewGoogleCalendarService() *GoogleCalendarService {
	return &GoogleCalendarService{
		oauthConfig: &oauth2.Config{
			ClientID:     config.AppConfig.GoogleClientID,
			ClientSecret: config.AppConfig.GoogleClientSecret,
			RedirectURL:  config.AppConfig.GoogleRedirectURL,
			Scopes:       []string{gcal.CalendarScope},
			Endpoint:     google.Endpoint,
		},
		calendarID: config.AppConfig.GoogleCalendarID,
	}
}

// AuthURL returns the consent URL for first-time authorization. Offline
// access is requested so a refresh token is issued.
func (g *GoogleCalendarService) AuthURL(state string) string {
	return g.oauthConfig.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"))
}

// Exchange trades an OAuth authorization code for tokens and stores them.
func (g *GoogleCalendarService) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := g.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	g.SetCredentials(token)
	return token, nil
}

// SetCredentials stores previously obtained tokens.
func (g *GoogleCalendarService) SetCredentials(token *oauth2.Token) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.token = token
}

// Connected reports whether credentials are present.
func (g *GoogleCalendarService) Connected() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.token != nil
}

func (g *GoogleCalendarService) client(ctx context.Context) (*gcal.Service, error) {
	g.mu.RLock()
	token := g.token
	g.mu.RUnlock()
	if token == nil {
		return nil, &NotConnectedError{}
	}
	svc, err := gcal.NewService(ctx, option.WithTokenSource(g.oauthConfig.TokenSource(ctx, token)))
	if err != nil {
		return nil, fmt.Errorf("failed to build calendar client: %w", err)
	}
	return svc, nil
}

// CreateEvent inserts a calendar event for the appointment, inviting both
// attendees with email and popup reminders.
func (g *GoogleCalendarService) CreateEvent(ctx context.Context, appt *models.Appointment, doctorName, doctorEmail, userEmail string) (*EventResult, error) {
	svc, err := g.client(ctx)
	if err != nil {
		return nil, err
	}

	event := &gcal.Event{
		Summary:     fmt.Sprintf("Appointment with Dr. %s", doctorName),
		Description: eventDescription(appt),
		Start:       &gcal.EventDateTime{DateTime: appt.StartTime.Format(time.RFC3339), TimeZone: "UTC"},
		End:         &gcal.EventDateTime{DateTime: appt.EndTime.Format(time.RFC3339), TimeZone: "UTC"},
		Attendees: []*gcal.EventAttendee{
			{Email: userEmail},
			{Email: doctorEmail},
		},
		Reminders: &gcal.EventReminders{
			UseDefault: false,
			Overrides: []*gcal.EventReminder{
				{Method: "email", Minutes: 24 * 60},
				{Method: "popup", Minutes: 30},
			},
			ForceSendFields: []string{"UseDefault"},
		},
	}

	created, err := svc.Events.Insert(g.calendarID, event).SendUpdates("all").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}
	return &EventResult{EventID: created.Id, HTMLLink: created.HtmlLink}, nil
}

// UpdateEvent rewrites the event's time range and description.
func (g *GoogleCalendarService) UpdateEvent(ctx context.Context, eventID string, appt *models.Appointment, doctorName string) (*EventResult, error) {
	svc, err := g.client(ctx)
	if err != nil {
		return nil, err
	}

	event := &gcal.Event{
		Summary:     fmt.Sprintf("Appointment with Dr. %s", doctorName),
		Description: eventDescription(appt),
		Start:       &gcal.EventDateTime{DateTime: appt.StartTime.Format(time.RFC3339), TimeZone: "UTC"},
		End:         &gcal.EventDateTime{DateTime: appt.EndTime.Format(time.RFC3339), TimeZone: "UTC"},
	}

	updated, err := svc.Events.Update(g.calendarID, eventID, event).SendUpdates("all").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to update calendar event %s: %w", eventID, err)
	}
	return &EventResult{EventID: updated.Id, HTMLLink: updated.HtmlLink}, nil
}

// DeleteEvent removes the event from the calendar.
func (g *GoogleCalendarService) DeleteEvent(ctx context.Context, eventID string) error {
	svc, err := g.client(ctx)
	if err != nil {
		return err
	}
	if err := svc.Events.Delete(g.calendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete calendar event %s: %w", eventID, err)
	}
	return nil
}

func eventDescription(appt *models.Appointment) string {
	if appt.Message != "" {
		return appt.Message
	}
	return "Medical appointment"
}

// NotConnectedError signals that the OAuth consent flow has not completed.
type NotConnectedError struct{}

func (e *NotConnectedError) Error() string {
	return "calendar client not initialized, complete the OAuth flow first"
}

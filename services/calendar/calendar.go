package calendar

import (
	"context"
	"fmt"
	"time"

	"calendxr/config"
	"calendxr/models"
	"calendxr/utils"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendarapi "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const primaryCalendarID = "primary"

// Client wraps the Google Calendar API for a single authenticated user.
type Client struct {
	svc    *calendarapi.Service
	logger *zap.Logger
}

// OAuthConfig returns the OAuth2 configuration used for calendar access.
func OAuthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     config.AppConfig.GoogleClientID,
		ClientSecret: config.AppConfig.GoogleClientSecret,
		RedirectURL:  config.AppConfig.GoogleRedirectURI,
		Scopes:       []string{calendarapi.CalendarScope},
		Endpoint:     google.Endpoint,
	}
}

// NewClient builds a calendar client from a stored OAuth token. The
// underlying HTTP client refreshes the token transparently when expired.
func NewClient(ctx context.Context, token *oauth2.Token) (*Client, error) {
	if token == nil {
		return nil, fmt.Errorf("calendar: no OAuth token for user")
	}
	httpClient := OAuthConfig().Client(ctx, token)
	svc, err := calendarapi.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("calendar: failed to create calendar service: %w", err)
	}
	return &Client{svc: svc, logger: utils.GetLogger()}, nil
}

// ListEvents fetches single events on the primary calendar within [from, to),
// ordered by start time, normalized into the internal event shape.
func (c *Client) ListEvents(ctx context.Context, from, to time.Time, maxResults int64) ([]models.CalendarEvent, error) {
	call := c.svc.Events.List(primaryCalendarID).
		ShowDeleted(false).
		SingleEvents(true).
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		OrderBy("startTime").
		Context(ctx)
	if maxResults > 0 {
		call = call.MaxResults(maxResults)
	}

	res, err := call.Do()
	if err != nil {
		return nil, fmt.Errorf("calendar: failed to list events: %w", err)
	}

	events := make([]models.CalendarEvent, 0, len(res.Items))
	for _, item := range res.Items {
		ev, err := normalizeEvent(item)
		if err != nil {
			c.logger.Warn("Skipping unparsable calendar event",
				zap.String("eventID", item.Id), zap.Error(err))
			continue
		}
		events = append(events, ev)
	}
	c.logger.Debug("Fetched calendar events", zap.Int("count", len(events)))
	return events, nil
}

// CreateEvent inserts a new event on the primary calendar.
func (c *Client) CreateEvent(ctx context.Context, in models.EventInput) (*models.CalendarEvent, error) {
	created, err := c.svc.Events.Insert(primaryCalendarID, toGoogleEvent(in)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("calendar: failed to create event: %w", err)
	}
	ev, err := normalizeEvent(created)
	if err != nil {
		return nil, fmt.Errorf("calendar: created event is unparsable: %w", err)
	}
	return &ev, nil
}

// UpdateEvent patches an existing event on the primary calendar.
func (c *Client) UpdateEvent(ctx context.Context, eventID string, in models.EventInput) (*models.CalendarEvent, error) {
	updated, err := c.svc.Events.Patch(primaryCalendarID, eventID, toGoogleEvent(in)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("calendar: failed to update event %s: %w", eventID, err)
	}
	ev, err := normalizeEvent(updated)
	if err != nil {
		return nil, fmt.Errorf("calendar: updated event is unparsable: %w", err)
	}
	return &ev, nil
}

// DeleteEvent removes an event from the primary calendar.
func (c *Client) DeleteEvent(ctx context.Context, eventID string) error {
	if err := c.svc.Events.Delete(primaryCalendarID, eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("calendar: failed to delete event %s: %w", eventID, err)
	}
	return nil
}

// toGoogleEvent maps the internal input shape onto the wire type.
func toGoogleEvent(in models.EventInput) *calendarapi.Event {
	ev := &calendarapi.Event{
		Summary:     in.Title,
		Description: in.Description,
		Location:    in.Location,
		Start:       &calendarapi.EventDateTime{DateTime: in.Start.Format(time.RFC3339)},
		End:         &calendarapi.EventDateTime{DateTime: in.End.Format(time.RFC3339)},
	}
	for _, email := range in.Attendees {
		ev.Attendees = append(ev.Attendees, &calendarapi.EventAttendee{Email: email})
	}
	return ev
}

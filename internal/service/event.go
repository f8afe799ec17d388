package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/forgo/fete/internal/model"
)

// setupMultipliers scales a venue's base capacity by room layout.
var setupMultipliers = map[model.SetupType]float64{
	model.SetupTheater:   1.0,
	model.SetupClassroom: 0.6,
	model.SetupBanquet:   0.5,
	model.SetupReception: 0.8,
	model.SetupExpo:      0.4,
	model.SetupUShape:    0.3,
	model.SetupBoardroom: 0.7,
	model.SetupWorkshop:  0.5,
}

// Check-in window defaults (8 AM through 4 PM inclusive)
const (
	defaultCheckinOpenHour  = 8
	defaultCheckinCloseHour = 16
)

// EventService handles capacity, registration, and check-in reporting
type EventService struct {
	checkinOpenHour  int
	checkinCloseHour int
	newID            func() string
}

// EventServiceConfig holds configuration for the event service
type EventServiceConfig struct {
	CheckinOpenHour  int // first reported check-in hour (default 8)
	CheckinCloseHour int // last reported check-in hour, inclusive (default 16)
}

// NewEventService creates a new event service
func NewEventService(cfg EventServiceConfig) *EventService {
	openHour := cfg.CheckinOpenHour
	if openHour == 0 {
		openHour = defaultCheckinOpenHour
	}
	closeHour := cfg.CheckinCloseHour
	if closeHour == 0 {
		closeHour = defaultCheckinCloseHour
	}

	return &EventService{
		checkinOpenHour:  openHour,
		checkinCloseHour: closeHour,
		newID:            uuid.NewString,
	}
}

// CalculateCapacity returns the maximum headcount for a venue arranged into
// the given setup. Setups the venue does not offer are rejected with
// ErrSetupNotOffered; setups it offers but that have no multiplier on file
// use the full base capacity.
func (s *EventService) CalculateCapacity(venue model.Venue, setup model.SetupType) (int, error) {
	if err := model.NewValidationError("venue", venue.Validate()); err != nil {
		return 0, err
	}

	if !venue.Offers(setup) {
		return 0, fmt.Errorf("%w: %q", ErrSetupNotOffered, setup)
	}

	multiplier, ok := setupMultipliers[setup]
	if !ok {
		multiplier = 1.0
	}

	return int(float64(venue.Capacity) * multiplier), nil
}

// Registration is the outcome of an attendee registration attempt.
// Success is false when the event declined the registration; Message
// carries the reason either way.
type Registration struct {
	ConfirmationID string           `json:"confirmation_id,omitempty"`
	AttendeeID     string           `json:"attendee_id,omitempty"`
	EventName      string           `json:"event_name,omitempty"`
	EventDate      string           `json:"event_date,omitempty"`
	TicketType     model.TicketType `json:"ticket_type,omitempty"`
	Success        bool             `json:"success"`
	Message        string           `json:"message"`
}

// RegisterAttendee attempts to register an attendee for an event. A full
// event or one no longer accepting registrations yields a declined
// Registration, not an error. The event's attendee counter is never
// mutated here; the caller owns that record.
func (s *EventService) RegisterAttendee(event model.Event, attendee model.Attendee, ticket model.TicketType) (Registration, error) {
	if err := model.NewValidationError("event", event.Validate()); err != nil {
		return Registration{}, err
	}
	if err := model.NewValidationError("attendee", attendee.Validate()); err != nil {
		return Registration{}, err
	}

	if event.IsSoldOut() {
		return Registration{Success: false, Message: "event is at full capacity"}, nil
	}

	if event.Status != model.EventStatusUpcoming {
		return Registration{Success: false, Message: "registration is closed for this event"}, nil
	}

	if ticket == "" {
		ticket = model.TicketStandard
	}

	return Registration{
		ConfirmationID: s.newID(),
		AttendeeID:     attendee.ID,
		EventName:      event.Name,
		EventDate:      event.Date,
		TicketType:     ticket,
		Success:        true,
		Message:        fmt.Sprintf("successfully registered for %s", event.Name),
	}, nil
}

// RegistrationStats summarizes how filled an event is
type RegistrationStats struct {
	TotalCapacity       int     `json:"total_capacity"`
	RegisteredAttendees int     `json:"registered_attendees"`
	PercentageFilled    float64 `json:"percentage_filled"`
	RemainingSpots      int     `json:"remaining_spots"` // negative when over-booked
	IsSoldOut           bool    `json:"is_sold_out"`
}

// RegistrationStats computes registration statistics for an event.
// A zero-capacity event reports 0% filled rather than dividing by zero.
func (s *EventService) RegistrationStats(event model.Event) (RegistrationStats, error) {
	if err := model.NewValidationError("event", event.Validate()); err != nil {
		return RegistrationStats{}, err
	}

	percentage := 0.0
	if event.Capacity > 0 {
		percentage = float64(event.RegisteredAttendees) / float64(event.Capacity) * 100
	}

	return RegistrationStats{
		TotalCapacity:       event.Capacity,
		RegisteredAttendees: event.RegisteredAttendees,
		PercentageFilled:    percentage,
		RemainingSpots:      event.Capacity - event.RegisteredAttendees,
		IsSoldOut:           event.IsSoldOut(),
	}, nil
}

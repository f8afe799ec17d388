package model

// Event represents a planned gathering at a venue
type Event struct {
	Name                string      `json:"name"`
	Date                string      `json:"date"` // YYYY-MM-DD
	Venue               string      `json:"venue"`
	Capacity            int         `json:"capacity"`
	RegisteredAttendees int         `json:"registered_attendees"`
	Status              EventStatus `json:"status"`
}

// EventStatus represents the lifecycle state of an event
type EventStatus string

// EventStatus constants
const (
	EventStatusUpcoming  EventStatus = "upcoming"
	EventStatusCompleted EventStatus = "completed"
	EventStatusCancelled EventStatus = "cancelled"
)

// EventType categorizes an event for resource planning
type EventType string

// EventType constants
const (
	EventTypeConference EventType = "conference"
	EventTypeGala       EventType = "gala"
)

// IsSoldOut reports whether registrations have reached (or exceeded) capacity
func (e *Event) IsSoldOut() bool {
	return e.RegisteredAttendees >= e.Capacity
}

// Validate checks that the event record is well formed
func (e *Event) Validate() []FieldError {
	var errs []FieldError
	if e.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	}
	if e.Capacity < 0 {
		errs = append(errs, FieldError{Field: "capacity", Message: "must not be negative"})
	}
	if e.RegisteredAttendees < 0 {
		errs = append(errs, FieldError{Field: "registered_attendees", Message: "must not be negative"})
	}
	if e.Status == "" {
		errs = append(errs, FieldError{Field: "status", Message: "status is required"})
	}
	return errs
}

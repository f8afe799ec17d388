package model

// TicketType represents an admission tier
type TicketType string

// TicketType constants
const (
	TicketStandard  TicketType = "standard"
	TicketVIP       TicketType = "vip"
	TicketEarlyBird TicketType = "early_bird"
	TicketGroup     TicketType = "group"
)

// Attendee represents a person registered (or registering) for an event
type Attendee struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	TicketType TicketType `json:"ticket_type"`
	CheckedIn  bool       `json:"check_in_status"`
}

// Validate checks that the attendee record is well formed
func (a *Attendee) Validate() []FieldError {
	var errs []FieldError
	if a.ID == "" {
		errs = append(errs, FieldError{Field: "id", Message: "id is required"})
	}
	return errs
}

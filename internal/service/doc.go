// Package service implements the business operations of the fete planning
// toolkit.
//
// The service package contains all planning logic: venue capacity math,
// attendee registration, ticket pricing, resource allocation and costing,
// budget analysis, and check-in reporting. Every operation is a pure,
// single-pass transformation over the records it receives; no service holds
// mutable state between calls and nothing is persisted.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts a config struct with
//     tunable defaults and collaborator interfaces
//   - Methods implement planning operations with up-front validation
//   - Errors are returned as *model.ValidationError for malformed records
//     or sentinel errors for domain rejections
//
// # Collaborator Interfaces
//
// Services define their own collaborator interfaces (for example
// AvailabilityCatalog), allowing:
//
//   - Easy substitution in unit tests
//   - Decoupling from the static catalog implementation
//   - Clear contracts for external data providers
//
// # Error Handling
//
// Domain rejections are package-level sentinel errors:
//
//	var (
//	    ErrRentalPeriodTooShort   = errors.New("rental period must be at least 1 day")
//	    ErrDiscountRateOutOfRange = errors.New("discount rate must be between 0 and 1")
//	)
//
// Registration is the one operation whose rejection is part of the result
// itself: a full or closed event yields Registration{Success: false} with a
// reason message and a nil error, since a declined registration is a normal
// outcome the caller is expected to surface rather than handle as a fault.
//
// # Example Usage
//
//	svc := NewEventService(EventServiceConfig{})
//	reg, err := svc.RegisterAttendee(event, attendee, model.TicketVIP)
//	if err != nil {
//	    // malformed input
//	}
//	if !reg.Success {
//	    // event full or registration closed
//	}
package service

// Package model defines domain entities and data structures for the fete
// planning toolkit.
//
// The model package contains struct definitions for venues, events,
// attendees, resources, and expenses, along with the enums and validation
// rules that constrain them. Models are plain records: they carry no
// behavior beyond validation and small lookup helpers, and the service
// layer never mutates them.
//
// # Validation
//
// Each entity exposes a Validate method returning a slice of FieldError
// values describing every invalid field:
//
//	errs := venue.Validate() // empty when the record is well formed
//
// Services wrap non-empty results in a *ValidationError, which is the
// error type callers should match with errors.As when distinguishing
// malformed input from domain-level rejections.
//
// # Enums
//
// String-typed enums (SetupType, EventStatus, TicketType, ResourceType,
// ExpenseCategory) are open sets: callers may pass values outside the
// declared constants, and each operation documents how unknown values
// are treated (defaulted, folded into miscellaneous, or rejected).
package model

package service

import "errors"

// Centralized service layer errors.
// Two disciplines coexist and callers branch on them differently:
//
//   - Malformed records are reported as *model.ValidationError (match with
//     errors.As); nothing is partially computed.
//   - Domain-level rejections that are expected outcomes of normal
//     operation are sentinel errors below (match with errors.Is), or an
//     explicit Success/Message pair on the result where one is defined
//     (attendee registration).

// ===== Capacity & Registration Errors =====
var (
	ErrSetupNotOffered = errors.New("setup type is not available for this venue")
)

// ===== Resource Planning Errors =====
var (
	ErrRentalPeriodTooShort = errors.New("rental period must be at least 1 day")
	ErrEventDateRequired    = errors.New("event date is required")
)

// ===== Budget & Projection Errors =====
var (
	ErrNegativeProjectionInput = errors.New("base cost and attendees must be positive")
	ErrPricingTiersRequired    = errors.New("pricing tiers are required")
	ErrDiscountRateOutOfRange  = errors.New("discount rate must be between 0 and 1")
)

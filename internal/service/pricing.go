package service

import (
	"math"
	"strings"

	"github.com/forgo/fete/internal/model"
)

// Ticket price multipliers applied to the base fee at construction time
const (
	vipMultiplier       = 2.0
	earlyBirdMultiplier = 0.8
	groupMultiplier     = 0.9

	defaultGroupMinQuantity = 10
)

// PricingCalculator computes ticket prices from four rates derived from a
// single base fee. The rates are fixed at construction; a calculator is
// safe to share and reuse across quotes.
type PricingCalculator struct {
	standard  float64
	vip       float64
	earlyBird float64
	group     float64
	groupMin  int
}

// PricingOption customizes a pricing calculator
type PricingOption func(*PricingCalculator)

// WithGroupMinQuantity overrides the quantity at which standard tickets
// switch to the group rate.
func WithGroupMinQuantity(n int) PricingOption {
	return func(c *PricingCalculator) {
		if n > 0 {
			c.groupMin = n
		}
	}
}

// NewPricingCalculator derives the four ticket rates from a base fee:
// standard at face value, vip at double, early bird at 80%, and group at
// 90%. Non-finite base fees are rejected.
func NewPricingCalculator(baseFee float64, opts ...PricingOption) (*PricingCalculator, error) {
	if math.IsNaN(baseFee) || math.IsInf(baseFee, 0) {
		return nil, model.NewValidationError("pricing", []model.FieldError{
			{Field: "base_fee", Message: "must be a finite number"},
		})
	}

	calc := &PricingCalculator{
		standard:  baseFee,
		vip:       baseFee * vipMultiplier,
		earlyBird: baseFee * earlyBirdMultiplier,
		group:     baseFee * groupMultiplier,
		groupMin:  defaultGroupMinQuantity,
	}
	for _, opt := range opts {
		opt(calc)
	}
	return calc, nil
}

// Quote returns the total price for a quantity of tickets. Standard
// tickets bought at or above the group threshold get the group rate;
// ticket types are matched case-insensitively and unrecognized types are
// priced as standard.
func (c *PricingCalculator) Quote(ticket model.TicketType, quantity int) float64 {
	kind := model.TicketType(strings.ToLower(string(ticket)))

	if kind == model.TicketStandard && quantity >= c.groupMin {
		return float64(quantity) * c.group
	}

	switch kind {
	case model.TicketVIP:
		return float64(quantity) * c.vip
	case model.TicketEarlyBird:
		return float64(quantity) * c.earlyBird
	default:
		return float64(quantity) * c.standard
	}
}

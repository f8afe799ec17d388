package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all planner configuration
type Config struct {
	Pricing PricingConfig
	Budget  BudgetConfig
	Checkin CheckinConfig
}

// PricingConfig holds ticket pricing settings
type PricingConfig struct {
	GroupMinQuantity int `env:"FETE_PRICING_GROUP_MIN_QUANTITY" envDefault:"10"`
}

// BudgetConfig holds financial projection settings
type BudgetConfig struct {
	VariableCostPerAttendee float64 `env:"FETE_BUDGET_VARIABLE_COST_PER_ATTENDEE" envDefault:"25"`
}

// CheckinConfig holds the check-in reporting window
type CheckinConfig struct {
	OpenHour  int `env:"FETE_CHECKIN_OPEN_HOUR" envDefault:"8"`
	CloseHour int `env:"FETE_CHECKIN_CLOSE_HOUR" envDefault:"16"`
}

// Load reads configuration from environment variables with sensible defaults
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that all configuration values are usable.
// It returns an error describing all validation failures, or nil if valid.
func (c *Config) Validate() error {
	var errs []error

	if c.Pricing.GroupMinQuantity < 1 {
		errs = append(errs, errors.New("FETE_PRICING_GROUP_MIN_QUANTITY must be at least 1"))
	}

	if c.Budget.VariableCostPerAttendee < 0 {
		errs = append(errs, errors.New("FETE_BUDGET_VARIABLE_COST_PER_ATTENDEE must not be negative"))
	}

	if c.Checkin.OpenHour < 0 || c.Checkin.OpenHour > 23 {
		errs = append(errs, errors.New("FETE_CHECKIN_OPEN_HOUR must be between 0 and 23"))
	}
	if c.Checkin.CloseHour < 0 || c.Checkin.CloseHour > 23 {
		errs = append(errs, errors.New("FETE_CHECKIN_CLOSE_HOUR must be between 0 and 23"))
	}
	if c.Checkin.CloseHour < c.Checkin.OpenHour {
		errs = append(errs, fmt.Errorf("check-in window is inverted: close hour %d precedes open hour %d",
			c.Checkin.CloseHour, c.Checkin.OpenHour))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

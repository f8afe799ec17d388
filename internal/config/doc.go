// Package config loads planner configuration from the environment.
//
// All settings have defaults matching the planner's documented behavior,
// so Load succeeds in an empty environment. Settings map one-to-one onto
// the service constructor configs:
//
//	cfg, err := config.Load()
//	events := service.NewEventService(service.EventServiceConfig{
//	    CheckinOpenHour:  cfg.Checkin.OpenHour,
//	    CheckinCloseHour: cfg.Checkin.CloseHour,
//	})
//
// Variables are prefixed FETE_ and parsed with struct tags via
// github.com/caarlos0/env.
package config

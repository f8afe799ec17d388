// Package fixtures provides in-memory test data for the planning toolkit.
//
// Each factory returns freshly built records with realistic values, so a
// test may mutate what it receives without affecting other tests:
//
//	event := fixtures.UpcomingEvent()
//	venue := fixtures.Venues()[event.Venue]
package fixtures

import "github.com/forgo/fete/internal/model"

// Venues returns the sample venues keyed by name
func Venues() map[string]model.Venue {
	return map[string]model.Venue{
		"Convention Center": {
			Name:       "Convention Center",
			Capacity:   500,
			HourlyRate: 750.00,
			LayoutOptions: []model.SetupType{
				model.SetupTheater, model.SetupClassroom, model.SetupExpo,
			},
			Availability: map[string]bool{"2023-09-15": true, "2023-10-20": false},
		},
		"Grand Ballroom": {
			Name:       "Grand Ballroom",
			Capacity:   250,
			HourlyRate: 500.00,
			LayoutOptions: []model.SetupType{
				model.SetupBanquet, model.SetupReception, model.SetupTheater,
			},
			Availability: map[string]bool{"2023-09-15": false, "2023-10-20": true},
		},
	}
}

// Events returns the sample events
func Events() []model.Event {
	return []model.Event{
		{
			Name:                "Tech Conference 2023",
			Date:                "2023-09-15",
			Venue:               "Convention Center",
			Capacity:            500,
			RegisteredAttendees: 350,
			Status:              model.EventStatusUpcoming,
		},
		{
			Name:                "Charity Gala",
			Date:                "2023-10-20",
			Venue:               "Grand Ballroom",
			Capacity:            250,
			RegisteredAttendees: 200,
			Status:              model.EventStatusUpcoming,
		},
		{
			Name:                "Product Launch",
			Date:                "2023-08-05",
			Venue:               "Innovation Hub",
			Capacity:            150,
			RegisteredAttendees: 150,
			Status:              model.EventStatusCompleted,
		},
	}
}

// UpcomingEvent returns a sample event that accepts registrations
func UpcomingEvent() model.Event {
	return Events()[0]
}

// Attendees returns the sample attendees
func Attendees() []model.Attendee {
	return []model.Attendee{
		{ID: "A12345", Name: "Jane Smith", Email: "jane@example.com", TicketType: model.TicketVIP},
		{ID: "A12346", Name: "John Doe", Email: "john@example.com", TicketType: model.TicketStandard, CheckedIn: true},
		{ID: "A12347", Name: "Mary Johnson", Email: "mary@example.com", TicketType: model.TicketVIP, CheckedIn: true},
	}
}

// Resources returns the sample equipment inventory
func Resources() []model.Resource {
	hall := "Main Hall"
	return []model.Resource{
		{Type: model.ResourceProjector, Quantity: 3, CostPerUnit: 75.50, AssignedTo: &hall},
		{Type: model.ResourceMicrophone, Quantity: 5, CostPerUnit: 35.00, AssignedTo: &hall},
		{Type: model.ResourceChair, Quantity: 200, CostPerUnit: 2.50, AssignedTo: &hall},
	}
}

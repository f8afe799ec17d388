package service

import (
	"log/slog"
	"strings"

	"github.com/forgo/fete/internal/model"
)

// Minimum allocations for conference equipment
const (
	minConferenceProjectors  = 1
	minConferenceMicrophones = 2
	minConferenceTables      = 5
)

// AvailabilityCatalog reports rental stock on hand for a resource type on
// a given date. Implemented by the catalog package; substituted in tests.
type AvailabilityCatalog interface {
	QuantityAvailable(resourceType model.ResourceType, date string) (int, bool)
}

// ResourceService handles resource allocation, costing, and availability
type ResourceService struct {
	catalog AvailabilityCatalog
	logger  *slog.Logger
}

// ResourceServiceConfig holds configuration for the resource service
type ResourceServiceConfig struct {
	Catalog AvailabilityCatalog
	Logger  *slog.Logger // optional; availability misses are debug-logged
}

// NewResourceService creates a new resource service
func NewResourceService(cfg ResourceServiceConfig) *ResourceService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &ResourceService{
		catalog: cfg.Catalog,
		logger:  logger,
	}
}

// AllocateResources derives the equipment list for an event from its type
// and expected headcount. Every event gets one chair per attendee;
// conferences add projection, sound, and tables scaled to the headcount;
// galas add banquet tables and a speaker system. Unrecognized event types
// get chairs only.
func (s *ResourceService) AllocateResources(venue model.Venue, attendeeCount int, eventType model.EventType) ([]model.Resource, error) {
	if err := model.NewValidationError("venue", venue.Validate()); err != nil {
		return nil, err
	}
	if attendeeCount < 0 {
		return nil, model.NewValidationError("allocation", []model.FieldError{
			{Field: "attendee_count", Message: "must not be negative"},
		})
	}

	notes := "One per attendee"
	resources := []model.Resource{
		{Type: model.ResourceChair, Quantity: attendeeCount, Notes: &notes},
	}

	switch model.EventType(strings.ToLower(string(eventType))) {
	case model.EventTypeConference:
		resources = append(resources,
			model.Resource{Type: model.ResourceProjector, Quantity: max(minConferenceProjectors, attendeeCount/100)},
			model.Resource{Type: model.ResourceMicrophone, Quantity: max(minConferenceMicrophones, attendeeCount/50)},
			model.Resource{Type: model.ResourceTable, Quantity: max(minConferenceTables, attendeeCount/10)},
		)
	case model.EventTypeGala:
		resources = append(resources,
			model.Resource{Type: model.ResourceTable, Quantity: attendeeCount / 8},
			model.Resource{Type: model.ResourceSpeakerSystem, Quantity: 1},
		)
	}

	return resources, nil
}

// CostReport breaks rental costs down by resource type
type CostReport struct {
	Breakdown        map[model.ResourceType]float64 `json:"cost_breakdown"`
	TotalCost        float64                        `json:"total_cost"`
	RentalPeriodDays int                            `json:"rental_period_days"`
}

// CalculateResourceCosts totals quantity x cost-per-unit x rental days for
// each resource. A rental period under one day is a domain rejection
// (ErrRentalPeriodTooShort), not a validation failure.
func (s *ResourceService) CalculateResourceCosts(resources []model.Resource, rentalPeriodDays int) (CostReport, error) {
	if rentalPeriodDays < 1 {
		return CostReport{}, ErrRentalPeriodTooShort
	}

	for i := range resources {
		if err := model.NewValidationError("resource", resources[i].Validate()); err != nil {
			return CostReport{}, err
		}
	}

	report := CostReport{
		Breakdown:        make(map[model.ResourceType]float64, len(resources)),
		RentalPeriodDays: rentalPeriodDays,
	}
	for _, r := range resources {
		cost := float64(r.Quantity) * r.CostPerUnit * float64(rentalPeriodDays)
		report.Breakdown[r.Type] += cost
		report.TotalCost += cost
	}

	return report, nil
}

// ResourceAvailability is the catalog's answer for one resource type
type ResourceAvailability struct {
	Available         bool `json:"available"`
	QuantityAvailable int  `json:"quantity_available,omitempty"`
}

// AvailabilityReport aggregates per-type availability for a date
type AvailabilityReport struct {
	AllAvailable bool                                        `json:"all_available"`
	Resources    map[model.ResourceType]ResourceAvailability `json:"resources"`
}

// CheckAvailability looks each requested resource up in the catalog for
// the event date. Types or dates the catalog does not stock are reported
// unavailable; AllAvailable is the conjunction over all requests and is
// false when nothing was requested.
func (s *ResourceService) CheckAvailability(resources []model.Resource, eventDate string) (AvailabilityReport, error) {
	if eventDate == "" {
		return AvailabilityReport{}, ErrEventDateRequired
	}

	report := AvailabilityReport{
		Resources: make(map[model.ResourceType]ResourceAvailability, len(resources)),
	}

	allAvailable := len(resources) > 0
	for _, r := range resources {
		stock, ok := s.catalog.QuantityAvailable(r.Type, eventDate)
		if !ok {
			s.logger.Debug("resource not in availability catalog",
				"type", string(r.Type), "date", eventDate)
			report.Resources[r.Type] = ResourceAvailability{Available: false}
			allAvailable = false
			continue
		}

		available := stock >= r.Quantity
		report.Resources[r.Type] = ResourceAvailability{
			Available:         available,
			QuantityAvailable: stock,
		}
		if !available {
			allAvailable = false
		}
	}

	report.AllAvailable = allAvailable
	return report, nil
}

// ReportFormat selects the inventory report shape
type ReportFormat string

// ReportFormat constants
const (
	ReportFormatSummary  ReportFormat = "summary"
	ReportFormatDetailed ReportFormat = "detailed"
)

// ReportOptions controls inventory report generation
type ReportOptions struct {
	IncludeCosts bool         `json:"include_costs"`
	Format       ReportFormat `json:"format"`
}

// ReportOption customizes inventory report generation
type ReportOption func(*ReportOptions)

// WithoutCosts omits the total inventory value from the report
func WithoutCosts() ReportOption {
	return func(o *ReportOptions) { o.IncludeCosts = false }
}

// WithFormat selects the report format
func WithFormat(f ReportFormat) ReportOption {
	return func(o *ReportOptions) { o.Format = f }
}

// InventoryReport summarizes an equipment inventory
type InventoryReport struct {
	Options       ReportOptions    `json:"options"`
	ResourceCount int              `json:"resource_count"`
	TotalValue    float64          `json:"total_value"`
	Items         []model.Resource `json:"items,omitempty"` // detailed format only
}

// GenerateInventoryReport summarizes the given inventory. Defaults are
// costs included and summary format; options override them.
func (s *ResourceService) GenerateInventoryReport(resources []model.Resource, opts ...ReportOption) InventoryReport {
	options := ReportOptions{IncludeCosts: true, Format: ReportFormatSummary}
	for _, opt := range opts {
		opt(&options)
	}

	report := InventoryReport{
		Options:       options,
		ResourceCount: len(resources),
	}

	if options.IncludeCosts {
		for _, r := range resources {
			report.TotalValue += float64(r.Quantity) * r.CostPerUnit
		}
	}
	if options.Format == ReportFormatDetailed {
		report.Items = append(report.Items, resources...)
	}

	return report
}

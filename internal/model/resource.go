package model

// ResourceType identifies a kind of rentable equipment. The declared
// constants cover the planner's well-known kinds; callers may introduce
// their own values, which availability checks simply report as not stocked.
type ResourceType string

// ResourceType constants
const (
	ResourceChair         ResourceType = "Chair"
	ResourceTable         ResourceType = "Table"
	ResourceProjector     ResourceType = "Projector"
	ResourceMicrophone    ResourceType = "Microphone"
	ResourceSpeakerSystem ResourceType = "Speaker System"
)

// Resource represents a quantity of equipment needed for an event.
// CostPerUnit is per rental day; AssignedTo and Notes are optional labels.
type Resource struct {
	Type        ResourceType `json:"type"`
	Quantity    int          `json:"quantity"`
	CostPerUnit float64      `json:"cost_per_unit"`
	AssignedTo  *string      `json:"assigned_to,omitempty"`
	Notes       *string      `json:"notes,omitempty"`
}

// Validate checks that the resource record is well formed
func (r *Resource) Validate() []FieldError {
	var errs []FieldError
	if r.Type == "" {
		errs = append(errs, FieldError{Field: "type", Message: "type is required"})
	}
	if r.Quantity < 0 {
		errs = append(errs, FieldError{Field: "quantity", Message: "must not be negative"})
	}
	if r.CostPerUnit < 0 {
		errs = append(errs, FieldError{Field: "cost_per_unit", Message: "must not be negative"})
	}
	return errs
}

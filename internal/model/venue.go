package model

// SetupType identifies a room layout a venue can be arranged into
type SetupType string

// SetupType constants
const (
	SetupTheater   SetupType = "theater"
	SetupClassroom SetupType = "classroom"
	SetupBanquet   SetupType = "banquet"
	SetupReception SetupType = "reception"
	SetupExpo      SetupType = "expo"
	SetupUShape    SetupType = "u-shape"
	SetupBoardroom SetupType = "boardroom"
	SetupWorkshop  SetupType = "workshop"
)

// Venue represents a bookable space
type Venue struct {
	Name          string          `json:"name"`
	Capacity      int             `json:"capacity"`
	HourlyRate    float64         `json:"hourly_rate"`
	LayoutOptions []SetupType     `json:"layout_options"`
	Availability  map[string]bool `json:"availability,omitempty"` // date (YYYY-MM-DD) -> bookable
}

// Offers reports whether the venue can be arranged into the given setup
func (v *Venue) Offers(setup SetupType) bool {
	for _, opt := range v.LayoutOptions {
		if opt == setup {
			return true
		}
	}
	return false
}

// Validate checks that the venue record is well formed
func (v *Venue) Validate() []FieldError {
	var errs []FieldError
	if v.Capacity < 0 {
		errs = append(errs, FieldError{Field: "capacity", Message: "must not be negative"})
	}
	if len(v.LayoutOptions) == 0 {
		errs = append(errs, FieldError{Field: "layout_options", Message: "at least one layout option is required"})
	}
	return errs
}

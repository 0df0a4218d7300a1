package domain

// VehicleCategory groups vehicles the way the fleet pages do.
type VehicleCategory string

const (
	// VehicleCategoryPartyBus covers party buses and mini party buses.
	VehicleCategoryPartyBus VehicleCategory = "party-bus"
	// VehicleCategoryLimousine covers stretch limousines and limo-style sprinters.
	VehicleCategoryLimousine VehicleCategory = "limousine"
	// VehicleCategoryCoachBus covers coach buses, minicoaches and shuttles.
	VehicleCategoryCoachBus VehicleCategory = "coach-bus"
)

// Valid reports whether c is one of the known categories.
func (c VehicleCategory) Valid() bool {
	switch c {
	case VehicleCategoryPartyBus, VehicleCategoryLimousine, VehicleCategoryCoachBus:
		return true
	default:
		return false
	}
}

// Vehicle is a static fleet listing. Listings are authored with the site
// content and never change at runtime.
type Vehicle struct {
	// ID is the unique listing id.
	ID string `json:"id" yaml:"id"`
	// Slug is used in fleet URLs.
	Slug string `json:"slug" yaml:"slug"`
	// Name is the display name, e.g. "30 Passenger Party Bus".
	Name string `json:"name" yaml:"name"`
	// Category is the fleet group the vehicle belongs to.
	Category VehicleCategory `json:"category" yaml:"category"`
	// CapacityMin and CapacityMax bound the passenger count.
	CapacityMin int `json:"capacityMin" yaml:"capacityMin"`
	CapacityMax int `json:"capacityMax" yaml:"capacityMax"`
	// Description is a short marketing blurb.
	Description string `json:"description" yaml:"description"`
	// Highlights lists amenities shown on the listing card.
	Highlights []string `json:"highlights" yaml:"highlights"`
	// Images are image references, first one is the cover.
	Images []string `json:"images" yaml:"images"`
	// Keywords are extra search terms.
	Keywords []string `json:"keywords,omitempty" yaml:"keywords"`
	// HourlyRate is the advertised starting rate in whole dollars.
	HourlyRate int `json:"hourlyRate" yaml:"hourlyRate"`
	// MinHours is the booking minimum.
	MinHours int `json:"minHours" yaml:"minHours"`
}

package domain

// MetersPerMile converts route distances for display.
const MetersPerMile = 1609.344

// Coordinates is a WGS84 point. Lng comes first to match the routing APIs.
type Coordinates struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// Leg is the routed distance and duration between two consecutive stops.
type Leg struct {
	DistanceMeters  float64 `json:"distanceMeters"`
	DurationSeconds float64 `json:"durationSeconds"`
}

// RoutePlan is the summed trip across all stops.
type RoutePlan struct {
	Addresses       []string      `json:"addresses"`
	Coordinates     []Coordinates `json:"coordinates"`
	DistanceMeters  float64       `json:"distanceMeters"`
	DurationSeconds float64       `json:"durationSeconds"`
	DistanceMiles   float64       `json:"distanceMiles"`
	DurationMinutes float64       `json:"durationMinutes"`
	Segments        []Leg         `json:"segments"`
}

// SuggestionKind selects what an autocomplete lookup returns.
type SuggestionKind string

const (
	SuggestionKindAddress SuggestionKind = "address"
	SuggestionKindCity    SuggestionKind = "city"
)

// Suggestion is an autocomplete candidate.
type Suggestion struct {
	Label  string      `json:"label"`
	Coords Coordinates `json:"coords"`
	// Rank orders candidates, higher first (house numbers beat streets beat areas).
	Rank int `json:"-"`
}

// Package geo defines the geocoding abstractions shared by the route planner,
// the autocomplete endpoint and the weather advisor.
package geo

import (
	"bus2ride/pkg/domain"
	"context"
)

// Suggester returns autocomplete candidates for a partial address or city
// name. Candidates come back in provider order with Rank filled in when the
// provider exposes a useful signal.
type Suggester interface {
	Suggest(ctx context.Context, query string, kind domain.SuggestionKind, limit int) ([]domain.Suggestion, error)
}

// Geocoder resolves free-form addresses.
//
//go:generate mockgen -package mockgeo -source=interface.go -destination=mock/mockgeo.go *
type Geocoder interface {
	Suggester
	// Geocode returns the best match for address, or ErrNotFound when the
	// provider has none.
	Geocode(ctx context.Context, address string) (domain.Coordinates, error)
}

// CityLocator resolves city names to places with a country, which decides
// the forecast source.
type CityLocator interface {
	Suggester
	// LocateCity returns the first match for name, or ErrNotFound.
	LocateCity(ctx context.Context, name string) (*domain.Place, error)
}

// IPLocator resolves a visitor IP to the city it is in.
type IPLocator interface {
	// LocateIP returns ErrNotFound for reserved or unknown addresses.
	LocateIP(ctx context.Context, ip string) (*domain.Place, error)
}

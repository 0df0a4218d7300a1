// Package weather defines the forecast abstraction used by the weather
// advisor, plus the helpers shared by its implementations.
package weather

import (
	"bus2ride/pkg/domain"
	"context"
)

// Forecaster returns the upcoming forecast for a geocoded place.
//
//go:generate mockgen -package mockweather -source=interface.go -destination=mock/mockweather.go *
type Forecaster interface {
	Forecast(ctx context.Context, place domain.Place) (*domain.Forecast, error)
}

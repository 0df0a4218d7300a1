// Package routing defines the driving-directions abstraction used by the
// route planner.
package routing

import (
	"bus2ride/pkg/domain"
	"context"
)

// Router computes the driving distance and duration between two points.
//
//go:generate mockgen -package mockrouting -source=interface.go -destination=mock/mockrouting.go *
type Router interface {
	// Route returns the fastest leg from -> to, or ErrNotFound when the
	// provider finds no route.
	Route(ctx context.Context, from, to domain.Coordinates) (domain.Leg, error)
}

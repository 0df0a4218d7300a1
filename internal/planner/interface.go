package planner

import (
	"bus2ride/pkg/domain"
	"context"
)

//go:generate mockgen -package mockplanner -source=interface.go -destination=mock/mockplanner.go *
type Planner interface {
	Plan(ctx context.Context, addresses []string) (*domain.RoutePlan, error)
	Suggest(ctx context.Context, query string, kind domain.SuggestionKind) ([]domain.Suggestion, error)
}

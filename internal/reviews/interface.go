package reviews

import (
	"bus2ride/pkg/domain"
	"context"
)

//go:generate mockgen -package mockreviews -source=interface.go -destination=mock/mockreviews.go *
type Reviews interface {
	Submit(ctx context.Context, review domain.Review) (*domain.Review, error)
	Approved(ctx context.Context, query string, limit uint) ([]domain.Review, error)
	All(ctx context.Context, limit uint) ([]domain.Review, error)
	Approve(ctx context.Context, id domain.ReviewID, admin domain.UserID) (*domain.Review, error)
	Seed(ctx context.Context, reviews []domain.Review) (int, error)
}

package storage

import (
	"bus2ride/pkg/domain"
	"context"
)

// ReviewStorage persists customer reviews and their moderation state.
type ReviewStorage interface {
	// StoreReviews inserts reviews and returns them with generated fields set.
	StoreReviews(ctx context.Context, reviews ...domain.Review) ([]domain.Review, error)
	// ApprovedReviews returns approved reviews, newest first. A non-empty query
	// keeps reviews whose author, title or body contains it, ignoring case.
	ApprovedReviews(ctx context.Context, query string, limit uint) ([]domain.Review, error)
	// Reviews returns reviews in any state, newest first.
	Reviews(ctx context.Context, limit uint) ([]domain.Review, error)
	// ReviewByID returns nil when the review does not exist.
	ReviewByID(ctx context.Context, id domain.ReviewID) (*domain.Review, error)
	// ApproveReview moves a pending review to approved and returns it. It
	// returns nil when no pending review with the id exists.
	ApproveReview(ctx context.Context, id domain.ReviewID, by domain.UserID) (*domain.Review, error)
	// ReviewCount counts reviews in any state.
	ReviewCount(ctx context.Context) (int64, error)
}

// Package reviews accepts customer reviews and moderates them. Submitted
// reviews stay pending until an administrator approves them; only approved
// reviews are public.
package reviews

import (
	"bus2ride/pkg/domain"
	"bus2ride/pkg/serrors"
	"bus2ride/pkg/storage"
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// DefaultLimit is used when a listing gets no limit.
	DefaultLimit = 50
	// MaxLimit caps listings.
	MaxLimit = 200

	maxAuthorLen = 128
	maxTitleLen  = 255
	maxBodyLen   = 5000
	maxTags      = 10
)

type reviews struct {
	storage storage.Storage
}

// New returns the reviews service.
func New(storage storage.Storage) Reviews {
	return &reviews{storage: storage}
}

func clampLimit(limit uint) uint {
	if limit == 0 {
		return DefaultLimit
	}

	return min(limit, MaxLimit)
}

// Submit validates and stores a review as pending.
func (r *reviews) Submit(ctx context.Context, review domain.Review) (*domain.Review, error) {
	review.Author = strings.TrimSpace(review.Author)
	review.Title = strings.TrimSpace(review.Title)
	review.Body = strings.TrimSpace(review.Body)
	review.City = strings.TrimSpace(review.City)
	review.MediaURL = strings.TrimSpace(review.MediaURL)

	switch {
	case review.Author == "":
		return nil, serrors.With(serrors.ErrBadRequest, "name is required")
	case review.Body == "":
		return nil, serrors.With(serrors.ErrBadRequest, "review is required")
	case review.Rating < 1 || review.Rating > 5:
		return nil, serrors.With(serrors.ErrBadRequest, "rating must be between 1 and 5")
	case utf8.RuneCountInString(review.Author) > maxAuthorLen:
		return nil, serrors.With(serrors.ErrBadRequest, "name must be at most %d characters", maxAuthorLen)
	case utf8.RuneCountInString(review.Title) > maxTitleLen:
		return nil, serrors.With(serrors.ErrBadRequest, "title must be at most %d characters", maxTitleLen)
	case utf8.RuneCountInString(review.Body) > maxBodyLen:
		return nil, serrors.With(serrors.ErrBadRequest, "review must be at most %d characters", maxBodyLen)
	case len(review.Tags) > maxTags:
		return nil, serrors.With(serrors.ErrBadRequest, "at most %d tags are allowed", maxTags)
	}

	if review.MediaURL != "" {
		normalized, err := NormalizeMediaURL(review.MediaURL)
		if err != nil {
			return nil, err
		}
		review.MediaURL = normalized
	}

	review.ID = 0
	review.Status = domain.ReviewStatusPending
	review.ApprovedBy = nil
	review.ApprovedAt = time.Time{}

	stored, err := r.storage.StoreReviews(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("could not store review: %w", err)
	}

	return &stored[0], nil
}

func (r *reviews) Approved(ctx context.Context, query string, limit uint) ([]domain.Review, error) {
	res, err := r.storage.ApprovedReviews(ctx, query, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("could not get approved reviews: %w", err)
	}

	return res, nil
}

func (r *reviews) All(ctx context.Context, limit uint) ([]domain.Review, error) {
	res, err := r.storage.Reviews(ctx, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("could not get reviews: %w", err)
	}

	return res, nil
}

// Approve publishes a pending review. Unknown ids are NOT_FOUND and reviews
// that are already approved are CONFLICT.
func (r *reviews) Approve(ctx context.Context, id domain.ReviewID, admin domain.UserID) (*domain.Review, error) {
	var approved *domain.Review
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.ApproveReview(ctx, id, admin)
		if err != nil {
			return fmt.Errorf("could not approve review: %w", err)
		}
		if res != nil {
			approved = res

			return nil
		}

		existing, err := tx.ReviewByID(ctx, id)
		if err != nil {
			return fmt.Errorf("could not get review: %w", err)
		}
		if existing == nil {
			return serrors.With(serrors.ErrNotFound, "review not found")
		}

		return serrors.With(serrors.ErrConflict, "review is already approved")
	}); err != nil {
		return nil, err //nolint: wrapcheck
	}

	return approved, nil
}

// Seed stores reviews as approved when no review exists yet and returns how
// many were stored.
func (r *reviews) Seed(ctx context.Context, seed []domain.Review) (int, error) {
	if len(seed) == 0 {
		return 0, nil
	}

	var stored int
	if err := r.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		count, err := tx.ReviewCount(ctx)
		if err != nil {
			return fmt.Errorf("could not count reviews: %w", err)
		}
		if count > 0 {
			return nil
		}

		now := time.Now()
		rows := make([]domain.Review, 0, len(seed))
		for _, s := range seed {
			s.Status = domain.ReviewStatusApproved
			s.ApprovedAt = now
			rows = append(rows, s)
		}

		res, err := tx.StoreReviews(ctx, rows...)
		if err != nil {
			return fmt.Errorf("could not store seed reviews: %w", err)
		}
		stored = len(res)

		return nil
	}); err != nil {
		return 0, fmt.Errorf("could not seed reviews: %w", err)
	}

	return stored, nil
}

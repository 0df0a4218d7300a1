package reviews_test

import (
	"bus2ride/internal/reviews"
	"bus2ride/pkg/domain"
	"bus2ride/pkg/serrors"
	"bus2ride/pkg/storage"
	mockstorage "bus2ride/pkg/storage/mock"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestReviews(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, reviews.Reviews) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)

	return ctrl, st, reviews.New(st)
}

// helper to wire Storage.WithTx to execute callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func TestReviews_Submit_Validation(t *testing.T) {
	_, _, r := newTestReviews(t)

	valid := domain.Review{Author: "Ann", Body: "Great ride", Rating: 5}
	tests := []struct {
		name   string
		mutate func(*domain.Review)
		msg    string
	}{
		{"missing author", func(r *domain.Review) { r.Author = "  " }, "name is required"},
		{"missing body", func(r *domain.Review) { r.Body = "" }, "review is required"},
		{"rating too low", func(r *domain.Review) { r.Rating = 0 }, "rating must be between 1 and 5"},
		{"rating too high", func(r *domain.Review) { r.Rating = 6 }, "rating must be between 1 and 5"},
		{"long body", func(r *domain.Review) { r.Body = strings.Repeat("x", 5001) }, "review must be at most 5000 characters"},
		{"bad media url", func(r *domain.Review) { r.MediaURL = "javascript:alert(1)" }, "media url must be an http(s) url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.mutate(&in)

			_, err := r.Submit(context.Background(), in)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
			require.Equal(t, tt.msg, serrors.MessageOf(err))
		})
	}
}

func TestReviews_Submit_StoresPending(t *testing.T) {
	_, st, r := newTestReviews(t)
	admin := domain.UserID(uuid.New())

	st.EXPECT().StoreReviews(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, in ...domain.Review) ([]domain.Review, error) {
			require.Len(t, in, 1)
			require.Equal(t, domain.ReviewStatusPending, in[0].Status)
			require.Nil(t, in[0].ApprovedBy)
			require.Equal(t, "Ann", in[0].Author)
			in[0].ID = 7

			return in, nil
		},
	)

	res, err := r.Submit(context.Background(), domain.Review{
		ID:         99,
		Author:     " Ann ",
		Body:       "Great ride",
		Rating:     4,
		MediaURL:   "https://cdn.example.com/photo.jpg",
		Status:     domain.ReviewStatusApproved,
		ApprovedBy: &admin,
	})
	require.NoError(t, err)
	require.Equal(t, domain.ReviewID(7), res.ID)
}

func TestReviews_Submit_StorageError(t *testing.T) {
	_, st, r := newTestReviews(t)
	st.EXPECT().StoreReviews(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))

	_, err := r.Submit(context.Background(), domain.Review{Author: "Ann", Body: "ok", Rating: 3})
	require.ErrorContains(t, err, "could not store review")
}

func TestReviews_Listing(t *testing.T) {
	_, st, r := newTestReviews(t)
	ctx := context.Background()

	st.EXPECT().ApprovedReviews(ctx, "limo", uint(reviews.DefaultLimit)).Return([]domain.Review{{ID: 1}}, nil)
	res, err := r.Approved(ctx, "limo", 0)
	require.NoError(t, err)
	require.Len(t, res, 1)

	st.EXPECT().Reviews(ctx, uint(reviews.MaxLimit)).Return(nil, nil)
	_, err = r.All(ctx, 10_000)
	require.NoError(t, err)

	st.EXPECT().Reviews(ctx, uint(3)).Return(nil, errors.New("boom"))
	_, err = r.All(ctx, 3)
	require.ErrorContains(t, err, "could not get reviews")
}

func TestReviews_Approve(t *testing.T) {
	ctx := context.Background()
	admin := domain.UserID(uuid.New())

	t.Run("approves pending", func(t *testing.T) {
		ctrl, st, r := newTestReviews(t)
		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().ApproveReview(ctx, domain.ReviewID(3), admin).
				Return(&domain.Review{ID: 3, Status: domain.ReviewStatusApproved}, nil)
		})

		res, err := r.Approve(ctx, 3, admin)
		require.NoError(t, err)
		require.Equal(t, domain.ReviewStatusApproved, res.Status)
	})

	t.Run("unknown review", func(t *testing.T) {
		ctrl, st, r := newTestReviews(t)
		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().ApproveReview(ctx, domain.ReviewID(4), admin).Return(nil, nil)
			tx.EXPECT().ReviewByID(ctx, domain.ReviewID(4)).Return(nil, nil)
		})

		_, err := r.Approve(ctx, 4, admin)
		require.ErrorIs(t, err, serrors.ErrNotFound)
	})

	t.Run("already approved", func(t *testing.T) {
		ctrl, st, r := newTestReviews(t)
		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().ApproveReview(ctx, domain.ReviewID(5), admin).Return(nil, nil)
			tx.EXPECT().ReviewByID(ctx, domain.ReviewID(5)).
				Return(&domain.Review{ID: 5, Status: domain.ReviewStatusApproved}, nil)
		})

		_, err := r.Approve(ctx, 5, admin)
		require.ErrorIs(t, err, serrors.ErrConflict)
	})
}

func TestReviews_Seed(t *testing.T) {
	ctx := context.Background()
	seed := []domain.Review{{Author: "Ann", Body: "Great", Rating: 5}, {Author: "Bob", Body: "Fine", Rating: 4}}

	t.Run("empty table", func(t *testing.T) {
		ctrl, st, r := newTestReviews(t)
		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().ReviewCount(ctx).Return(int64(0), nil)
			tx.EXPECT().StoreReviews(ctx, gomock.Any()).DoAndReturn(
				func(_ context.Context, in ...domain.Review) ([]domain.Review, error) {
					require.Len(t, in, 2)
					for _, r := range in {
						require.Equal(t, domain.ReviewStatusApproved, r.Status)
						require.WithinDuration(t, time.Now(), r.ApprovedAt, time.Minute)
					}

					return in, nil
				},
			)
		})

		n, err := r.Seed(ctx, seed)
		require.NoError(t, err)
		require.Equal(t, 2, n)
	})

	t.Run("existing reviews", func(t *testing.T) {
		ctrl, st, r := newTestReviews(t)
		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().ReviewCount(ctx).Return(int64(12), nil)
		})

		n, err := r.Seed(ctx, seed)
		require.NoError(t, err)
		require.Zero(t, n)
	})

	t.Run("nothing to seed", func(t *testing.T) {
		_, _, r := newTestReviews(t)

		n, err := r.Seed(ctx, nil)
		require.NoError(t, err)
		require.Zero(t, n)
	})
}

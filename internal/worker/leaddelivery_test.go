package worker_test

import (
	"bus2ride/internal/leads"
	mockleads "bus2ride/internal/leads/mock"
	"bus2ride/internal/worker"
	"bus2ride/pkg/domain"
	"bus2ride/pkg/logger"
	"bus2ride/pkg/serrors"
	"bus2ride/pkg/upstream"
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	os.Exit(m.Run())
}

func makeJob(id int64, leadID domain.LeadID) *river.Job[leads.DeliverJobArgs] {
	return &river.Job[leads.DeliverJobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   leads.DeliverJobArgs{LeadID: leadID},
	}
}

func TestLeadDeliveryWorker_Work_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockleads.NewMockLeads(ctrl)
	w := worker.NewLeadDeliveryWorker(mock)

	mock.EXPECT().Deliver(gomock.Any(), domain.LeadID("lead_ok")).Return(nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, "lead_ok")))
}

func TestLeadDeliveryWorker_Work_ConflictCancels(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockleads.NewMockLeads(ctrl)
	w := worker.NewLeadDeliveryWorker(mock)

	mock.EXPECT().Deliver(gomock.Any(), domain.LeadID("lead_bad")).
		Return(serrors.With(serrors.ErrConflict, "lead rejected by crm"))

	err := w.Work(context.Background(), makeJob(2, "lead_bad"))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestLeadDeliveryWorker_Work_RateLimitedSnoozes(t *testing.T) {
	tests := []struct {
		name       string
		retryAfter time.Duration
		want       time.Duration
	}{
		{"retry after header", 30 * time.Second, 30 * time.Second},
		{"no header", 0, worker.DefaultSnooze},
		{"huge retry after is capped", 72 * time.Hour, worker.MaxSnooze},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mock := mockleads.NewMockLeads(ctrl)
			w := worker.NewLeadDeliveryWorker(mock)

			se := &upstream.StatusError{Op: "deliver lead", StatusCode: 429, RetryAfter: tt.retryAfter}
			mock.EXPECT().Deliver(gomock.Any(), domain.LeadID("lead_rl")).
				Return(serrors.Wrap(serrors.ErrRateLimited, se, "rate limited"))

			err := w.Work(context.Background(), makeJob(3, "lead_rl"))
			var snoozeErr *river.JobSnoozeError
			require.ErrorAs(t, err, &snoozeErr)
			require.Equal(t, tt.want, snoozeErr.Duration)
		})
	}
}

func TestLeadDeliveryWorker_Work_OtherErrorsRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := mockleads.NewMockLeads(ctrl)
	w := worker.NewLeadDeliveryWorker(mock)

	boom := errors.New("connection reset")
	mock.EXPECT().Deliver(gomock.Any(), domain.LeadID("lead_flaky")).Return(boom)

	err := w.Work(context.Background(), makeJob(4, "lead_flaky"))
	require.ErrorIs(t, err, boom)

	var cancelErr *river.JobCancelError
	require.False(t, errors.As(err, &cancelErr))
	var snoozeErr *river.JobSnoozeError
	require.False(t, errors.As(err, &snoozeErr))
}

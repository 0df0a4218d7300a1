package worker

import (
	"bus2ride/internal/leads"
	"bus2ride/pkg/logger"
	"bus2ride/pkg/serrors"
	"bus2ride/pkg/upstream"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// DefaultSnooze is how long a throttled delivery waits when the CRM sends no
// Retry-After header.
const DefaultSnooze = time.Minute

// MaxSnooze caps the Retry-After a CRM can ask for.
const MaxSnooze = 60 * DefaultSnooze

// LeadDeliveryWorker hands stored leads to the CRM.
//
// Leads the CRM rejects, leads that are gone and leads delivered already are
// cancelled. Throttled deliveries are snoozed for the advertised Retry-After.
// Every other failure is returned so River retries with its backoff until the
// job runs out of attempts.
type LeadDeliveryWorker struct {
	river.WorkerDefaults[leads.DeliverJobArgs]

	leads leads.Leads
}

// NewLeadDeliveryWorker constructs a LeadDeliveryWorker using the provided service.
func NewLeadDeliveryWorker(leads leads.Leads) *LeadDeliveryWorker {
	return &LeadDeliveryWorker{leads: leads}
}

func (w *LeadDeliveryWorker) Work(ctx context.Context, job *river.Job[leads.DeliverJobArgs]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID), zap.String("leadID", string(job.Args.LeadID)))

	err := w.leads.Deliver(ctx, job.Args.LeadID)
	if err == nil {
		logger.Info(ctx, "lead delivered")

		return nil
	}

	if errors.Is(err, serrors.ErrConflict) {
		logger.Warn(ctx, "lead delivery cancelled", zap.Error(err))

		return river.JobCancel(err) //nolint: wrapcheck
	}

	logger.Error(ctx, "error delivering lead", zap.Error(err))

	if errors.Is(err, serrors.ErrRateLimited) {
		return river.JobSnooze(snoozeFor(err)) //nolint: wrapcheck
	}

	return fmt.Errorf("could not deliver lead: %w", err)
}

func snoozeFor(err error) time.Duration {
	var se *upstream.StatusError
	if errors.As(err, &se) && se.RetryAfter > 0 {
		return min(se.RetryAfter, MaxSnooze)
	}

	return DefaultSnooze
}

package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs next to the data they act on. Lead
// delivery relies on it: the lead row and its DeliverLeadJob are written in
// the same transaction, so a crash can never leave a stored lead without a
// pending delivery.
type JobStorage interface {
	// AddJob enqueues args. It returns false when a unique job with the same
	// arguments is already pending and the insert was skipped.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}

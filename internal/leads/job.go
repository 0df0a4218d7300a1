package leads

import (
	"bus2ride/pkg/domain"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// DeliverJobArgs are the arguments of a lead delivery job. A lead is only
// ever queued once.
type DeliverJobArgs struct {
	LeadID domain.LeadID `json:"leadId" river:"unique"`

	// maxAttempts bounds how often River retries the delivery.
	maxAttempts int
}

// Kind returns the River job kind used to register and dispatch the delivery worker.
func (args DeliverJobArgs) Kind() string { return "DeliverLeadJob" }

func (args DeliverJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStateCompleted,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

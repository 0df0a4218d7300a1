package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivertype"
)

// txInserter is an insert-only client. InsertTx uses the given tx, so the
// driver needs no pool of its own.
var txInserter = sync.OnceValues(func() (*river.Client[*sql.Tx], error) {
	return river.NewClient(riverdatabasesql.New(nil), &river.Config{})
})

// AddJob enqueues a River job. Inside a transaction the insert joins it, so a
// lead and its delivery job become visible together on commit. It reports
// false when River skipped the job as a duplicate of a pending unique job.
func (p *PgSQL) AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error) {
	var (
		res *rivertype.JobInsertResult
		err error
	)
	switch db := p.DB.(type) {
	case *sql.Tx:
		var client *river.Client[*sql.Tx]
		if client, err = txInserter(); err != nil {
			return false, fmt.Errorf("could not create river insert client: %w", err)
		}
		res, err = client.InsertTx(ctx, db, args, opts)
	case *sql.DB:
		var client *river.Client[*sql.Tx]
		if client, err = river.NewClient(riverdatabasesql.New(db), &river.Config{}); err != nil {
			return false, fmt.Errorf("could not create river insert client: %w", err)
		}
		res, err = client.Insert(ctx, args, opts)
	default:
		return false, fmt.Errorf("could not insert %s job: unsupported handle %T", args.Kind(), p.DB)
	}
	if err != nil {
		return false, fmt.Errorf("could not insert %s job: %w", args.Kind(), err)
	}

	return !res.UniqueSkippedAsDuplicate, nil
}

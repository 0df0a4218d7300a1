// Package storage defines the persistence the site needs: poll vote counters,
// reviews, leads and the job queue used to deliver leads. Writes that must
// land together go through WithTx.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go -aux_files=bus2ride/pkg/storage=vote.go,bus2ride/pkg/storage=review.go,bus2ride/pkg/storage=lead.go,bus2ride/pkg/storage=job.go *
package storage

import "context"

// AllStorage is everything available both on a plain handle and inside a
// transaction.
type AllStorage interface {
	VoteStorage
	ReviewStorage
	LeadStorage
	JobStorage
}

// TxStorage is a handle bound to one transaction. It must not be used after
// Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is the long-lived handle built at startup.
type Storage interface {
	AllStorage

	// Close releases the connection pool.
	Close() error

	// Begin starts a transaction. Handles returned by Begin cannot begin again.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb in a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}

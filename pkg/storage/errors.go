package storage

import "errors"

var (
	// ErrAlreadyInTx is returned by Begin and Migrate on a transaction handle.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit and Rollback outside a transaction.
	ErrNotInTx = errors.New("not in tx")
)

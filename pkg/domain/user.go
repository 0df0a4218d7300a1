package domain

import "github.com/google/uuid"

// UserID identifies an administrator allowed to moderate reviews and read leads.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// String returns the canonical textual form of the id.
func (u UserID) String() string { return uuid.UUID(u).String() }

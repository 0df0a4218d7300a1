package storage

import (
	"bus2ride/pkg/domain"
	"context"
)

// LeadUpdates describes the delivery outcome applied to a lead. Attempts is
// always incremented.
type LeadUpdates struct {
	// Status is the new delivery status.
	Status domain.LeadStatus
	// LastError, when provided, sets the last delivery error. An empty string
	// clears it.
	LastError *string
}

// LeadStorage persists quote and contact submissions.
type LeadStorage interface {
	// StoreLead inserts a lead and returns it with generated fields set.
	StoreLead(ctx context.Context, lead domain.Lead) (*domain.Lead, error)
	// LeadByID returns nil when the lead does not exist.
	LeadByID(ctx context.Context, id domain.LeadID) (*domain.Lead, error)
	// UpdateLead applies updates and returns the updated lead, or nil when it
	// does not exist. Delivered leads get delivered_at set.
	UpdateLead(ctx context.Context, id domain.LeadID, updates LeadUpdates) (*domain.Lead, error)
	// RecentLeads returns the newest leads first.
	RecentLeads(ctx context.Context, limit uint) ([]domain.Lead, error)
}

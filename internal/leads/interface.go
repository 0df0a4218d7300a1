package leads

import (
	"bus2ride/pkg/domain"
	"context"
)

//go:generate mockgen -package mockleads -source=interface.go -destination=mock/mockleads.go *
type Leads interface {
	Submit(ctx context.Context, lead domain.Lead) (*domain.Lead, error)
	Recent(ctx context.Context, limit uint) ([]domain.Lead, error)
	Deliver(ctx context.Context, id domain.LeadID) error
}

// Package crm defines how stored leads are handed to the sales team's CRM.
package crm

import (
	"bus2ride/pkg/domain"
	"context"
)

// Client delivers leads. Implementations must be idempotent per lead id,
// since delivery is retried.
//
//go:generate mockgen -package mockcrm -source=interface.go -destination=mock/mockcrm.go *
type Client interface {
	// DeliverLead sends lead. Rejections carry an *upstream.StatusError so
	// callers can tell throttling and permanent rejections apart.
	DeliverLead(ctx context.Context, lead domain.Lead) error
}

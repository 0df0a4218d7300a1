package advisor

import (
	"bus2ride/pkg/domain"
	"context"
)

//go:generate mockgen -package mockadvisor -source=interface.go -destination=mock/mockadvisor.go *
type Advisor interface {
	Advise(ctx context.Context, city string, clientIP string) (domain.Advisory, error)
}

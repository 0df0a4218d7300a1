package polls

import (
	"bus2ride/pkg/domain"
	"context"
)

//go:generate mockgen -package mockpolls -source=interface.go -destination=mock/mockpolls.go *
type Polls interface {
	List(category string) []domain.Poll
	Vote(ctx context.Context, id domain.PollID, option string) (*domain.PollResult, error)
	Results(ctx context.Context, id domain.PollID) (*domain.PollResult, error)
	BulkResults(ctx context.Context, ids []domain.PollID) (map[domain.PollID]domain.PollResult, error)
	AllResults(ctx context.Context, category string) ([]domain.PollResult, error)
	AllVotes(ctx context.Context) (map[domain.PollID]domain.Votes, error)
	ByTag(ctx context.Context, tag string, limit int) ([]domain.PollResult, error)
	Analytics(ctx context.Context, filter Filter, category string, limit int) ([]domain.PollResult, error)
}

package polls

import (
	"bus2ride/pkg/domain"
	"context"
	"fmt"
	"maps"
	"sync"

	"golang.org/x/sync/errgroup"
)

// BulkFetcher fetches tallies for a batch of polls.
type BulkFetcher interface {
	BulkResults(ctx context.Context, ids []domain.PollID) (map[domain.PollID]domain.PollResult, error)
}

// Aggregate splits ids into batches of batchSize, fetches at most
// concurrency batches at a time and merges them into one map. Batches write
// disjoint keys, so the order they finish in does not matter. The first
// failing batch cancels the rest.
func Aggregate(ctx context.Context,
	fetcher BulkFetcher,
	ids []domain.PollID,
	batchSize int,
	concurrency int) (map[domain.PollID]domain.PollResult, error) {
	if batchSize <= 0 || batchSize > MaxBulkIDs {
		batchSize = MaxBulkIDs
	}

	var (
		mu  sync.Mutex
		res = make(map[domain.PollID]domain.PollResult, len(ids))
	)

	g, gctx := errgroup.WithContext(ctx)
	if concurrency > 0 {
		g.SetLimit(concurrency)
	}

	for start := 0; start < len(ids); start += batchSize {
		batch := ids[start:min(start+batchSize, len(ids))]
		g.Go(func() error {
			part, err := fetcher.BulkResults(gctx, batch)
			if err != nil {
				return fmt.Errorf("could not fetch poll results batch: %w", err)
			}

			mu.Lock()
			maps.Copy(res, part)
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return res, nil
}

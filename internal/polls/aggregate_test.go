package polls_test

import (
	"bus2ride/internal/polls"
	"bus2ride/pkg/domain"
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	mu       sync.Mutex
	batches  [][]domain.PollID
	inFlight atomic.Int32
	peak     atomic.Int32
	failOn   domain.PollID
}

func (f *fakeFetcher) BulkResults(ctx context.Context, ids []domain.PollID) (map[domain.PollID]domain.PollResult, error) {
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		peak := f.peak.Load()
		if n <= peak || f.peak.CompareAndSwap(peak, n) {
			break
		}
	}

	f.mu.Lock()
	f.batches = append(f.batches, ids)
	f.mu.Unlock()

	time.Sleep(5 * time.Millisecond)

	res := make(map[domain.PollID]domain.PollResult, len(ids))
	for _, id := range ids {
		if id == f.failOn {
			return nil, errors.New("upstream down")
		}
		res[id] = domain.PollResult{Poll: domain.Poll{ID: id}, TotalVotes: int64(len(id))}
	}

	return res, nil
}

func pollIDs(n int) []domain.PollID {
	res := make([]domain.PollID, 0, n)
	for i := range n {
		res = append(res, domain.PollID(fmt.Sprintf("poll_%02d", i)))
	}

	return res
}

func TestAggregate(t *testing.T) {
	ctx := context.Background()

	t.Run("merges every batch", func(t *testing.T) {
		f := &fakeFetcher{}
		ids := pollIDs(23)

		res, err := polls.Aggregate(ctx, f, ids, 5, 2)
		require.NoError(t, err)
		require.Len(t, res, 23)
		for _, id := range ids {
			require.Equal(t, id, res[id].Poll.ID)
		}
		require.Len(t, f.batches, 5)
		require.LessOrEqual(t, f.peak.Load(), int32(2))
	})

	t.Run("defaults batch size", func(t *testing.T) {
		f := &fakeFetcher{}

		res, err := polls.Aggregate(ctx, f, pollIDs(150), 0, 0)
		require.NoError(t, err)
		require.Len(t, res, 150)
		require.Len(t, f.batches, 2)
	})

	t.Run("no ids", func(t *testing.T) {
		f := &fakeFetcher{}

		res, err := polls.Aggregate(ctx, f, nil, 10, 2)
		require.NoError(t, err)
		require.Empty(t, res)
		require.Empty(t, f.batches)
	})

	t.Run("batch failure", func(t *testing.T) {
		f := &fakeFetcher{failOn: "poll_07"}

		_, err := polls.Aggregate(ctx, f, pollIDs(12), 4, 3)
		require.ErrorContains(t, err, "upstream down")
	})
}

package polls

import (
	"bus2ride/pkg/domain"
	"bus2ride/pkg/serrors"
	"cmp"
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"time"
)

// Filter selects and orders polls for the analytics listing.
type Filter string

const (
	FilterAll        Filter = "all"
	FilterPopular    Filter = "popular"
	FilterTrending   Filter = "trending"
	FilterNew        Filter = "new"
	FilterHardest    Filter = "hardest"
	FilterEasiest    Filter = "easiest"
	FilterHiddenGems Filter = "hidden-gems"
	FilterRandom     Filter = "random"
)

const (
	// DefaultAnalyticsLimit is used when Analytics gets no limit.
	DefaultAnalyticsLimit = 30
	// trendingWindow is how far back votes count as trending.
	trendingWindow = 24 * time.Hour
	// consensusMinVotes is the vote count a poll needs before its consensus is ranked.
	consensusMinVotes = 10
	hiddenGemMinVotes = 5
	hiddenGemMaxVotes = 50
)

// ParseFilter maps an empty string to FilterAll and rejects unknown filters.
func ParseFilter(s string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterPopular, FilterTrending, FilterNew, FilterHardest,
		FilterEasiest, FilterHiddenGems, FilterRandom:
		return f, nil
	default:
		return "", serrors.With(serrors.ErrBadRequest, "unknown filter %q", s)
	}
}

// Analytics ranks curated polls. A category narrows the pool to polls whose
// category contains it.
func (p *polls) Analytics(ctx context.Context, filter Filter, category string, limit int) ([]domain.PollResult, error) {
	if limit <= 0 {
		limit = DefaultAnalyticsLimit
	}

	pool := make([]domain.Poll, 0, len(p.registry))
	for _, poll := range p.registry {
		if poll.Autogenerated() {
			continue
		}
		if category != "" && !strings.Contains(strings.ToLower(poll.Category), strings.ToLower(category)) {
			continue
		}
		pool = append(pool, poll)
	}

	if filter == FilterTrending {
		return p.trending(ctx, pool, limit)
	}

	ids := make([]domain.PollID, 0, len(pool))
	for _, poll := range pool {
		ids = append(ids, poll.ID)
	}
	results, err := p.ordered(ctx, ids)
	if err != nil {
		return nil, err
	}

	switch filter {
	case FilterPopular:
		slices.SortStableFunc(results, func(a, b domain.PollResult) int {
			return cmp.Compare(b.TotalVotes, a.TotalVotes)
		})
	case FilterNew:
		slices.Reverse(results)
	case FilterHardest:
		results = slices.DeleteFunc(results, func(r domain.PollResult) bool { return r.TotalVotes <= consensusMinVotes })
		slices.SortStableFunc(results, func(a, b domain.PollResult) int {
			return cmp.Compare(a.ConsensusPercent, b.ConsensusPercent)
		})
	case FilterEasiest:
		results = slices.DeleteFunc(results, func(r domain.PollResult) bool { return r.TotalVotes <= consensusMinVotes })
		slices.SortStableFunc(results, func(a, b domain.PollResult) int {
			return cmp.Compare(b.ConsensusPercent, a.ConsensusPercent)
		})
	case FilterHiddenGems:
		results = slices.DeleteFunc(results, func(r domain.PollResult) bool {
			return r.TotalVotes <= hiddenGemMinVotes || r.TotalVotes >= hiddenGemMaxVotes
		})
		slices.SortStableFunc(results, func(a, b domain.PollResult) int {
			return cmp.Compare(b.ConsensusPercent, a.ConsensusPercent)
		})
	case FilterRandom:
		rand.Shuffle(len(results), func(i, j int) { results[i], results[j] = results[j], results[i] })
	case FilterAll, FilterTrending:
	}

	return results[:min(limit, len(results))], nil
}

func (p *polls) trending(ctx context.Context, pool []domain.Poll, limit int) ([]domain.PollResult, error) {
	recent, err := p.storage.RecentlyVotedPolls(ctx, time.Now().Add(-trendingWindow), uint(len(p.registry))) //nolint: gosec
	if err != nil {
		return nil, fmt.Errorf("could not get recently voted polls: %w", err)
	}

	ids := make([]domain.PollID, 0, limit)
	for _, id := range recent {
		if !slices.ContainsFunc(pool, func(poll domain.Poll) bool { return poll.ID == id }) {
			continue
		}
		ids = append(ids, id)
		if len(ids) == limit {
			break
		}
	}

	return p.ordered(ctx, ids)
}

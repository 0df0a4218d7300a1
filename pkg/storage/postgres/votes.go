package postgres

import (
	"bus2ride/pkg/domain"
	"context"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
)

const (
	pollVotesTable = "poll_votes"
)

// IncrementVote upserts the option counter and returns the poll's counts.
func (p *PgSQL) IncrementVote(ctx context.Context, pollID domain.PollID, option string) (domain.Votes, error) {
	_, err := p.Builder.Insert(pollVotesTable).
		Rows(PgVote{PollID: string(pollID), Option: option, Votes: 1}).
		OnConflict(goqu.DoUpdate("poll_id, option", goqu.Record{
			"votes":      goqu.L("poll_votes.votes + 1"),
			"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		})).
		Executor().ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not increment vote in pg: %w", err)
	}

	votes, err := p.VotesByPolls(ctx, pollID)
	if err != nil {
		return nil, err
	}

	if v, ok := votes[pollID]; ok {
		return v, nil
	}

	return domain.Votes{}, nil
}

// VotesByPolls returns counts grouped by poll for the given ids.
func (p *PgSQL) VotesByPolls(ctx context.Context, pollIDs ...domain.PollID) (map[domain.PollID]domain.Votes, error) {
	if len(pollIDs) == 0 {
		return map[domain.PollID]domain.Votes{}, nil
	}

	ids := make([]string, 0, len(pollIDs))
	for _, id := range pollIDs {
		ids = append(ids, string(id))
	}

	var rows []PgVote
	if err := p.Builder.From(pollVotesTable).
		Where(goqu.I("poll_id").In(ids)).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch votes by polls from pg: %w", err)
	}

	return groupVotes(rows), nil
}

// AllVotes returns counts for every poll with votes.
func (p *PgSQL) AllVotes(ctx context.Context) (map[domain.PollID]domain.Votes, error) {
	var rows []PgVote
	if err := p.Builder.From(pollVotesTable).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch all votes from pg: %w", err)
	}

	return groupVotes(rows), nil
}

// RecentlyVotedPolls returns polls voted on since the given time, most
// recently voted first.
func (p *PgSQL) RecentlyVotedPolls(ctx context.Context, since time.Time, limit uint) ([]domain.PollID, error) {
	var ids []string
	if err := p.Builder.From(pollVotesTable).
		Select(goqu.I("poll_id")).
		Where(goqu.I("updated_at").Gte(since)).
		GroupBy(goqu.I("poll_id")).
		Order(goqu.MAX("updated_at").Desc(), goqu.I("poll_id").Asc()).
		Limit(limit).
		Executor().ScanValsContext(ctx, &ids); err != nil {
		return nil, fmt.Errorf("could not fetch recently voted polls from pg: %w", err)
	}

	res := make([]domain.PollID, 0, len(ids))
	for _, id := range ids {
		res = append(res, domain.PollID(id))
	}

	return res, nil
}

func groupVotes(rows []PgVote) map[domain.PollID]domain.Votes {
	res := make(map[domain.PollID]domain.Votes)
	for _, row := range rows {
		id := domain.PollID(row.PollID)
		if res[id] == nil {
			res[id] = domain.Votes{}
		}
		res[id][row.Option] = row.Votes
	}

	return res
}

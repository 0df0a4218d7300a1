package storage

import (
	"bus2ride/pkg/domain"
	"context"
	"time"
)

// VoteStorage keeps per-option vote counters. Polls themselves are static
// content, so only the counters live in the database.
type VoteStorage interface {
	// IncrementVote adds one vote to option and returns the poll's counts after
	// the increment.
	IncrementVote(ctx context.Context, pollID domain.PollID, option string) (domain.Votes, error)
	// VotesByPolls returns counts for the given polls. Polls without votes are
	// absent from the map.
	VotesByPolls(ctx context.Context, pollIDs ...domain.PollID) (map[domain.PollID]domain.Votes, error)
	// AllVotes returns counts for every poll that has at least one vote.
	AllVotes(ctx context.Context) (map[domain.PollID]domain.Votes, error)
	// RecentlyVotedPolls returns polls with votes cast since the given time,
	// most active first.
	RecentlyVotedPolls(ctx context.Context, since time.Time, limit uint) ([]domain.PollID, error)
}

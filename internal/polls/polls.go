// Package polls tallies votes for the static poll registry. Questions and
// options are authored content; only the per-option counters are stored.
package polls

import (
	"bus2ride/internal/config"
	"bus2ride/pkg/domain"
	"bus2ride/pkg/serrors"
	"bus2ride/pkg/storage"
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
)

// MaxBulkIDs bounds a single bulk results request.
const MaxBulkIDs = 100

// categoryOrder is the section order of the results page. Categories not
// listed here follow in alphabetical order.
var categoryOrder = []string{"party-bus", "limousine", "coach-bus", "events", "general"} //nolint: gochecknoglobals

// tagSynonyms maps page slugs onto the tags polls are authored with.
var tagSynonyms = map[string]string{ //nolint: gochecknoglobals
	"weddings":             "wedding",
	"bachelor-parties":     "bachelorette",
	"bachelorette-parties": "bachelorette",
	"bachelor":             "bachelorette",
	"parties":              "party-bus",
	"limousine":            "limo",
	"limos":                "limo",
	"coach-bus":            "coach",
	"proms":                "prom",
}

// Options configure listing and aggregation.
type Options struct {
	// BatchSize is how many polls one bulk results call covers when
	// aggregating all results.
	BatchSize int
	// Concurrency bounds bulk results calls running at once.
	Concurrency int
	// ByTagLimit is used when ByTag gets no limit.
	ByTagLimit int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		BatchSize:   cfg.Polls.BatchSize,
		Concurrency: cfg.Polls.Concurrency,
		ByTagLimit:  cfg.Polls.ByTagLimit,
	}
}

type polls struct {
	options  Options
	storage  storage.VoteStorage
	registry []domain.Poll
	index    map[domain.PollID]domain.Poll
}

// New returns a Polls service over registry. The registry is sorted by
// category order once; polls keep their authored order within a category.
func New(options Options, storage storage.VoteStorage, registry []domain.Poll) Polls {
	sorted := slices.Clone(registry)
	slices.SortStableFunc(sorted, func(a, b domain.Poll) int {
		return compareCategory(a.Category, b.Category)
	})

	index := make(map[domain.PollID]domain.Poll, len(sorted))
	for _, p := range sorted {
		index[p.ID] = p
	}

	if options.ByTagLimit <= 0 {
		options.ByTagLimit = 25
	}

	return &polls{
		options:  options,
		storage:  storage,
		registry: sorted,
		index:    index,
	}
}

func compareCategory(a, b string) int {
	ia, ib := slices.Index(categoryOrder, a), slices.Index(categoryOrder, b)
	switch {
	case ia >= 0 && ib >= 0:
		return cmp.Compare(ia, ib)
	case ia >= 0:
		return -1
	case ib >= 0:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// List returns the registry in results page order, filtered by category when
// one is given.
func (p *polls) List(category string) []domain.Poll {
	if category == "" {
		return slices.Clone(p.registry)
	}

	res := make([]domain.Poll, 0)
	for _, poll := range p.registry {
		if poll.Category == category {
			res = append(res, poll)
		}
	}

	return res
}

func (p *polls) Vote(ctx context.Context, id domain.PollID, option string) (*domain.PollResult, error) {
	poll, ok := p.index[id]
	if !ok {
		return nil, serrors.With(serrors.ErrNotFound, "poll not found")
	}
	if !poll.HasOption(option) {
		return nil, serrors.With(serrors.ErrBadRequest, "unknown option %q", option)
	}

	votes, err := p.storage.IncrementVote(ctx, id, option)
	if err != nil {
		return nil, fmt.Errorf("could not increment vote: %w", err)
	}

	res := Tally(poll, votes)

	return &res, nil
}

func (p *polls) Results(ctx context.Context, id domain.PollID) (*domain.PollResult, error) {
	poll, ok := p.index[id]
	if !ok {
		return nil, serrors.With(serrors.ErrNotFound, "poll not found")
	}

	votes, err := p.storage.VotesByPolls(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get votes: %w", err)
	}

	res := Tally(poll, votes[id])

	return &res, nil
}

// BulkResults tallies the given polls. Unknown ids are skipped.
func (p *polls) BulkResults(ctx context.Context, ids []domain.PollID) (map[domain.PollID]domain.PollResult, error) {
	if len(ids) == 0 {
		return nil, serrors.With(serrors.ErrBadRequest, "at least one poll id is required")
	}
	if len(ids) > MaxBulkIDs {
		return nil, serrors.With(serrors.ErrBadRequest, "at most %d poll ids are allowed", MaxBulkIDs)
	}

	known := make([]domain.PollID, 0, len(ids))
	for _, id := range ids {
		if _, ok := p.index[id]; ok && !slices.Contains(known, id) {
			known = append(known, id)
		}
	}

	res := make(map[domain.PollID]domain.PollResult, len(known))
	if len(known) == 0 {
		return res, nil
	}

	votes, err := p.storage.VotesByPolls(ctx, known...)
	if err != nil {
		return nil, fmt.Errorf("could not get votes: %w", err)
	}

	for _, id := range known {
		res[id] = Tally(p.index[id], votes[id])
	}

	return res, nil
}

// AllResults tallies every poll in a category (all when empty) in results
// page order, fetching tallies in concurrent batches.
func (p *polls) AllResults(ctx context.Context, category string) ([]domain.PollResult, error) {
	list := p.List(category)
	ids := make([]domain.PollID, 0, len(list))
	for _, poll := range list {
		ids = append(ids, poll.ID)
	}

	merged, err := Aggregate(ctx, p, ids, p.options.BatchSize, p.options.Concurrency)
	if err != nil {
		return nil, err
	}

	res := make([]domain.PollResult, 0, len(list))
	for _, poll := range list {
		if r, ok := merged[poll.ID]; ok {
			res = append(res, r)
		}
	}

	return res, nil
}

func (p *polls) AllVotes(ctx context.Context) (map[domain.PollID]domain.Votes, error) {
	votes, err := p.storage.AllVotes(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get all votes: %w", err)
	}

	return votes, nil
}

// NormalizeTag lowercases tag and maps known synonyms.
func NormalizeTag(tag string) string {
	key := strings.ToLower(strings.TrimSpace(tag))
	if mapped, ok := tagSynonyms[key]; ok {
		return mapped
	}

	return key
}

// ByTag returns curated polls carrying tag, or every tagged poll for "all".
func (p *polls) ByTag(ctx context.Context, tag string, limit int) ([]domain.PollResult, error) {
	normalized := NormalizeTag(tag)
	if normalized == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "tag is required")
	}
	if limit <= 0 {
		limit = p.options.ByTagLimit
	}

	ids := make([]domain.PollID, 0)
	for _, poll := range p.registry {
		if poll.Autogenerated() || len(poll.Tags) == 0 {
			continue
		}
		if normalized != "all" && !slices.ContainsFunc(poll.Tags, func(t string) bool {
			return strings.EqualFold(t, normalized)
		}) {
			continue
		}
		ids = append(ids, poll.ID)
		if len(ids) == limit {
			break
		}
	}

	return p.ordered(ctx, ids)
}

func (p *polls) ordered(ctx context.Context, ids []domain.PollID) ([]domain.PollResult, error) {
	if len(ids) == 0 {
		return []domain.PollResult{}, nil
	}

	votes, err := p.storage.VotesByPolls(ctx, ids...)
	if err != nil {
		return nil, fmt.Errorf("could not get votes: %w", err)
	}

	res := make([]domain.PollResult, 0, len(ids))
	for _, id := range ids {
		res = append(res, Tally(p.index[id], votes[id]))
	}

	return res, nil
}

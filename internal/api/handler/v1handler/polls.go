package v1handler

import (
	"bus2ride/internal/polls"
	"bus2ride/pkg/domain"
	"bus2ride/pkg/serrors"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type bulkResultsRequest struct {
	IDs []domain.PollID `json:"ids"`
}

type voteRequest struct {
	Option string `json:"option"`
}

// ListPolls returns the registry in results page order, narrowed by ?category=.
func (h Handler) ListPolls(w http.ResponseWriter, r *http.Request) error {
	return ok(w, map[string]any{"polls": h.deps.Polls.List(r.URL.Query().Get("category"))})
}

// AllPollResults tallies every poll of a category, fetched in batches.
func (h Handler) AllPollResults(w http.ResponseWriter, r *http.Request) error {
	res, err := h.deps.Polls.AllResults(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		return err //nolint: wrapcheck
	}

	return ok(w, map[string]any{"results": res})
}

func (h Handler) BulkPollResults(w http.ResponseWriter, r *http.Request) error {
	var req bulkResultsRequest
	if err := h.decode(w, r, &req); err != nil {
		return err
	}

	res, err := h.deps.Polls.BulkResults(r.Context(), req.IDs)
	if err != nil {
		return err //nolint: wrapcheck
	}

	return ok(w, map[string]any{"results": res})
}

// PollAnalytics lists polls by ?filter= (popular, trending, new, hardest,
// easiest, hidden-gems, random, all).
func (h Handler) PollAnalytics(w http.ResponseWriter, r *http.Request) error {
	filter, err := polls.ParseFilter(r.URL.Query().Get("filter"))
	if err != nil {
		return err //nolint: wrapcheck
	}
	limit, err := intQuery(r, "limit", 0)
	if err != nil {
		return err
	}

	res, err := h.deps.Polls.Analytics(r.Context(), filter, r.URL.Query().Get("category"), limit)
	if err != nil {
		return err //nolint: wrapcheck
	}

	return ok(w, map[string]any{"polls": res})
}

// pollSubroute serves GET /v1/polls/by-tag/{tag} and GET /v1/polls/{id}/results.
func (h Handler) pollSubroute(w http.ResponseWriter, r *http.Request) error {
	first, second := r.PathValue("first"), r.PathValue("second")
	switch {
	case first == "by-tag":
		return h.PollsByTag(w, r, second)
	case second == "results":
		return h.PollResults(w, r, domain.PollID(first))
	default:
		return serrors.With(serrors.ErrNotFound, "route not found")
	}
}

func (h Handler) PollsByTag(w http.ResponseWriter, r *http.Request, tag string) error {
	limit, err := intQuery(r, "limit", 0)
	if err != nil {
		return err
	}

	res, err := h.deps.Polls.ByTag(r.Context(), tag, limit)
	if err != nil {
		return err //nolint: wrapcheck
	}

	return ok(w, map[string]any{"polls": res})
}

func (h Handler) PollResults(w http.ResponseWriter, r *http.Request, id domain.PollID) error {
	res, err := h.deps.Polls.Results(r.Context(), id)
	if err != nil {
		return err //nolint: wrapcheck
	}

	return ok(w, res)
}

// Vote counts one vote and returns the fresh tally.
func (h Handler) Vote(w http.ResponseWriter, r *http.Request) error {
	var req voteRequest
	if err := h.decode(w, r, &req); err != nil {
		return err
	}

	id := domain.PollID(r.PathValue("id"))
	res, err := h.deps.Polls.Vote(r.Context(), id, req.Option)
	if err != nil {
		return err //nolint: wrapcheck
	}
	h.counters.votes.Add(r.Context(), 1, metric.WithAttributes(attribute.String("poll", string(id))))

	return ok(w, res)
}

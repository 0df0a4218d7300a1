package v1handler

import (
	"bus2ride/pkg/domain"
	"bus2ride/pkg/serrors"
	"net/http"
	"strconv"
)

type submitReviewRequest struct {
	Author   string   `json:"author"`
	Title    string   `json:"title"`
	Body     string   `json:"body"`
	Rating   int      `json:"rating"`
	Tags     []string `json:"tags"`
	City     string   `json:"city"`
	MediaURL string   `json:"mediaUrl"`
}

// ListReviews returns approved reviews, optionally filtered by ?q=.
func (h Handler) ListReviews(w http.ResponseWriter, r *http.Request) error {
	limit, err := intQuery(r, "limit", 0)
	if err != nil {
		return err
	}

	res, err := h.deps.Reviews.Approved(r.Context(), r.URL.Query().Get("q"), uint(limit)) //nolint: gosec
	if err != nil {
		return err //nolint: wrapcheck
	}

	return ok(w, map[string]any{"reviews": res})
}

// SubmitReview stores a review for moderation.
func (h Handler) SubmitReview(w http.ResponseWriter, r *http.Request) error {
	var req submitReviewRequest
	if err := h.decode(w, r, &req); err != nil {
		return err
	}

	res, err := h.deps.Reviews.Submit(r.Context(), domain.Review{
		Author:   req.Author,
		Title:    req.Title,
		Body:     req.Body,
		Rating:   req.Rating,
		Tags:     req.Tags,
		City:     req.City,
		MediaURL: req.MediaURL,
	})
	if err != nil {
		return err //nolint: wrapcheck
	}
	h.counters.reviews.Add(r.Context(), 1)

	writeJSON(w, http.StatusCreated, res)

	return nil
}

func (h Handler) AdminListReviews(w http.ResponseWriter, r *http.Request) error {
	limit, err := intQuery(r, "limit", 0)
	if err != nil {
		return err
	}

	res, err := h.deps.Reviews.All(r.Context(), uint(limit)) //nolint: gosec
	if err != nil {
		return err //nolint: wrapcheck
	}

	return ok(w, map[string]any{"reviews": res})
}

func (h Handler) ApproveReview(w http.ResponseWriter, r *http.Request) error {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return serrors.With(serrors.ErrBadRequest, "invalid review id")
	}

	res, err := h.deps.Reviews.Approve(r.Context(), domain.ReviewID(id), GetUserIDFromContext(r.Context()))
	if err != nil {
		return err //nolint: wrapcheck
	}

	return ok(w, res)
}

package v1handler

import (
	"bus2ride/internal/catalog"
	"bus2ride/pkg/domain"
	"bus2ride/pkg/serrors"
	"net/http"
	"strconv"
)

// ListVehicles filters the fleet by ?q= and ?category=.
func (h Handler) ListVehicles(w http.ResponseWriter, r *http.Request) error {
	category := domain.VehicleCategory(r.URL.Query().Get("category"))
	if category != "" && !category.Valid() {
		return serrors.With(serrors.ErrBadRequest, "unknown category %q", category)
	}

	return ok(w, map[string]any{"vehicles": h.deps.Catalog.Vehicles(r.URL.Query().Get("q"), category)})
}

func (h Handler) GetVehicle(w http.ResponseWriter, r *http.Request) error {
	v, err := h.deps.Catalog.VehicleBySlug(r.PathValue("slug"))
	if err != nil {
		return err //nolint: wrapcheck
	}

	return ok(w, v)
}

func (h Handler) ListFAQs(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()

	return ok(w, map[string]any{"faqs": h.deps.Catalog.FAQs(q.Get("q"), q.Get("page"))})
}

func (h Handler) ListSecrets(w http.ResponseWriter, r *http.Request) error {
	return ok(w, map[string]any{"secrets": h.deps.Catalog.Secrets(r.URL.Query().Get("q"))})
}

func (h Handler) ListFacts(w http.ResponseWriter, r *http.Request) error {
	limit, err := intQuery(r, "limit", 0)
	if err != nil {
		return err
	}

	return ok(w, map[string]any{"facts": h.deps.Catalog.Facts(r.URL.Query().Get("page"), limit)})
}

// ListEvents pages events with ?limit=, ?offset=, ?featured= and ?tag=.
func (h Handler) ListEvents(w http.ResponseWriter, r *http.Request) error {
	limit, err := intQuery(r, "limit", catalog.DefaultEventLimit)
	if err != nil {
		return err
	}
	offset, err := intQuery(r, "offset", 0)
	if err != nil {
		return err
	}
	var featured bool
	if v := r.URL.Query().Get("featured"); v != "" {
		if featured, err = strconv.ParseBool(v); err != nil {
			return serrors.With(serrors.ErrBadRequest, "featured must be a boolean")
		}
	}

	events, total := h.deps.Catalog.Events(catalog.EventFilter{
		Limit:    limit,
		Offset:   offset,
		Featured: featured,
		Tag:      r.URL.Query().Get("tag"),
	})

	return ok(w, map[string]any{"events": events, "total": total})
}

func (h Handler) ListToolCards(w http.ResponseWriter, r *http.Request) error {
	return ok(w, map[string]any{"tools": h.deps.Catalog.Tools(r.URL.Query().Get("q"))})
}

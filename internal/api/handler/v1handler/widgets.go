package v1handler

import (
	"bus2ride/pkg/controller"
	"bus2ride/pkg/domain"
	"net/http"
)

type planRouteRequest struct {
	Addresses []string `json:"addresses"`
}

type playlistSearchRequest struct {
	Query string `json:"q"`
}

type playlistLookupRequest struct {
	IDs []string `json:"ids"`
}

func (h Handler) PlanRoute(w http.ResponseWriter, r *http.Request) error {
	var req planRouteRequest
	if err := h.decode(w, r, &req); err != nil {
		return err
	}

	plan, err := h.deps.Planner.Plan(r.Context(), req.Addresses)
	if err != nil {
		return err //nolint: wrapcheck
	}

	return ok(w, plan)
}

// SuggestPlaces autocompletes ?q= as an address, or as a city with ?kind=city.
func (h Handler) SuggestPlaces(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()
	res, err := h.deps.Planner.Suggest(r.Context(), q.Get("q"), domain.SuggestionKind(q.Get("kind")))
	if err != nil {
		return err //nolint: wrapcheck
	}

	return ok(w, map[string]any{"suggestions": res})
}

// WeatherAdvisory always answers with an Advisory body: a forecast on
// success, or the error message with the status of the failure.
func (h Handler) WeatherAdvisory(w http.ResponseWriter, r *http.Request) error {
	advisory, err := h.deps.Advisor.Advise(r.Context(), r.URL.Query().Get("city"), controller.GetClientIP(r))
	if err != nil {
		res := h.NewError(r.Context(), err)
		if advisory.Error == "" {
			advisory.Error = res.Response.Message
		}
		w.Header().Set("Cache-Control", "no-store")
		writeJSON(w, res.StatusCode, advisory)

		return nil
	}

	return ok(w, advisory)
}

func (h Handler) SearchPlaylists(w http.ResponseWriter, r *http.Request) error {
	var req playlistSearchRequest
	if err := h.decode(w, r, &req); err != nil {
		return err
	}

	res, err := h.deps.Playlists.Search(r.Context(), req.Query)
	if err != nil {
		return err //nolint: wrapcheck
	}

	return ok(w, map[string]any{"playlists": res})
}

// LookupPlaylists fetches metadata per id; ids that fail carry a reason
// instead of failing the whole request.
func (h Handler) LookupPlaylists(w http.ResponseWriter, r *http.Request) error {
	var req playlistLookupRequest
	if err := h.decode(w, r, &req); err != nil {
		return err
	}

	res, err := h.deps.Playlists.Lookup(r.Context(), req.IDs)
	if err != nil {
		return err //nolint: wrapcheck
	}

	return ok(w, map[string]any{"playlists": res})
}

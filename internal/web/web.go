// Package web serves the server-rendered HTML pages: the poll results page,
// the embeddable poll card and the fleet listing.
package web

import (
	"bus2ride/internal/catalog"
	"bus2ride/internal/polls"
	"bus2ride/pkg/controller"
	"bus2ride/pkg/domain"
	"bus2ride/pkg/logger"
	"bus2ride/pkg/serrors"
	"net/http"

	"github.com/a-h/templ"
	"go.uber.org/zap"
)

// EmbedCacheControl lets CDNs hold embedded poll cards briefly.
const EmbedCacheControl = "s-maxage=30, stale-while-revalidate=120"

// Deps are the services the pages read from.
type Deps struct {
	Catalog *catalog.Catalog
	Polls   polls.Polls
}

// Pages renders HTML pages.
type Pages struct {
	deps Deps
}

// New creates the page handlers.
func New(deps Deps) *Pages {
	return &Pages{deps: deps}
}

// Routes registers the pages on mux.
func (p *Pages) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /polls/results", p.PollResults)
	mux.Handle("GET /polls/embed/{id}", controller.WithCacheControl(EmbedCacheControl, http.HandlerFunc(p.PollEmbed)))
	mux.HandleFunc("GET /fleet", p.Fleet)
}

func render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	templ.Handler(c, templ.WithStatus(status)).ServeHTTP(w, r)
}

func (p *Pages) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, message := http.StatusInternalServerError, "Please try again in a moment."
	switch serrors.KindOf(err) {
	case serrors.ErrNotFound:
		status, message = http.StatusNotFound, "We could not find that page."
	case serrors.ErrBadRequest:
		status, message = http.StatusBadRequest, serrors.MessageOf(err)
	default:
		logger.Error(r.Context(), "could not render page", zap.Error(err), zap.String("path", r.URL.Path))
	}

	w.Header().Set("Cache-Control", "no-store")
	render(w, r, status, ErrorPage(message))
}

// PollResults renders every poll's tallies grouped by category.
func (p *Pages) PollResults(w http.ResponseWriter, r *http.Request) {
	results, err := p.deps.Polls.AllResults(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		p.fail(w, r, err)

		return
	}

	render(w, r, http.StatusOK, ResultsPage(results))
}

// PollEmbed renders a single poll card.
func (p *Pages) PollEmbed(w http.ResponseWriter, r *http.Request) {
	result, err := p.deps.Polls.Results(r.Context(), domain.PollID(r.PathValue("id")))
	if err != nil {
		p.fail(w, r, err)

		return
	}

	render(w, r, http.StatusOK, EmbedPage(*result))
}

// Fleet renders the vehicle listing filtered by ?q= and ?category=.
func (p *Pages) Fleet(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	category := domain.VehicleCategory(r.URL.Query().Get("category"))
	if category != "" && !category.Valid() {
		p.fail(w, r, serrors.With(serrors.ErrBadRequest, "Unknown vehicle category %q.", category))

		return
	}

	render(w, r, http.StatusOK, FleetPage(p.deps.Catalog.Vehicles(query, category), query, category))
}

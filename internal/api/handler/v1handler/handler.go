// Package v1handler serves the /v1 JSON API. Handlers decode the request,
// call a domain service and encode the result; failures are rendered by
// NewError from the semantic kind of the returned error.
package v1handler

import (
	"bus2ride/internal/advisor"
	"bus2ride/internal/catalog"
	"bus2ride/internal/config"
	"bus2ride/internal/leads"
	"bus2ride/internal/planner"
	"bus2ride/internal/playlists"
	"bus2ride/internal/polls"
	"bus2ride/internal/reviews"
	"bus2ride/internal/tools"
	"bus2ride/pkg/controller"
	"bus2ride/pkg/logger"
	"bus2ride/pkg/serrors"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

const (
	// DefaultMaxBodyBytes caps request bodies when Options leave it unset.
	DefaultMaxBodyBytes = 1 << 20
	// SuggestCacheControl lets shared caches absorb autocomplete bursts.
	SuggestCacheControl = "s-maxage=60, stale-while-revalidate=300"
)

// Deps are the domain services behind the API.
type Deps struct {
	Catalog   *catalog.Catalog
	Polls     polls.Polls
	Reviews   reviews.Reviews
	Planner   planner.Planner
	Advisor   advisor.Advisor
	Playlists playlists.Playlists
	Tools     tools.Tools
	Leads     leads.Leads
}

// Options tune request handling.
type Options struct {
	// MaxBodyBytes caps JSON request bodies.
	MaxBodyBytes int64
	// MeterProvider receives the domain counters. A no-op provider is used when nil.
	MeterProvider metric.MeterProvider
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{MaxBodyBytes: cfg.HTTP.MaxBodyBytes}
}

type counters struct {
	votes   metric.Int64Counter
	leads   metric.Int64Counter
	reviews metric.Int64Counter
}

type Handler struct {
	deps     Deps
	opts     Options
	counters counters
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

func (e *ErrorStatusCode) Error() string {
	return fmt.Sprintf("code %d: %s", e.StatusCode, e.Response.Message)
}

func New(deps Deps, opts Options) (*Handler, error) {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if opts.MeterProvider == nil {
		opts.MeterProvider = noop.NewMeterProvider()
	}

	meter := opts.MeterProvider.Meter("bus2ride/internal/api/handler/v1handler")
	votes, err := meter.Int64Counter("bus2ride.poll.votes", metric.WithDescription("Poll votes cast"))
	if err != nil {
		return nil, fmt.Errorf("could not create votes counter: %w", err)
	}
	leadsCounter, err := meter.Int64Counter("bus2ride.leads.submitted", metric.WithDescription("Leads submitted"))
	if err != nil {
		return nil, fmt.Errorf("could not create leads counter: %w", err)
	}
	reviewsCounter, err := meter.Int64Counter("bus2ride.reviews.submitted", metric.WithDescription("Reviews submitted"))
	if err != nil {
		return nil, fmt.Errorf("could not create reviews counter: %w", err)
	}

	return &Handler{
		deps: deps,
		opts: opts,
		counters: counters{
			votes:   votes,
			leads:   leadsCounter,
			reviews: reviewsCounter,
		},
	}, nil
}

// NewError maps err onto a status and a client-safe message. Internal errors
// are logged and never leak their text.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	var sc *ErrorStatusCode
	if errors.As(err, &sc) {
		return sc
	}

	kind := serrors.KindOf(err)
	msg := serrors.MessageOf(err)

	status := http.StatusInternalServerError
	switch kind {
	case serrors.ErrNotFound:
		status = http.StatusNotFound
		if msg == "" {
			msg = "resource not found"
		}
	case serrors.ErrBadRequest:
		status = http.StatusBadRequest
		if msg == "" {
			msg = "bad request"
		}
	case serrors.ErrUnauthorized:
		status = http.StatusUnauthorized
		if msg == "" {
			msg = "unauthorized"
		}
	case serrors.ErrForbidden:
		status = http.StatusForbidden
		if msg == "" {
			msg = "forbidden"
		}
	case serrors.ErrConflict:
		status = http.StatusConflict
		if msg == "" {
			msg = "conflict"
		}
	case serrors.ErrRateLimited:
		status = http.StatusTooManyRequests
		if msg == "" {
			msg = "too many requests"
		}
	case serrors.ErrTimeout:
		status = http.StatusGatewayTimeout
		if msg == "" {
			msg = "request timed out"
		}
	case serrors.ErrUnavailable:
		status = http.StatusServiceUnavailable
		if msg == "" {
			msg = "service unavailable"
		}
	case serrors.ErrUpstream:
		status = http.StatusBadGateway
		if msg == "" {
			msg = "upstream error"
		}
	default:
		kind = serrors.ErrInternal
		msg = "internal error"
	}

	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Debug(ctx, "request rejected", zap.Error(err))
	}

	return &ErrorStatusCode{
		StatusCode: status,
		Response:   ErrorResponse{Code: kind.Error(), Message: msg},
	}
}

// handlerFunc is an http.HandlerFunc that reports failures by returning them.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

func (h Handler) wrap(fn handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			res := h.NewError(r.Context(), err)
			// errors must never be cached, whatever the route default is
			w.Header().Set("Cache-Control", "no-store")
			writeJSON(w, res.StatusCode, res.Response)
		}
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func ok(w http.ResponseWriter, v any) error {
	writeJSON(w, http.StatusOK, v)

	return nil
}

// decode reads a JSON body into v, rejecting oversized and malformed bodies.
func (h Handler) decode(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, h.opts.MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return serrors.Wrap(serrors.ErrBadRequest, err, "request body too large")
		case errors.Is(err, io.EOF):
			return serrors.With(serrors.ErrBadRequest, "request body is required")
		default:
			return serrors.Wrap(serrors.ErrBadRequest, err, "invalid json body")
		}
	}

	return nil
}

// intQuery parses an optional integer query parameter.
func intQuery(r *http.Request, name string, def int) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, serrors.With(serrors.ErrBadRequest, "%s must be a non-negative integer", name)
	}

	return n, nil
}

// Routes registers every /v1 route on mux. Admin routes go through sec.
func (h Handler) Routes(mux *http.ServeMux, sec *SecHandler) {
	// content
	mux.Handle("GET /v1/vehicles", h.wrap(h.ListVehicles))
	mux.Handle("GET /v1/vehicles/{slug}", h.wrap(h.GetVehicle))
	mux.Handle("GET /v1/faqs", h.wrap(h.ListFAQs))
	mux.Handle("GET /v1/secrets", h.wrap(h.ListSecrets))
	mux.Handle("GET /v1/facts", h.wrap(h.ListFacts))
	mux.Handle("GET /v1/events", h.wrap(h.ListEvents))
	mux.Handle("GET /v1/tools", h.wrap(h.ListToolCards))

	// calculators
	mux.Handle("GET /v1/calculators", h.wrap(h.ListCalculators))
	mux.Handle("POST /v1/calculators/{id}", h.wrap(h.RunCalculator))

	// reviews
	mux.Handle("GET /v1/reviews", h.wrap(h.ListReviews))
	mux.Handle("POST /v1/reviews", h.wrap(h.SubmitReview))

	// polls
	mux.Handle("GET /v1/polls", h.wrap(h.ListPolls))
	mux.Handle("GET /v1/polls/results", h.wrap(h.AllPollResults))
	mux.Handle("POST /v1/polls/results/bulk", h.wrap(h.BulkPollResults))
	mux.Handle("GET /v1/polls/analytics", h.wrap(h.PollAnalytics))
	// by-tag/{tag} and {id}/results overlap as ServeMux patterns
	mux.Handle("GET /v1/polls/{first}/{second}", h.wrap(h.pollSubroute))
	mux.Handle("POST /v1/polls/{id}/votes", h.wrap(h.Vote))

	// planning widgets
	mux.Handle("POST /v1/routes/plan", h.wrap(h.PlanRoute))
	mux.Handle("GET /v1/geocode/suggest", controller.WithCacheControl(SuggestCacheControl, h.wrap(h.SuggestPlaces)))
	mux.Handle("GET /v1/weather/advisory", h.wrap(h.WeatherAdvisory))
	mux.Handle("POST /v1/playlists/search", h.wrap(h.SearchPlaylists))
	mux.Handle("POST /v1/playlists/lookup", h.wrap(h.LookupPlaylists))

	// leads
	mux.Handle("POST /v1/leads", h.wrap(h.SubmitLead))

	// admin
	mux.Handle("GET /v1/admin/reviews", sec.Require(h.wrap(h.AdminListReviews), h))
	mux.Handle("POST /v1/admin/reviews/{id}/approve", sec.Require(h.wrap(h.ApproveReview), h))
	mux.Handle("GET /v1/admin/leads", sec.Require(h.wrap(h.AdminListLeads), h))
}

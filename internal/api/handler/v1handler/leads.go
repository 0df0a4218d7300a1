package v1handler

import (
	"bus2ride/pkg/domain"
	"bus2ride/pkg/serrors"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type submitLeadRequest struct {
	Kind        domain.LeadKind `json:"kind"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Phone       string          `json:"phone"`
	EventType   string          `json:"eventType"`
	EventDate   string          `json:"eventDate"`
	Passengers  int             `json:"passengers"`
	Pickup      string          `json:"pickup"`
	Dropoff     string          `json:"dropoff"`
	VehicleSlug string          `json:"vehicleSlug"`
	Message     string          `json:"message"`
}

type submitLeadResponse struct {
	ID     domain.LeadID     `json:"id"`
	Status domain.LeadStatus `json:"status"`
}

// SubmitLead stores a quote or contact request. eventDate is a YYYY-MM-DD date.
func (h Handler) SubmitLead(w http.ResponseWriter, r *http.Request) error {
	var req submitLeadRequest
	if err := h.decode(w, r, &req); err != nil {
		return err
	}

	var eventDate time.Time
	if req.EventDate != "" {
		d, err := time.Parse(time.DateOnly, req.EventDate)
		if err != nil {
			return serrors.Wrap(serrors.ErrBadRequest, err, "eventDate must be a YYYY-MM-DD date")
		}
		eventDate = d
	}

	res, err := h.deps.Leads.Submit(r.Context(), domain.Lead{
		Kind:        req.Kind,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		EventType:   req.EventType,
		EventDate:   eventDate,
		Passengers:  req.Passengers,
		Pickup:      req.Pickup,
		Dropoff:     req.Dropoff,
		VehicleSlug: req.VehicleSlug,
		Message:     req.Message,
	})
	if err != nil {
		return err //nolint: wrapcheck
	}
	h.counters.leads.Add(r.Context(), 1, metric.WithAttributes(attribute.String("kind", string(res.Kind))))

	writeJSON(w, http.StatusCreated, submitLeadResponse{ID: res.ID, Status: res.Status})

	return nil
}

func (h Handler) AdminListLeads(w http.ResponseWriter, r *http.Request) error {
	limit, err := intQuery(r, "limit", 0)
	if err != nil {
		return err
	}

	res, err := h.deps.Leads.Recent(r.Context(), uint(limit)) //nolint: gosec
	if err != nil {
		return err //nolint: wrapcheck
	}

	return ok(w, map[string]any{"leads": res})
}

// Package leads stores quote and contact form submissions and hands them to
// the CRM in the background. A lead is stored and its delivery job queued in
// one transaction, so a stored lead is never silently dropped.
package leads

import (
	"bus2ride/internal/config"
	"bus2ride/pkg/crm"
	"bus2ride/pkg/domain"
	"bus2ride/pkg/logger"
	"bus2ride/pkg/serrors"
	"bus2ride/pkg/storage"
	"bus2ride/pkg/upstream"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/segmentio/ksuid"
	"go.uber.org/zap"
)

const (
	// MaxPassengers is the largest group a single lead may ask for.
	MaxPassengers = 200
	// DefaultLimit is used when Recent gets no limit.
	DefaultLimit = 50
	// MaxLimit caps Recent.
	MaxLimit = 200

	idPrefix      = "lead_"
	maxNameLen    = 128
	maxMessageLen = 5000
)

// Options configure lead delivery.
type Options struct {
	// MaxAttempts is how many times a delivery job runs before River discards it.
	MaxAttempts int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{MaxAttempts: cfg.Leads.MaxAttempts}
}

type leads struct {
	options Options
	storage storage.Storage
	// crm is nil when no webhook is configured; leads are then only stored.
	crm crm.Client
}

// New returns the leads service. Passing a nil crm client disables delivery.
func New(storage storage.Storage, crm crm.Client, options Options) Leads {
	return &leads{options: options, storage: storage, crm: crm}
}

// NewID returns a fresh lead reference.
func NewID() domain.LeadID {
	return domain.LeadID(idPrefix + ksuid.New().String())
}

func validate(lead *domain.Lead) error {
	lead.Name = strings.TrimSpace(lead.Name)
	lead.Email = strings.TrimSpace(lead.Email)
	lead.Phone = strings.TrimSpace(lead.Phone)
	lead.EventType = strings.TrimSpace(lead.EventType)
	lead.Pickup = strings.TrimSpace(lead.Pickup)
	lead.Dropoff = strings.TrimSpace(lead.Dropoff)
	lead.VehicleSlug = strings.TrimSpace(lead.VehicleSlug)
	lead.Message = strings.TrimSpace(lead.Message)

	switch {
	case lead.Kind != domain.LeadKindQuote && lead.Kind != domain.LeadKindContact:
		return serrors.With(serrors.ErrBadRequest, "kind must be one of: quote, contact")
	case lead.Name == "":
		return serrors.With(serrors.ErrBadRequest, "name is required")
	case utf8.RuneCountInString(lead.Name) > maxNameLen:
		return serrors.With(serrors.ErrBadRequest, "name must be at most %d characters", maxNameLen)
	case lead.Email == "" && lead.Phone == "":
		return serrors.With(serrors.ErrBadRequest, "email or phone is required")
	case lead.Passengers < 0 || lead.Passengers > MaxPassengers:
		return serrors.With(serrors.ErrBadRequest, "passengers must be between 0 and %d", MaxPassengers)
	case utf8.RuneCountInString(lead.Message) > maxMessageLen:
		return serrors.With(serrors.ErrBadRequest, "message must be at most %d characters", maxMessageLen)
	}

	if lead.Email != "" {
		addr, err := mail.ParseAddress(lead.Email)
		if err != nil {
			return serrors.Wrap(serrors.ErrBadRequest, err, "invalid email")
		}
		lead.Email = addr.Address
	}

	return nil
}

// Submit validates and stores a lead and queues its delivery when a CRM is
// configured.
func (l *leads) Submit(ctx context.Context, lead domain.Lead) (*domain.Lead, error) {
	if err := validate(&lead); err != nil {
		return nil, err
	}

	lead.ID = NewID()
	lead.Status = domain.LeadStatusReceived
	lead.Attempts = 0
	lead.LastError = ""

	var stored *domain.Lead
	if err := l.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StoreLead(ctx, lead)
		if err != nil {
			return fmt.Errorf("could not store lead: %w", err)
		}
		stored = res

		if l.crm == nil {
			return nil
		}

		if _, err := tx.AddJob(ctx, DeliverJobArgs{
			LeadID:      res.ID,
			maxAttempts: l.options.MaxAttempts,
		}, nil); err != nil {
			return fmt.Errorf("could not add job: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not submit lead: %w", err)
	}

	logger.Info(ctx, "lead received", zap.String("leadID", string(stored.ID)), zap.String("kind", string(stored.Kind)))

	return stored, nil
}

func (l *leads) Recent(ctx context.Context, limit uint) ([]domain.Lead, error) {
	if limit == 0 {
		limit = DefaultLimit
	}

	res, err := l.storage.RecentLeads(ctx, min(limit, MaxLimit))
	if err != nil {
		return nil, fmt.Errorf("could not get recent leads: %w", err)
	}

	return res, nil
}

// Deliver hands a stored lead to the CRM and records the outcome.
//
// It returns CONFLICT when the lead must not be retried: it is unknown, was
// delivered already or was rejected by the CRM. Throttling keeps the
// *upstream.StatusError in the chain so callers can honor Retry-After. Any
// other failure is recorded on the lead and returned as is.
func (l *leads) Deliver(ctx context.Context, id domain.LeadID) error {
	if l.crm == nil {
		return serrors.With(serrors.ErrConflict, "lead delivery is disabled")
	}

	lead, err := l.storage.LeadByID(ctx, id)
	if err != nil {
		return fmt.Errorf("could not get lead: %w", err)
	}
	if lead == nil {
		return serrors.With(serrors.ErrConflict, "lead not found")
	}
	if lead.Status != domain.LeadStatusReceived {
		return serrors.With(serrors.ErrConflict, "lead is already %s", strings.ToLower(string(lead.Status)))
	}

	deliverErr := l.crm.DeliverLead(ctx, *lead)
	if deliverErr == nil {
		empty := ""
		if _, err := l.storage.UpdateLead(ctx, id, storage.LeadUpdates{
			Status:    domain.LeadStatusDelivered,
			LastError: &empty,
		}); err != nil {
			return fmt.Errorf("could not mark lead delivered: %w", err)
		}

		return nil
	}

	msg := deliverErr.Error()
	status := domain.LeadStatusReceived
	if rejected(deliverErr) {
		status = domain.LeadStatusFailed
	}
	if _, err := l.storage.UpdateLead(ctx, id, storage.LeadUpdates{Status: status, LastError: &msg}); err != nil {
		return errors.Join(deliverErr, fmt.Errorf("could not record delivery attempt: %w", err))
	}

	if status == domain.LeadStatusFailed {
		return serrors.Wrap(serrors.ErrConflict, deliverErr, "lead rejected by crm")
	}

	return fmt.Errorf("could not deliver lead: %w", deliverErr)
}

// rejected reports a permanent 4xx answer. 408 and 429 are worth retrying.
func rejected(err error) bool {
	code := upstream.StatusCode(err)

	return code >= 400 && code < 500 && code != http.StatusRequestTimeout && code != http.StatusTooManyRequests
}

package domain

import "time"

// LeadID is a prefixed, sortable reference handed back to the visitor,
// e.g. "lead_2fG...".
type LeadID string

// LeadKind tells quote requests apart from plain contact messages.
type LeadKind string

const (
	LeadKindQuote   LeadKind = "quote"
	LeadKindContact LeadKind = "contact"
)

// LeadStatus tracks delivery of a lead to the CRM.
type LeadStatus string

const (
	// LeadStatusReceived leads are stored and waiting for delivery.
	LeadStatusReceived LeadStatus = "RECEIVED"
	// LeadStatusDelivered leads were accepted by the CRM webhook.
	LeadStatusDelivered LeadStatus = "DELIVERED"
	// LeadStatusFailed leads were rejected by the CRM and will not be retried.
	LeadStatusFailed LeadStatus = "FAILED"
)

// Lead is a quote or contact form submission.
type Lead struct {
	ID   LeadID   `json:"id"`
	Kind LeadKind `json:"kind"`

	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`

	EventType   string    `json:"eventType,omitempty"`
	EventDate   time.Time `json:"eventDate,omitzero"`
	Passengers  int       `json:"passengers,omitempty"`
	Pickup      string    `json:"pickup,omitempty"`
	Dropoff     string    `json:"dropoff,omitempty"`
	VehicleSlug string    `json:"vehicleSlug,omitempty"`
	Message     string    `json:"message,omitempty"`

	Status    LeadStatus `json:"status"`
	Attempts  int        `json:"attempts"`
	LastError string     `json:"-"`

	CreatedAt   time.Time `json:"createdAt"`
	DeliveredAt time.Time `json:"deliveredAt,omitzero"`
}

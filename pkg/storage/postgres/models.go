package postgres

import (
	"bus2ride/pkg/domain"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type PgVote struct {
	PollID string `db:"poll_id"`
	Option string `db:"option"`
	Votes  int64  `db:"votes"`
}

type PgReview struct {
	ID int64 `db:"id" goqu:"skipinsert"`

	Author   string         `db:"author"`
	Title    sql.NullString `db:"title"`
	Body     string         `db:"body"`
	Rating   int            `db:"rating"`
	Tags     []byte         `db:"tags"`
	City     sql.NullString `db:"city"`
	MediaURL sql.NullString `db:"media_url"`

	Status     string        `db:"status"`
	ApprovedBy uuid.NullUUID `db:"approved_by"`

	CreatedAt  time.Time    `db:"created_at"  goqu:"skipinsert"`
	ApprovedAt sql.NullTime `db:"approved_at"`
}

func (p *PgReview) ToDomain() (*domain.Review, error) {
	var tags []string
	if len(p.Tags) > 0 {
		if err := json.Unmarshal(p.Tags, &tags); err != nil {
			return nil, fmt.Errorf("could not unmarshal review tags: %w", err)
		}
	}

	r := &domain.Review{
		ID:         domain.ReviewID(p.ID),
		Author:     p.Author,
		Title:      p.Title.String,
		Body:       p.Body,
		Rating:     p.Rating,
		Tags:       tags,
		City:       p.City.String,
		MediaURL:   p.MediaURL.String,
		Status:     domain.ReviewStatus(p.Status),
		CreatedAt:  p.CreatedAt,
		ApprovedAt: p.ApprovedAt.Time,
	}
	if p.ApprovedBy.Valid {
		by := domain.UserID(p.ApprovedBy.UUID)
		r.ApprovedBy = &by
	}

	return r, nil
}

func domainReviewToPg(r domain.Review) (PgReview, error) {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	b, err := json.Marshal(tags)
	if err != nil {
		return PgReview{}, fmt.Errorf("could not marshal review tags: %w", err)
	}

	pg := PgReview{
		Author:     r.Author,
		Title:      nullString(r.Title),
		Body:       r.Body,
		Rating:     r.Rating,
		Tags:       b,
		City:       nullString(r.City),
		MediaURL:   nullString(r.MediaURL),
		Status:     string(r.Status),
		ApprovedAt: nullTime(r.ApprovedAt),
	}
	if r.ApprovedBy != nil {
		pg.ApprovedBy = uuid.NullUUID{UUID: uuid.UUID(*r.ApprovedBy), Valid: true}
	}

	return pg, nil
}

func pgReviewsToDomain(rows []PgReview) ([]domain.Review, error) {
	res := make([]domain.Review, 0, len(rows))
	for i := range rows {
		r, err := rows[i].ToDomain()
		if err != nil {
			return nil, err
		}
		res = append(res, *r)
	}

	return res, nil
}

type PgLead struct {
	ID   string `db:"id"`
	Kind string `db:"kind"`

	Name  string         `db:"name"`
	Email sql.NullString `db:"email"`
	Phone sql.NullString `db:"phone"`

	EventType   sql.NullString `db:"event_type"`
	EventDate   sql.NullTime   `db:"event_date"`
	Passengers  int            `db:"passengers"`
	Pickup      sql.NullString `db:"pickup"`
	Dropoff     sql.NullString `db:"dropoff"`
	VehicleSlug sql.NullString `db:"vehicle_slug"`
	Message     sql.NullString `db:"message"`

	Status    string         `db:"status"`
	Attempts  int            `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt   time.Time    `db:"created_at"   goqu:"skipinsert"`
	UpdatedAt   sql.NullTime `db:"updated_at"   goqu:"skipinsert"`
	DeliveredAt sql.NullTime `db:"delivered_at" goqu:"skipinsert"`
}

func (p *PgLead) ToDomain() *domain.Lead {
	return &domain.Lead{
		ID:          domain.LeadID(p.ID),
		Kind:        domain.LeadKind(p.Kind),
		Name:        p.Name,
		Email:       p.Email.String,
		Phone:       p.Phone.String,
		EventType:   p.EventType.String,
		EventDate:   p.EventDate.Time,
		Passengers:  p.Passengers,
		Pickup:      p.Pickup.String,
		Dropoff:     p.Dropoff.String,
		VehicleSlug: p.VehicleSlug.String,
		Message:     p.Message.String,
		Status:      domain.LeadStatus(p.Status),
		Attempts:    p.Attempts,
		LastError:   p.LastError.String,
		CreatedAt:   p.CreatedAt,
		DeliveredAt: p.DeliveredAt.Time,
	}
}

func domainLeadToPg(l domain.Lead) PgLead {
	return PgLead{
		ID:          string(l.ID),
		Kind:        string(l.Kind),
		Name:        l.Name,
		Email:       nullString(l.Email),
		Phone:       nullString(l.Phone),
		EventType:   nullString(l.EventType),
		EventDate:   nullTime(l.EventDate),
		Passengers:  l.Passengers,
		Pickup:      nullString(l.Pickup),
		Dropoff:     nullString(l.Dropoff),
		VehicleSlug: nullString(l.VehicleSlug),
		Message:     nullString(l.Message),
		Status:      string(l.Status),
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

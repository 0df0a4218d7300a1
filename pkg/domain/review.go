package domain

import "time"

// ReviewID identifies a stored review.
type ReviewID int64

// ReviewStatus is the moderation state of a review.
type ReviewStatus string

const (
	// ReviewStatusPending is set on submission; pending reviews are not public.
	ReviewStatusPending ReviewStatus = "PENDING"
	// ReviewStatusApproved reviews are listed publicly.
	ReviewStatusApproved ReviewStatus = "APPROVED"
)

// Review is a customer review.
type Review struct {
	ID     ReviewID `json:"id"`
	Author string   `json:"author"  yaml:"author"`
	Title  string   `json:"title,omitempty" yaml:"title"`
	Body   string   `json:"body"    yaml:"body"`
	// Rating is 1..5 stars.
	Rating   int      `json:"rating"  yaml:"rating"`
	Tags     []string `json:"tags,omitempty" yaml:"tags"`
	City     string   `json:"city,omitempty" yaml:"city"`
	MediaURL string   `json:"mediaUrl,omitempty" yaml:"mediaUrl"`

	Status     ReviewStatus `json:"status"`
	ApprovedBy *UserID      `json:"-"`

	CreatedAt  time.Time `json:"createdAt"`
	ApprovedAt time.Time `json:"approvedAt,omitzero"`
}

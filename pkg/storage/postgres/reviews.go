package postgres

import (
	"bus2ride/pkg/domain"
	"context"
	"fmt"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	reviewsTable = "reviews"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (p *PgSQL) StoreReviews(ctx context.Context, reviews ...domain.Review) ([]domain.Review, error) {
	if len(reviews) == 0 {
		return nil, nil
	}

	rows := make([]PgReview, 0, len(reviews))
	for _, r := range reviews {
		pg, err := domainReviewToPg(r)
		if err != nil {
			return nil, err
		}
		rows = append(rows, pg)
	}

	var result []PgReview
	if err := p.Builder.Insert(reviewsTable).
		Rows(rows).
		Returning(&PgReview{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store reviews into pg: %w", err)
	}

	return pgReviewsToDomain(result)
}

// ApprovedReviews returns approved reviews ordered by created_at DESC, id DESC.
func (p *PgSQL) ApprovedReviews(ctx context.Context, query string, limit uint) ([]domain.Review, error) {
	w := []goqu.Expression{
		goqu.I("status").Eq(string(domain.ReviewStatusApproved)),
	}
	if q := strings.TrimSpace(query); q != "" {
		pattern := "%" + likeEscaper.Replace(q) + "%"
		w = append(w, goqu.Or(
			goqu.I("author").ILike(pattern),
			goqu.I("title").ILike(pattern),
			goqu.I("body").ILike(pattern),
		))
	}

	var rows []PgReview
	if err := p.Builder.From(reviewsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch approved reviews from pg: %w", err)
	}

	return pgReviewsToDomain(rows)
}

func (p *PgSQL) Reviews(ctx context.Context, limit uint) ([]domain.Review, error) {
	var rows []PgReview
	if err := p.Builder.From(reviewsTable).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch reviews from pg: %w", err)
	}

	return pgReviewsToDomain(rows)
}

func (p *PgSQL) ReviewByID(ctx context.Context, id domain.ReviewID) (*domain.Review, error) {
	var row PgReview
	found, err := p.Builder.From(reviewsTable).
		Where(goqu.I("id").Eq(int64(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch review by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// ApproveReview only touches pending rows, so approving twice finds nothing.
func (p *PgSQL) ApproveReview(ctx context.Context, id domain.ReviewID, by domain.UserID) (*domain.Review, error) {
	var row PgReview
	found, err := p.Builder.Update(reviewsTable).
		Set(goqu.Record{
			"status":      string(domain.ReviewStatusApproved),
			"approved_by": uuid.UUID(by),
			"approved_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(int64(id)),
		goqu.I("status").Eq(string(domain.ReviewStatusPending)),
	).Returning(&PgReview{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not approve review in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) ReviewCount(ctx context.Context) (int64, error) {
	count, err := p.Builder.From(reviewsTable).CountContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not count reviews in pg: %w", err)
	}

	return count, nil
}

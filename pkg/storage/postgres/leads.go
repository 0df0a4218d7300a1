package postgres

import (
	"bus2ride/pkg/domain"
	"bus2ride/pkg/storage"
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
)

const (
	leadsTable = "leads"
)

func (p *PgSQL) StoreLead(ctx context.Context, lead domain.Lead) (*domain.Lead, error) {
	var row PgLead
	if _, err := p.Builder.Insert(leadsTable).
		Rows(domainLeadToPg(lead)).
		Returning(&PgLead{}).
		Executor().ScanStructContext(ctx, &row); err != nil {
		return nil, fmt.Errorf("could not store lead into pg: %w", err)
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) LeadByID(ctx context.Context, id domain.LeadID) (*domain.Lead, error) {
	var row PgLead
	found, err := p.Builder.From(leadsTable).
		Where(goqu.I("id").Eq(string(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch lead by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateLead increments attempts, sets updated_at and applies the given
// status. delivered_at is set when the status is DELIVERED.
func (p *PgSQL) UpdateLead(ctx context.Context, id domain.LeadID, updates storage.LeadUpdates) (*domain.Lead, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"attempts":   goqu.L("attempts + 1"),
		"status":     string(updates.Status),
	}
	if updates.Status == domain.LeadStatusDelivered {
		rec["delivered_at"] = goqu.L("CURRENT_TIMESTAMP")
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	var row PgLead
	found, err := p.Builder.Update(leadsTable).
		Set(rec).
		Where(goqu.I("id").Eq(string(id))).
		Returning(&PgLead{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update lead in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) RecentLeads(ctx context.Context, limit uint) ([]domain.Lead, error) {
	var rows []PgLead
	if err := p.Builder.From(leadsTable).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch recent leads from pg: %w", err)
	}

	res := make([]domain.Lead, 0, len(rows))
	for i := range rows {
		res = append(res, *rows[i].ToDomain())
	}

	return res, nil
}

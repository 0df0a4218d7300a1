// Package worker runs background jobs on River, backed by the same Postgres
// database as the rest of the application.
package worker

import (
	"bus2ride/internal/config"
	"bus2ride/internal/leads"
	"bus2ride/pkg/logger"
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
)

// Options configure the job runner.
type Options struct {
	// MaxWorkers bounds concurrently running jobs on the default queue.
	MaxWorkers int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{MaxWorkers: max(1, cfg.Worker.MaxWorkers)}
}

// Start registers the workers and starts processing jobs until ctx is done
// or the returned client is stopped.
func Start(ctx context.Context, dbPool *pgxpool.Pool, leads leads.Leads, options Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewLeadDeliveryWorker(leads))

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: options.MaxWorkers},
		},
		Workers: workers,
		Logger:  logger.Slog(ctx),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	if err := riverClient.Start(ctx); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}

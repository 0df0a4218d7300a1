package main

import (
	"bus2ride/internal/config"
	"bus2ride/internal/reviews"
	"bus2ride/pkg/logger"
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// seedCommand constructs the 'seed' subcommand that stores the authored
// reviews as approved. It does nothing once any review exists.
func seedCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seeds the reviews table with the authored reviews",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			n, err := reviews.New(strg).Seed(ctx, loadCatalog(ctx).SeedReviews())
			if err != nil {
				logger.Fatal(ctx, "could not seed reviews", zap.Error(err))
			}
			if n == 0 {
				logger.Info(ctx, "reviews already present, nothing seeded")

				return
			}
			logger.Info(ctx, "seeded reviews", zap.Int("count", n))
		},
	}

	return cmd
}

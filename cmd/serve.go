package main

import (
	"bus2ride"
	"bus2ride/internal/advisor"
	"bus2ride/internal/api"
	"bus2ride/internal/api/handler/v1handler"
	"bus2ride/internal/catalog"
	"bus2ride/internal/config"
	"bus2ride/internal/leads"
	"bus2ride/internal/planner"
	"bus2ride/internal/playlists"
	"bus2ride/internal/polls"
	"bus2ride/internal/reviews"
	"bus2ride/internal/tools"
	"bus2ride/internal/worker"
	"bus2ride/pkg/crm"
	"bus2ride/pkg/crm/webhook"
	"bus2ride/pkg/geo"
	"bus2ride/pkg/geo/ipapi"
	geomapbox "bus2ride/pkg/geo/mapbox"
	geoopenmeteo "bus2ride/pkg/geo/openmeteo"
	"bus2ride/pkg/geo/photon"
	"bus2ride/pkg/logger"
	"bus2ride/pkg/metrics"
	"bus2ride/pkg/routing"
	routingmapbox "bus2ride/pkg/routing/mapbox"
	"bus2ride/pkg/routing/osrm"
	"bus2ride/pkg/spotify/webapi"
	"bus2ride/pkg/storage/postgres"
	"bus2ride/pkg/weather/nws"
	weatheropenmeteo "bus2ride/pkg/weather/openmeteo"
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// loadCatalog parses the authored site content embedded in the binary.
func loadCatalog(ctx context.Context) *catalog.Catalog {
	sub, err := fs.Sub(bus2ride.Content, "content")
	if err != nil {
		logger.Fatal(ctx, "could not open embedded content", zap.Error(err))
	}
	cat, err := catalog.Load(sub)
	if err != nil {
		logger.Fatal(ctx, "could not load content", zap.Error(err))
	}

	return cat
}

// setupServices builds the upstream clients and domain services. Mapbox
// replaces Photon and OSRM when a token is configured, and lead delivery is
// only enabled when a CRM webhook is set.
func setupServices(ctx context.Context, cfg *config.Config, pgsql *postgres.PgSQL) v1handler.Deps {
	up := cfg.Upstreams
	cat := loadCatalog(ctx)

	var (
		geocoder geo.Geocoder
		router   routing.Router
	)
	if up.MapboxToken != "" {
		logger.Info(ctx, "using mapbox for geocoding and directions")
		geocoder = geomapbox.New(metrics.NewClient("mapbox_geocoding", up.Timeout), up.MapboxURL, up.MapboxToken)
		router = routingmapbox.New(metrics.NewClient("mapbox_directions", up.Timeout), up.MapboxURL, up.MapboxToken)
	} else {
		geocoder = photon.New(metrics.NewClient("photon", up.Timeout), up.PhotonURL)
		router = osrm.New(metrics.NewClient("osrm", up.Timeout), up.OSRMURL)
	}
	cities := geoopenmeteo.New(metrics.NewClient("open_meteo_geocoding", up.Timeout), up.OpenMeteoGeocodingURL)

	var crmClient crm.Client
	if cfg.Leads.WebhookURL != "" {
		crmClient = webhook.New(metrics.NewClient("crm_webhook", up.Timeout), cfg.Leads.WebhookURL, cfg.Leads.WebhookToken)
	} else {
		logger.Warn(ctx, "no crm webhook configured, leads are stored but not delivered")
	}

	return v1handler.Deps{
		Catalog: cat,
		Polls:   polls.New(polls.NewOptions(cfg), pgsql, cat.Polls()),
		Reviews: reviews.New(pgsql),
		Planner: planner.New(geocoder, cities, router),
		Advisor: advisor.New(
			cities,
			ipapi.New(metrics.NewClient("ipapi", up.Timeout), up.IPAPIURL),
			nws.New(metrics.NewClient("nws", up.Timeout), up.NWSURL, up.NWSUserAgent),
			weatheropenmeteo.New(metrics.NewClient("open_meteo_forecast", up.Timeout), up.OpenMeteoForecastURL),
		),
		Playlists: playlists.New(webapi.New(metrics.NewClient("spotify", up.Timeout), up.SpotifyAPIURL, webapi.Credentials{
			ClientID:     up.SpotifyClientID,
			ClientSecret: up.SpotifyClientSecret,
			TokenURL:     up.SpotifyTokenURL,
		})),
		Tools: tools.New(),
		Leads: leads.New(pgsql, crmClient, leads.NewOptions(cfg)),
	}
}

func setupServer(ctx context.Context, cfg *config.Config, deps v1handler.Deps) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{Deps: deps}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func setupWorker(ctx context.Context, cfg *config.Config, pgsql *postgres.PgSQL, l leads.Leads) func(ctx context.Context) {
	// the worker outlives the signal context so Stop can drain running jobs
	riverClient, err := worker.Start(context.WithoutCancel(ctx), pgsql.Pool, l, worker.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not start worker", zap.Error(err))
	}

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping worker...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop worker", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			pgsql, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			deps := setupServices(ctx, cfg, pgsql)
			stopWorker := setupWorker(ctx, cfg, pgsql, deps.Leads)
			stopWebserver := setupServer(ctx, cfg, deps)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorker(shutdownCtx)
		},
	}

	return cmd
}

package config_test

import (
	"bus2ride/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	path := writeConfig(t, `
environment: production
http:
  addr: ":9090"
polls:
  batchSize: 10
upstreams:
  mapboxToken: pk.test
`)
	t.Setenv("LEADS_WEBHOOK_URL", "https://crm.example.com/hooks/leads")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, 10, cfg.Polls.BatchSize)
	require.Equal(t, "pk.test", cfg.Upstreams.MapboxToken)
	require.Equal(t, "https://crm.example.com/hooks/leads", cfg.Leads.WebhookURL)

	// defaults
	require.Equal(t, "/metrics", cfg.HTTP.MetricsPath)
	require.Equal(t, 4, cfg.Polls.Concurrency)
	require.Equal(t, 25, cfg.Polls.ByTagLimit)
	require.Equal(t, "https://router.project-osrm.org", cfg.Upstreams.OSRMURL)
	require.Equal(t, 10*time.Second, cfg.Upstreams.Timeout)
	require.Equal(t, 10*time.Second, cfg.GracefulShutdownTimeout)
	require.Equal(t, uint(10), cfg.Database.ConnectAttempts)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "could not read config")
}

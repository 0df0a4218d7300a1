package postgres_test

import (
	"bus2ride"
	"bus2ride/pkg/logger"
	"bus2ride/pkg/storage/postgres"
	"context"
	"fmt"
	"log"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testUser     = "postgres"
	testPassword = "postgres"
)

// shared is started once per package run. Every test gets its own database
// inside it.
var (
	shared  *postgresContainer
	dbCount atomic.Int64
)

type postgresContainer struct {
	Container testcontainers.Container
	Host      string
	Port      int
}

func startPostgresContainer(ctx context.Context) (*postgresContainer, error) {
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:17",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     testUser,
				"POSTGRES_PASSWORD": testPassword,
			},
			// postgres restarts once after initdb
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("could not start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get container host: %w", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return nil, fmt.Errorf("could not get mapped port: %w", err)
	}

	return &postgresContainer{Container: container, Host: host, Port: port.Int()}, nil
}

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)

	ctx := context.Background()
	c, err := startPostgresContainer(ctx)
	if err != nil {
		log.Fatalf("could not start postgres: %v", err)
	}
	shared = c

	code := m.Run()
	_ = c.Container.Terminate(ctx)
	os.Exit(code)
}

func connect(ctx context.Context, database string) (*postgres.PgSQL, error) {
	return postgres.New(ctx, postgres.Options{
		Username:           testUser,
		Password:           testPassword,
		Host:               shared.Host,
		Port:               shared.Port,
		Database:           database,
		SslMode:            "disable",
		ConnMaxLifetime:    time.Minute,
		ConnMaxIdleTime:    time.Minute,
		MaxOpenConnections: 5,
		MaxIdleConnections: 5,
	})
}

// setupTestDB creates a fresh, fully migrated database for the calling test.
func setupTestDB(t *testing.T) (*postgres.PgSQL, func()) {
	t.Helper()
	ctx := context.Background()

	admin, err := connect(ctx, "postgres")
	require.NoError(t, err)
	name := fmt.Sprintf("bus2ride_test_%d", dbCount.Add(1))
	_, err = admin.DB.ExecContext(ctx, "CREATE DATABASE "+name)
	require.NoError(t, err)

	pgSQL, err := connect(ctx, name)
	require.NoError(t, err)
	_, err = pgSQL.Migrate(ctx, bus2ride.Migrations, "migrations")
	require.NoError(t, err)

	return pgSQL, func() {
		_ = pgSQL.Close()
		_, _ = admin.DB.ExecContext(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)")
		_ = admin.Close()
	}
}

func TestPgSQL_Migrate(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	require.NoError(t, pg.Ping(ctx))

	// already applied by setupTestDB
	res, err := pg.Migrate(ctx, bus2ride.Migrations, "migrations")
	require.NoError(t, err)
	require.Positive(t, res.RiverTo)
	require.Equal(t, res.RiverTo, res.RiverFrom)

	for _, table := range []string{"poll_votes", "reviews", "leads", "river_job"} {
		var exists bool
		require.NoError(t, pg.DB.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)`, table,
		).Scan(&exists))
		require.True(t, exists, table)
	}
}

// Package testhelpers contains helpers shared by tests which need real
// backing services, provisioned via testcontainers.
package testhelpers

import (
	"context"
	"testing"
	"time"

	"github.com/hbomb79/Reel/internal/database"
	"github.com/jmoiron/sqlx"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	postgresImage = "docker.io/postgres:14.1-alpine"
	redisImage    = "docker.io/redis:7-alpine"
)

// SpawnPostgres starts a throwaway Postgres container, applies Reel's migrations to it
// and returns a connection. The container is terminated when the test completes.
// Tests using this helper are skipped when running with -short.
func SpawnPostgres(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres backed test in short mode")
	}

	ctx := context.Background()
	postgresC, err := postgres.RunContainer(ctx,
		testcontainers.WithImage(postgresImage),
		postgres.WithDatabase("REEL_DB"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %s", err)
	}
	t.Cleanup(func() {
		if err := postgresC.Terminate(ctx); err != nil {
			t.Logf("WARNING: failed to terminate postgres container: %s", err)
		}
	})

	dsn, err := postgresC.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to build postgres connection string: %s", err)
	}

	db, err := sqlx.Connect(database.SqlDialect, dsn)
	if err != nil {
		t.Fatalf("failed to connect to postgres: %s", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := database.Migrate(db.DB); err != nil {
		t.Fatalf("failed to migrate database: %s", err)
	}

	return db
}

// SpawnRedis starts a throwaway Redis container and returns its host:port address.
func SpawnRedis(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping redis backed test in short mode")
	}

	ctx := context.Background()
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        redisImage,
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("failed to start redis container: %s", err)
	}
	t.Cleanup(func() {
		if err := redisC.Terminate(ctx); err != nil {
			t.Logf("WARNING: failed to terminate redis container: %s", err)
		}
	})

	endpoint, err := redisC.Endpoint(ctx, "")
	if err != nil {
		t.Fatalf("failed to resolve redis endpoint: %s", err)
	}

	return endpoint
}

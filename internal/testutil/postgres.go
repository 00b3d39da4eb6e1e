//go:build integration

package testutil

import (
	"context"
	"testing"
	"time"

	"crowdvault/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// PostgresContainer wraps a testcontainers PostgreSQL instance with the
// ledger schema already applied.
type PostgresContainer struct {
	Container  testcontainers.Container
	ConnString string
	Pool       *pgxpool.Pool
}

// NewPostgresContainer starts a PostgreSQL container, migrates it and
// opens a pool against it. The container and the pool are torn down
// when the test finishes.
func NewPostgresContainer(t *testing.T) *PostgresContainer {
	t.Helper()

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("crowdvault"),
		tcpostgres.WithUsername("crowdvault"),
		tcpostgres.WithPassword("crowdvault"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connString, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to get postgres connection string: %v", err)
	}

	if err := db.Migrate(connString); err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to migrate: %v", err)
	}

	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		_ = container.Terminate(ctx)
		t.Fatalf("failed to open pool: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		_ = container.Terminate(ctx)
	})

	return &PostgresContainer{Container: container, ConnString: connString, Pool: pool}
}

// Truncate wipes the ledger tables. Use between tests to ensure isolation.
func (p *PostgresContainer) Truncate(ctx context.Context) error {
	_, err := p.Pool.Exec(ctx, `TRUNCATE campaigns, contributions, transfers RESTART IDENTITY`)
	return err
}

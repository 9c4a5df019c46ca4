package migrations_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"taxi/internal/adapters/out/postgres/migrations"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestUpDown(t *testing.T) {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, container.Terminate(context.Background()))
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, migrations.Up(dsn))
	require.NoError(t, migrations.Up(dsn), "second run should be a no-op")
	require.ElementsMatch(t, []string{"clients", "drivers", "orders"}, tables(t, db))

	var cascades int
	err = db.QueryRowContext(ctx, `
		SELECT count(*)
		FROM information_schema.referential_constraints
		WHERE constraint_name IN ('orders_client_id_fkey', 'orders_driver_id_fkey')
		  AND delete_rule = 'CASCADE'
	`).Scan(&cascades)
	require.NoError(t, err)
	require.Equal(t, 2, cascades)

	require.NoError(t, migrations.Down(dsn))
	require.Empty(t, tables(t, db))
}

func tables(t *testing.T, db *sql.DB) []string {
	t.Helper()

	rows, err := db.Query(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public' AND table_name <> 'schema_migrations'
	`)
	require.NoError(t, err)
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		names = append(names, name)
	}
	require.NoError(t, rows.Err())
	return names
}

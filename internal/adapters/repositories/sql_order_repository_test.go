package repositories

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"hub-allocation-service/internal/domain"
	"hub-allocation-service/internal/platform/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := db.Open(db.SQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, InitSchema(context.Background(), conn))
	return conn
}

func TestSeedAndListOrders(t *testing.T) {
	ctx := context.Background()
	conn := openTestDB(t)

	deadline := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)
	orders := []domain.Order{
		{ID: "E002", Destination: "Natal (RN)", Deadline: deadline, WeightKg: 120.5, Note: "fragile"},
		{ID: "E001", Destination: "Manaus (AM)", Deadline: deadline, WeightKg: 40},
	}
	require.NoError(t, SeedOrders(ctx, conn, db.SQLite, orders))

	repo := NewSQLOrderRepository(conn)
	got, err := repo.ListOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, orders, got, "orders keep seeding order, not id order")

	// Re-seeding upserts instead of failing on the primary key.
	orders[0].WeightKg = 99
	require.NoError(t, SeedOrders(ctx, conn, db.SQLite, orders[:1]))
	got, err = repo.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 99.0, got[0].WeightKg)
}

func TestSeedOrdersFromJSON(t *testing.T) {
	ctx := context.Background()
	conn := openTestDB(t)

	path := filepath.Join(t.TempDir(), "orders.json")
	doc := `[
		{"id": "E001", "destination": "Recife (PE)", "deadline": "2026-10-17", "weight_kg": 300},
		{"id": "E002", "destination": "Palmas (TO)", "deadline": "2026-10-18", "weight_kg": 12.5, "note": "dock 3"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	require.NoError(t, SeedOrdersFromJSON(ctx, conn, db.SQLite, path))

	got, err := NewSQLOrderRepository(conn).ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Palmas (TO)", got[1].Destination)
	assert.Equal(t, "dock 3", got[1].Note)
	assert.Equal(t, time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC), got[1].Deadline)
}

func TestSeedOrdersFromJSONRejectsInvalidRows(t *testing.T) {
	ctx := context.Background()
	conn := openTestDB(t)

	for name, doc := range map[string]string{
		"empty id":     `[{"id": "", "destination": "A", "deadline": "2026-10-17", "weight_kg": 1}]`,
		"no weight":    `[{"id": "E1", "destination": "A", "deadline": "2026-10-17", "weight_kg": 0}]`,
		"bad deadline": `[{"id": "E1", "destination": "A", "deadline": "tomorrow", "weight_kg": 1}]`,
		"not json":     `{`,
	} {
		path := filepath.Join(t.TempDir(), "orders.json")
		require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
		assert.Error(t, SeedOrdersFromJSON(ctx, conn, db.SQLite, path), name)
	}
}

func TestListOrdersNilDB(t *testing.T) {
	_, err := (&SQLOrderRepository{}).ListOrders(context.Background())
	assert.Error(t, err)
}

package cache

import (
	"context"
	"testing"

	"hub-allocation-service/internal/adapters/repositories"
	"hub-allocation-service/internal/adapters/topology"
	"hub-allocation-service/internal/platform/db"
	"hub-allocation-service/internal/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *SQLRouteStore {
	t.Helper()
	conn, err := db.Open(db.SQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, repositories.InitSchema(context.Background(), conn))
	return NewSQLRouteStore(conn, db.SQLite)
}

func TestRouteStorePutAndLoad(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	require.NoError(t, store.PutMany(ctx, "H1", map[string]float64{"B": 80, "A": 160}))
	require.NoError(t, store.PutMany(ctx, "H1", map[string]float64{"A": 240}))

	edges, err := store.LoadEdges(ctx)
	require.NoError(t, err)
	assert.Equal(t, []ports.RouteEdge{
		{Origin: "H1", Destination: "A", DistanceKm: 240},
		{Origin: "H1", Destination: "B", DistanceKm: 80},
	}, edges)

	var hours float64
	require.NoError(t, store.DB.QueryRow(
		`SELECT duration_hours FROM route_edges WHERE origin = ? AND destination = ?`, "H1", "A",
	).Scan(&hours))
	assert.Equal(t, 3.0, hours)
}

func TestRouteStoreBuiltinRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	builtin, err := topology.Builtin()
	require.NoError(t, err)
	require.NoError(t, store.PutEdges(ctx, builtin.Edges()))

	edges, err := store.LoadEdges(ctx)
	require.NoError(t, err)

	loaded, err := topology.New(topology.BuiltinHubs(), edges)
	require.NoError(t, err)
	assert.Equal(t, builtin.Edges(), loaded.Edges())
}

func TestRouteStoreRejectsEmptyKeys(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	assert.Error(t, store.PutMany(ctx, "", map[string]float64{"A": 1}))
	assert.Error(t, store.PutMany(ctx, "H1", map[string]float64{" ": 1}))
	assert.NoError(t, store.PutMany(ctx, "H1", nil))
}

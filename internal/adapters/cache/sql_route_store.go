package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hub-allocation-service/internal/adapters/distance"
	"hub-allocation-service/internal/platform/db"
	"hub-allocation-service/internal/platform/obs"
	"hub-allocation-service/internal/ports"
	"strings"
)

// SQLRouteStore keeps the distance dataset in the route_edges table so the
// topology can be loaded from a database instead of the built-in dataset.
type SQLRouteStore struct {
	DB      *sql.DB
	Dialect db.Dialect
}

func NewSQLRouteStore(conn *sql.DB, dialect db.Dialect) *SQLRouteStore {
	return &SQLRouteStore{DB: conn, Dialect: dialect}
}

// Store distances from one origin to many destinations.
// The estimated duration is derived the same way the in-memory table does it.
func (s *SQLRouteStore) PutMany(
	ctx context.Context,
	origin string,
	distancesKm map[string]float64,
) error {
	if s.DB == nil {
		return errors.New("route store: db is nil")
	}

	if origin == "" {
		return errors.New("insert route edges: origin must not be empty")
	}

	if len(distancesKm) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert route edges: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, s.Dialect.Rebind(`
	INSERT INTO route_edges (origin, destination, distance_km, duration_hours)
    VALUES (?, ?, ?, ?)
	ON CONFLICT (origin, destination) DO UPDATE
	SET distance_km = EXCLUDED.distance_km,
		duration_hours = EXCLUDED.duration_hours;
	`))
	if err != nil {
		return fmt.Errorf("insert route edges: db prepare: %w", err)
	}
	defer stmt.Close()

	for dest, km := range distancesKm {
		if strings.TrimSpace(dest) == "" {
			return fmt.Errorf("insert route edges: empty destination key")
		}

		if _, err := stmt.ExecContext(ctx, origin, dest, km, distance.EstimateHours(km)); err != nil {
			return fmt.Errorf("insert route edge dest=%q: %w", dest, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert route edges commit: %w", err)
	}

	return nil
}

// PutEdges groups edges by origin and stores them.
func (s *SQLRouteStore) PutEdges(ctx context.Context, edges []ports.RouteEdge) error {
	byOrigin := make(map[string]map[string]float64)
	order := make([]string, 0)
	for _, e := range edges {
		m, ok := byOrigin[e.Origin]
		if !ok {
			m = make(map[string]float64)
			byOrigin[e.Origin] = m
			order = append(order, e.Origin)
		}
		m[e.Destination] = e.DistanceKm
	}

	for _, origin := range order {
		if err := s.PutMany(ctx, origin, byOrigin[origin]); err != nil {
			return fmt.Errorf("put edges origin=%q: %w", origin, err)
		}
	}
	return nil
}

// Fetch every stored edge ordered by origin and destination.
func (s *SQLRouteStore) LoadEdges(ctx context.Context) (_ []ports.RouteEdge, err error) {
	defer obs.Time(ctx, "routes.LoadEdges")(&err)

	if s.DB == nil {
		return nil, errors.New("route store: db is nil")
	}

	q := `
	SELECT origin, destination, distance_km
    FROM route_edges
    ORDER BY origin, destination;
	`

	rows, err := s.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("load route edges: query route_edges table: %w", err)
	}
	defer rows.Close()

	var out []ports.RouteEdge
	for rows.Next() {
		var e ports.RouteEdge
		if err := rows.Scan(&e.Origin, &e.Destination, &e.DistanceKm); err != nil {
			return nil, fmt.Errorf("load route edges: scan rows: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load route edges: row iteration: %w", err)
	}

	return out, nil
}

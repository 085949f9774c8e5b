package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"hub-allocation-service/internal/domain"
	"hub-allocation-service/internal/platform/db"
	"os"
	"strings"
	"time"
)

// DeadlineLayout is the date format of stored and seeded deadlines.
const DeadlineLayout = "2006-01-02"

// Initialize the database schema. Statements are valid for SQLite and Postgres.
func InitSchema(ctx context.Context, conn *sql.DB) error {
	if conn == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createOrdersQuery := `
	CREATE TABLE IF NOT EXISTS orders (
		order_id TEXT PRIMARY KEY,
		seq INTEGER NOT NULL,
		destination TEXT NOT NULL,
		deadline TEXT NOT NULL,
		weight_kg DOUBLE PRECISION NOT NULL CHECK (weight_kg > 0),
		note TEXT NOT NULL DEFAULT ''
	);
	`

	createRouteEdgesQuery := `
	CREATE TABLE IF NOT EXISTS route_edges (
        origin TEXT NOT NULL,
        destination TEXT NOT NULL,
        distance_km DOUBLE PRECISION NOT NULL,
        duration_hours DOUBLE PRECISION NOT NULL,
        PRIMARY KEY (origin, destination)
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_route_edges_destination_origin
    ON route_edges(destination, origin);
	`

	statements := []string{
		createOrdersQuery,
		createRouteEdgesQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type OrderSeed struct {
	ID          string  `json:"id"`
	Destination string  `json:"destination"`
	Deadline    string  `json:"deadline"`
	WeightKg    float64 `json:"weight_kg"`
	Note        string  `json:"note"`
}

// Populate the orders table from a JSON file.
func SeedOrdersFromJSON(ctx context.Context, conn *sql.DB, dialect db.Dialect, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed orders: read %q: %w", jsonPath, err)
	}

	var data []OrderSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed orders: parse json: %w", err)
	}

	orders := make([]domain.Order, 0, len(data))
	for i, item := range data {
		id := strings.TrimSpace(item.ID)
		if id == "" {
			return fmt.Errorf("seed orders: item at index %d: id cannot be empty", i+1)
		}

		dest := strings.TrimSpace(item.Destination)
		if dest == "" {
			return fmt.Errorf("seed orders: order %s: destination cannot be empty", id)
		}

		if item.WeightKg <= 0 {
			return fmt.Errorf("seed orders: order %s: invalid weight %v", id, item.WeightKg)
		}

		deadline, err := time.Parse(DeadlineLayout, item.Deadline)
		if err != nil {
			return fmt.Errorf("seed orders: order %s: parse deadline: %w", id, err)
		}

		orders = append(orders, domain.Order{
			ID:          id,
			Destination: dest,
			Deadline:    deadline,
			WeightKg:    item.WeightKg,
			Note:        item.Note,
		})
	}

	if err := SeedOrders(ctx, conn, dialect, orders); err != nil {
		return fmt.Errorf("seed orders from %q: %w", jsonPath, err)
	}
	return nil
}

// SeedOrders upserts orders, keeping their slice position as listing order.
func SeedOrders(ctx context.Context, conn *sql.DB, dialect db.Dialect, orders []domain.Order) error {
	if conn == nil {
		return errors.New("seed orders: DB is nil")
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed orders: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := dialect.Rebind(`
	INSERT INTO orders (
		order_id,
		seq,
		destination,
		deadline,
		weight_kg,
		note
	)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT (order_id) DO UPDATE
	SET seq = EXCLUDED.seq,
		destination = EXCLUDED.destination,
		deadline = EXCLUDED.deadline,
		weight_kg = EXCLUDED.weight_kg,
		note = EXCLUDED.note;
	`)
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("seed orders: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, o := range orders {
		deadline := o.Deadline.Format(DeadlineLayout)
		if _, err := stmt.ExecContext(ctx, o.ID, i+1, o.Destination, deadline, o.WeightKg, o.Note); err != nil {
			return fmt.Errorf("seed orders: insert order_id=%s: %w", o.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed orders: commit tx: %w", err)
	}

	return nil
}

package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"hub-allocation-service/internal/domain"
	"hub-allocation-service/internal/platform/obs"
	"time"
)

// SQL-backed implementation of the OrderRepository port.
// Orders are only read: allocation results are never written back.
type SQLOrderRepository struct{ DB *sql.DB }

func NewSQLOrderRepository(db *sql.DB) *SQLOrderRepository {
	return &SQLOrderRepository{DB: db}
}

// Return all stored orders in seeding order.
func (s *SQLOrderRepository) ListOrders(ctx context.Context) (_ []domain.Order, err error) {
	defer obs.Time(ctx, "orders.ListOrders")(&err)

	if s.DB == nil {
		return nil, errors.New("sql order repository: DB is nil")
	}

	query := `
	SELECT
		order_id,
		destination,
		deadline,
		weight_kg,
		note
	FROM orders
	ORDER BY seq, order_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list orders: query orders table: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0, 64)
	for rows.Next() {
		var o domain.Order
		var deadline string
		if err := rows.Scan(&o.ID, &o.Destination, &deadline, &o.WeightKg, &o.Note); err != nil {
			return nil, fmt.Errorf("list orders: scan row: %w", err)
		}

		o.Deadline, err = time.Parse(DeadlineLayout, deadline)
		if err != nil {
			return nil, fmt.Errorf("list orders: order %s: parse deadline %q: %w", o.ID, deadline, err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: row iteration: %w", err)
	}

	return orders, nil
}

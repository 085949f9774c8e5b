package ports

import (
	"context"
	"hub-allocation-service/internal/domain"
)

// Port: a boundary for retrieving Order entities from a data source.
type OrderRepository interface {
	// Retrieve all orders awaiting allocation, in a stable order.
	ListOrders(ctx context.Context) ([]domain.Order, error)
}

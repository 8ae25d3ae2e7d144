// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, read-only directories and
// the realtime notifier. Adapters implement them, use case handlers depend
// on them.
package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
)

// OrderRepository is the persistence contract for parent order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its sub-order references.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier, including sub-order references.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}

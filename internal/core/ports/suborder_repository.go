package ports

import (
	"context"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
)

// SubOrderRepository is the persistence contract for sub-order aggregates.
type SubOrderRepository interface {
	// Add persists a new sub-order with its line items.
	Add(ctx context.Context, aggregate *order.SubOrder) error

	// Update persists status and courier changes of an existing sub-order.
	// Line items are immutable and never rewritten.
	Update(ctx context.Context, aggregate *order.SubOrder) error

	// Get retrieves a sub-order with its line items.
	Get(ctx context.Context, id kernel.UUID) (*order.SubOrder, error)

	// Claim performs the atomic first-claim assignment: in a single
	// conditional update it sets the courier and moves the sub-order to
	// accepted, but only while no courier is assigned and the status is
	// still preparing. Losing the race returns a conflict error and leaves
	// the row untouched. Returns the sub-order as persisted after the claim.
	Claim(ctx context.Context, id, courierID kernel.UUID) (*order.SubOrder, error)

	// GetAllUnassigned retrieves sub-orders that are preparing with no
	// courier assigned, oldest first. Used to re-offer stale sub-orders.
	GetAllUnassigned(ctx context.Context) ([]*order.SubOrder, error)
}

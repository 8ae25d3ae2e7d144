// Package commands contains business operations that modify system state.
// Every handler follows the same shape: validate the command, run the
// writes inside a unit of work, and fire realtime notifications only after
// a successful commit so a rollback never leaks events.
package commands

import (
	"context"

	"foodcourt/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers, scoped to the repositories each command actually touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// SubOrderRepoFactory provides access to the sub-order repository within a transaction.
	SubOrderRepoFactory interface {
		SubOrderRepository() ports.SubOrderRepository
	}

	// CatalogRepoFactory provides access to the catalog repository within a transaction.
	CatalogRepoFactory interface {
		CatalogRepository() ports.CatalogRepository
	}

	// PlaceOrderUoW spans the whole placement write set: parent order,
	// sub-orders with line items, and stock decrements.
	PlaceOrderUoW interface {
		TxManager
		OrderRepoFactory
		SubOrderRepoFactory
		CatalogRepoFactory
	}

	// PlaceOrderUoWFactory creates placement unit of work instances.
	PlaceOrderUoWFactory interface {
		Create() PlaceOrderUoW
	}

	// SubOrderUoW manages transactions for status and claim operations,
	// which read the parent order but only write the sub-order.
	SubOrderUoW interface {
		TxManager
		OrderRepoFactory
		SubOrderRepoFactory
	}

	// SubOrderUoWFactory creates sub-order unit of work instances.
	SubOrderUoWFactory interface {
		Create() SubOrderUoW
	}
)

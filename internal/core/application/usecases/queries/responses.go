// Package queries contains the read side: denormalized views served
// straight from SQL, bypassing the domain aggregates. Views carry exactly
// what the role-specific order screens render.
package queries

import (
	"time"

	"foodcourt/internal/core/domain/model/kernel"
)

// LineItemView is the line item snapshot as shown on order screens.
type LineItemView struct {
	ItemID   kernel.UUID
	ItemName string
	Price    kernel.Money
	Quantity int
	Total    kernel.Money
}

// SubOrderView is one shop's portion of an order.
type SubOrderView struct {
	ID          kernel.UUID
	OrderID     kernel.UUID
	ShopID      kernel.UUID
	Status      string
	Subtotal    kernel.Money
	Tax         kernel.Money
	DeliveryFee kernel.Money
	Total       kernel.Money
	DeliveryBoy *kernel.UUID
	Note        string
	CreatedAt   time.Time
	Items       []LineItemView
}

// OrderView is a parent order with its sub-orders.
type OrderView struct {
	ID            kernel.UUID
	CustomerID    kernel.UUID
	Status        string
	TotalAmount   kernel.Money
	TotalQuantity int
	Note          string
	CreatedAt     time.Time
	SubOrders     []SubOrderView
}

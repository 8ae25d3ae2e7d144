package queries

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with full sub-order and line item
// detail, scoped to the requesting customer so one customer cannot read
// another's order.
type GetOrderQuery struct {
	orderID    kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one specific order.
func NewGetOrderQuery(orderID, customerID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(
		orderID.Validate(),
		customerID.Validate(),
	); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{
		orderID:    orderID,
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// CustomerID returns the requesting customer's identifier.
func (q GetOrderQuery) CustomerID() kernel.UUID {
	return q.customerID
}

package queries

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/pkg/guard"
)

var ErrGetShopOrdersQueryIsNotConstructed = errors.New(
	"GetShopOrdersQuery must be created via NewGetShopOrdersQuery constructor",
)

// GetShopOrdersQuery retrieves the sub-orders of every shop owned by one
// shop owner, newest first. This is the owner's work queue.
type GetShopOrdersQuery struct {
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShopOrdersQuery creates a query for a shop owner's sub-orders.
func NewGetShopOrdersQuery(ownerID kernel.UUID) (GetShopOrdersQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetShopOrdersQuery{}, err
	}
	return GetShopOrdersQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShopOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetShopOrdersQueryIsNotConstructed)
}

// OwnerID returns the requesting shop owner's identifier.
func (q GetShopOrdersQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

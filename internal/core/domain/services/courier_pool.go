package services

import (
	"errors"

	"foodcourt/internal/core/domain/model/kernel"
	"foodcourt/internal/core/domain/model/order"
	"foodcourt/internal/pkg/errs"
)

// CourierOffer is one targeted "new order request" planned for a courier:
// the sub-order on offer plus the summary fields the courier sees before
// deciding to claim.
type CourierOffer struct {
	CourierID       kernel.UUID
	SubOrderID      kernel.UUID
	OrderID         kernel.UUID
	ShopName        string
	Total           kernel.Money
	CustomerAddress string
}

// CourierPool is the domain service implementing the pool/first-claim
// assignment strategy: every courier learns about an unassigned sub-order
// and the first successful claim wins.
//
// The pool keeps no load-balancing state. It plans one offer per courier
// enumerated by the caller; couriers that are offline are dropped later by
// the best-effort notification dispatch, not here. Whether a claim wins is
// decided by the persistence layer's atomic compare-and-set, not by the pool.
type CourierPool struct{}

// NewCourierPool creates a CourierPool instance.
func NewCourierPool() CourierPool {
	return CourierPool{}
}

// PlanOffers produces one offer per courier for an offerable sub-order.
//
// A sub-order is offerable while it is preparing with no courier assigned.
// Anything else is a conflict: the offer round is stale and the caller
// should drop it. An empty courier slice yields an empty plan, never an
// error, so a transition with nobody online still succeeds.
func (p CourierPool) PlanOffers(
	subOrder *order.SubOrder,
	shopName string,
	customerAddress string,
	courierIDs []kernel.UUID,
) ([]CourierOffer, error) {
	if err := subOrder.Validate(); err != nil {
		return nil, err
	}
	if subOrder.Courier() != nil {
		return nil, errs.NewConflictErrorWithCause("subOrder", subOrder.Status().String(),
			errors.New("already claimed by a courier"))
	}
	if subOrder.Status() != order.SubOrderPreparing {
		return nil, errs.NewConflictError("subOrder", subOrder.Status().String())
	}

	offers := make([]CourierOffer, 0, len(courierIDs))
	for _, courierID := range courierIDs {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		offers = append(offers, CourierOffer{
			CourierID:       courierID,
			SubOrderID:      subOrder.ID(),
			OrderID:         subOrder.OrderID(),
			ShopName:        shopName,
			Total:           subOrder.Total(),
			CustomerAddress: customerAddress,
		})
	}

	return offers, nil
}
